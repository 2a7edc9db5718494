package documents_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/aescanero/dago-node-drafter/pkg/documents"
	"github.com/aescanero/dago-node-drafter/pkg/textfmt"
)

// requiredFields mirrors the required column of each kind's schema
var requiredFields = map[documents.Kind][]string{
	documents.KindWritAffidavit: {
		"court_name", "court_place", "petition_no", "year", "petitioner", "respondent",
		"deponent_name", "deponent_age", "father_or_husband_name", "residence",
	},
	documents.KindNameChangeAffidavit: {
		"deponent_name", "father_name", "maiden_name", "present_name", "marriage_date", "marriage_place",
	},
	documents.KindWill: {
		"testator_name", "relation_to_parent", "age", "residence", "executor_name", "beneficiaries",
	},
	documents.KindGeneralPowerOfAttorney: {
		"grantor_name", "grantor_address", "agent_name", "agent_address", "scope_of_powers",
	},
	documents.KindSpecialPowerOfAttorney: {
		"grantor_name", "grantor_address", "agent_name", "agent_address", "property_description",
	},
	documents.KindVakalatnama: {
		"principal_name", "advocate_name", "court_name", "case_title", "role",
	},
	documents.KindTenancyLease: {
		"lessor_name", "lessor_address", "lessee_name", "lessee_address", "property_address",
		"rent_amount_in_rs", "lease_commencement_date", "lease_duration_months",
	},
}

func fixture(t *testing.T, kind documents.Kind) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "fields", string(kind)+".yaml"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

func fixtureMap(t *testing.T, kind documents.Kind) map[string]interface{} {
	t.Helper()
	var fields map[string]interface{}
	if err := yaml.Unmarshal(fixture(t, kind), &fields); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return fields
}

func renderMap(t *testing.T, renderer *documents.Renderer, kind documents.Kind, fields map[string]interface{}) (*documents.Document, error) {
	t.Helper()
	payload, err := yaml.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal fields: %v", err)
	}
	fs, err := documents.Decode(kind, payload)
	if err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	return renderer.Render(fs)
}

func mustRender(t *testing.T, renderer *documents.Renderer, kind documents.Kind) *documents.Document {
	t.Helper()
	doc, err := renderMap(t, renderer, kind, fixtureMap(t, kind))
	if err != nil {
		t.Fatalf("render %s: %v", kind, err)
	}
	return doc
}

func hasLine(doc *documents.Document, want string) bool {
	for _, line := range doc.Lines() {
		if line == want {
			return true
		}
	}
	return false
}

func TestWritAffidavitEndToEnd(t *testing.T) {
	doc, err := documents.Render(documents.WritAffidavit{
		CourtName:           "Madhya Pradesh",
		CourtPlace:          "Jabalpur",
		PetitionNo:          "123/2025",
		Year:                "2025",
		Petitioner:          "Mani Chourasiya",
		Respondent:          "State of Madhya Pradesh",
		DeponentName:        "Mani Chourasiya",
		DeponentAge:         "28 years",
		FatherOrHusbandName: "Ramesh Chourasiya",
		Residence:           "24, Shanti Nagar, Indore, Madhya Pradesh",
		VerificationPlace:   "Indore",
		VerificationDay:     "19",
		VerificationMonth:   "November",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, heading := range []string{
		"IN THE HON'BLE HIGH COURT OF MADHYA PRADESH AT JABALPUR",
		"WRIT PETITION NO. 123/2025 OF 2025",
	} {
		if !hasLine(doc, textfmt.Center(heading, textfmt.DefaultWidth)) {
			t.Errorf("missing centered line %q", heading)
		}
	}

	for _, want := range []string{
		"Verified at Indore on this 19 day of November, 2025.",
		"aged about 28 years, son/daughter/wife of Ramesh Chourasiya",
		"paragraphs 1 to 20 of the Writ Petition",
		"annexures A to T to the Writ Petition",
		"Mani Chourasiya\n    ...Petitioner\nVs.\nState of Madhya Pradesh\n    ...Respondent",
	} {
		if !strings.Contains(doc.Text(), want) {
			t.Errorf("missing %q", want)
		}
	}

	if got := doc.Kind(); got != documents.KindWritAffidavit {
		t.Fatalf("Kind() = %s", got)
	}
}

func TestWritAffidavitVerificationDefaults(t *testing.T) {
	renderer := documents.NewRenderer()
	fields := fixtureMap(t, documents.KindWritAffidavit)
	delete(fields, "verification_place")
	delete(fields, "verification_day")
	delete(fields, "verification_month")

	doc, err := renderMap(t, renderer, documents.KindWritAffidavit, fields)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := fmt.Sprintf("Verified at %s on this %s day of %s, 2025.",
		documents.BlankShort, documents.BlankDay, documents.BlankMonth)
	if !strings.Contains(doc.Text(), want) {
		t.Fatalf("missing default verification sentence %q", want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	renderer := documents.NewRenderer()

	for _, kind := range documents.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			first := mustRender(t, renderer, kind)
			second := mustRender(t, documents.NewRenderer(), kind)
			if diff := cmp.Diff(first.Text(), second.Text()); diff != "" {
				t.Fatalf("output differs between renders (-first +second):\n%s", diff)
			}
		})
	}
}

func TestRenderResolvesEveryPlaceholder(t *testing.T) {
	renderer := documents.NewRenderer()

	for _, kind := range documents.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			// Only required fields: every optional value comes from a default.
			fields := fixtureMap(t, kind)
			required := make(map[string]bool)
			for _, name := range requiredFields[kind] {
				required[name] = true
			}
			for name := range fields {
				if !required[name] {
					delete(fields, name)
				}
			}

			doc, err := renderMap(t, renderer, kind, fields)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if strings.Contains(doc.Text(), "{{") || strings.Contains(doc.Text(), "}}") {
				t.Fatalf("unresolved token in output:\n%s", doc.Text())
			}
			if !strings.HasSuffix(doc.Text(), "\n") {
				t.Fatalf("document text should be newline terminated")
			}
		})
	}
}

func TestRenderRejectsMissingRequiredFields(t *testing.T) {
	renderer := documents.NewRenderer()

	for kind, names := range requiredFields {
		for _, name := range names {
			t.Run(fmt.Sprintf("%s/%s", kind, name), func(t *testing.T) {
				fields := fixtureMap(t, kind)
				delete(fields, name)

				doc, err := renderMap(t, renderer, kind, fields)
				if doc != nil {
					t.Fatalf("expected no document, got partial text")
				}
				if !errors.Is(err, documents.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}

				var invalid *documents.InvalidInputError
				if !errors.As(err, &invalid) {
					t.Fatalf("expected *InvalidInputError, got %T", err)
				}
				if invalid.Field != name || invalid.Kind != kind {
					t.Fatalf("error names %s.%s, want %s.%s", invalid.Kind, invalid.Field, kind, name)
				}
			})
		}
	}
}

func TestRenderRejectsBlankRequiredText(t *testing.T) {
	_, err := documents.Render(documents.Vakalatnama{
		PrincipalName: "Mani Chourasiya",
		AdvocateName:  "   ",
		CourtName:     "District Court, Indore",
		CaseTitle:     "A vs. B",
		Role:          "Plaintiff",
	})

	var invalid *documents.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Field != "advocate_name" {
		t.Fatalf("expected advocate_name to be reported, got %v", err)
	}
}

func TestRenderRejectsBlankListEntries(t *testing.T) {
	renderer := documents.NewRenderer()

	_, err := renderer.GeneralPowerOfAttorney(documents.GeneralPowerOfAttorney{
		GrantorName:    "Ramesh Gupta",
		GrantorAddress: "Bhopal",
		AgentName:      "Vikas Gupta",
		AgentAddress:   "Bhopal",
		ScopeOfPowers:  []string{"To sign", " "},
	})
	var invalid *documents.InvalidInputError
	if !errors.As(err, &invalid) || invalid.Field != "scope_of_powers" {
		t.Fatalf("expected scope_of_powers to be reported, got %v", err)
	}

	_, err = renderer.Will(documents.Will{
		TestatorName:     "Rita Verma",
		RelationToParent: "daughter of K.L. Verma",
		Age:              "55",
		Residence:        "Bhopal",
		ExecutorName:     "Sunil Verma",
		Beneficiaries:    []documents.Beneficiary{{Name: "Sunil Verma"}, {Relation: "Daughter"}},
	})
	if !errors.As(err, &invalid) || invalid.Field != "beneficiaries" {
		t.Fatalf("expected beneficiaries to be reported, got %v", err)
	}
}

func TestRenderSubstitutesDefaults(t *testing.T) {
	renderer := documents.NewRenderer()

	tests := []struct {
		kind documents.Kind
		drop []string
		want []string
	}{
		{
			kind: documents.KindTenancyLease,
			want: []string{
				"4. SECURITY: Security deposit: Not specified.",
				"30 days written notice",
			},
		},
		{
			kind: documents.KindNameChangeAffidavit,
			drop: []string{"husband_name", "marriage_certificate_no", "aadhaar_number", "pan_number"},
			want: []string{
				"and wife of N/A,",
				"I got married to N/A on 12-02-2020 at Indore, and my Marriage Certificate number is N/A.",
				"4. That my AADHAAR Number is: N/A.",
				"5. That my PAN Number is: N/A.",
				"1. Name: __________________  Address: __________________  Signature: __________________\n" +
					"2. Name: __________________  Address: __________________  Signature: __________________",
			},
		},
		{
			kind: documents.KindWill,
			drop: []string{"assets"},
			want: []string{
				" - One Flat No. ___ situated at ____________________________.\n - Jewellery and ornaments.\n - Bank balances, deposits and investments.",
				"this ___ day of ________, 20__ at ________.",
			},
		},
		{
			kind: documents.KindGeneralPowerOfAttorney,
			want: []string{
				documents.DefaultRestrictionClause,
				"executed voluntarily on this day ________.",
			},
		},
		{
			kind: documents.KindSpecialPowerOfAttorney,
			want: []string{
				"1. To negotiate terms and execute the Sale Deed.\n" +
					"2. To present the Sale Deed before the Sub-Registrar for registration.\n" +
					"3. To declare the consideration and pay stamp duty and registration fees.\n" +
					"4. To obtain the registered document and sign all receipts.",
			},
		},
		{
			kind: documents.KindVakalatnama,
			drop: []string{"enrolment_no", "date_signed", "place"},
			want: []string{
				"(Enrolment No.: N/A)",
				"Date: ________\nPlace: ________",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			fields := fixtureMap(t, tt.kind)
			for _, name := range tt.drop {
				delete(fields, name)
			}

			doc, err := renderMap(t, renderer, tt.kind, fields)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(doc.Text(), want) {
					t.Errorf("missing default %q in:\n%s", want, doc.Text())
				}
			}
		})
	}
}

func TestTenancyLeaseSuppliedOptionals(t *testing.T) {
	doc, err := documents.NewRenderer().TenancyLease(documents.TenancyLease{
		LessorName:            "Suresh Jain",
		LessorAddress:         "8, MG Road, Indore",
		LesseeName:            "Anil Kumar",
		LesseeAddress:         "3, Civil Lines, Bhopal",
		PropertyAddress:       "12, Vijay Nagar, Indore",
		RentAmountInRs:        "15,000",
		LeaseCommencementDate: "1st December 2025",
		LeaseDurationMonths:   11,
		SecurityDepositInRs:   "45,000",
		NoticePeriodDays:      60,
		Witnesses:             []documents.Witness{{Name: "Kamal Joshi", Address: "Indore"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"4. SECURITY: Security deposit: Rs. 45,000.",
		"giving 60 days written notice",
		"for a period of 11 months.",
		"WITNESSES:\n1. Name: Kamal Joshi  Address: Indore  Signature: __________________\n",
	} {
		if !strings.Contains(doc.Text(), want) {
			t.Errorf("missing %q", want)
		}
	}

	clauses := []string{"PROPERTY", "TERM", "RENT", "SECURITY", "USE", "MAINTENANCE & REPAIRS", "UTILITIES", "TERMINATION", "POSSESSION"}
	last := -1
	for i, clause := range clauses {
		idx := strings.Index(doc.Text(), fmt.Sprintf("%d. %s:", i+1, clause))
		if idx <= last {
			t.Fatalf("clause %d %s out of order", i+1, clause)
		}
		last = idx
	}
}

func TestWillPreservesBeneficiaryOrder(t *testing.T) {
	doc, err := documents.NewRenderer().Will(documents.Will{
		TestatorName:     "Rita Verma",
		RelationToParent: "daughter of Shri K.L. Verma",
		Age:              "55",
		Residence:        "45, Green Park, Bhopal",
		ExecutorName:     "Sunil Verma",
		Beneficiaries: []documents.Beneficiary{
			{Name: "Zoya Verma", Relation: "Granddaughter"},
			{Name: "Anil Verma", Relation: "Son"},
			{Name: "Zoya Verma", Relation: "Granddaughter"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := " - Zoya Verma (Relationship: Granddaughter)\n" +
		" - Anil Verma (Relationship: Son)\n" +
		" - Zoya Verma (Relationship: Granddaughter)\n"
	if !strings.Contains(doc.Text(), want) {
		t.Fatalf("beneficiaries not rendered in order:\n%s", doc.Text())
	}
}

func TestGeneralPowerOfAttorneyNumbering(t *testing.T) {
	powers := make([]string, 12)
	for i := range powers {
		powers[i] = fmt.Sprintf("Power %c", 'A'+i)
	}

	doc, err := documents.NewRenderer().GeneralPowerOfAttorney(documents.GeneralPowerOfAttorney{
		GrantorName:    "Ramesh Gupta",
		GrantorAddress: "10, Arera Colony, Bhopal",
		AgentName:      "Vikas Gupta",
		AgentAddress:   "22, Kolar Road, Bhopal",
		ScopeOfPowers:  powers,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got []string
	for _, line := range doc.Lines() {
		if strings.Contains(line, ". Power ") {
			got = append(got, line)
		}
	}

	want := make([]string, len(powers))
	for i, power := range powers {
		want[i] = fmt.Sprintf("%d. %s", i+1, power)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("powers numbering mismatch (-want +got):\n%s", diff)
	}
}

func TestNameChangeVerificationPlace(t *testing.T) {
	doc := mustRender(t, documents.NewRenderer(), documents.KindNameChangeAffidavit)
	want := "Verified at 12 on this ___ day of ____________, 20__ that the contents"
	if !strings.Contains(doc.Text(), want) {
		t.Fatalf("missing %q in:\n%s", want, doc.Text())
	}
	if !strings.Contains(doc.Text(), "aged 28 years, residing at 12, Civil Lines, Jabalpur, MP,") {
		t.Fatalf("missing deponent particulars in:\n%s", doc.Text())
	}
}

func TestVakalatnamaGolden(t *testing.T) {
	doc := mustRender(t, documents.NewRenderer(), documents.KindVakalatnama)

	want, err := os.ReadFile(filepath.Join("testdata", "vakalatnama.golden"))
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if diff := cmp.Diff(string(want), doc.Text()); diff != "" {
		t.Fatalf("vakalatnama mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererWidth(t *testing.T) {
	renderer := documents.NewRenderer(documents.WithWidth(40))
	doc := mustRender(t, renderer, documents.KindVakalatnama)

	if got := doc.Lines()[0]; got != textfmt.Center("VAKALATNAMA", 40) {
		t.Fatalf("heading = %q", got)
	}
	if !hasLine(doc, textfmt.Rule(40)) {
		t.Fatalf("expected a 40 column rule")
	}
}

func TestDocumentLinesAreCopies(t *testing.T) {
	doc := mustRender(t, documents.NewRenderer(), documents.KindVakalatnama)

	lines := doc.Lines()
	lines[0] = "tampered"
	if doc.Lines()[0] == "tampered" {
		t.Fatalf("Lines() exposed internal state")
	}
	if got := strings.Join(doc.Lines(), "\n") + "\n"; got != doc.Text() {
		t.Fatalf("Lines() and Text() disagree")
	}
}

func TestRendererCheck(t *testing.T) {
	if err := documents.NewRenderer().Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestRenderRejectsNilFieldSets(t *testing.T) {
	tests := []struct {
		name string
		fs   documents.FieldSet
	}{
		{name: "nil interface", fs: nil},
		{name: "nil will", fs: (*documents.Will)(nil)},
		{name: "nil lease", fs: (*documents.TenancyLease)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := documents.Render(tt.fs)
			if !errors.Is(err, documents.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if doc != nil {
				t.Fatalf("expected no document")
			}
		})
	}
}
