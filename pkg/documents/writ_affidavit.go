package documents

import "strings"

// Writ affidavit defaults
const (
	DefaultParagraphsTrueUpTo = 20
	DefaultAnnexuresRange     = "A to T"
)

// WritAffidavit is the field set of the deponent's affidavit supporting a
// writ petition before a High Court.
type WritAffidavit struct {
	CourtName           string `json:"court_name" yaml:"court_name"`
	CourtPlace          string `json:"court_place" yaml:"court_place"`
	PetitionNo          string `json:"petition_no" yaml:"petition_no"`
	Year                string `json:"year" yaml:"year"`
	Petitioner          string `json:"petitioner" yaml:"petitioner"`
	Respondent          string `json:"respondent" yaml:"respondent"`
	DeponentName        string `json:"deponent_name" yaml:"deponent_name"`
	DeponentAge         string `json:"deponent_age" yaml:"deponent_age"`
	FatherOrHusbandName string `json:"father_or_husband_name" yaml:"father_or_husband_name"`
	Residence           string `json:"residence" yaml:"residence"`

	// ParagraphsTrueUpTo defaults to 20
	ParagraphsTrueUpTo int `json:"paragraphs_true_up_to,omitempty" yaml:"paragraphs_true_up_to,omitempty"`
	// AnnexuresRange defaults to "A to T"
	AnnexuresRange    string `json:"annexures_range,omitempty" yaml:"annexures_range,omitempty"`
	VerificationPlace string `json:"verification_place,omitempty" yaml:"verification_place,omitempty"`
	VerificationDay   string `json:"verification_day,omitempty" yaml:"verification_day,omitempty"`
	VerificationMonth string `json:"verification_month,omitempty" yaml:"verification_month,omitempty"`
}

// Kind implements FieldSet
func (WritAffidavit) Kind() Kind { return KindWritAffidavit }

func (WritAffidavit) requirements() []requirement {
	return requireTexts(
		"court_name", "court_place", "petition_no", "year",
		"petitioner", "respondent",
		"deponent_name", "deponent_age", "father_or_husband_name", "residence",
	)
}

func (a WritAffidavit) ruleFields() map[string]interface{} {
	return map[string]interface{}{
		"court_name":             strings.TrimSpace(a.CourtName),
		"court_place":            strings.TrimSpace(a.CourtPlace),
		"petition_no":            strings.TrimSpace(a.PetitionNo),
		"year":                   strings.TrimSpace(a.Year),
		"petitioner":             strings.TrimSpace(a.Petitioner),
		"respondent":             strings.TrimSpace(a.Respondent),
		"deponent_name":          strings.TrimSpace(a.DeponentName),
		"deponent_age":           strings.TrimSpace(a.DeponentAge),
		"father_or_husband_name": strings.TrimSpace(a.FatherOrHusbandName),
		"residence":              strings.TrimSpace(a.Residence),
	}
}

func (a WritAffidavit) templateData() map[string]interface{} {
	data := a.ruleFields()
	data["paragraphs_true_up_to"] = intOr(a.ParagraphsTrueUpTo, DefaultParagraphsTrueUpTo)
	data["annexures_range"] = textOr(a.AnnexuresRange, DefaultAnnexuresRange)
	data["verification_place"] = textOr(a.VerificationPlace, BlankShort)
	data["verification_day"] = textOr(a.VerificationDay, BlankDay)
	data["verification_month"] = textOr(a.VerificationMonth, BlankMonth)
	return data
}
