package documents

import "strings"

// NameChangeAffidavit is the field set of an affidavit declaring a change of
// name after marriage.
type NameChangeAffidavit struct {
	DeponentName  string `json:"deponent_name" yaml:"deponent_name"`
	FatherName    string `json:"father_name" yaml:"father_name"`
	MaidenName    string `json:"maiden_name" yaml:"maiden_name"`
	PresentName   string `json:"present_name" yaml:"present_name"`
	MarriageDate  string `json:"marriage_date" yaml:"marriage_date"`
	MarriagePlace string `json:"marriage_place" yaml:"marriage_place"`

	HusbandName           string    `json:"husband_name,omitempty" yaml:"husband_name,omitempty"`
	Age                   string    `json:"age,omitempty" yaml:"age,omitempty"`
	Residence             string    `json:"residence,omitempty" yaml:"residence,omitempty"`
	MarriageCertificateNo string    `json:"marriage_certificate_no,omitempty" yaml:"marriage_certificate_no,omitempty"`
	AadhaarNumber         string    `json:"aadhaar_number,omitempty" yaml:"aadhaar_number,omitempty"`
	PANNumber             string    `json:"pan_number,omitempty" yaml:"pan_number,omitempty"`
	VerificationDay       string    `json:"verification_day,omitempty" yaml:"verification_day,omitempty"`
	VerificationMonth     string    `json:"verification_month,omitempty" yaml:"verification_month,omitempty"`
	VerificationYear      string    `json:"verification_year,omitempty" yaml:"verification_year,omitempty"`
	Witnesses             []Witness `json:"witnesses,omitempty" yaml:"witnesses,omitempty"`
}

// Kind implements FieldSet
func (NameChangeAffidavit) Kind() Kind { return KindNameChangeAffidavit }

func (NameChangeAffidavit) requirements() []requirement {
	return requireTexts(
		"deponent_name", "father_name", "maiden_name", "present_name",
		"marriage_date", "marriage_place",
	)
}

func (a NameChangeAffidavit) ruleFields() map[string]interface{} {
	return map[string]interface{}{
		"deponent_name":  strings.TrimSpace(a.DeponentName),
		"father_name":    strings.TrimSpace(a.FatherName),
		"maiden_name":    strings.TrimSpace(a.MaidenName),
		"present_name":   strings.TrimSpace(a.PresentName),
		"marriage_date":  strings.TrimSpace(a.MarriageDate),
		"marriage_place": strings.TrimSpace(a.MarriagePlace),
	}
}

func (a NameChangeAffidavit) templateData() map[string]interface{} {
	data := a.ruleFields()
	data["husband_name"] = textOr(a.HusbandName, NotAvailable)
	data["age"] = textOr(a.Age, BlankDay)
	data["residence"] = textOr(a.Residence, BlankLong)
	data["marriage_certificate_no"] = textOr(a.MarriageCertificateNo, NotAvailable)
	data["aadhaar_number"] = textOr(a.AadhaarNumber, NotAvailable)
	data["pan_number"] = textOr(a.PANNumber, NotAvailable)
	data["verification_place"] = verificationPlace(a.Residence)
	data["verification_day"] = textOr(a.VerificationDay, BlankDay)
	data["verification_month"] = textOr(a.VerificationMonth, BlankMonth)
	data["verification_year"] = textOr(a.VerificationYear, BlankYear)
	data["witnesses"] = witnessLines(a.Witnesses)
	return data
}

// verificationPlace is the first comma separated part of a residence
func verificationPlace(residence string) string {
	first, _, _ := strings.Cut(residence, ",")
	return textOr(first, BlankShort)
}
