package documents

import "strings"

// Vakalatnama is the field set appointing an advocate to appear for a party
type Vakalatnama struct {
	PrincipalName string `json:"principal_name" yaml:"principal_name"`
	AdvocateName  string `json:"advocate_name" yaml:"advocate_name"`
	CourtName     string `json:"court_name" yaml:"court_name"`
	CaseTitle     string `json:"case_title" yaml:"case_title"`
	Role          string `json:"role" yaml:"role"`

	EnrolmentNo string `json:"enrolment_no,omitempty" yaml:"enrolment_no,omitempty"`
	DateSigned  string `json:"date_signed,omitempty" yaml:"date_signed,omitempty"`
	Place       string `json:"place,omitempty" yaml:"place,omitempty"`
}

// Kind implements FieldSet
func (Vakalatnama) Kind() Kind { return KindVakalatnama }

func (Vakalatnama) requirements() []requirement {
	return requireTexts("principal_name", "advocate_name", "court_name", "case_title", "role")
}

func (v Vakalatnama) ruleFields() map[string]interface{} {
	return map[string]interface{}{
		"principal_name": strings.TrimSpace(v.PrincipalName),
		"advocate_name":  strings.TrimSpace(v.AdvocateName),
		"court_name":     strings.TrimSpace(v.CourtName),
		"case_title":     strings.TrimSpace(v.CaseTitle),
		"role":           strings.TrimSpace(v.Role),
	}
}

func (v Vakalatnama) templateData() map[string]interface{} {
	data := v.ruleFields()
	data["enrolment_no"] = textOr(v.EnrolmentNo, NotAvailable)
	data["date_signed"] = textOr(v.DateSigned, BlankShort)
	data["place"] = textOr(v.Place, BlankShort)
	return data
}
