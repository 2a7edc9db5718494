package documents

import (
	"fmt"
	"strings"
)

// DefaultWillAssets are listed when a will names no assets
var DefaultWillAssets = []string{
	"One Flat No. ___ situated at ____________________________.",
	"Jewellery and ornaments.",
	"Bank balances, deposits and investments.",
}

// Will is the field set of a last will and testament
type Will struct {
	TestatorName     string        `json:"testator_name" yaml:"testator_name"`
	RelationToParent string        `json:"relation_to_parent" yaml:"relation_to_parent"`
	Age              string        `json:"age" yaml:"age"`
	Residence        string        `json:"residence" yaml:"residence"`
	ExecutorName     string        `json:"executor_name" yaml:"executor_name"`
	Beneficiaries    []Beneficiary `json:"beneficiaries" yaml:"beneficiaries"`

	Assets    []string  `json:"assets,omitempty" yaml:"assets,omitempty"`
	DateDay   string    `json:"date_day,omitempty" yaml:"date_day,omitempty"`
	DateMonth string    `json:"date_month,omitempty" yaml:"date_month,omitempty"`
	Year      string    `json:"year,omitempty" yaml:"year,omitempty"`
	Place     string    `json:"place,omitempty" yaml:"place,omitempty"`
	Witnesses []Witness `json:"witnesses,omitempty" yaml:"witnesses,omitempty"`
}

// Kind implements FieldSet
func (Will) Kind() Kind { return KindWill }

func (Will) requirements() []requirement {
	return append(
		requireTexts("testator_name", "relation_to_parent", "age", "residence", "executor_name"),
		requireRecordList("beneficiaries", "name"),
	)
}

func (w Will) ruleFields() map[string]interface{} {
	beneficiaries := make([]interface{}, len(w.Beneficiaries))
	for i, b := range w.Beneficiaries {
		beneficiaries[i] = map[string]interface{}{
			"name":     strings.TrimSpace(b.Name),
			"relation": strings.TrimSpace(b.Relation),
		}
	}

	return map[string]interface{}{
		"testator_name":      strings.TrimSpace(w.TestatorName),
		"relation_to_parent": strings.TrimSpace(w.RelationToParent),
		"age":                strings.TrimSpace(w.Age),
		"residence":          strings.TrimSpace(w.Residence),
		"executor_name":      strings.TrimSpace(w.ExecutorName),
		"beneficiaries":      beneficiaries,
	}
}

func (w Will) templateData() map[string]interface{} {
	data := w.ruleFields()

	beneficiaries := make([]string, len(w.Beneficiaries))
	for i, b := range w.Beneficiaries {
		beneficiaries[i] = fmt.Sprintf("%s (Relationship: %s)",
			strings.TrimSpace(b.Name), textOr(b.Relation, NotAvailable))
	}
	data["beneficiaries"] = beneficiaries

	data["assets"] = listOr(w.Assets, DefaultWillAssets)
	data["date_day"] = textOr(w.DateDay, BlankDay)
	data["date_month"] = textOr(w.DateMonth, BlankShort)
	data["year"] = textOr(w.Year, BlankYear)
	data["place"] = textOr(w.Place, BlankShort)
	data["witnesses"] = witnessLines(w.Witnesses)
	return data
}
