package documents

import (
	"fmt"
	"strings"
)

// Placeholders printed for omitted optional values
const (
	BlankDay       = "___"
	BlankMonth     = "____________"
	BlankYear      = "20__"
	BlankShort     = "________"
	BlankLong      = "________________"
	BlankSignature = "__________________"
	NotAvailable   = "N/A"
)

// FieldSet is the typed input of one document kind. Implementations are the
// exported field-set structs of this package.
type FieldSet interface {
	// Kind names the document layout the fields belong to
	Kind() Kind

	// requirements lists the rules for required fields, in clause order
	requirements() []requirement

	// ruleFields exposes trimmed raw values to the required-field rules
	ruleFields() map[string]interface{}

	// templateData returns the template data with every default resolved
	templateData() map[string]interface{}
}

// Witness attests a signature
type Witness struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

// Beneficiary receives a bequest under a will
type Beneficiary struct {
	Name     string `json:"name" yaml:"name"`
	Relation string `json:"relation,omitempty" yaml:"relation,omitempty"`
}

// requirement is a CEL condition over "fields" that must hold for Field to
// count as supplied.
type requirement struct {
	Field     string
	Condition string
}

func requireText(field string) requirement {
	return requirement{Field: field, Condition: fmt.Sprintf("size(fields.%s) > 0", field)}
}

func requirePositive(field string) requirement {
	return requirement{Field: field, Condition: fmt.Sprintf("fields.%s > 0", field)}
}

func requireTextList(field string) requirement {
	return requirement{
		Field:     field,
		Condition: fmt.Sprintf("size(fields.%[1]s) > 0 && fields.%[1]s.all(v, size(v) > 0)", field),
	}
}

func requireRecordList(field, key string) requirement {
	return requirement{
		Field:     field,
		Condition: fmt.Sprintf("size(fields.%[1]s) > 0 && fields.%[1]s.all(v, size(v.%[2]s) > 0)", field, key),
	}
}

func requireTexts(fields ...string) []requirement {
	out := make([]requirement, len(fields))
	for i, field := range fields {
		out[i] = requireText(field)
	}
	return out
}

// textOr returns the trimmed value, or fallback when it is blank
func textOr(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func intOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func trimmed(values ...string) []interface{} {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = strings.TrimSpace(value)
	}
	return out
}

// listOr returns the entries in order with blank entries replaced by a
// placeholder, or fallback when no entry carries text.
func listOr(values []string, fallback []string) []string {
	hasText := false
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = textOr(value, BlankLong)
		if strings.TrimSpace(value) != "" {
			hasText = true
		}
	}
	if !hasText {
		return append([]string(nil), fallback...)
	}
	return out
}

func defaultWitnesses() []Witness {
	return []Witness{{}, {}}
}

// witnessLines renders one attestation line per witness. An empty list
// yields two blank witnesses.
func witnessLines(witnesses []Witness) []string {
	if len(witnesses) == 0 {
		witnesses = defaultWitnesses()
	}

	lines := make([]string, len(witnesses))
	for i, w := range witnesses {
		lines[i] = fmt.Sprintf("Name: %s  Address: %s  Signature: %s",
			textOr(w.Name, BlankSignature),
			textOr(w.Address, BlankSignature),
			BlankSignature,
		)
	}
	return lines
}
