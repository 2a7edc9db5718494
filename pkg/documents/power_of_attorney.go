package documents

import "strings"

// DefaultRestrictionClause closes a general power of attorney when the caller
// supplies no restriction of their own.
const DefaultRestrictionClause = "The attorney shall not sell or transfer the ownership of the property without the prior written consent of the Grantor."

// DefaultSpecificPowers are granted by a special power of attorney that lists
// none.
var DefaultSpecificPowers = []string{
	"To negotiate terms and execute the Sale Deed.",
	"To present the Sale Deed before the Sub-Registrar for registration.",
	"To declare the consideration and pay stamp duty and registration fees.",
	"To obtain the registered document and sign all receipts.",
}

// GeneralPowerOfAttorney is the field set of a general power of attorney.
// ScopeOfPowers is rendered as numbered clauses in the given order.
type GeneralPowerOfAttorney struct {
	GrantorName    string   `json:"grantor_name" yaml:"grantor_name"`
	GrantorAddress string   `json:"grantor_address" yaml:"grantor_address"`
	AgentName      string   `json:"agent_name" yaml:"agent_name"`
	AgentAddress   string   `json:"agent_address" yaml:"agent_address"`
	ScopeOfPowers  []string `json:"scope_of_powers" yaml:"scope_of_powers"`

	NotAllowedClause string    `json:"not_allowed_clause,omitempty" yaml:"not_allowed_clause,omitempty"`
	DateSigned       string    `json:"date_signed,omitempty" yaml:"date_signed,omitempty"`
	Witnesses        []Witness `json:"witnesses,omitempty" yaml:"witnesses,omitempty"`
}

// Kind implements FieldSet
func (GeneralPowerOfAttorney) Kind() Kind { return KindGeneralPowerOfAttorney }

func (GeneralPowerOfAttorney) requirements() []requirement {
	return append(
		requireTexts("grantor_name", "grantor_address", "agent_name", "agent_address"),
		requireTextList("scope_of_powers"),
	)
}

func (p GeneralPowerOfAttorney) ruleFields() map[string]interface{} {
	return map[string]interface{}{
		"grantor_name":    strings.TrimSpace(p.GrantorName),
		"grantor_address": strings.TrimSpace(p.GrantorAddress),
		"agent_name":      strings.TrimSpace(p.AgentName),
		"agent_address":   strings.TrimSpace(p.AgentAddress),
		"scope_of_powers": trimmed(p.ScopeOfPowers...),
	}
}

func (p GeneralPowerOfAttorney) templateData() map[string]interface{} {
	data := p.ruleFields()

	powers := make([]string, len(p.ScopeOfPowers))
	for i, power := range p.ScopeOfPowers {
		powers[i] = strings.TrimSpace(power)
	}
	data["scope_of_powers"] = powers

	data["not_allowed_clause"] = textOr(p.NotAllowedClause, DefaultRestrictionClause)
	data["date_signed"] = textOr(p.DateSigned, BlankShort)
	data["witnesses"] = witnessLines(p.Witnesses)
	return data
}

// SpecialPowerOfAttorney is the field set of a power of attorney limited to
// the sale and registration of one property.
type SpecialPowerOfAttorney struct {
	GrantorName         string `json:"grantor_name" yaml:"grantor_name"`
	GrantorAddress      string `json:"grantor_address" yaml:"grantor_address"`
	AgentName           string `json:"agent_name" yaml:"agent_name"`
	AgentAddress        string `json:"agent_address" yaml:"agent_address"`
	PropertyDescription string `json:"property_description" yaml:"property_description"`

	SpecificPowers []string  `json:"specific_powers,omitempty" yaml:"specific_powers,omitempty"`
	DateSigned     string    `json:"date_signed,omitempty" yaml:"date_signed,omitempty"`
	Witnesses      []Witness `json:"witnesses,omitempty" yaml:"witnesses,omitempty"`
}

// Kind implements FieldSet
func (SpecialPowerOfAttorney) Kind() Kind { return KindSpecialPowerOfAttorney }

func (SpecialPowerOfAttorney) requirements() []requirement {
	return requireTexts("grantor_name", "grantor_address", "agent_name", "agent_address", "property_description")
}

func (p SpecialPowerOfAttorney) ruleFields() map[string]interface{} {
	return map[string]interface{}{
		"grantor_name":         strings.TrimSpace(p.GrantorName),
		"grantor_address":      strings.TrimSpace(p.GrantorAddress),
		"agent_name":           strings.TrimSpace(p.AgentName),
		"agent_address":        strings.TrimSpace(p.AgentAddress),
		"property_description": strings.TrimSpace(p.PropertyDescription),
	}
}

func (p SpecialPowerOfAttorney) templateData() map[string]interface{} {
	data := p.ruleFields()
	data["specific_powers"] = listOr(p.SpecificPowers, DefaultSpecificPowers)
	data["date_signed"] = textOr(p.DateSigned, BlankShort)
	data["witnesses"] = witnessLines(p.Witnesses)
	return data
}
