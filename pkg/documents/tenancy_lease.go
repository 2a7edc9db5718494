package documents

import (
	"fmt"
	"strings"
)

// Tenancy lease defaults
const (
	DefaultNoticePeriodDays = 30
	SecurityNotSpecified    = "Not specified"
)

// TenancyLease is the field set of a house lease on monthly tenancy
type TenancyLease struct {
	LessorName            string `json:"lessor_name" yaml:"lessor_name"`
	LessorAddress         string `json:"lessor_address" yaml:"lessor_address"`
	LesseeName            string `json:"lessee_name" yaml:"lessee_name"`
	LesseeAddress         string `json:"lessee_address" yaml:"lessee_address"`
	PropertyAddress       string `json:"property_address" yaml:"property_address"`
	RentAmountInRs        string `json:"rent_amount_in_rs" yaml:"rent_amount_in_rs"`
	LeaseCommencementDate string `json:"lease_commencement_date" yaml:"lease_commencement_date"`
	LeaseDurationMonths   int    `json:"lease_duration_months" yaml:"lease_duration_months"`

	SecurityDepositInRs string    `json:"security_deposit_in_rs,omitempty" yaml:"security_deposit_in_rs,omitempty"`
	NoticePeriodDays    int       `json:"notice_period_days,omitempty" yaml:"notice_period_days,omitempty"`
	Witnesses           []Witness `json:"witnesses,omitempty" yaml:"witnesses,omitempty"`
}

// Kind implements FieldSet
func (TenancyLease) Kind() Kind { return KindTenancyLease }

func (TenancyLease) requirements() []requirement {
	return append(
		requireTexts(
			"lessor_name", "lessor_address", "lessee_name", "lessee_address",
			"property_address", "rent_amount_in_rs", "lease_commencement_date",
		),
		requirePositive("lease_duration_months"),
	)
}

func (l TenancyLease) ruleFields() map[string]interface{} {
	return map[string]interface{}{
		"lessor_name":             strings.TrimSpace(l.LessorName),
		"lessor_address":          strings.TrimSpace(l.LessorAddress),
		"lessee_name":             strings.TrimSpace(l.LesseeName),
		"lessee_address":          strings.TrimSpace(l.LesseeAddress),
		"property_address":        strings.TrimSpace(l.PropertyAddress),
		"rent_amount_in_rs":       strings.TrimSpace(l.RentAmountInRs),
		"lease_commencement_date": strings.TrimSpace(l.LeaseCommencementDate),
		"lease_duration_months":   l.LeaseDurationMonths,
	}
}

func (l TenancyLease) templateData() map[string]interface{} {
	data := l.ruleFields()

	security := "Security deposit: " + SecurityNotSpecified + "."
	if deposit := strings.TrimSpace(l.SecurityDepositInRs); deposit != "" {
		security = fmt.Sprintf("Security deposit: Rs. %s.", deposit)
	}
	data["security_clause"] = security

	data["notice_period_days"] = intOr(l.NoticePeriodDays, DefaultNoticePeriodDays)
	data["witnesses"] = witnessLines(l.Witnesses)
	return data
}
