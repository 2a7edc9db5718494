package documents

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported document layouts
type Kind string

const (
	// KindWritAffidavit is the deponent's affidavit filed with a writ petition
	KindWritAffidavit Kind = "writ_affidavit"

	// KindNameChangeAffidavit declares a change of name after marriage
	KindNameChangeAffidavit Kind = "name_change_affidavit"

	// KindWill is a last will and testament
	KindWill Kind = "will"

	// KindGeneralPowerOfAttorney grants an enumerated set of general powers
	KindGeneralPowerOfAttorney Kind = "general_power_of_attorney"

	// KindSpecialPowerOfAttorney grants powers over one described property
	KindSpecialPowerOfAttorney Kind = "special_power_of_attorney"

	// KindVakalatnama appoints an advocate before a court
	KindVakalatnama Kind = "vakalatnama"

	// KindTenancyLease is a monthly tenancy lease agreement
	KindTenancyLease Kind = "tenancy_lease"
)

var kindTitles = map[Kind]string{
	KindWritAffidavit:          "Writ Affidavit",
	KindNameChangeAffidavit:    "Name-Change Affidavit",
	KindWill:                   "Last Will and Testament",
	KindGeneralPowerOfAttorney: "General Power of Attorney",
	KindSpecialPowerOfAttorney: "Special Power of Attorney",
	KindVakalatnama:            "Vakalatnama",
	KindTenancyLease:           "Tenancy Lease",
}

// Kinds returns every supported kind in canonical order
func Kinds() []Kind {
	return []Kind{
		KindWritAffidavit,
		KindNameChangeAffidavit,
		KindWill,
		KindGeneralPowerOfAttorney,
		KindSpecialPowerOfAttorney,
		KindVakalatnama,
		KindTenancyLease,
	}
}

// ParseKind resolves a kind name. Matching ignores case, surrounding space and
// the use of '-' instead of '_'.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")

	kind := Kind(normalized)
	if _, ok := kindTitles[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// Title returns the human readable name of the kind
func (k Kind) Title() string {
	if title, ok := kindTitles[k]; ok {
		return title
	}
	return string(k)
}

// String implements fmt.Stringer
func (k Kind) String() string {
	return string(k)
}
