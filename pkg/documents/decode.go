package documents

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// NewFieldSet returns an empty field set for kind
func NewFieldSet(kind Kind) (FieldSet, error) {
	switch kind {
	case KindWritAffidavit:
		return &WritAffidavit{}, nil
	case KindNameChangeAffidavit:
		return &NameChangeAffidavit{}, nil
	case KindWill:
		return &Will{}, nil
	case KindGeneralPowerOfAttorney:
		return &GeneralPowerOfAttorney{}, nil
	case KindSpecialPowerOfAttorney:
		return &SpecialPowerOfAttorney{}, nil
	case KindVakalatnama:
		return &Vakalatnama{}, nil
	case KindTenancyLease:
		return &TenancyLease{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// Decode decodes a YAML or JSON object into the field set of kind. Field
// names the kind does not define are rejected.
func Decode(kind Kind, payload []byte) (FieldSet, error) {
	fs, err := NewFieldSet(kind)
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(payload))
	decoder.KnownFields(true)
	if err := decoder.Decode(fs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode %s fields: %v", ErrInvalidInput, kind, err)
	}

	return fs, nil
}
