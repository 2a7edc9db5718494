// Package documents renders boilerplate Indian legal documents from typed
// field sets.
//
// Seven kinds are supported: writ affidavit, name-change affidavit, last
// will, general and special power of attorney, vakalatnama and tenancy lease.
// Each kind has an explicit field-set struct. Required fields are checked
// before any interpolation; optional fields fall back to documented defaults,
// usually an underscore placeholder or "N/A".
//
//	renderer := documents.NewRenderer()
//
//	doc, err := renderer.TenancyLease(documents.TenancyLease{
//	    LessorName:            "Suresh Jain",
//	    LessorAddress:         "8, MG Road, Indore",
//	    LesseeName:            "Anil Kumar",
//	    LesseeAddress:         "3, Civil Lines, Bhopal",
//	    PropertyAddress:       "12, Vijay Nagar, Indore",
//	    RentAmountInRs:        "15,000",
//	    LeaseCommencementDate: "1st December 2025",
//	    LeaseDurationMonths:   11,
//	})
//	if errors.Is(err, documents.ErrInvalidInput) {
//	    var invalid *documents.InvalidInputError
//	    if errors.As(err, &invalid) {
//	        fmt.Println("missing", invalid.Field)
//	    }
//	}
//	fmt.Print(doc.Text())
//
// Rendering is deterministic: identical field sets always yield identical
// text. Renderers hold no mutable state beyond compiled-template caches and
// may be shared between goroutines.
//
// Field sets can also be decoded from YAML or JSON with Decode, which rejects
// unknown field names.
package documents
