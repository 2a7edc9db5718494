// Package cel provides a CEL (Common Expression Language) evaluator for
// document field rules.
//
// Each document kind states its required fields as CEL conditions over a
// single "fields" map. A condition that evaluates to false names a field the
// caller must supply.
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	fields := map[string]interface{}{
//	    "deponent_name": "Mani Chourasiya",
//	    "beneficiaries": []interface{}{
//	        map[string]interface{}{"name": "Sunil Verma"},
//	    },
//	}
//
//	ok, err := evaluator.Check(ctx, "size(fields.deponent_name) > 0", fields)
//	ok, err = evaluator.Check(ctx, "fields.beneficiaries.all(b, size(b.name) > 0)", fields)
//
// Supported operations:
//   - Comparisons: ==, !=, <, <=, >, >=
//   - Boolean logic: &&, ||, !
//   - Macros: all, exists, has
//   - List and string size
package cel
