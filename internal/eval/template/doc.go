// Package template provides the Handlebars template engine used to lay out
// document bodies.
//
// Values are interpolated with the triple-stash form so legal prose is never
// HTML-escaped:
//
//	engine := template.NewEngine(template.WithWidth(80))
//
//	data := map[string]interface{}{
//	    "court_name": "Madhya Pradesh",
//	    "powers":     []string{"To sign", "To file"},
//	}
//
//	tmpl := "{{#center}}{{{upper court_name}}}{{/center}}\n{{{numbered powers}}}"
//	result, err := engine.Render(tmpl, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Render refuses to execute a template when any placeholder it references is
// missing or empty, so output never carries a silently blank field.
//
// Built-in helpers:
//   - center - Block helper centering its content on the page width
//   - rule - Full-width underscore divider
//   - upper - Unicode upper case
//   - years - Append " years" to an age unless already present
//   - numbered - "1. a\n2. b" from a list
//   - bulleted - " - a\n - b" from a list
//   - default - Return default value if first arg is empty
package template
