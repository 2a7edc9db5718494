package template

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aymerick/raymond"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aescanero/dago-node-drafter/pkg/textfmt"
)

// ErrUnresolvedPlaceholder is returned when a template references a value
// that is missing or empty in the render data.
var ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

var (
	mustachePattern = regexp.MustCompile(`\{\{\{?([^{}]*)\}?\}\}`)
	literalPattern  = regexp.MustCompile(`"[^"]*"|'[^']*'`)
)

// Option configures an Engine
type Option func(*Engine)

// WithWidth sets the page width used by the center and rule helpers
func WithWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.width = width
		}
	}
}

// Engine renders Handlebars templates
type Engine struct {
	cache   map[string]*raymond.Template
	helpers map[string]interface{}
	width   int
	mu      sync.RWMutex
}

// NewEngine creates a new template engine
func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		cache: make(map[string]*raymond.Template),
		width: textfmt.DefaultWidth,
	}

	for _, opt := range opts {
		opt(engine)
	}

	engine.helpers = engine.buildHelpers()

	return engine
}

// Width returns the page width used by layout helpers
func (e *Engine) Width() int {
	return e.width
}

// Render renders a template with the given data. Every placeholder the
// template references must be present and non-empty in data.
func (e *Engine) Render(templateStr string, data map[string]interface{}) (string, error) {
	if missing := e.missingPlaceholders(templateStr, data); len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedPlaceholder, strings.Join(missing, ", "))
	}

	// Get or compile template
	tmpl, err := e.getTemplate(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	// Execute the template
	result, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// getTemplate gets a compiled template from cache or compiles it
func (e *Engine) getTemplate(templateStr string) (*raymond.Template, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if tmpl, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	// Compile the template (write lock)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}

	tmpl, err := raymond.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	// Helpers are scoped to the template; raymond's global registry panics on
	// re-registration.
	tmpl.RegisterHelpers(e.helpers)

	e.cache[templateStr] = tmpl

	return tmpl, nil
}

// ValidateTemplate validates a template without rendering it
func (e *Engine) ValidateTemplate(templateStr string) error {
	_, err := e.getTemplate(templateStr)
	return err
}

// Placeholders returns the sorted, de-duplicated data identifiers referenced by
// a template. Helper names, literals and private @variables are excluded.
func (e *Engine) Placeholders(templateStr string) []string {
	seen := make(map[string]struct{})

	for _, match := range mustachePattern.FindAllStringSubmatch(templateStr, -1) {
		expr := strings.TrimSpace(match[1])
		if expr == "" || strings.HasPrefix(expr, "!") {
			continue
		}
		expr = literalPattern.ReplaceAllString(expr, " ")
		expr = strings.NewReplacer("(", " ", ")", " ").Replace(expr)

		for _, token := range strings.Fields(expr) {
			if e.isHelper(token) || isReserved(token) {
				continue
			}
			if _, err := strconv.ParseFloat(token, 64); err == nil {
				continue
			}
			seen[token] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Engine) missingPlaceholders(templateStr string, data map[string]interface{}) []string {
	var missing []string
	for _, name := range e.Placeholders(templateStr) {
		if isEmptyValue(data[name]) {
			missing = append(missing, name)
		}
	}
	return missing
}

func (e *Engine) isHelper(name string) bool {
	_, ok := e.helpers[name]
	return ok
}

func isReserved(token string) bool {
	switch token {
	case "this", "else", "true", "false", "null", "undefined":
		return true
	}
	return strings.HasPrefix(token, "@") ||
		strings.HasPrefix(token, "#") ||
		strings.HasPrefix(token, "/") ||
		strings.HasPrefix(token, ">") ||
		strings.HasPrefix(token, "^")
}

func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case []interface{}:
		return len(v) == 0
	default:
		return false
	}
}

// buildHelpers builds the helper set bound to this engine's page width
func (e *Engine) buildHelpers() map[string]interface{} {
	upper := cases.Upper(language.Und)

	return map[string]interface{}{
		// center block helper - center the rendered block on the page
		"center": func(options *raymond.Options) string {
			return textfmt.Center(options.Fn(), e.width)
		},

		// rule helper - full width underscore divider
		"rule": func() string {
			return textfmt.Rule(e.width)
		},

		// upper helper - Unicode aware upper case
		"upper": func(text string) string {
			return upper.String(text)
		},

		// years helper - "28" and "28 years" both render as "28 years"
		"years": func(age string) string {
			trimmed := strings.TrimSpace(age)
			lower := strings.ToLower(trimmed)
			if strings.HasSuffix(lower, "years") || strings.HasSuffix(lower, "year") || strings.HasSuffix(lower, "yrs") {
				return trimmed
			}
			return trimmed + " years"
		},

		// numbered helper - one "N. item" line per entry, starting at 1
		"numbered": func(items interface{}) string {
			list := toStrings(items)
			lines := make([]string, len(list))
			for i, item := range list {
				lines[i] = fmt.Sprintf("%d. %s", i+1, item)
			}
			return strings.Join(lines, "\n")
		},

		// bulleted helper - one " - item" line per entry
		"bulleted": func(items interface{}) string {
			list := toStrings(items)
			lines := make([]string, len(list))
			for i, item := range list {
				lines[i] = " - " + item
			}
			return strings.Join(lines, "\n")
		},

		// default helper - return default value if first arg is empty
		"default": func(value interface{}, defaultValue interface{}) interface{} {
			if isEmptyValue(value) {
				return defaultValue
			}
			return value
		},
	}
}

func toStrings(items interface{}) []string {
	switch v := items.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out
	case string:
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}
