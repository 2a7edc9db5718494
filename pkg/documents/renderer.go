package documents

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/aescanero/dago-node-drafter/internal/eval/cel"
	"github.com/aescanero/dago-node-drafter/internal/eval/template"
	"github.com/aescanero/dago-node-drafter/pkg/textfmt"
)

// Option configures a Renderer
type Option func(*rendererConfig)

type rendererConfig struct {
	width  int
	logger *zap.Logger
}

// WithWidth sets the page width used to center headings and draw rules
func WithWidth(width int) Option {
	return func(cfg *rendererConfig) {
		cfg.width = width
	}
}

// WithLogger sets the logger. Renderers log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *rendererConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer turns field sets into documents. It is safe for concurrent use.
type Renderer struct {
	engine    *template.Engine
	rules     *cel.Evaluator
	templates map[Kind]string
	logger    *zap.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(opts ...Option) *Renderer {
	cfg := rendererConfig{
		width:  textfmt.DefaultWidth,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	templates, err := loadTemplates()
	if err != nil {
		panic(fmt.Sprintf("failed to load document templates: %v", err))
	}

	return &Renderer{
		engine:    template.NewEngine(template.WithWidth(cfg.width)),
		rules:     cel.NewEvaluator(),
		templates: templates,
		logger:    cfg.logger,
	}
}

// Render validates the required fields of fs, resolves defaults and renders
// the document. A missing required field yields an *InvalidInputError and no
// text.
func (r *Renderer) Render(fs FieldSet) (*Document, error) {
	if isNilFieldSet(fs) {
		return nil, fmt.Errorf("%w: nil field set", ErrInvalidInput)
	}

	kind := fs.Kind()
	tmpl, ok := r.templates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	if err := r.validate(fs); err != nil {
		r.logger.Debug("rejected field set",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return nil, err
	}

	text, err := r.engine.Render(tmpl, fs.templateData())
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}

	doc := newDocument(kind, text)

	r.logger.Debug("rendered document",
		zap.String("kind", string(kind)),
		zap.Int("lines", len(doc.lines)),
	)

	return doc, nil
}

// isNilFieldSet reports a nil interface or a typed nil pointer such as
// (*Will)(nil), whose value-receiver methods would panic
func isNilFieldSet(fs FieldSet) bool {
	if fs == nil {
		return true
	}
	v := reflect.ValueOf(fs)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// validate checks every required field rule in clause order and reports the
// first unmet one.
func (r *Renderer) validate(fs FieldSet) error {
	fields := fs.ruleFields()

	for _, req := range fs.requirements() {
		ok, err := r.rules.Check(context.Background(), req.Condition, fields)
		if err != nil {
			return fmt.Errorf("check %s.%s: %w", fs.Kind(), req.Field, err)
		}
		if !ok {
			return &InvalidInputError{Kind: fs.Kind(), Field: req.Field}
		}
	}

	return nil
}

// Check compiles every template and required-field rule. It is used as a
// readiness probe.
func (r *Renderer) Check() error {
	var errs []error
	for _, kind := range Kinds() {
		if err := r.engine.ValidateTemplate(r.templates[kind]); err != nil {
			errs = append(errs, fmt.Errorf("%s template: %w", kind, err))
		}

		fs, _ := NewFieldSet(kind)
		for _, req := range fs.requirements() {
			if err := r.rules.ValidateExpression(req.Condition); err != nil {
				errs = append(errs, fmt.Errorf("%s rule %s: %w", kind, req.Field, err))
			}
		}
	}
	return errors.Join(errs...)
}

// WritAffidavit renders a writ affidavit
func (r *Renderer) WritAffidavit(fs WritAffidavit) (*Document, error) {
	return r.Render(fs)
}

// NameChangeAffidavit renders a name-change affidavit
func (r *Renderer) NameChangeAffidavit(fs NameChangeAffidavit) (*Document, error) {
	return r.Render(fs)
}

// Will renders a last will and testament
func (r *Renderer) Will(fs Will) (*Document, error) {
	return r.Render(fs)
}

// GeneralPowerOfAttorney renders a general power of attorney
func (r *Renderer) GeneralPowerOfAttorney(fs GeneralPowerOfAttorney) (*Document, error) {
	return r.Render(fs)
}

// SpecialPowerOfAttorney renders a special power of attorney
func (r *Renderer) SpecialPowerOfAttorney(fs SpecialPowerOfAttorney) (*Document, error) {
	return r.Render(fs)
}

// Vakalatnama renders a vakalatnama
func (r *Renderer) Vakalatnama(fs Vakalatnama) (*Document, error) {
	return r.Render(fs)
}

// TenancyLease renders a tenancy lease agreement
func (r *Renderer) TenancyLease(fs TenancyLease) (*Document, error) {
	return r.Render(fs)
}

var defaultRenderer = sync.OnceValue(func() *Renderer {
	return NewRenderer()
})

// Render renders fs with a shared renderer using the default page width
func Render(fs FieldSet) (*Document, error) {
	return defaultRenderer().Render(fs)
}
