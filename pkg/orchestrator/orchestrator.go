// Package orchestrator composes the generation pipeline: validate the raw
// configuration, look up the template, render it, and wrap the result with
// any accumulated warnings. Generation is all-or-nothing; no stage surfaces
// a partial artifact.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/veverse/contractgen/pkg/render"
	"github.com/veverse/contractgen/pkg/solidity"
	"github.com/veverse/contractgen/pkg/spec"
	"github.com/veverse/contractgen/pkg/template"
)

// Renderer renders a template document against a binding.
type Renderer interface {
	Render(doc template.Document, binding render.Binding) (string, error)
}

// BindingFunc adapts a validated specification to a render binding.
type BindingFunc func(*spec.ContractSpecification) render.Binding

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a template registry, replacing the built-in one.
func WithRegistry(registry *template.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithRenderer injects a custom renderer.
func WithRenderer(renderer Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithDefaultTemplate overrides the template used when a request omits an
// explicit Template field.
func WithDefaultTemplate(name string) Option {
	return func(o *Orchestrator) {
		o.defaultTemplate = name
	}
}

// WithBindingFunc injects a custom specification-to-binding adapter.
func WithBindingFunc(fn BindingFunc) Option {
	return func(o *Orchestrator) {
		o.binding = fn
	}
}

// Orchestrator coordinates the full pipeline from raw configuration to
// rendered contract source. It applies sensible defaults (built-in Solidity
// template, standard renderer) while remaining open to dependency injection.
type Orchestrator struct {
	registry        *template.Registry
	renderer        Renderer
	binding         BindingFunc
	defaultTemplate string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate a contract.
type Request struct {
	// Template names the registered template to render. If empty, the
	// orchestrator falls back to the configured default template.
	Template string

	// Config is the raw, unvalidated generation input.
	Config spec.RawConfig
}

// RenderedArtifact is the generation output: the contract source plus any
// non-fatal warnings accumulated during validation.
type RenderedArtifact struct {
	Source   string
	Warnings []string
}

// Generate executes the validate → lookup → render sequence. Any failure at
// any stage aborts the whole operation with no partial artifact.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (RenderedArtifact, error) {
	if ctx == nil {
		return RenderedArtifact{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return RenderedArtifact{}, err
	}
	if err := o.initialiseErr; err != nil {
		return RenderedArtifact{}, err
	}

	validated, err := spec.Validate(req.Config)
	if err != nil {
		return RenderedArtifact{}, fmt.Errorf("orchestrator: validate configuration: %w", err)
	}

	name := req.Template
	if name == "" {
		name = o.defaultTemplate
	}
	doc, err := o.registry.Lookup(name)
	if err != nil {
		return RenderedArtifact{}, fmt.Errorf("orchestrator: %w", err)
	}

	source, err := o.renderer.Render(doc, o.binding(validated))
	if err != nil {
		return RenderedArtifact{}, fmt.Errorf("orchestrator: render template %q: %w", name, err)
	}

	return RenderedArtifact{
		Source:   source,
		Warnings: validated.Warnings(),
	}, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = template.NewRegistry()
		if err := solidity.Register(o.registry); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default template: %w", err)
		}
	}
	if o.renderer == nil {
		o.renderer = render.New()
	}
	if o.binding == nil {
		o.binding = func(s *spec.ContractSpecification) render.Binding {
			return solidity.NewBinding(s)
		}
	}
	if o.defaultTemplate == "" {
		o.defaultTemplate = solidity.TemplateName
	}

	o.defaultsApplied = true
}
