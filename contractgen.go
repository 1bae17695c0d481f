// Package contractgen generates deployable smart-contract source from a
// declarative specification. The heavy lifting lives in the pkg/ packages;
// this package re-exports the common entry points so most callers need a
// single import.
package contractgen

import (
	"context"

	"github.com/veverse/contractgen/pkg/orchestrator"
	"github.com/veverse/contractgen/pkg/solidity"
	"github.com/veverse/contractgen/pkg/spec"
	"github.com/veverse/contractgen/pkg/template"
)

// RawConfig is the unvalidated generation input.
type RawConfig = spec.RawConfig

// RenderedArtifact is the generation output: contract source plus warnings.
type RenderedArtifact = orchestrator.RenderedArtifact

// Request selects a template and carries the raw configuration.
type Request = orchestrator.Request

// DefaultTemplate is the name of the built-in ERC721 mint template.
const DefaultTemplate = solidity.TemplateName

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to customise the pipeline.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewRegistry returns a registry preloaded with the built-in template, for
// callers that register additional templates at process start.
func NewRegistry() (*template.Registry, error) {
	registry := template.NewRegistry()
	if err := solidity.Register(registry); err != nil {
		return nil, err
	}
	return registry, nil
}

// Generate validates the configuration and renders the named template (the
// built-in one when templateName is empty). It is the simplest entry point
// for callers that just want contract source.
func Generate(ctx context.Context, templateName string, config RawConfig, options ...orchestrator.Option) (RenderedArtifact, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Template: templateName,
		Config:   config,
	})
}
