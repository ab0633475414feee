package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Options controls how documents are loaded and which request body media
// types are considered when deriving prompt definitions.
type Options struct {
	// ResolveReferences validates the document and eagerly resolves $ref
	// pointers. Defaults to true.
	ResolveReferences bool

	// MediaTypes lists request body content types in preference order.
	MediaTypes []string
}

// Option mutates Options during construction.
type Option func(*Options)

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) Option {
	return func(opts *Options) {
		opts.ResolveReferences = enabled
	}
}

// WithMediaTypes overrides the request body media type preference order.
func WithMediaTypes(types ...string) Option {
	return func(opts *Options) {
		opts.MediaTypes = types
	}
}

func newOptions(options ...Option) Options {
	cfg := Options{
		ResolveReferences: true,
		MediaTypes: []string{
			"application/json",
			"application/x-www-form-urlencoded",
			"multipart/form-data",
		},
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Document wraps a parsed OpenAPI specification.
type Document struct {
	spec    *openapi3.T
	options Options
}

// Load parses a raw OpenAPI document (JSON or YAML).
func Load(ctx context.Context, raw []byte, options ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	cfg := newOptions(options...)
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.ResolveReferences,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	return &Document{spec: spec, options: cfg}, nil
}

// LoadFile parses the OpenAPI document at path.
func LoadFile(ctx context.Context, path string, options ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := newOptions(options...)
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.ResolveReferences,
	}

	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	if cfg.ResolveReferences {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	return &Document{spec: spec, options: cfg}, nil
}

// OperationIDs returns the sorted operationIds present in the document.
// Operations without an explicit id are keyed as "method:path".
func (d *Document) OperationIDs() []string {
	ids := make([]string, 0)
	d.eachOperation(func(id string, _ *openapi3.Operation) bool {
		ids = append(ids, id)
		return true
	})
	sort.Strings(ids)
	return ids
}

func (d *Document) findOperation(operationID string) *openapi3.Operation {
	var found *openapi3.Operation
	d.eachOperation(func(id string, op *openapi3.Operation) bool {
		if id == operationID {
			found = op
			return false
		}
		return true
	})
	return found
}

func (d *Document) eachOperation(visit func(id string, op *openapi3.Operation) bool) {
	if d == nil || d.spec == nil || d.spec.Paths == nil {
		return
	}
	for path, item := range d.spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range map[string]*openapi3.Operation{
			"get":     item.Get,
			"put":     item.Put,
			"post":    item.Post,
			"delete":  item.Delete,
			"patch":   item.Patch,
			"head":    item.Head,
			"options": item.Options,
			"trace":   item.Trace,
		} {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = method + ":" + path
			}
			if !visit(id, op) {
				return
			}
		}
	}
}
