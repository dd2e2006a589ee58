// Package tools is the surface the dialogue model and the HTTP API call into. Each
// tool declares its parameters as an OpenAPI 3 schema; raw JSON arguments are
// validated against that schema before the typed handler runs, and every outcome is
// reported as a Result instead of a Go error.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"pizzabot/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog"
)

// Tool is one callable operation.
type Tool struct {
	Name        string
	Description string
	Parameters  *openapi3.Schema

	call func(ctx context.Context, args json.RawMessage) (any, error)
}

// newTool binds a typed handler. Arguments reaching fn already passed the schema.
func newTool[A any](
	name string,
	description string,
	parameters *openapi3.Schema,
	fn func(ctx context.Context, args A) (any, error),
) Tool {
	return Tool{
		Name:        name,
		Description: description,
		Parameters:  parameters,
		call: func(ctx context.Context, raw json.RawMessage) (any, error) {
			var args A
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause("arguments", err)
			}
			return fn(ctx, args)
		},
	}
}

// Declaration is the part of a tool published to the model and over HTTP.
type Declaration struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Parameters  *openapi3.Schema `json:"parameters"`
}

// Registry holds the tools by name.
type Registry struct {
	tools  map[string]Tool
	names  []string
	logger zerolog.Logger
}

func NewRegistry(handlers Handlers, logger zerolog.Logger) *Registry {
	r := &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
	for _, tool := range handlers.tools() {
		r.tools[tool.Name] = tool
		r.names = append(r.names, tool.Name)
	}
	return r
}

// Names lists the tools in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Registry) Declarations() []Declaration {
	declarations := make([]Declaration, 0, len(r.names))
	for _, name := range r.names {
		tool := r.tools[name]
		declarations = append(declarations, Declaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}
	return declarations
}

// Invoke runs the named tool with raw JSON arguments. Empty or null arguments are
// treated as an empty object and null properties as omitted.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) Result {
	tool, ok := r.tools[name]
	if !ok {
		known := r.Names()
		sort.Strings(known)
		return failure(CodeUnknownTool, fmt.Sprintf("unknown tool %q, expected one of %s", name, strings.Join(known, ", ")))
	}

	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return failure(CodeInvalidArgument, "arguments are not valid JSON: "+err.Error())
	}
	if object, isObject := value.(map[string]any); isObject {
		for key, v := range object {
			if v == nil {
				delete(object, key)
			}
		}
	}
	if err := tool.Parameters.VisitJSON(value, openapi3.SetSchemaErrorMessageCustomizer(schemaMessage)); err != nil {
		return failure(schemaCode(err), err.Error())
	}

	started := time.Now()
	data, err := tool.call(ctx, trimmed)
	log := r.logger.With().Str("tool", name).Dur("took", time.Since(started)).Logger()
	if err != nil {
		result := errorResult(err)
		if result.Error.Code == CodeInternal {
			log.Error().Err(err).Msg("tool failed")
		} else {
			log.Debug().Str("code", string(result.Error.Code)).Err(err).Msg("tool rejected call")
		}
		return result
	}

	log.Debug().Msg("tool call")
	return success(data)
}

// schemaCode reports an out-of-range qty the same way the order engine does.
func schemaCode(err error) Code {
	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return CodeInvalidArgument
	}
	if schemaErr.SchemaField != "minimum" && schemaErr.SchemaField != "maximum" {
		return CodeInvalidArgument
	}
	if path := schemaErr.JSONPointer(); len(path) == 1 && path[0] == "qty" {
		return CodeInvalidQuantity
	}
	return CodeInvalidArgument
}

// schemaMessage drops the schema and value dump kin-openapi appends by default.
func schemaMessage(err *openapi3.SchemaError) string {
	if err.Reason == "" {
		return ""
	}
	if path := err.JSONPointer(); len(path) > 0 {
		return strings.Join(path, "/") + ": " + err.Reason
	}
	return err.Reason
}
