package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	httphandler "github.com/mutablelogic/go-weather/pkg/httphandler"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK TOOL

type mockTool struct {
	name        string
	description string
	schema      *jsonschema.Schema
	run         func(ctx context.Context, input json.RawMessage) (any, error)
}

func (t *mockTool) Name() string                        { return t.name }
func (t *mockTool) Description() string                 { return t.description }
func (t *mockTool) Schema() (*jsonschema.Schema, error) { return t.schema, nil }

func (t *mockTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	if t.run != nil {
		return t.run(ctx, input)
	}
	return nil, nil
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newTestToolkit(t *testing.T, tools ...tool.Tool) *tool.Toolkit {
	t.Helper()
	tk, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	return tk
}

func serveMux(toolkit *tool.Toolkit) *http.ServeMux {
	mux := http.NewServeMux()
	path, handler, _ := httphandler.ToolListHandler(toolkit)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.ToolGetHandler(toolkit)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.HealthHandler()
	mux.HandleFunc(path, handler)
	return mux
}
