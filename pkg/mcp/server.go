/*
mcp serves a toolkit over the Model Context Protocol, with stdio and
streamable HTTP transports.
*/
package mcp

import (
	"context"
	"encoding/json"
	"net/http"

	// Packages
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// LogFn is an advisory logging callback. It never affects the result of a
// tool call.
type LogFn func(ctx context.Context, format string, args ...any)

type Server struct {
	impl    *sdk.Server
	toolkit *tool.Toolkit
	log     LogFn
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new MCP server with the given name and version, and register
// the tools from the toolkit option
func New(name, version string, opts ...Opt) (*Server, error) {
	server := &Server{
		impl: sdk.NewServer(&sdk.Implementation{Name: name, Version: version}, nil),
	}

	// Apply options
	if err := server.apply(opts...); err != nil {
		return nil, err
	}

	// Register tools
	if server.toolkit != nil {
		for _, t := range server.toolkit.Tools() {
			schema, err := t.Schema()
			if err != nil {
				return nil, err
			}
			server.impl.AddTool(&sdk.Tool{
				Name:        t.Name(),
				Description: t.Description(),
				InputSchema: schema,
			}, server.runTool(t.Name()))
		}
	}

	// Return success
	return server, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RunStdio serves the MCP protocol on standard input and output, in the
// foreground until the context is done.
func (server *Server) RunStdio(ctx context.Context) error {
	return server.impl.Run(ctx, &sdk.StdioTransport{})
}

// Handler returns an http.Handler which serves the MCP protocol over the
// streamable HTTP transport.
func (server *Server) Handler() http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server.impl
	}, nil)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runTool returns a handler which runs a named tool through the toolkit.
// A tool failure is returned as a result carrying the error text, not as a
// protocol error, so the caller always receives a well-formed result.
func (server *Server) runTool(name string) sdk.ToolHandler {
	return func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
		server.logf(ctx, "calling tool %q", name)

		var input any
		if req != nil && req.Params != nil {
			input = req.Params.Arguments
		}

		result, err := server.toolkit.Run(ctx, name, input)
		if err != nil {
			server.logf(ctx, "tool %q: %v", name, err)
			return textResult(err.Error(), true), nil
		}

		text, err := textContent(result)
		if err != nil {
			server.logf(ctx, "tool %q: %v", name, err)
			return textResult(err.Error(), true), nil
		}
		return textResult(text, false), nil
	}
}

func (server *Server) logf(ctx context.Context, format string, args ...any) {
	if server.log != nil {
		server.log(ctx, format, args...)
	}
}

// textContent returns the text for a tool result. A string result is used
// verbatim, anything else is marshalled to JSON.
func textContent(result any) (string, error) {
	if text, ok := result.(string); ok {
		return text, nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func textResult(text string, isError bool) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: text}},
		IsError: isError,
	}
}
