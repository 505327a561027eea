package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListTools returns a list of all available tools.
// Use WithLimit and WithOffset to paginate results.
func (c *Client) ListTools(ctx context.Context, opts ...opt.Opt) (*schema.ListToolResponse, error) {
	// Apply options
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create request
	req := client.NewRequest()
	reqOpts := []client.RequestOpt{client.OptPath("tool")}
	if q := o.Query(opt.LimitKey, opt.OffsetKey); len(q) > 0 {
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	// Perform request
	var response schema.ListToolResponse
	if err := c.DoWithContext(ctx, req, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// GetTool retrieves a specific tool by name.
func (c *Client) GetTool(ctx context.Context, name string) (*schema.ToolMeta, error) {
	if name == "" {
		return nil, weather.ErrBadParameter.With("missing tool name")
	}

	// Create request
	req := client.NewRequest()
	reqOpts := []client.RequestOpt{client.OptPath("tool", name)}

	// Perform request
	var response schema.ToolMeta
	if err := c.DoWithContext(ctx, req, &response, reqOpts...); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// CallTool runs a tool by name with the given arguments, which are
// marshalled to JSON. Pass nil for a tool which takes no arguments.
func (c *Client) CallTool(ctx context.Context, name string, args any) (*schema.CallToolResponse, error) {
	if name == "" {
		return nil, weather.ErrBadParameter.With("missing tool name")
	}
	if args == nil {
		args = map[string]any{}
	}

	// Create request
	req, err := client.NewJSONRequest(args)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.CallToolResponse
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("tool", name)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}
