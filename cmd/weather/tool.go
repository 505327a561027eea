package main

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
	httpclient "github.com/mutablelogic/go-weather/pkg/httpclient"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolCommands struct {
	ListTools ListToolsCommand `cmd:"" name:"tools" help:"List tools." group:"TOOL"`
	GetTool   GetToolCommand   `cmd:"" name:"tool" help:"Get tool." group:"TOOL"`
	CallTool  CallToolCommand  `cmd:"" name:"call" help:"Call a tool with arguments." group:"TOOL"`
}

type ListToolsCommand struct {
	Limit  *uint `name:"limit" help:"Maximum number of tools to return" optional:""`
	Offset uint  `name:"offset" help:"Offset for pagination" default:"0"`
}

type GetToolCommand struct {
	Name string `arg:"" name:"name" help:"Tool name"`
}

type CallToolCommand struct {
	Name string   `arg:"" name:"name" help:"Tool name"`
	Args []string `arg:"" name:"args" help:"Tool arguments as key=value pairs" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListToolsCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Build options
	opts := []opt.Opt{}
	if cmd.Limit != nil {
		opts = append(opts, httpclient.WithLimit(cmd.Limit))
	}
	if cmd.Offset > 0 {
		opts = append(opts, httpclient.WithOffset(cmd.Offset))
	}

	// List tools
	response, err := client.ListTools(parent, opts...)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(response)
	return nil
}

func (cmd *GetToolCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetToolCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Get tool
	tool, err := client.GetTool(parent, cmd.Name)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(tool)
	return nil
}

func (cmd *CallToolCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CallToolCommand",
		attribute.String("request", types.Stringify(cmd)),
	)
	defer func() { endSpan(err) }()

	// Parse key=value arguments
	args, err := parseArgs(cmd.Args)
	if err != nil {
		return err
	}

	// Call the tool
	response, err := client.CallTool(parent, cmd.Name, args)
	if err != nil {
		return err
	}

	// Print
	fmt.Println(response)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// parseArgs converts key=value pairs into a JSON object. Values which parse
// as JSON are kept typed, anything else is treated as a string.
func parseArgs(args []string) (map[string]any, error) {
	result := make(map[string]any, len(args))
	for _, kv := range args {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("argument must be key=value, got %q", kv)
		}
		var value any
		if err := json.Unmarshal([]byte(parts[1]), &value); err != nil {
			value = parts[1]
		}
		result[parts[0]] = value
	}
	return result, nil
}
