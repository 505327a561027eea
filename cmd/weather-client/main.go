package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	mcpclient "github.com/mutablelogic/go-weather/pkg/mcp/client"
	mcp "github.com/mutablelogic/go-weather/pkg/mcp/schema"
	version "github.com/mutablelogic/go-weather/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Globals

	// Commands
	Ping     PingCommand     `cmd:"" help:"Ping the MCP server"`
	Tools    ToolsCommand    `cmd:"" help:"List available tools"`
	Do       DoCommand       `cmd:"" help:"Call a tool by name"`
	Search   SearchCommand   `cmd:"" help:"Search for a location by name or postal code"`
	Current  CurrentCommand  `cmd:"" help:"Get current conditions for a location key"`
	Forecast ForecastCommand `cmd:"" help:"Get the daily forecast for a location key"`
	Summary  SummaryCommand  `cmd:"" help:"Get a weather summary for a location"`
}

type Globals struct {
	URL     string `name:"url" env:"MCP_SERVER_URL" default:"http://localhost:8000/mcp" help:"MCP server URL"`
	Debug   bool   `name:"debug" help:"Enable debug output" default:"false"`
	Verbose bool   `name:"verbose" help:"Print server notifications" default:"false"`

	// Private
	ctx    context.Context
	cancel context.CancelFunc
	client *mcpclient.Client
}

type PingCommand struct{}

type ToolsCommand struct{}

type DoCommand struct {
	Name string   `arg:"" help:"Tool name"`
	Args []string `arg:"" help:"Tool arguments as key=value pairs" optional:""`
}

type SearchCommand struct {
	Query string `arg:"" help:"City name or postal code"`
}

type CurrentCommand struct {
	LocationKey string `arg:"" help:"AccuWeather location key"`
}

type ForecastCommand struct {
	LocationKey string `arg:"" help:"AccuWeather location key"`
	Days        uint   `name:"days" help:"Number of forecast days (1-5)" optional:""`
}

type SummaryCommand struct {
	Location string `arg:"" help:"City name or postal code"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func main() {
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name("weather-client"),
		kong.Description("MCP client for the weather server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	// Create context
	cli.ctx, cli.cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cli.cancel()

	// Run the selected command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *PingCommand) Run(g *Globals) error {
	if err := g.connect(); err != nil {
		return err
	}
	defer g.client.Close()

	if err := g.client.Ping(g.ctx); err != nil {
		return err
	}
	fmt.Println("OK")

	// Print server info
	info := g.client.ServerInfo()
	if info != nil {
		fmt.Printf("Server: %s %s (protocol %s)\n", info.ServerInfo.Name, info.ServerInfo.Version, info.Version)
	}
	return nil
}

func (cmd *ToolsCommand) Run(g *Globals) error {
	if err := g.connect(); err != nil {
		return err
	}
	defer g.client.Close()

	tools, err := g.client.ListTools(g.ctx)
	if err != nil {
		return err
	}
	for i, tool := range tools {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s\n", tool.Name)
		if tool.Description != "" {
			fmt.Printf("  %s\n", tool.Description)
		}
		if tool.InputSchema != nil {
			data, err := json.MarshalIndent(tool.InputSchema, "  ", "  ")
			if err == nil {
				fmt.Printf("  %s\n", string(data))
			}
		}
	}
	fmt.Printf("\n%d tools\n", len(tools))
	return nil
}

func (cmd *DoCommand) Run(g *Globals) error {
	// Parse key=value args into JSON object
	args, err := parseArgsJSON(cmd.Args)
	if err != nil {
		return err
	}
	return g.call(cmd.Name, args)
}

func (cmd *SearchCommand) Run(g *Globals) error {
	return g.call("search_location", map[string]any{
		"query": cmd.Query,
	})
}

func (cmd *CurrentCommand) Run(g *Globals) error {
	return g.call("get_current_weather", map[string]any{
		"location_key": cmd.LocationKey,
	})
}

func (cmd *ForecastCommand) Run(g *Globals) error {
	args := map[string]any{
		"location_key": cmd.LocationKey,
	}
	if cmd.Days > 0 {
		args["days"] = cmd.Days
	}
	return g.call("get_forecast", args)
}

func (cmd *SummaryCommand) Run(g *Globals) error {
	fmt.Printf("Getting weather for: %s\n", cmd.Location)
	return g.call("get_weather_summary", map[string]any{
		"location": cmd.Location,
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// connect creates and stores the MCP client on Globals
func (g *Globals) connect() error {
	var opts []client.ClientOpt
	if g.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}

	c, err := mcpclient.New(g.URL, mcp.ClientInfo{
		Name:    "weather-client",
		Version: version.Version(),
	}, opts...)
	if err != nil {
		return err
	}

	// Print notifications when verbose
	if g.Verbose {
		c.OnNotification(func(method string, params json.RawMessage) {
			fmt.Fprintf(os.Stderr, "notification: %s %s\n", method, string(params))
		})
	}

	g.client = c
	return nil
}

// call invokes a tool with the given arguments and prints the returned
// content, flagging error results on stderr.
func (g *Globals) call(name string, args any) error {
	if err := g.connect(); err != nil {
		return err
	}
	defer g.client.Close()

	var data json.RawMessage
	switch v := args.(type) {
	case nil:
	case json.RawMessage:
		data = v
	default:
		var err error
		data, err = json.Marshal(args)
		if err != nil {
			return err
		}
	}

	result, err := g.client.CallTool(g.ctx, name, data)
	if err != nil {
		return err
	}

	if result.Error {
		fmt.Fprintln(os.Stderr, "Tool returned an error")
	}
	for _, c := range result.Content {
		switch c.Type {
		case "text":
			fmt.Println(c.Text)
		default:
			fmt.Printf("[%s] %s\n", c.Type, c.MimeType)
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// parseArgsJSON converts key=value pairs to a JSON object (json.RawMessage).
// Returns nil if no args are provided.
func parseArgsJSON(args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, nil
	}
	m := make(map[string]any, len(args))
	for _, kv := range args {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("argument must be key=value, got %q", kv)
		}
		// Try to parse value as JSON (for numbers, booleans, objects)
		var v any
		if err := json.Unmarshal([]byte(parts[1]), &v); err != nil {
			// Fall back to string
			v = parts[1]
		}
		m[parts[0]] = v
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
