package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	accuweather "github.com/mutablelogic/go-weather/pkg/accuweather"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration file
	Config kong.ConfigFlag `name:"config" help:"Load flags from a YAML configuration file"`

	// HTTP server and client options
	HTTP struct {
		Addr    string        `name:"addr" help:"Address to listen on, or connect to" default:":8000"`
		Prefix  string        `name:"prefix" help:"Path prefix for the REST API" default:"/v1"`
		Origin  string        `name:"origin" help:"CORS origin" default:"*"`
		Timeout time.Duration `name:"timeout" help:"HTTP client timeout" default:"10s"`
	} `embed:"" prefix:"http."`

	// AccuWeather options
	AccuWeatherKey string `name:"accuweather-api-key" env:"ACCUWEATHER_API_KEY" help:"AccuWeather API key"`
	Minimal        bool   `name:"minimal" help:"Omit humidity, wind, UV and forecast detail from tool output"`

	// Tracing
	OtelEndpoint string `name:"otel-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"OpenTelemetry OTLP endpoint URL" optional:""`

	// Context
	ctx      context.Context
	logger   *Logger
	tracer   trace.Tracer
	execName string
}

type CLI struct {
	Globals

	// Commands
	ServerCommands
	MCPCommands
	ToolCommands
	VersionCommands
}

///////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("AccuWeather tool server and command-line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Configuration(yamlResolver),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()
	cli.Globals.logger = NewLogger(os.Stderr)

	// Create a trace exporter
	if cli.Globals.OtelEndpoint != "" {
		tracer, shutdown, err := otelInit(ctx, cli.Globals.OtelEndpoint, cli.Globals.execName)
		if err != nil {
			cmd.FatalIfErrorf(err)
			return
		}
		defer shutdown()
		cli.Globals.tracer = tracer
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Toolkit returns a toolkit populated with the AccuWeather tools.
func (g *Globals) Toolkit() (*tool.Toolkit, error) {
	if g.AccuWeatherKey == "" {
		return nil, fmt.Errorf("no AccuWeather API key configured. Set --accuweather-api-key (or the ACCUWEATHER_API_KEY environment variable)")
	}
	tools, err := accuweather.NewTools(g.AccuWeatherKey, !g.Minimal, g.ClientOpts()...)
	if err != nil {
		return nil, err
	}
	return tool.NewToolkit(tools...)
}

// ClientOpts returns common options for HTTP clients.
func (g *Globals) ClientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.HTTP.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.HTTP.Timeout))
	}
	return opts
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
