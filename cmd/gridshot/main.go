// Command gridshot renders a grid with its scrollbars to a PNG file,
// optionally replaying a pointer script first.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"gridcanvas/pkg/config"
	"gridcanvas/pkg/grid"
	"gridcanvas/pkg/logging"
	"gridcanvas/pkg/script"
)

type options struct {
	configPath string
	scriptPath string
	output     string
	width      int
	height     int
	logLevel   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("gridshot", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&opts.scriptPath, "script", "s", "", "JavaScript pointer script to replay before saving")
	fs.StringVarP(&opts.output, "output", "o", "output.png", "output PNG file path")
	fs.IntVarP(&opts.width, "width", "w", 0, "viewport width in pixels (overrides config)")
	fs.IntVarP(&opts.height, "height", "h", 0, "viewport height in pixels (overrides config)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gridshot [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	if opts.width > 0 {
		cfg.Viewport.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Viewport.Height = opts.height
	}
	return cfg, cfg.Validate()
}

func run(opts options, logger *slog.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	host := grid.NewHost(cfg.Grid.NewGrid(), cfg.Viewport.Width, cfg.Viewport.Height, logger, cfg.ScrollOptions()...)
	if opts.scriptPath != "" {
		if err := script.New(host, logger).RunFile(opts.scriptPath); err != nil {
			return err
		}
	}

	if err := host.SavePNG(opts.output); err != nil {
		return err
	}
	x, y := host.Offsets()
	logger.Info("saved", "path", opts.output,
		"width", cfg.Viewport.Width, "height", cfg.Viewport.Height,
		"horizontal", x, "vertical", y)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := logging.New(os.Stderr, level)
	slog.SetDefault(logger)

	if err := run(opts, logger); err != nil {
		logger.Error("gridshot failed", "err", err)
		os.Exit(1)
	}
}
