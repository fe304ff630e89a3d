package visualtest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gridcanvas/pkg/config"
	"gridcanvas/pkg/grid"
	"gridcanvas/pkg/script"
)

// Scenario is one headless render: a configuration and an optional
// script replayed against it before the image is captured.
type Scenario struct {
	Name   string
	Config config.Config
	Script string
}

// Scenarios returns the named scenarios the reference images are rendered
// from.
func Scenarios() []Scenario {
	small := config.Default()
	small.Viewport.Width, small.Viewport.Height = 500, 500
	small.Grid.Columns, small.Grid.Rows = 4, 35

	both := config.Default()
	both.Viewport.Width, both.Viewport.Height = 400, 300

	fits := config.Default()
	fits.Grid.Columns, fits.Grid.Rows = 3, 5

	return []Scenario{
		{Name: "no-scroll", Config: fits},
		{Name: "vertical-top", Config: small},
		{Name: "vertical-hover-end", Config: small, Script: `move(495, 495);`},
		{Name: "vertical-bottom", Config: small, Script: `
			move(495, 495);
			for (var i = 0; i < 200; i++) click();
		`},
		{Name: "both-axes", Config: both, Script: `
			move(395, 295);
			leave();
			move(375, 295);
			click(); click();
		`},
	}
}

// Render builds a host for s, replays its script and returns the host.
func Render(s Scenario, logger *slog.Logger) (*grid.Host, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	cfg := s.Config
	host := grid.NewHost(cfg.Grid.NewGrid(), cfg.Viewport.Width, cfg.Viewport.Height, logger, cfg.ScrollOptions()...)
	if s.Script != "" {
		if err := script.New(host, logger).Run(s.Name, s.Script); err != nil {
			return nil, err
		}
	}
	return host, nil
}

// RenderToFile renders s and writes the result to outputPath.
func RenderToFile(s Scenario, outputPath string) error {
	host, err := Render(s, nil)
	if err != nil {
		return err
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := host.SavePNG(outputPath); err != nil {
		return fmt.Errorf("save error: %w", err)
	}
	return nil
}

// ReferencePath is where the reference image for s lives under dir.
func ReferencePath(dir string, s Scenario) string {
	return filepath.Join(dir, s.Name+".png")
}

// UpdateReferenceImage generates a new reference image
// Use this when you've intentionally changed rendering behavior
func UpdateReferenceImage(s Scenario, referencePath string) error {
	fmt.Printf("⚠️  Updating reference image: %s\n", referencePath)
	return RenderToFile(s, referencePath)
}
