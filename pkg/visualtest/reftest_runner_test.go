package visualtest

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"gridcanvas/pkg/config"
	"gridcanvas/pkg/glyph"
	"gridcanvas/pkg/scroll"
)

// TestReferenceRoundTrip writes every scenario's reference image the way
// cmd/update-references does and checks a fresh render against the file.
func TestReferenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, s := range Scenarios() {
		t.Run(s.Name, func(t *testing.T) {
			refPath := ReferencePath(dir, s)
			if err := UpdateReferenceImage(s, refPath); err != nil {
				t.Fatalf("writing reference failed: %v", err)
			}

			outPath := filepath.Join(t.TempDir(), s.Name+".png")
			if err := RenderToFile(s, outPath); err != nil {
				t.Fatalf("render failed: %v", err)
			}

			opts := ExactOptions()
			opts.DiffImagePath = filepath.Join(t.TempDir(), s.Name+"-diff.png")
			result, err := CompareFiles(outPath, refPath, opts)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !result.Match {
				t.Errorf("%d of %d pixels differ (max %d)", result.DifferentPixels, result.TotalPixels, result.MaxDifference)
			}
		})
	}
}

// TestScenarioChrome pins the scrollbar pixels and offsets each scenario
// is expected to end up with.
func TestScenarioChrome(t *testing.T) {
	theme := scroll.DefaultTheme()
	type pixel struct {
		x, y int
		want color.RGBA
	}
	tests := []struct {
		name             string
		vertical         bool
		horizontal       bool
		offsetX, offsetY int
		pixels           []pixel
	}{
		{name: "no-scroll"},
		{
			name: "vertical-top", vertical: true,
			pixels: []pixel{
				{491, 7, glyph.PassiveColor},
				{485, 17, theme.Thumb},
				{484, 17, theme.Track},
				{484, 484, theme.Track},
			},
		},
		{
			name: "vertical-hover-end", vertical: true,
			pixels: []pixel{
				{484, 484, theme.Hover},
				{488, 489, glyph.ActiveColor},
			},
		},
		{
			name: "vertical-bottom", vertical: true, offsetY: 400,
			pixels: []pixel{
				{491, 7, glyph.ActiveColor},
				{488, 489, glyph.PassiveColor},
				{484, 484, theme.Hover},
			},
		},
		{name: "both-axes", vertical: true, horizontal: true, offsetX: 6},
	}

	scenarios := make(map[string]Scenario)
	for _, s := range Scenarios() {
		scenarios[s.Name] = s
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := scenarios[tt.name]
			if !ok {
				t.Fatalf("no scenario %q", tt.name)
			}
			host, err := Render(s, nil)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			sc := host.Scrolls()
			if sc.Vertical.Visible() != tt.vertical || sc.Horizontal.Visible() != tt.horizontal {
				t.Errorf("visible = %v/%v, want %v/%v", sc.Vertical.Visible(), sc.Horizontal.Visible(), tt.vertical, tt.horizontal)
			}
			if x, y := host.Offsets(); x != tt.offsetX || y != tt.offsetY {
				t.Errorf("offsets = %d,%d, want %d,%d", x, y, tt.offsetX, tt.offsetY)
			}
			for _, p := range tt.pixels {
				if got := host.Image().RGBAAt(p.x, p.y); got != p.want {
					t.Errorf("pixel (%d, %d) = %v, want %v", p.x, p.y, got, p.want)
				}
			}
		})
	}
}

func TestScenariosRenderDeterministically(t *testing.T) {
	for _, s := range Scenarios() {
		t.Run(s.Name, func(t *testing.T) {
			first, err := Render(s, nil)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			second, err := Render(s, nil)
			if err != nil {
				t.Fatalf("render failed: %v", err)
			}
			assertSameImage(t, first.Image(), second.Image())
		})
	}
}

// TestReftests renders pairs of scenarios that must produce the same
// pixels even though they reach their state differently.
func TestReftests(t *testing.T) {
	small := config.Default()
	small.Viewport.Width, small.Viewport.Height = 500, 500
	small.Grid.Columns, small.Grid.Rows = 4, 35

	tests := []struct {
		name      string
		test, ref Scenario
	}{
		{
			name: "begin click at top is a no-op",
			test: Scenario{Name: "test", Config: small, Script: `move(495, 5); click(); leave();`},
			ref:  Scenario{Name: "ref", Config: small},
		},
		{
			name: "hover then leave restores the button",
			test: Scenario{Name: "test", Config: small, Script: `move(495, 495); leave();`},
			ref:  Scenario{Name: "ref", Config: small},
		},
		{
			name: "window leave matches pointer leave",
			test: Scenario{Name: "test", Config: small, Script: `move(495, 495); leaveWindow();`},
			ref:  Scenario{Name: "ref", Config: small, Script: `move(495, 495); leave();`},
		},
		{
			name: "scroll down and back",
			test: Scenario{Name: "test", Config: small, Script: `
				move(495, 495); click(); click();
				move(495, 5); click(); click();
				leave();
			`},
			ref: Scenario{Name: "ref", Config: small},
		},
		{
			name: "resize and restore",
			test: Scenario{Name: "test", Config: small, Script: `resize(300, 200); resize(500, 500);`},
			ref:  Scenario{Name: "ref", Config: small},
		},
		{
			name: "growing the viewport past the content hides the bar",
			test: Scenario{Name: "test", Config: small, Script: `resize(500, 1000);`},
			ref:  Scenario{Name: "ref", Config: withViewport(small, 500, 1000)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test, err := Render(tt.test, nil)
			if err != nil {
				t.Fatalf("test render failed: %v", err)
			}
			ref, err := Render(tt.ref, nil)
			if err != nil {
				t.Fatalf("reference render failed: %v", err)
			}
			assertSameImage(t, test.Image(), ref.Image())
		})
	}
}

func withViewport(cfg config.Config, w, h int) config.Config {
	cfg.Viewport.Width, cfg.Viewport.Height = w, h
	return cfg
}

func assertSameImage(t *testing.T, actual, expected image.Image) {
	t.Helper()
	result, err := CompareImages(actual, expected, ExactOptions())
	if err != nil {
		t.Fatalf("comparison failed: %v", err)
	}
	if !result.Match {
		t.Errorf("%d of %d pixels differ (max %d)", result.DifferentPixels, result.TotalPixels, result.MaxDifference)
	}
}
