// Command gridview shows a scrollable grid in a desktop window.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/pflag"

	"gridcanvas/pkg/config"
	"gridcanvas/pkg/grid"
	"gridcanvas/pkg/logging"
)

// gridView displays a grid host's bitmap at one pixel per unit and feeds
// it the window's pointer events.
type gridView struct {
	widget.BaseWidget
	host   *grid.Host
	img    *canvas.Image
	logger *slog.Logger
}

var (
	_ desktop.Hoverable = (*gridView)(nil)
	_ fyne.Tappable     = (*gridView)(nil)
)

func newGridView(host *grid.Host, logger *slog.Logger) *gridView {
	v := &gridView{host: host, logger: logger}
	v.img = canvas.NewImageFromImage(host.Image())
	v.img.FillMode = canvas.ImageFillStretch
	v.img.ScaleMode = canvas.ImageScalePixels
	v.ExtendBaseWidget(v)
	return v
}

func (v *gridView) CreateRenderer() fyne.WidgetRenderer {
	return &gridRenderer{view: v}
}

// update shows the host's current bitmap.
func (v *gridView) update() {
	v.img.Image = v.host.Image()
	v.img.Refresh()
}

func (v *gridView) MouseIn(e *desktop.MouseEvent) {
	v.MouseMoved(e)
}

func (v *gridView) MouseMoved(e *desktop.MouseEvent) {
	v.host.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	v.update()
}

func (v *gridView) MouseOut() {
	v.host.WindowLeave()
	v.update()
}

func (v *gridView) Tapped(e *fyne.PointEvent) {
	v.logger.Debug("tap", "x", e.Position.X, "y", e.Position.Y)
	v.host.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	v.host.Click()
	v.update()
}

type gridRenderer struct {
	view *gridView
}

func (r *gridRenderer) Layout(size fyne.Size) {
	w, h := int(size.Width), int(size.Height)
	if w > 0 && h > 0 {
		r.view.host.Resize(w, h)
	}
	r.view.img.Resize(size)
	r.view.update()
}

func (r *gridRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *gridRenderer) Refresh() {
	r.view.update()
}

func (r *gridRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.img}
}

func (r *gridRenderer) Destroy() {}

func main() {
	configPath := pflag.StringP("config", "c", "", "YAML configuration file")
	logLevel := pflag.String("log-level", "info", "log level: debug, info, warn, error")
	pflag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := logging.New(os.Stderr, level)
	slog.SetDefault(logger)

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("loading config", "err", err)
			os.Exit(1)
		}
	}

	host := grid.NewHost(cfg.Grid.NewGrid(), cfg.Viewport.Width, cfg.Viewport.Height, logger, cfg.ScrollOptions()...)

	a := app.New()
	w := a.NewWindow("gridview")
	w.SetContent(newGridView(host, logger))
	w.Resize(fyne.NewSize(float32(cfg.Viewport.Width), float32(cfg.Viewport.Height)))
	w.ShowAndRun()
}
