// Package visualization renders severity-group summaries as bar charts.
package visualization

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nvandessel/rlsim/internal/constants"
	"github.com/nvandessel/rlsim/internal/pathutil"
	"github.com/nvandessel/rlsim/internal/severity"
)

// Format specifies the output format for chart rendering.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// barColors cycles across bars in order.
var barColors = []string{"#4CAF50", "#F44336", "#2196F3", "#FF9800", "#9C27B0", "#607D8B"}

// Bar is one labeled bar.
type Bar struct {
	Label string
	Value float64
}

// ChartOptions controls chart layout.
type ChartOptions struct {
	Width  int
	Height int
	Title  string
	YLabel string
}

// DefaultChartOptions returns the severity chart layout.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Width:  constants.DefaultChartWidth,
		Height: constants.DefaultChartHeight,
		Title:  constants.ChartTitle,
		YLabel: constants.ChartYLabel,
	}
}

// BarsFromSummary returns one bar per profile, in profile order, with the
// mean reward as height.
func BarsFromSummary(s *severity.Summary) []Bar {
	names := s.Names()
	bars := make([]Bar, 0, len(names))
	for _, name := range names {
		r, _ := s.Get(name)
		bars = append(bars, Bar{Label: name, Value: r.MeanReward})
	}
	return bars
}

// FormatForPath picks the chart format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported chart extension %q (want .png or .svg)", filepath.Ext(path))
	}
}

// Render writes the chart in the given format.
func Render(w io.Writer, format Format, bars []Bar, opts ChartOptions) error {
	switch format {
	case FormatPNG:
		return RenderPNG(w, bars, opts)
	case FormatSVG:
		return RenderSVG(w, bars, opts)
	default:
		return fmt.Errorf("unsupported chart format: %s", format)
	}
}

// WriteChart renders bars to path, creating parent directories as needed.
func WriteChart(path string, bars []Bar, opts ChartOptions) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Render(&buf, format, bars, opts); err != nil {
		return fmt.Errorf("render %s chart: %w", format, err)
	}

	if err := pathutil.EnsureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write chart %s: %w", pathutil.RedactPath(path), err)
	}
	return nil
}

// layout is the pixel geometry shared by the PNG and SVG renderers.
type layout struct {
	width, height            int
	left, right, top, bottom int
	yMax                     float64
	ticks                    []float64
}

func newLayout(bars []Bar, opts ChartOptions) (layout, error) {
	if len(bars) == 0 {
		return layout{}, fmt.Errorf("no bars to render")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return layout{}, fmt.Errorf("chart size must be positive, got %dx%d", opts.Width, opts.Height)
	}

	maxVal := 0.0
	for _, b := range bars {
		if isFinite(b.Value) && b.Value > maxVal {
			maxVal = b.Value
		}
	}
	yMax := maxVal + constants.ChartHeadroom

	l := layout{
		width:  opts.Width,
		height: opts.Height,
		left:   80,
		right:  opts.Width - 30,
		top:    60,
		bottom: opts.Height - 60,
		yMax:   yMax,
	}
	const tickCount = 5
	for i := 0; i <= tickCount; i++ {
		l.ticks = append(l.ticks, yMax*float64(i)/tickCount)
	}
	return l, nil
}

// y maps a data value to a pixel row, clamped to the plot area.
func (l layout) y(v float64) int {
	if !isFinite(v) || v < 0 {
		v = 0
	}
	if v > l.yMax {
		v = l.yMax
	}
	span := float64(l.bottom - l.top)
	return l.bottom - int(math.Round(v/l.yMax*span))
}

// slot returns the left edge and width of bar i.
func (l layout) slot(i, n int) (x0, w int) {
	slotW := float64(l.right-l.left) / float64(n)
	barW := slotW * 0.6
	x := float64(l.left) + slotW*float64(i) + (slotW-barW)/2
	return int(math.Round(x)), int(math.Round(barW))
}

func valueLabel(v float64) string {
	if !isFinite(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func barColor(i int) string {
	return barColors[i%len(barColors)]
}

// parseHex parses "#RRGGBB".
func parseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
