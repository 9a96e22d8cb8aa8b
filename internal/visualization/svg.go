package visualization

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// RenderSVG writes a bar chart as a standalone SVG document.
func RenderSVG(w io.Writer, bars []Bar, opts ChartOptions) error {
	l, err := newLayout(bars, opts)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="Helvetica, Arial, sans-serif">`+"\n",
		l.width, l.height, l.width, l.height)
	fmt.Fprintf(bw, `  <rect width="%d" height="%d" fill="#ffffff"/>`+"\n", l.width, l.height)

	for _, tick := range l.ticks {
		y := l.y(tick)
		fmt.Fprintf(bw, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#d0d0d0" stroke-dasharray="4 4"/>`+"\n",
			l.left, y, l.right, y)
		fmt.Fprintf(bw, `  <text x="%d" y="%d" font-size="12" text-anchor="end">%s</text>`+"\n",
			l.left-8, y+4, escape(valueLabel(tick)))
	}

	for i, b := range bars {
		x0, barW := l.slot(i, len(bars))
		top := l.y(b.Value)
		cx := x0 + barW/2
		fmt.Fprintf(bw, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			x0, top, barW, l.bottom-top, barColor(i))
		fmt.Fprintf(bw, `  <text x="%d" y="%d" font-size="12" text-anchor="middle">%s</text>`+"\n",
			cx, top-6, escape(valueLabel(b.Value)))
		fmt.Fprintf(bw, `  <text x="%d" y="%d" font-size="13" text-anchor="middle">%s</text>`+"\n",
			cx, l.bottom+20, escape(b.Label))
	}

	fmt.Fprintf(bw, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333333"/>`+"\n", l.left, l.top, l.left, l.bottom)
	fmt.Fprintf(bw, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333333"/>`+"\n", l.left, l.bottom, l.right, l.bottom)
	fmt.Fprintf(bw, `  <text x="%d" y="%d" font-size="16" text-anchor="middle">%s</text>`+"\n",
		l.width/2, l.top-28, escape(opts.Title))
	fmt.Fprintf(bw, `  <text x="%d" y="%d" font-size="13" text-anchor="middle" transform="rotate(-90 %d %d)">%s</text>`+"\n",
		20, (l.top+l.bottom)/2, 20, (l.top+l.bottom)/2, escape(opts.YLabel))
	bw.WriteString("</svg>\n")

	return bw.Flush()
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
