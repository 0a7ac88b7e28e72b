package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// printer writes results as tab separated text, styled when w is a
// terminal. Points are always written as plain "lon,lat" rows so they can
// be fed back to the length command.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	p := &printer{w: w}
	if f, ok := w.(*os.File); ok {
		p.styled = term.IsTerminal(int(f.Fd()))
	}
	return p
}

func (p *printer) measure(label string, value float64, unit string) {
	v := strconv.FormatFloat(value, 'f', 3, 64)
	if p.styled {
		fmt.Fprintf(p.w, "%s\t%s %s\n", labelStyle.Render(label), valueStyle.Render(v), unitStyle.Render(unit))
		return
	}
	fmt.Fprintf(p.w, "%s\t%s %s\n", label, v, unit)
}

func (p *printer) point(lon, lat float64) {
	fmt.Fprintf(p.w, "%s,%s\n",
		strconv.FormatFloat(lon, 'f', 7, 64),
		strconv.FormatFloat(lat, 'f', 7, 64))
}
