package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var statusColors = map[Status]*color.Color{
	StatusOK:    color.New(color.FgGreen),
	StatusWarn:  color.New(color.FgYellow),
	StatusError: color.New(color.FgRed, color.Bold),
}

// Printer formats doctor output.
type Printer struct {
	out io.Writer
}

// NewPrinter constructs a printer that writes to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintHeader renders the command heading.
func (p *Printer) PrintHeader(title string) {
	fmt.Fprintf(p.out, "%s\n\n", title)
}

// PrintSystem reports system metadata.
func (p *Printer) PrintSystem(os, arch string) {
	fmt.Fprintf(p.out, "System: %s/%s\n\n", os, arch)
}

// PrintCheck prints the outcome of a single check.
func (p *Printer) PrintCheck(res Result) {
	tag := "[" + strings.ToUpper(string(res.Status)) + "]"
	if c, ok := statusColors[res.Status]; ok {
		tag = c.Sprint(tag)
	}
	fmt.Fprintf(p.out, "%s %s", tag, res.Name)
	if res.Details != "" {
		fmt.Fprintf(p.out, " - %s", res.Details)
	}
	fmt.Fprintln(p.out)
}

// Summary prints aggregate status counts.
func (p *Printer) Summary(results []Result) {
	var okCount, warnCount, errCount int
	for _, res := range results {
		switch res.Status {
		case StatusOK:
			okCount++
		case StatusWarn:
			warnCount++
		case StatusError:
			errCount++
		}
	}
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Summary: %d ok, %d warnings, %d errors\n", okCount, warnCount, errCount)
	if errCount > 0 {
		fmt.Fprintln(p.out, "Resolve errors above then re-run 'scaffolder doctor'.")
	}
}
