package messages

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes localized, coloured status prose
type Printer struct {
	out      io.Writer
	loc      *Localization
	errC     *color.Color
	warnC    *color.Color
	successC *color.Color
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, loc *Localization) *Printer {
	return &Printer{
		out:      out,
		loc:      loc,
		errC:     color.New(color.FgRed),
		warnC:    color.New(color.FgYellow),
		successC: color.New(color.FgGreen),
	}
}

// Info prints a plain message line
func (p *Printer) Info(key string, args ...any) {
	fmt.Fprintln(p.out, p.loc.Textf(key, args...))
}

// Success prints a green message line
func (p *Printer) Success(key string, args ...any) {
	p.successC.Fprintln(p.out, p.loc.Textf(key, args...))
}

// Warn prints a yellow message line
func (p *Printer) Warn(key string, args ...any) {
	p.warnC.Fprintln(p.out, p.loc.Textf(key, args...))
}

// Error prints a red message line
func (p *Printer) Error(key string, args ...any) {
	p.errC.Fprintln(p.out, p.loc.Textf(key, args...))
}

// Break ends a pending carriage-return progress line
func (p *Printer) Break() {
	fmt.Fprintln(p.out)
}
