package console

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const clearSequence = "\033[H\033[2J"

// Output is where the menu writes. It owns the presentation-only state:
// the accent color used for banners and whether the screen gets cleared.
type Output struct {
	w           io.Writer
	accent      *color.Color
	clearScreen bool
}

// NewOutput builds an Output. With colored false, accent lines are plain text;
// with colored true, color is still dropped when w is not a terminal.
func NewOutput(w io.Writer, colored, clearScreen bool) *Output {
	accent := color.New(color.FgCyan)
	if !colored {
		accent.DisableColor()
	}
	return &Output{w: w, accent: accent, clearScreen: clearScreen}
}

func (o *Output) Println(a ...any) {
	fmt.Fprintln(o.w, a...)
}

func (o *Output) Printf(format string, a ...any) {
	fmt.Fprintf(o.w, format, a...)
}

// Accent prints a line in the banner color.
func (o *Output) Accent(line string) {
	o.accent.Fprintln(o.w, line)
}

// Clear wipes the terminal when screen clearing is enabled.
func (o *Output) Clear() {
	if o.clearScreen {
		fmt.Fprint(o.w, clearSequence)
	}
}
