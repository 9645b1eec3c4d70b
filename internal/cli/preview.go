package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/huecam/huecam/internal/scheme"
)

// previewSlotOrder is the order swatches print in: neutrals first, then
// the 16 accents in their Base24 numbering.
var previewSlotOrder = func() []string {
	order := make([]string, 0, 24)
	for i := 0; i < 8; i++ {
		order = append(order, fmt.Sprintf("base0%d", i))
	}
	for i := 0; i < 8; i++ {
		order = append(order, fmt.Sprintf("base0%x", 8+i))
	}
	for i := 10; i < 18; i++ {
		order = append(order, fmt.Sprintf("base%d", i))
	}
	return order
}()

// printSwatchPreview renders one truecolor block per palette slot,
// wrapped to the terminal width, when stdout is a real terminal and
// output hasn't been silenced. It is a convenience for a human running
// the CLI directly and has no effect on the files written by output
// plugins.
func printSwatchPreview(s *scheme.Scheme) {
	if globalQuiet || !previewEligible() {
		return
	}

	width := terminalWidth()
	const blockWidth = 4
	perLine := width / blockWidth
	if perLine < 1 {
		perLine = 1
	}

	col := 0
	for _, slot := range previewSlotOrder {
		c, ok := s.Palette[slot]
		if !ok {
			continue
		}
		r, g, b := c.Hex()[0:2], c.Hex()[2:4], c.Hex()[4:6]
		ri, _ := strconv.ParseInt(r, 16, 32)
		gi, _ := strconv.ParseInt(g, 16, 32)
		bi, _ := strconv.ParseInt(b, 16, 32)
		fmt.Printf("\x1b[48;2;%d;%d;%dm    \x1b[0m", ri, gi, bi)
		col++
		if col >= perLine {
			fmt.Println()
			col = 0
		}
	}
	if col != 0 {
		fmt.Println()
	}
}

// previewEligible reports whether stdout looks like a real terminal that
// can render truecolor escape sequences. isatty and x/term agree in the
// common case; checking both matches how a piped-through-cat invocation
// (isatty false, term.IsTerminal also false) and a genuine TTY are told
// apart without relying on either check alone.
func previewEligible() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) && term.IsTerminal(int(fd))
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
