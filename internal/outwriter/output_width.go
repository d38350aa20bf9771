package outwriter

import (
	"os"

	"golang.org/x/term"
)

// Table layout constants.
const (
	defaultTermWidth = 120
	minPathWidth     = 20
	fixedColumnCost  = 40 // rank, score, grade and status columns plus padding
)

// getMaxTablePathWidth calculates the maximum width for file identifiers
// in table output based on terminal width.
func getMaxTablePathWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	width := termWidth - fixedColumnCost
	if width < minPathWidth {
		return minPathWidth
	}
	return width
}
