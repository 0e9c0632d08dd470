package tui

import (
	"strings"

	"github.com/berth-dev/dice/internal/dice"
)

// pipRows draws a face on a 3x3 grid by pip count, 'o' marking a pip.
// Index 0 is the placeholder for keys outside the base set.
var pipRows = [...][3]string{
	{"...", ".?.", "..."},
	{"...", ".o.", "..."},
	{"o..", "...", "..o"},
	{"o..", ".o.", "..o"},
	{"o.o", "...", "o.o"},
	{"o.o", ".o.", "o.o"},
	{"o.o", "o.o", "o.o"},
}

// FaceArt renders the image for key as a five-line box.
func FaceArt(key dice.ImageKey) string {
	rows := pipRows[key.Pips()]

	var b strings.Builder
	b.WriteString("┌───────┐\n")
	for _, row := range rows {
		b.WriteString("│ ")
		for i, c := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			switch c {
			case 'o':
				b.WriteString("●")
			case '?':
				b.WriteString("?")
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString(" │\n")
	}
	b.WriteString("└───────┘")
	return b.String()
}
