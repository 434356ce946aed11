// Package console draws the poem as a fixed-width box for terminal output.
//
// Widths are counted in Unicode code points, not terminal cells, so every
// box line is exactly Width+2 runes long regardless of how a terminal draws
// the emoji in the title and footer.
package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"valentine/internal/poem"
)

// DefaultWidth is the interior width of the box.
const DefaultWidth = 62

const (
	titleEmblem     = "💝"
	stanzaSeparator = "~ ~ ~"
	indent          = "  "
)

// Box-drawing characters.
const (
	horizontal  = "═"
	vertical    = "║"
	topLeft     = "╔"
	topRight    = "╗"
	teeLeft     = "╠"
	teeRight    = "╣"
	bottomLeft  = "╚"
	bottomRight = "╝"
)

// Renderer produces the bordered poem box.
type Renderer struct {
	width int
}

// New returns a Renderer with the given interior width. Non-positive widths
// fall back to DefaultWidth.
func New(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Renderer{width: width}
}

// Width returns the interior width.
func (r *Renderer) Width() int {
	return r.width
}

// Lines returns every line of the box, without the leading indent.
//
// The title and subtitle sit between two blank rows, so even with zero
// stanzas the frame is: top border, blank, title, subtitle, blank,
// separator, blank, footer, blank, bottom border.
func (r *Renderer) Lines(c poem.Content) []string {
	rule := strings.Repeat(horizontal, r.width)
	blank := r.row("")

	lines := []string{
		topLeft + rule + topRight,
		blank,
		r.row(titleEmblem + "  " + c.Title + "  " + titleEmblem),
		r.row(c.Subtitle),
		blank,
		teeLeft + rule + teeRight,
	}

	for i, stanza := range c.Stanzas {
		lines = append(lines, blank)
		for _, line := range stanza.Lines() {
			lines = append(lines, r.row(Truncate(line, r.width)))
		}
		if i < len(c.Stanzas)-1 {
			lines = append(lines, r.row(stanzaSeparator))
		}
	}

	return append(lines,
		blank,
		r.row(c.Footer),
		blank,
		bottomLeft+rule+bottomRight,
	)
}

// Render writes the box to w, framed by blank lines and indented by two
// spaces.
func (r *Renderer) Render(w io.Writer, c poem.Content) error {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range r.Lines(c) {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write poem box: %w", err)
	}
	return nil
}

func (r *Renderer) row(s string) string {
	return vertical + Center(s, r.width) + vertical
}

// Center pads s with spaces to width runes. When the padding is odd the extra
// space goes on the right. Strings at or beyond width are returned unchanged.
func Center(s string, width int) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Truncate cuts s to at most width runes. No ellipsis is added.
func Truncate(s string, width int) string {
	if width < 0 {
		width = 0
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width])
}
