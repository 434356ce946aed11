// Package share prints the status line and the instructions for viewing and
// sharing the generated page.
//
// Headings are styled with lipgloss using a renderer bound to the output
// writer, so a terminal gets colour and a pipe or file gets plain text.
package share

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RuleWidth is the width of the "=" rules framing the instructions.
const RuleWidth = 64

var (
	rose = lipgloss.AdaptiveColor{Light: "#c2185b", Dark: "#f48fb1"}
	leaf = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#8BC34A"}
)

// Printer writes styled output to a single writer.
type Printer struct {
	w io.Writer

	heading lipgloss.Style
	section lipgloss.Style
	success lipgloss.Style
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Foreground(rose).Bold(true),
		section: r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(leaf),
	}
}

// Banner prints the greeting shown before the poem.
func (p *Printer) Banner(name string) error {
	return p.write("\n🌹  Generating your Valentine's Day poem for " + name + " …\n\n")
}

// Saved prints the confirmation line with the absolute output path.
func (p *Printer) Saved(path string) error {
	line := p.success.Render("  ✅  HTML file saved → " + absPath(path))
	return p.write(line + "\n\n")
}

// Instructions prints the static view and share guide for the file at path.
func (p *Printer) Instructions(path string) error {
	name := filepath.Base(path)
	rule := strings.Repeat("=", RuleWidth)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\n")
	}
	heading := func(s string) { line(p.heading.Render(s)) }
	section := func(s string) { line(p.section.Render(s)) }

	line(rule)
	heading("  🌹  HOW TO VIEW & SHARE THIS VALENTINE'S POEM  🌹")
	line(rule)
	line("")

	section("  ➊  VIEW LOCALLY")
	line("     • Double-click the file to open in your browser:")
	line("       " + absPath(path))
	line("     • Or run:  start " + path)
	line("")

	section("  ➋  SHARE VIA GITHUB GIST  (recommended — free, permanent)")
	line("     1. Go to  https://gist.github.com")
	line("     2. Sign in with a GitHub account.")
	line("     3. Paste the contents of '" + name + "'")
	line("        into the editor, name the file '" + name + "'.")
	line("     4. Click 'Create public gist'.")
	line("     5. Prepend the raw URL with  https://htmlpreview.github.io/?")
	line("        to get a live-rendered link you can share.")
	line("")

	section("  ➌  SHARE VIA NETLIFY DROP  (free, instant, 24-hour link)")
	line("     1. Go to  https://app.netlify.com/drop")
	line("     2. Drag & drop '" + name + "' (or a folder")
	line("        containing it) onto the page.")
	line("     3. Copy the generated URL and send it to Shruthi! 💌")
	line("")

	section("  ➍  SHARE VIA TIINY.HOST  (free, custom link, 7-day hosting)")
	line("     1. Go to  https://tiiny.host")
	line("     2. Upload '" + name + "'.")
	line("     3. Choose a cute link name (e.g., shruthi-valentine).")
	line("     4. Share the link! 🎉")
	line("")

	section("  ➎  SHARE VIA SURGE.SH  (free, permanent, command-line)")
	line("     1. Install Surge:  npm install --global surge")
	line("     2. Create a folder, copy the HTML inside, then run:")
	line("        surge ./your-folder  shruthi-valentine.surge.sh")
	line("     3. Share the URL with Shruthi! 🌷")
	line("")

	line(rule)
	heading("  💝  Happy Valentine's Day, Shruthi!  💝")
	line(rule)
	line("")

	return p.write(b.String())
}

func (p *Printer) write(s string) error {
	if _, err := io.WriteString(p.w, s); err != nil {
		return fmt.Errorf("failed to write instructions: %w", err)
	}
	return nil
}

// absPath falls back to the given path when it cannot be made absolute.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
