// Package page renders the animated HTML greeting.
//
// Render is deterministic: the same content and options always produce the
// same bytes. The floating hearts and petals are placed by a script that
// runs in the browser, so the randomness never reaches the Go side.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"valentine/internal/poem"
)

//go:embed page.html.tmpl
var pageTemplate string

var tmpl = template.Must(template.New("page").
	Funcs(template.FuncMap{"text": Text}).
	Parse(pageTemplate))

// textEscaper escapes only what is special in HTML text nodes, so quotes and
// apostrophes in the poem reach the page verbatim.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Text escapes s for use as element text content. It must not be used for
// attribute values.
func Text(s string) template.HTML {
	return template.HTML(textEscaper.Replace(s))
}

// Timing controls the reveal schedule of the stanzas and footer, in seconds.
type Timing struct {
	BaseDelay   float64
	Step        float64
	FooterExtra float64
}

// DefaultTiming returns the reference schedule.
func DefaultTiming() Timing {
	return Timing{BaseDelay: 1.0, Step: 2.5, FooterExtra: 1.5}
}

// StanzaDelay returns the animation delay of the zero-based stanza i.
func (t Timing) StanzaDelay(i int) float64 {
	return t.BaseDelay + float64(i)*t.Step
}

// FooterDelay returns the footer's animation delay after n stanzas.
func (t Timing) FooterDelay(n int) float64 {
	return t.BaseDelay + float64(n)*t.Step + t.FooterExtra
}

// Renderer builds the page document.
type Renderer struct {
	timing    Timing
	particles Particles
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTiming overrides the reveal schedule.
func WithTiming(t Timing) Option {
	return func(r *Renderer) { r.timing = t }
}

// WithParticles overrides the particle configuration.
func WithParticles(p Particles) Option {
	return func(r *Renderer) { r.particles = p }
}

// New returns a Renderer using the reference timing and particles unless
// overridden.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		timing:    DefaultTiming(),
		particles: DefaultParticles(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timing returns the renderer's reveal schedule.
func (r *Renderer) Timing() Timing {
	return r.timing
}

// Particles returns the renderer's particle configuration.
func (r *Renderer) Particles() Particles {
	return r.particles
}

type document struct {
	Title       string
	Subtitle    string
	Stanzas     template.HTML
	FooterText  string
	FooterStyle template.CSS
	Heart       string
	Particles   Particles
}

// Render returns the complete HTML document for c.
func (r *Renderer) Render(c poem.Content) (string, error) {
	doc := document{
		Title:       c.Title,
		Subtitle:    c.Subtitle,
		Stanzas:     r.Stanzas(c),
		FooterText:  c.FooterText(),
		FooterStyle: delayStyle(r.timing.FooterDelay(c.StanzaCount())),
		Heart:       poem.HeartEmblem,
		Particles:   r.particles,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

// Stanzas returns the stanza fragment: one delayed block per stanza, in
// order, with lines escaped and joined by <br>.
func (r *Renderer) Stanzas(c poem.Content) template.HTML {
	var b strings.Builder
	for i, stanza := range c.Stanzas {
		b.WriteString(`<div class="stanza" style="`)
		b.WriteString(string(delayStyle(r.timing.StanzaDelay(i))))
		b.WriteString("\">\n  <p>")
		b.WriteString(JoinLines(stanza))
		b.WriteString("</p>\n</div>\n")
	}
	return template.HTML(b.String())
}

// JoinLines escapes each line of s as element text and joins them with a
// <br> element.
func JoinLines(s poem.Stanza) string {
	lines := s.Lines()
	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = string(Text(line))
	}
	return strings.Join(escaped, "<br>")
}

// FormatSeconds formats a delay in its shortest exact form with an "s" unit.
// Whole values keep one decimal: 1 -> "1.0s", 1.25 -> "1.25s".
func FormatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s + "s"
}

func delayStyle(seconds float64) template.CSS {
	return template.CSS("animation-delay: " + FormatSeconds(seconds) + ";")
}
