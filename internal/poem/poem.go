// Package poem holds the fixed greeting content shared by the console and
// page renderers.
package poem

import "strings"

// HeartEmblem is the glyph appended to the footer. The page renderer strips
// it from the raw footer and re-adds it as a separately animated element.
const HeartEmblem = "❤️"

// Stanza is one block of poem text with its lines joined by "\n".
type Stanza string

// Lines splits the stanza into its display lines.
func (s Stanza) Lines() []string {
	return strings.Split(string(s), "\n")
}

// Content is the complete set of text blocks that parameterize both renderers.
type Content struct {
	Title    string
	Subtitle string
	Stanzas  []Stanza
	Footer   string
}

// StanzaCount returns the number of stanzas.
func (c Content) StanzaCount() int {
	return len(c.Stanzas)
}

// FooterText returns the footer without the heart emblem.
func (c Content) FooterText() string {
	text := strings.ReplaceAll(c.Footer, HeartEmblem, "")
	// A bare heart without the variation selector may also appear.
	text = strings.ReplaceAll(text, "❤", "")
	return strings.TrimSpace(text)
}

// Reference returns the six-stanza valentine. Each call builds a new value so
// callers never share the stanza slice.
func Reference() Content {
	return Content{
		Title:    "My Eternal Love for You, Shruthi",
		Subtitle: "Happy Valentine's Day — From THARUN, with all my heart",
		Stanzas: []Stanza{
			// Jasmine and first sight
			"Like jasmine blooming in the morning dew,\n" +
				"My whole world changed the day I found you.\n" +
				"Your smile is brighter than the temple lamp at night,\n" +
				"You turned my ordinary days into something bright.",
			// Monsoon rains
			"When the monsoon rains would fall upon our lane,\n" +
				"Your gentle voice would wash away my every pain.\n" +
				"Like kolam drawn at dawn with patience and with care,\n" +
				"You painted love in corners I forgot were there.",
			// Moments still to come
			"I dream of sitting with you on a terrace watching stars,\n" +
				"Sharing filter coffee, forgetting all our scars.\n" +
				"One day I'll hear your laughter in the evening breeze,\n" +
				"And all these dreams I carry now will finally find their ease.",
			// Gratitude
			"You held my hand when I was lost and could not see,\n" +
				"You whispered, 'I believe in you,' and set me free.\n" +
				"No temple bell could ring as sweetly as your name,\n" +
				"Since you walked into my life, nothing is the same.",
			// Devotion
			"Like the river Kaveri that flows and never ends,\n" +
				"My love for you, Shruthi, forever bends and bends.\n" +
				"You are the turmeric thread that ties me to this life,\n" +
				"My blessing, my companion, my joy beyond all strife.",
			// The vow
			"So hear me now, my love, this promise that I make —\n" +
				"I'll stand beside you every step for both our sakes.\n" +
				"Through every season, every sunrise, every prayer,\n" +
				"I'm yours, Shruthi — today, tomorrow, everywhere.",
		},
		Footer: "Forever yours, THARUN " + HeartEmblem,
	}
}
