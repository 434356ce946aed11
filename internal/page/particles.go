package page

// Range is a half-open interval [Min, Max) sampled by the page script as
// Math.random() * (Max - Min) + Min.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// HeartSpec configures the floating heart glyphs. Heart i uses
// Glyphs[i % len(Glyphs)].
type HeartSpec struct {
	Count    int      `json:"count"`
	Left     Range    `json:"left"`     // percent
	Duration Range    `json:"duration"` // seconds
	Delay    Range    `json:"delay"`    // seconds
	Size     Range    `json:"size"`     // rem
	Glyphs   []string `json:"glyphs"`
}

// PetalSpec configures the drifting petals.
type PetalSpec struct {
	Count    int   `json:"count"`
	Left     Range `json:"left"`
	Duration Range `json:"duration"`
	Delay    Range `json:"delay"`
}

// Particles is serialized into the page as the script's configuration.
type Particles struct {
	Hearts HeartSpec `json:"hearts"`
	Petals PetalSpec `json:"petals"`
}

// DefaultParticles returns 22 hearts and 15 petals with the reference ranges.
func DefaultParticles() Particles {
	return Particles{
		Hearts: HeartSpec{
			Count:    22,
			Left:     Range{Min: 0, Max: 100},
			Duration: Range{Min: 8, Max: 18},
			Delay:    Range{Min: 0, Max: 14},
			Size:     Range{Min: 1, Max: 2.2},
			Glyphs:   []string{"❤️", "💕", "💖", "💗", "💓", "💞"},
		},
		Petals: PetalSpec{
			Count:    15,
			Left:     Range{Min: 0, Max: 100},
			Duration: Range{Min: 10, Max: 22},
			Delay:    Range{Min: 0, Max: 16},
		},
	}
}
