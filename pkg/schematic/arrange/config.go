package arrange

// Config holds the spacing constants used by the layout engine.
// All values are design-space pixels. The zero value is not usable;
// start from DefaultConfig and override fields as needed.
type Config struct {
	// SiblingGapX is the horizontal gap between adjacent items in a tier.
	SiblingGapX float64 `toml:"sibling_gap_x"`

	// BaseTierGapY is the minimum vertical gap between two adjacent tiers.
	BaseTierGapY float64 `toml:"base_tier_gap_y"`

	// TierGapPerCrossing is added to the tier gap for every connector that
	// has to cross it, so busy gaps get more room for wire routing.
	TierGapPerCrossing float64 `toml:"tier_gap_per_crossing"`

	// MaxTierGapY caps the crossing-scaled tier gap.
	MaxTierGapY float64 `toml:"max_tier_gap_y"`

	// ComponentGapX is the horizontal gap between independently laid out
	// connected components.
	ComponentGapX float64 `toml:"component_gap_x"`

	// DefaultTierHeight is used for a tier whose items all have zero height.
	DefaultTierHeight float64 `toml:"default_tier_height"`
}

// DefaultConfig returns the standard spacing used by the editor canvas.
func DefaultConfig() Config {
	return Config{
		SiblingGapX:        100,
		BaseTierGapY:       120,
		TierGapPerCrossing: 15,
		MaxTierGapY:        400,
		ComponentGapX:      250,
		DefaultTierHeight:  100,
	}
}

// tierGap returns the vertical gap below a tier given how many connectors
// cross it.
func (c Config) tierGap(crossings int) float64 {
	gap := c.BaseTierGapY + float64(crossings)*c.TierGapPerCrossing
	if gap > c.MaxTierGapY {
		gap = c.MaxTierGapY
	}
	return gap
}
