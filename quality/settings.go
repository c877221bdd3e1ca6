package quality

// Settings tune the checkers. Zero values are replaced by defaults in
// NewRunner, so a zero Settings behaves like DefaultSettings.
type Settings struct {
	// MinStemLength is the minimum stem length before completeness flags
	// the stem as critically short.
	MinStemLength int

	// ShortStemLength is the threshold below which error-detection flags
	// a stem as suspiciously short.
	ShortStemLength int

	// MinRationaleLength is the minimum length for the correct and
	// incorrect explanations.
	MinRationaleLength int

	// NarrativeWordMin and NarrativeWordMax bound the word count of an
	// embedded timed narrative.
	NarrativeWordMin int
	NarrativeWordMax int

	// StrictContent enables the stricter content standard: missing
	// enrichment fields (pearls, trap, mnemonic) become warnings.
	StrictContent bool

	// BoilerplateExtra extends the built-in boilerplate phrase denylist.
	BoilerplateExtra []string
}

// DefaultSettings returns the engine's default thresholds.
func DefaultSettings() Settings {
	return Settings{
		MinStemLength:      10,
		ShortStemLength:    15,
		MinRationaleLength: 20,
		NarrativeWordMin:   120,
		NarrativeWordMax:   160,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.MinStemLength <= 0 {
		s.MinStemLength = d.MinStemLength
	}
	if s.ShortStemLength <= 0 {
		s.ShortStemLength = d.ShortStemLength
	}
	if s.MinRationaleLength <= 0 {
		s.MinRationaleLength = d.MinRationaleLength
	}
	if s.NarrativeWordMin <= 0 {
		s.NarrativeWordMin = d.NarrativeWordMin
	}
	if s.NarrativeWordMax <= 0 {
		s.NarrativeWordMax = d.NarrativeWordMax
	}
	return s
}
