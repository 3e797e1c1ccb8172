package models

// Settings are the user preferences shared by every timer surface.
type Settings struct {
	AutoCheck       bool
	SkipSound       bool
	DefaultSound    SoundID
	PriorityEnabled bool
}

// DefaultSettings returns the preferences used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		AutoCheck:       true,
		SkipSound:       false,
		DefaultSound:    DefaultSoundID,
		PriorityEnabled: false,
	}
}
