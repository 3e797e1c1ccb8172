package models

// SoundID identifies an entry in the sound catalog.
type SoundID string

const (
	SoundBell       SoundID = "bell"
	SoundDigital    SoundID = "digital"
	SoundSuccess    SoundID = "success"
	SoundElectronic SoundID = "electronic"
	SoundWarning    SoundID = "warning"
)

// DefaultSoundID is used whenever no sound has been chosen.
const DefaultSoundID = SoundBell

// SoundOption describes a selectable sound.
type SoundOption struct {
	ID   SoundID
	Name string
}

// SoundOptions is the fixed catalog, in display order.
var SoundOptions = []SoundOption{
	{ID: SoundBell, Name: "Bright Chime"},
	{ID: SoundDigital, Name: "Triple Beep"},
	{ID: SoundSuccess, Name: "Success Arpeggio"},
	{ID: SoundElectronic, Name: "Double Pulse"},
	{ID: SoundWarning, Name: "High Alert"},
}

// Valid reports whether id is in the catalog.
func (id SoundID) Valid() bool {
	for _, o := range SoundOptions {
		if o.ID == id {
			return true
		}
	}
	return false
}

// OrDefault returns id when it is a catalog entry, DefaultSoundID otherwise.
func (id SoundID) OrDefault() SoundID {
	if id.Valid() {
		return id
	}
	return DefaultSoundID
}

// Name returns the display name, or the raw id for unknown sounds.
func (id SoundID) Name() string {
	for _, o := range SoundOptions {
		if o.ID == id {
			return o.Name
		}
	}
	return string(id)
}

// NextSound cycles through the catalog; step may be negative.
func NextSound(id SoundID, step int) SoundID {
	idx := 0
	for i, o := range SoundOptions {
		if o.ID == id {
			idx = i
			break
		}
	}
	n := len(SoundOptions)
	idx = ((idx+step)%n + n) % n
	return SoundOptions[idx].ID
}
