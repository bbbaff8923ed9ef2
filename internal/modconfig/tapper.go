package modconfig

// TapperQuality selects how the quality of tapper products is decided.
type TapperQuality int

// Tapper quality modes, in choice table order.
const (
	TapperQualityDisabled TapperQuality = iota
	TapperQualityForageLevel
	TapperQualityForageLevelNoBotanist
	TapperQualityTreeAgeMonths
	TapperQualityTreeAgeYears
)

// TapperQualityChoices are the menu labels of the tapper quality modes.
// The position of a label is the value stored in TapperQualityOptions.
var TapperQualityChoices = []string{ //nolint:gochecknoglobals
	"Disabled",
	"Forage Level Based",
	"Forage Level Based (No Botanist)",
	"Tree Age Based (Months)",
	"Tree Age Based (Years)",
}

// String returns the menu label of the mode.
func (q TapperQuality) String() string {
	return ElementFromConfig(TapperQualityChoices, int(q))
}

// Valid reports whether q is one of the known modes.
func (q TapperQuality) Valid() bool {
	return q >= TapperQualityDisabled && int(q) < len(TapperQualityChoices)
}

// ElementFromConfig returns options[value], or the first option if value is out of range.
func ElementFromConfig(options []string, value int) string {
	if value >= 0 && value < len(options) {
		return options[value]
	}

	return options[0]
}

// IndexFromArrayElement returns the position of element in options, or 0 if it is missing.
func IndexFromArrayElement(options []string, element string) int {
	for i, option := range options {
		if option == element {
			return i
		}
	}

	return 0
}
