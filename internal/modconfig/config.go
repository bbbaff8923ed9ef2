// Package modconfig holds the ForageFantasy settings, the range check that
// repairs them and their binding to the config menu extension.
package modconfig

// Config is the ForageFantasy config.json. Bounds of the integer fields are
// enforced by Verify, never by the menu controls.
type Config struct {
	MushroomCaveQuality  bool
	CommonFiddleheadFern bool
	ForageSurvivalBurger bool
	CompatibilityMode    bool

	TapperQualityOptions            int `validate:"min=0,max=4"`
	TapperQualityRequiresTapperPerk bool

	BerryBushQuality       bool
	BerryBushChanceToGetXP int `validate:"min=0,max=100"`
	BerryBushXPAmount      int `validate:"min=0"`
}

// Default returns the config a fresh install starts with.
func Default() Config {
	return Config{
		MushroomCaveQuality:             true,
		CommonFiddleheadFern:            true,
		ForageSurvivalBurger:            true,
		CompatibilityMode:               false,
		TapperQualityOptions:            int(TapperQualityForageLevel),
		TapperQualityRequiresTapperPerk: false,
		BerryBushQuality:                true,
		BerryBushChanceToGetXP:          100,
		BerryBushXPAmount:               1,
	}
}

// TapperQuality returns TapperQualityOptions as a mode.
func (c *Config) TapperQuality() TapperQuality {
	return TapperQuality(c.TapperQualityOptions)
}
