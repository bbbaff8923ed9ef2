package modconfig

import (
	"github.com/rs/zerolog/log"

	"github.com/ForageFantasy/ForageFantasy/internal/gmcm"
	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

// MenuHost is the mod handle SetUpModConfigMenu binds through.
type MenuHost interface {
	Host
	Manifest() modding.Manifest
	ModRegistry() *modding.Registry
}

// SetUpModConfigMenu registers every setting of config with the config menu
// extension. Without the extension loaded it does nothing.
//
// The controls read and write config itself. Reset replaces it with Default in
// place, save writes it and runs Verify on it.
func SetUpModConfigMenu(config *Config, mod MenuHost) {
	api, ok := modding.GetAPI[gmcm.API](mod.ModRegistry(), gmcm.UniqueID)
	if !ok {
		return
	}

	manifest := mod.Manifest()

	api.RegisterModConfig(manifest,
		func() {
			*config = Default()
		},
		func() {
			if err := mod.WriteConfig(config); err != nil {
				log.Error().Err(err).Str("mod", manifest.UniqueID).Msg("failed to save config")
			}

			Verify(config, mod)
		},
	)

	api.RegisterLabel(manifest, "General Tweaks", "")

	api.RegisterBoolOption(manifest,
		"Mushroom Cave Quality",
		"Mushrooms have quality based on forage level and botanist perk",
		func() bool { return config.MushroomCaveQuality },
		func(val bool) { config.MushroomCaveQuality = val },
	)
	api.RegisterBoolOption(manifest,
		"Common Fiddlehead Fern¹",
		"Fiddlehead fern is available outside of the secret forest\nand added to the wild seeds pack and summer foraging bundle",
		func() bool { return config.CommonFiddleheadFern },
		func(val bool) { config.CommonFiddleheadFern = val },
	)
	api.RegisterBoolOption(manifest,
		"Forage Survival Burger¹",
		"Forage based early game crafting recipes and even more efficient cooking recipes",
		func() bool { return config.ForageSurvivalBurger },
		func(val bool) { config.ForageSurvivalBurger = val },
	)
	api.RegisterBoolOption(manifest,
		"Auto Pickup Compatibility",
		"Ensures compatibility with automatic pickup mods.\n"+
			"Sets the quality of mushrooms and tapper products based\n"+
			"on the player that would have the best result.\n"+
			"In multiplayer it only works if the host has the mod and\n"+
			"everyone who has the mod has enabled this.",
		func() bool { return config.CompatibilityMode },
		func(val bool) { config.CompatibilityMode = val },
	)

	api.RegisterLabel(manifest, "Tapper Quality", "")

	api.RegisterChoiceOption(manifest,
		"Tapper Quality Options",
		"",
		func() string { return ElementFromConfig(TapperQualityChoices, config.TapperQualityOptions) },
		func(val string) { config.TapperQualityOptions = IndexFromArrayElement(TapperQualityChoices, val) },
		TapperQualityChoices,
	)
	api.RegisterBoolOption(manifest,
		"Tapper Perk Is Required",
		"",
		func() bool { return config.TapperQualityRequiresTapperPerk },
		func(val bool) { config.TapperQualityRequiresTapperPerk = val },
	)

	api.RegisterLabel(manifest, "Berry Bushes", "")

	api.RegisterBoolOption(manifest,
		"Berry Bush Quality",
		"Salmonberries and blackberries have quality based\non forage level even without botanist perk.",
		func() bool { return config.BerryBushQuality },
		func(val bool) { config.BerryBushQuality = val },
	)
	api.RegisterClampedIntOption(manifest,
		"Berry Bush Chance To Get XP",
		"Chance to get foraging experience when harvesting bushes.\nSet to 0 to disable feature.",
		func() int { return config.BerryBushChanceToGetXP },
		func(val int) { config.BerryBushChanceToGetXP = val },
		0, 100, //nolint:mnd
	)
	api.RegisterIntOption(manifest,
		"Berry Bush XP Amount",
		"Amount of XP gained per bush. For reference:\nChopping down a tree is 12XP, a foraging good is 7XP",
		func() int { return config.BerryBushXPAmount },
		func(val int) { config.BerryBushXPAmount = val },
	)

	api.RegisterLabel(manifest, "", "")
	api.RegisterLabel(manifest, "1: Restart Needed For Changes To Take Effect", "")
}
