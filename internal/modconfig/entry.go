package modconfig

import (
	"github.com/pkg/errors"

	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

// ModID is the unique ID ForageFantasy is loaded under.
const ModID = "Goldenrevolver.ForageFantasy"

// Manifest returns the manifest of ForageFantasy.
func Manifest() modding.Manifest {
	return modding.Manifest{
		UniqueID:    ModID,
		Name:        "Forage Fantasy",
		Author:      "Goldenrevolver",
		Version:     "1.0.0",
		Description: "Quality and XP tweaks for foraging, tappers and berry bushes.",
	}
}

// Load reads the stored config over the defaults and verifies it. A mod
// without a stored config gets the defaults written.
func Load(mod *modding.Mod) (*Config, error) {
	config := Default()

	if err := mod.Helper().ReadConfig(&config); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	Verify(&config, mod)

	return &config, nil
}
