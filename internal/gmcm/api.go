// Package gmcm holds the config menu extension: the API mods bind their
// settings through, and Menu, an in-process implementation that keeps the
// registered controls and drives their accessors.
package gmcm

import (
	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

// UniqueID is the mod ID the extension publishes its API under.
const UniqueID = "spacechase0.GenericModConfigMenu"

// Button is the name of an input button, e.g. "F5" or "LeftShoulder".
type Button string

// Vector2 is a position in menu coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Canvas is what a custom drawn control paints on.
type Canvas interface {
	DrawText(text string, pos Vector2)
}

// API is the surface a mod registers its config menu with.
// Every control is bound through a get and a set accessor; the menu never
// touches the mod config directly.
type API interface {
	RegisterModConfig(mod modding.Manifest, revertToDefault func(), saveToFile func())

	RegisterLabel(mod modding.Manifest, labelName, labelDesc string)

	RegisterBoolOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() bool, optionSet func(bool))

	RegisterIntOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() int, optionSet func(int))

	RegisterFloatOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() float32, optionSet func(float32))

	RegisterStringOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() string, optionSet func(string))

	RegisterButtonOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() Button, optionSet func(Button))

	RegisterClampedIntOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() int, optionSet func(int), minValue, maxValue int)

	RegisterClampedFloatOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() float32, optionSet func(float32), minValue, maxValue float32)

	RegisterChoiceOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() string, optionSet func(string), choices []string)

	RegisterComplexOption(
		mod modding.Manifest,
		optionName, optionDesc string,
		widgetUpdate func(pos Vector2, state any) any,
		widgetDraw func(canvas Canvas, pos Vector2, state any) any,
		onSave func(state any),
	)
}

// Manifest is the manifest the extension is registered with.
func Manifest() modding.Manifest {
	return modding.Manifest{
		UniqueID:    UniqueID,
		Name:        "Generic Mod Config Menu",
		Author:      "spacechase0",
		Version:     "1.1.0",
		Description: "Config menus for mods that register with it.",
	}
}
