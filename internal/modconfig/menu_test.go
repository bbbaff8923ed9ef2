package modconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForageFantasy/ForageFantasy/internal/gmcm"
	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

var forageManifest = modding.Manifest{
	UniqueID: "Goldenrevolver.ForageFantasy",
	Name:     "Forage Fantasy",
	Version:  "1.0.0",
}

type fakeMod struct {
	fakeHost
	registry *modding.Registry
}

func (m *fakeMod) Manifest() modding.Manifest      { return forageManifest }
func (m *fakeMod) ModRegistry() *modding.Registry { return m.registry }

func newFakeMod(t *testing.T, api any) *fakeMod {
	t.Helper()

	registry := modding.NewRegistry()
	require.NoError(t, registry.Register(forageManifest, nil))

	if api != nil {
		require.NoError(t, registry.Register(gmcm.Manifest(), api))
	}

	return &fakeMod{registry: registry}
}

// call is one registration seen by recordingAPI.
type call struct {
	kind string
	name string
}

// recordingAPI implements gmcm.API and remembers every registration.
type recordingAPI struct {
	calls   []call
	bools   map[string]func() bool
	choices []string
}

func (r *recordingAPI) record(kind, name string) {
	r.calls = append(r.calls, call{kind: kind, name: name})
}

func (r *recordingAPI) RegisterModConfig(modding.Manifest, func(), func()) {
	r.record("config", "")
}

func (r *recordingAPI) RegisterLabel(_ modding.Manifest, name, _ string) {
	r.record("label", name)
}

func (r *recordingAPI) RegisterBoolOption(_ modding.Manifest, name, _ string, get func() bool, _ func(bool)) {
	if r.bools == nil {
		r.bools = make(map[string]func() bool)
	}

	r.bools[name] = get
	r.record("bool", name)
}

func (r *recordingAPI) RegisterIntOption(_ modding.Manifest, name, _ string, _ func() int, _ func(int)) {
	r.record("int", name)
}

func (r *recordingAPI) RegisterFloatOption(_ modding.Manifest, name, _ string, _ func() float32, _ func(float32)) {
	r.record("float", name)
}

func (r *recordingAPI) RegisterStringOption(_ modding.Manifest, name, _ string, _ func() string, _ func(string)) {
	r.record("string", name)
}

func (r *recordingAPI) RegisterButtonOption(_ modding.Manifest, name, _ string, _ func() gmcm.Button, _ func(gmcm.Button)) {
	r.record("button", name)
}

func (r *recordingAPI) RegisterClampedIntOption(_ modding.Manifest, name, _ string, _ func() int, _ func(int), _, _ int) {
	r.record("clampedInt", name)
}

func (r *recordingAPI) RegisterClampedFloatOption(_ modding.Manifest, name, _ string, _ func() float32, _ func(float32), _, _ float32) {
	r.record("clampedFloat", name)
}

func (r *recordingAPI) RegisterChoiceOption(_ modding.Manifest, name, _ string, _ func() string, _ func(string), choices []string) {
	r.choices = choices
	r.record("choice", name)
}

func (r *recordingAPI) RegisterComplexOption(
	_ modding.Manifest, name, _ string,
	_ func(gmcm.Vector2, any) any, _ func(gmcm.Canvas, gmcm.Vector2, any) any, _ func(any),
) {
	r.record("complex", name)
}

func TestSetUpModConfigMenu_ExtensionAbsent(t *testing.T) {
	cfg := Default()
	mod := newFakeMod(t, nil)

	SetUpModConfigMenu(&cfg, mod)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, mod.logs)
	assert.Empty(t, mod.writes)
}

func TestSetUpModConfigMenu_ExtensionOfWrongType(t *testing.T) {
	cfg := Default()
	mod := newFakeMod(t, "not a menu")

	SetUpModConfigMenu(&cfg, mod)

	assert.Empty(t, mod.writes)
}

func TestSetUpModConfigMenu_NilExtension(t *testing.T) {
	cfg := Default()
	mod := newFakeMod(t, (*gmcm.Menu)(nil))

	assert.NotPanics(t, func() { SetUpModConfigMenu(&cfg, mod) })
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, mod.writes)
}

func TestSetUpModConfigMenu_RegistrationOrder(t *testing.T) {
	cfg := Default()
	api := &recordingAPI{}

	SetUpModConfigMenu(&cfg, newFakeMod(t, api))

	assert.Equal(t, []call{
		{"config", ""},
		{"label", "General Tweaks"},
		{"bool", "Mushroom Cave Quality"},
		{"bool", "Common Fiddlehead Fern¹"},
		{"bool", "Forage Survival Burger¹"},
		{"bool", "Auto Pickup Compatibility"},
		{"label", "Tapper Quality"},
		{"choice", "Tapper Quality Options"},
		{"bool", "Tapper Perk Is Required"},
		{"label", "Berry Bushes"},
		{"bool", "Berry Bush Quality"},
		{"clampedInt", "Berry Bush Chance To Get XP"},
		{"int", "Berry Bush XP Amount"},
		{"label", ""},
		{"label", "1: Restart Needed For Changes To Take Effect"},
	}, api.calls)

	assert.Equal(t, TapperQualityChoices, api.choices)

	cfg.CompatibilityMode = true
	assert.True(t, api.bools["Auto Pickup Compatibility"]())
}

func TestSetUpModConfigMenu_LiveAccessors(t *testing.T) {
	cfg := Default()
	menu := gmcm.NewMenu()
	mod := newFakeMod(t, menu)

	SetUpModConfigMenu(&cfg, mod)

	id := forageManifest.UniqueID

	// reads follow the live record
	cfg.TapperQualityOptions = 3
	values, err := menu.Values(id)
	require.NoError(t, err)
	assert.Equal(t, "Tree Age Based (Months)", values["Tapper Quality Options"])

	cfg.TapperQualityOptions = 42
	values, err = menu.Values(id)
	require.NoError(t, err)
	assert.Equal(t, "Disabled", values["Tapper Quality Options"])

	// writes land in the record
	testCases := []struct {
		option string
		value  any
		check  func() any
		want   any
	}{
		{"Mushroom Cave Quality", false, func() any { return cfg.MushroomCaveQuality }, false},
		{"Common Fiddlehead Fern¹", false, func() any { return cfg.CommonFiddleheadFern }, false},
		{"Forage Survival Burger¹", false, func() any { return cfg.ForageSurvivalBurger }, false},
		{"Auto Pickup Compatibility", true, func() any { return cfg.CompatibilityMode }, true},
		{"Tapper Quality Options", "Forage Level Based (No Botanist)", func() any { return cfg.TapperQualityOptions }, 2},
		{"Tapper Perk Is Required", true, func() any { return cfg.TapperQualityRequiresTapperPerk }, true},
		{"Berry Bush Quality", false, func() any { return cfg.BerryBushQuality }, false},
		{"Berry Bush Chance To Get XP", float64(250), func() any { return cfg.BerryBushChanceToGetXP }, 100},
		{"Berry Bush XP Amount", float64(7), func() any { return cfg.BerryBushXPAmount }, 7},
	}

	for _, tc := range testCases {
		t.Run(tc.option, func(t *testing.T) {
			_, err := menu.Set(id, tc.option, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tc.check())
		})
	}

	page, err := menu.Page(id)
	require.NoError(t, err)

	labels := 0
	for _, o := range page.Options {
		if o.Kind == gmcm.KindLabel {
			labels++
		}
	}

	assert.Len(t, page.Options, 14)
	assert.Equal(t, 5, labels)
}

func TestSetUpModConfigMenu_SaveVerifies(t *testing.T) {
	cfg := Default()
	menu := gmcm.NewMenu()
	mod := newFakeMod(t, menu)

	SetUpModConfigMenu(&cfg, mod)

	id := forageManifest.UniqueID

	// the XP amount control does not validate, the record keeps -3 until save
	_, err := menu.Set(id, "Berry Bush XP Amount", -3)
	require.NoError(t, err)
	assert.Equal(t, -3, cfg.BerryBushXPAmount)

	_, err = menu.Save(id)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.BerryBushXPAmount)
	require.Len(t, mod.writes, 2, "save writes, then the correction writes again")
	assert.Equal(t, -3, mod.writes[0].BerryBushXPAmount)
	assert.Equal(t, 0, mod.writes[1].BerryBushXPAmount)
	assert.Equal(t, []string{CorrectedMessage}, mod.logs)

	// a clean save writes once and logs nothing
	_, err = menu.Save(id)
	require.NoError(t, err)
	assert.Len(t, mod.writes, 3)
	assert.Len(t, mod.logs, 1)
}

func TestSetUpModConfigMenu_ResetInPlace(t *testing.T) {
	cfg := Config{TapperQualityOptions: 4, BerryBushChanceToGetXP: 5}
	live := &cfg
	menu := gmcm.NewMenu()

	SetUpModConfigMenu(live, newFakeMod(t, menu))

	_, err := menu.Reset(forageManifest.UniqueID)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)

	// accessors registered before the reset still see the record
	_, err = menu.Set(forageManifest.UniqueID, "Berry Bush XP Amount", 9)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.BerryBushXPAmount)
}
