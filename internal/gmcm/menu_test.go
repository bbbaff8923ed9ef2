package gmcm

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

var testMod = modding.Manifest{UniqueID: "test.Mod", Name: "Test Mod", Version: "1.0.0"}

type testSettings struct {
	Enabled bool
	Amount  int
	Chance  int
	Speed   float32
	Greet   string
	Key     Button
	Mode    string
}

func newTestMenu(t *testing.T) (*Menu, *testSettings, *int, *int) {
	t.Helper()

	s := &testSettings{Enabled: true, Amount: 1, Chance: 50, Speed: 1.5, Greet: "hi", Key: "F5", Mode: "A"}
	resets, saves := 0, 0

	m := NewMenu()
	m.RegisterModConfig(testMod, func() { resets++; *s = testSettings{} }, func() { saves++ })
	m.RegisterLabel(testMod, "General", "")
	m.RegisterBoolOption(testMod, "Enabled", "", func() bool { return s.Enabled }, func(v bool) { s.Enabled = v })
	m.RegisterIntOption(testMod, "Amount", "", func() int { return s.Amount }, func(v int) { s.Amount = v })
	m.RegisterClampedIntOption(testMod, "Chance", "", func() int { return s.Chance }, func(v int) { s.Chance = v }, 0, 100)
	m.RegisterClampedFloatOption(testMod, "Speed", "", func() float32 { return s.Speed }, func(v float32) { s.Speed = v }, 0.5, 2)
	m.RegisterStringOption(testMod, "Greet", "", func() string { return s.Greet }, func(v string) { s.Greet = v })
	m.RegisterButtonOption(testMod, "Key", "", func() Button { return s.Key }, func(v Button) { s.Key = v })
	m.RegisterChoiceOption(testMod, "Mode", "", func() string { return s.Mode }, func(v string) { s.Mode = v }, []string{"A", "B"})

	return m, s, &resets, &saves
}

func TestMenu_RegistrationOrder(t *testing.T) {
	m, _, _, _ := newTestMenu(t)

	page, err := m.Page(testMod.UniqueID)
	require.NoError(t, err)

	kinds := make([]Kind, 0, len(page.Options))
	for _, o := range page.Options {
		kinds = append(kinds, o.Kind)
	}

	assert.Equal(t, []Kind{
		KindLabel, KindBool, KindInt, KindInt, KindFloat, KindString, KindButton, KindChoice,
	}, kinds)

	chance := page.Options[3]
	require.NotNil(t, chance.Min)
	require.NotNil(t, chance.Max)
	assert.InDelta(t, 0, *chance.Min, 0)
	assert.InDelta(t, 100, *chance.Max, 0)
	assert.Nil(t, page.Options[2].Min)

	assert.Equal(t, []PageSummary{{ModID: "test.Mod", Name: "Test Mod", Version: "1.0.0", Options: 8}}, m.Pages())
}

func TestMenu_OptionWithoutModConfigIsDropped(t *testing.T) {
	m := NewMenu()
	m.RegisterLabel(testMod, "orphan", "")

	assert.Empty(t, m.Pages())

	_, err := m.Page(testMod.UniqueID)
	require.ErrorIs(t, err, ErrModNotRegistered)
}

func TestMenu_Set(t *testing.T) {
	testCases := []struct {
		name    string
		option  string
		value   any
		want    any
		wantErr error
	}{
		{name: "bool", option: "Enabled", value: false, want: false},
		{name: "bool wrong type", option: "Enabled", value: "no", wantErr: ErrInvalidValue},
		{name: "int from json number", option: "Amount", value: float64(-3), want: -3},
		{name: "int fraction", option: "Amount", value: 1.5, wantErr: ErrInvalidValue},
		{name: "int json.Number", option: "Amount", value: json.Number("12"), want: 12},
		{name: "clamped int above max", option: "Chance", value: float64(250), want: 100},
		{name: "clamped int below min", option: "Chance", value: -5, want: 0},
		{name: "clamped int far above max", option: "Chance", value: float64(1e20), want: 100},
		{name: "clamped int far below min", option: "Chance", value: float64(-1e20), want: 0},
		{name: "clamped int json.Number overflow", option: "Chance", value: json.Number("1e20"), want: 100},
		{name: "int overflow", option: "Amount", value: float64(1e20), wantErr: ErrInvalidValue},
		{name: "int negative overflow", option: "Amount", value: float64(-1e20), wantErr: ErrInvalidValue},
		{name: "clamped float", option: "Speed", value: 9.0, want: float32(2)},
		{name: "string", option: "Greet", value: "hello", want: "hello"},
		{name: "button", option: "Key", value: "F9", want: "F9"},
		{name: "choice", option: "Mode", value: "B", want: "B"},
		{name: "choice outside table", option: "Mode", value: "C", wantErr: ErrInvalidChoice},
		{name: "label", option: "General", value: true, wantErr: ErrNotEditable},
		{name: "unknown", option: "Nope", value: true, wantErr: ErrOptionNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _, _, _ := newTestMenu(t)

			view, err := m.Set(testMod.UniqueID, tc.option, tc.value)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, view.Value)

			values, err := m.Values(testMod.UniqueID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, values[tc.option])
		})
	}
}

func TestMenu_SetUnknownMod(t *testing.T) {
	m, _, _, _ := newTestMenu(t)

	_, err := m.Set("other.Mod", "Enabled", true)
	require.ErrorIs(t, err, ErrModNotRegistered)
}

func TestMenu_AccessorsSeeLiveState(t *testing.T) {
	m, s, _, _ := newTestMenu(t)

	s.Amount = 42

	values, err := m.Values(testMod.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, 42, values["Amount"])
	assert.NotContains(t, values, "General")
}

func TestMenu_ResetAndSave(t *testing.T) {
	m, s, resets, saves := newTestMenu(t)

	view, err := m.Reset(testMod.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, 1, *resets)
	assert.Equal(t, testSettings{}, *s)
	assert.Equal(t, false, view.Options[1].Value)

	_, err = m.Save(testMod.UniqueID)
	require.NoError(t, err)
	assert.Equal(t, 1, *saves)

	_, err = m.Reset("other.Mod")
	require.ErrorIs(t, err, ErrModNotRegistered)
	_, err = m.Save("other.Mod")
	require.ErrorIs(t, err, ErrModNotRegistered)
}

func TestMenu_ComplexOptionSavesState(t *testing.T) {
	m := NewMenu()
	saved := []any{}

	m.RegisterModConfig(testMod, nil, nil)
	m.RegisterComplexOption(testMod, "Palette", "",
		func(_ Vector2, state any) any {
			n, _ := state.(int)
			return n + 1
		},
		func(_ Canvas, _ Vector2, state any) any { return state },
		func(state any) { saved = append(saved, state) },
	)

	_, err := m.Save(testMod.UniqueID)
	require.NoError(t, err)
	_, err = m.Save(testMod.UniqueID)
	require.NoError(t, err)

	assert.Equal(t, []any{1, 2}, saved)

	_, err = m.Set(testMod.UniqueID, "Palette", 3)
	require.ErrorIs(t, err, ErrNotEditable)
}

func TestMenu_ReRegisterReplacesPage(t *testing.T) {
	m, _, _, _ := newTestMenu(t)

	m.RegisterModConfig(testMod, nil, nil)

	page, err := m.Page(testMod.UniqueID)
	require.NoError(t, err)
	assert.Empty(t, page.Options)
	assert.Len(t, m.Pages(), 1)
}

func TestMenu_ConcurrentSet(t *testing.T) {
	m, s, _, _ := newTestMenu(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			_, _ = m.Set(testMod.UniqueID, "Amount", n)
			_, _ = m.Values(testMod.UniqueID)
		}(i)
	}

	wg.Wait()

	assert.GreaterOrEqual(t, s.Amount, 0)
	assert.Less(t, s.Amount, 50)
}
