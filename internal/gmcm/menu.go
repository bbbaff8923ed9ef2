package gmcm

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

// Page is the config menu of one mod, options in registration order.
type Page struct {
	Mod     modding.Manifest
	Options []*Option

	revertToDefault func()
	saveToFile      func()
}

func (p *Page) find(name string) (*Option, error) {
	var label *Option

	for _, o := range p.Options {
		if o.Name != name {
			continue
		}

		if o.Editable() {
			return o, nil
		}

		if label == nil {
			label = o
		}
	}

	if label != nil {
		return nil, errors.Wrapf(ErrNotEditable, "option %q", name)
	}

	return nil, errors.Wrapf(ErrOptionNotFound, "option %q", name)
}

// PageSummary lists a page without its options.
type PageSummary struct {
	ModID   string `json:"modId"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Options int    `json:"options"`
}

// PageView is the JSON shape of a page with all current values.
type PageView struct {
	ModID   string       `json:"modId"`
	Name    string       `json:"name"`
	Version string       `json:"version"`
	Options []OptionView `json:"options"`
}

func (p *Page) view() PageView {
	v := PageView{
		ModID:   p.Mod.UniqueID,
		Name:    p.Mod.Name,
		Version: p.Mod.Version,
		Options: make([]OptionView, 0, len(p.Options)),
	}

	for _, o := range p.Options {
		v.Options = append(v.Options, o.view())
	}

	return v
}

// Menu is the in-process config menu. It is safe for concurrent use: every
// accessor call of every mod runs under one lock, so mods see the same
// serialized access they would get from a single UI thread.
type Menu struct {
	mu    sync.Mutex
	pages map[string]*Page
	order []string
}

var _ API = (*Menu)(nil)

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{pages: make(map[string]*Page)}
}

// RegisterModConfig creates the page of mod, replacing an earlier one.
func (m *Menu) RegisterModConfig(mod modding.Manifest, revertToDefault func(), saveToFile func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.pages[mod.UniqueID]; !exists {
		m.order = append(m.order, mod.UniqueID)
	}

	m.pages[mod.UniqueID] = &Page{
		Mod:             mod,
		revertToDefault: revertToDefault,
		saveToFile:      saveToFile,
	}

	log.Debug().Str("mod", mod.UniqueID).Msg("config menu registered")
}

func (m *Menu) add(mod modding.Manifest, o *Option) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pages[mod.UniqueID]
	if !ok {
		log.Warn().Err(ErrModNotRegistered).
			Str("mod", mod.UniqueID).
			Str("option", o.Name).
			Msg("option dropped, RegisterModConfig must be called first")

		return
	}

	p.Options = append(p.Options, o)
}

// RegisterLabel implements API.
func (m *Menu) RegisterLabel(mod modding.Manifest, labelName, labelDesc string) {
	m.add(mod, newLabel(labelName, labelDesc))
}

// RegisterBoolOption implements API.
func (m *Menu) RegisterBoolOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() bool, optionSet func(bool)) {
	m.add(mod, newBoolOption(optionName, optionDesc, optionGet, optionSet))
}

// RegisterIntOption implements API.
func (m *Menu) RegisterIntOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() int, optionSet func(int)) {
	m.add(mod, newIntOption(optionName, optionDesc, optionGet, optionSet))
}

// RegisterFloatOption implements API.
func (m *Menu) RegisterFloatOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() float32, optionSet func(float32)) {
	m.add(mod, newFloatOption(optionName, optionDesc, optionGet, optionSet))
}

// RegisterStringOption implements API.
func (m *Menu) RegisterStringOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() string, optionSet func(string)) {
	m.add(mod, newStringOption(KindString, optionName, optionDesc, optionGet, optionSet))
}

// RegisterButtonOption implements API.
func (m *Menu) RegisterButtonOption(mod modding.Manifest, optionName, optionDesc string, optionGet func() Button, optionSet func(Button)) {
	get := func() string { return string(optionGet()) }
	set := func(s string) { optionSet(Button(s)) }

	m.add(mod, newStringOption(KindButton, optionName, optionDesc, get, set))
}

// RegisterClampedIntOption implements API. Values set through the menu are
// clamped to [minValue, maxValue].
func (m *Menu) RegisterClampedIntOption(
	mod modding.Manifest,
	optionName, optionDesc string,
	optionGet func() int, optionSet func(int),
	minValue, maxValue int,
) {
	o := newIntOption(optionName, optionDesc, optionGet, optionSet)
	o.Clamped, o.Min, o.Max = true, float64(minValue), float64(maxValue)

	m.add(mod, o)
}

// RegisterClampedFloatOption implements API.
func (m *Menu) RegisterClampedFloatOption(
	mod modding.Manifest,
	optionName, optionDesc string,
	optionGet func() float32, optionSet func(float32),
	minValue, maxValue float32,
) {
	o := newFloatOption(optionName, optionDesc, optionGet, optionSet)
	o.Clamped, o.Min, o.Max = true, float64(minValue), float64(maxValue)

	m.add(mod, o)
}

// RegisterChoiceOption implements API. Only labels from choices are accepted.
func (m *Menu) RegisterChoiceOption(
	mod modding.Manifest,
	optionName, optionDesc string,
	optionGet func() string, optionSet func(string),
	choices []string,
) {
	o := newStringOption(KindChoice, optionName, optionDesc, optionGet, optionSet)
	o.Choices = append([]string(nil), choices...)

	m.add(mod, o)
}

// RegisterComplexOption implements API. The draw callback is kept for a
// renderer; the menu itself only drives update and onSave.
func (m *Menu) RegisterComplexOption(
	mod modding.Manifest,
	optionName, optionDesc string,
	widgetUpdate func(pos Vector2, state any) any,
	widgetDraw func(canvas Canvas, pos Vector2, state any) any,
	onSave func(state any),
) {
	m.add(mod, &Option{
		Kind:        KindComplex,
		Name:        optionName,
		Description: optionDesc,
		update:      widgetUpdate,
		draw:        widgetDraw,
		onSave:      onSave,
	})
}

func (m *Menu) page(modID string) (*Page, error) {
	p, ok := m.pages[modID]
	if !ok {
		return nil, errors.Wrapf(ErrModNotRegistered, "mod %q", modID)
	}

	return p, nil
}

// Pages lists all registered pages in registration order.
func (m *Menu) Pages() []PageSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]PageSummary, 0, len(m.order))
	for _, id := range m.order {
		p := m.pages[id]
		out = append(out, PageSummary{
			ModID:   id,
			Name:    p.Mod.Name,
			Version: p.Mod.Version,
			Options: len(p.Options),
		})
	}

	return out
}

// Page returns the page of modID with current values.
func (m *Menu) Page(modID string) (PageView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.page(modID)
	if err != nil {
		return PageView{}, err
	}

	return p.view(), nil
}

// Values returns the current value of every editable option by name.
func (m *Menu) Values(modID string) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.page(modID)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(p.Options))
	for _, o := range p.Options {
		if o.Editable() {
			out[o.Name] = o.get()
		}
	}

	return out, nil
}

// Set passes value to the set accessor of the named option and returns the
// option as read back through its get accessor.
func (m *Menu) Set(modID, name string, value any) (OptionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.page(modID)
	if err != nil {
		return OptionView{}, err
	}

	o, err := p.find(name)
	if err != nil {
		return OptionView{}, err
	}

	if err = o.set(value); err != nil {
		return OptionView{}, err
	}

	return o.view(), nil
}

// Reset calls the revert callback of modID.
func (m *Menu) Reset(modID string) (PageView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.page(modID)
	if err != nil {
		return PageView{}, err
	}

	if p.revertToDefault != nil {
		p.revertToDefault()
	}

	return p.view(), nil
}

// Save hands every custom control its state, then calls the save callback of modID.
func (m *Menu) Save(modID string) (PageView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, err := m.page(modID)
	if err != nil {
		return PageView{}, err
	}

	for _, o := range p.Options {
		if o.Kind != KindComplex {
			continue
		}

		if o.update != nil {
			o.state = o.update(Vector2{}, o.state)
		}

		if o.onSave != nil {
			o.onSave(o.state)
		}
	}

	if p.saveToFile != nil {
		p.saveToFile()
	}

	return p.view(), nil
}
