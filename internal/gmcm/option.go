package gmcm

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/pkg/errors"
)

// Kind is the control type of an option.
type Kind string

// Option kinds.
const (
	KindLabel   Kind = "label"
	KindBool    Kind = "bool"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindString  Kind = "string"
	KindButton  Kind = "button"
	KindChoice  Kind = "choice"
	KindComplex Kind = "complex"
)

// Option is one registered row of a config page.
type Option struct {
	Kind        Kind
	Name        string
	Description string
	Clamped     bool
	Min         float64
	Max         float64
	Choices     []string

	get func() any
	set func(any) error

	update func(Vector2, any) any
	draw   func(Canvas, Vector2, any) any
	onSave func(any)
	state  any
}

// Editable reports whether the option has a set accessor.
func (o *Option) Editable() bool {
	return o.set != nil
}

// OptionView is the JSON shape of an option with its current value.
type OptionView struct {
	Kind        Kind     `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Value       any      `json:"value"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Choices     []string `json:"choices,omitempty"`
}

func (o *Option) view() OptionView {
	v := OptionView{
		Kind:        o.Kind,
		Name:        o.Name,
		Description: o.Description,
		Choices:     o.Choices,
	}

	if o.get != nil {
		v.Value = o.get()
	}

	if o.Clamped {
		lo, hi := o.Min, o.Max
		v.Min, v.Max = &lo, &hi
	}

	return v
}

func (o *Option) invalid(value any) error {
	return errors.Wrapf(ErrInvalidValue, "option %q expects %s, got %T", o.Name, o.Kind, value)
}

func newLabel(name, desc string) *Option {
	return &Option{Kind: KindLabel, Name: name, Description: desc}
}

func newBoolOption(name, desc string, get func() bool, set func(bool)) *Option {
	o := &Option{Kind: KindBool, Name: name, Description: desc}
	o.get = func() any { return get() }
	o.set = func(value any) error {
		b, ok := value.(bool)
		if !ok {
			return o.invalid(value)
		}

		set(b)

		return nil
	}

	return o
}

func newIntOption(name, desc string, get func() int, set func(int)) *Option {
	o := &Option{Kind: KindInt, Name: name, Description: desc}
	o.get = func() any { return get() }
	o.set = func(value any) error {
		if o.Clamped {
			// clamp before converting so huge values land on the bound
			f, ok := toFloat(value)
			if !ok || f != math.Trunc(f) {
				return o.invalid(value)
			}

			set(int(math.Max(o.Min, math.Min(o.Max, f))))

			return nil
		}

		n, ok := toInt(value)
		if !ok {
			return o.invalid(value)
		}

		set(n)

		return nil
	}

	return o
}

func newFloatOption(name, desc string, get func() float32, set func(float32)) *Option {
	o := &Option{Kind: KindFloat, Name: name, Description: desc}
	o.get = func() any { return get() }
	o.set = func(value any) error {
		f, ok := toFloat(value)
		if !ok {
			return o.invalid(value)
		}

		if o.Clamped {
			f = math.Max(o.Min, math.Min(o.Max, f))
		}

		set(float32(f))

		return nil
	}

	return o
}

func newStringOption(kind Kind, name, desc string, get func() string, set func(string)) *Option {
	o := &Option{Kind: kind, Name: name, Description: desc}
	o.get = func() any { return get() }
	o.set = func(value any) error {
		s, ok := value.(string)
		if !ok {
			return o.invalid(value)
		}

		if o.Kind == KindChoice && !slices.Contains(o.Choices, s) {
			return errors.Wrapf(ErrInvalidChoice, "option %q: %q", o.Name, s)
		}

		set(s)

		return nil
	}

	return o
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()

		return int(i), err == nil
	default:
		f, ok := toFloat(value)
		if !ok || f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
			return 0, false
		}

		return int(f), true
	}
}

func toFloat(value any) (float64, bool) {
	var f float64

	switch n := value.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
