package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeText denotes free-form status values.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value exposed for inspection.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the live state a session exposes to the HUD.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// StepSize is the increment of one button press. Int controls move by whole
// units of at least one.
func (c ParameterControl) StepSize() float64 {
	switch c.Type {
	case ParamTypeInt:
		if step := math.Round(c.Step); step > 0 {
			return step
		}
		return 1
	case ParamTypeFloat:
		if c.Step > 0 {
			return c.Step
		}
		return 0.05
	}
	return 0
}

// Clamp limits v to the bounds that are set.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// InRange reports whether v lies within the bounds that are set.
func (c ParameterControl) InRange(v float64) bool {
	return c.Clamp(v) == v
}

// Adjust returns the value one step from current in direction, clamped to the
// bounds. ok is false when the press would not change anything.
func (c ParameterControl) Adjust(current float64, direction int) (value float64, ok bool) {
	step := c.StepSize()
	if step == 0 || direction == 0 {
		return current, false
	}
	if c.Type == ParamTypeInt {
		current = math.Round(current)
	}
	target := c.Clamp(current + float64(direction)*step)
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}
