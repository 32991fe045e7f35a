package session

import "parallax-showcase/internal/core"

var tuningControls = []core.ParameterControl{
	{Key: "cursor_damping", Label: "Cursor damping", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
	{Key: "rotation_speed", Label: "Orbit speed", Type: core.ParamTypeFloat, Step: 0.001, Min: 0.001, Max: 0.05, HasMin: true, HasMax: true},
	{Key: "pan_speed", Label: "Pan speed", Type: core.ParamTypeFloat, Step: 0.001, Min: 0.001, Max: 0.05, HasMin: true, HasMax: true},
	{Key: "zoom_speed", Label: "Zoom speed", Type: core.ParamTypeFloat, Step: 0.005, Min: 0.005, Max: 0.1, HasMin: true, HasMax: true},
	{Key: "emit_interval_ms", Label: "Exhaust ms", Type: core.ParamTypeInt, Step: 10, Min: 10, Max: 500, HasMin: true, HasMax: true},
}

// ParameterControls lists the values the HUD may adjust.
func (s *Session) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(tuningControls))
	copy(out, tuningControls)
	return out
}

// SetFloatParameter applies a float tunable. Values outside the control's
// bounds are refused. The change is kept across Reinitialize.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if !acceptTuning(key, core.ParamTypeFloat, value) {
		return false
	}
	switch key {
	case "cursor_damping":
		s.cfg.Cursor.Damping = value
		if s.cursor != nil {
			s.cursor.Damping = value
		}
	case "rotation_speed":
		s.cfg.Navigation.RotationSpeed = value
	case "pan_speed":
		s.cfg.Navigation.PanSpeed = value
	case "zoom_speed":
		s.cfg.Navigation.ZoomSpeed = value
	}
	if s.nav != nil {
		nc := s.nav.Config()
		nc.RotationSpeed = s.cfg.Navigation.RotationSpeed
		nc.PanSpeed = s.cfg.Navigation.PanSpeed
		nc.ZoomSpeed = s.cfg.Navigation.ZoomSpeed
		s.nav.SetConfig(nc)
	}
	s.log.Printf("[session] %s set to %.3f", key, value)
	return true
}

// SetIntParameter applies an integer tunable.
func (s *Session) SetIntParameter(key string, value int) bool {
	if !acceptTuning(key, core.ParamTypeInt, float64(value)) {
		return false
	}
	switch key {
	case "emit_interval_ms":
		s.cfg.Trail.EmitIntervalMs = float64(value)
		if s.trail != nil {
			s.trail.SetEmitInterval(float64(value))
		}
	}
	s.log.Printf("[session] %s set to %d", key, value)
	return true
}

func acceptTuning(key string, typ core.ParamType, value float64) bool {
	for _, ctrl := range tuningControls {
		if ctrl.Key == key {
			return ctrl.Type == typ && ctrl.InRange(value)
		}
	}
	return false
}

func (s *Session) tuningParams() []core.Parameter {
	return []core.Parameter{
		floatParam("cursor_damping", "Cursor damping", s.cfg.Cursor.Damping),
		floatParam("rotation_speed", "Orbit speed", s.cfg.Navigation.RotationSpeed),
		floatParam("pan_speed", "Pan speed", s.cfg.Navigation.PanSpeed),
		floatParam("zoom_speed", "Zoom speed", s.cfg.Navigation.ZoomSpeed),
		intParam("emit_interval_ms", "Exhaust ms", int(s.cfg.Trail.EmitIntervalMs)),
	}
}
