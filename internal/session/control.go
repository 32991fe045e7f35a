package session

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"parallax-showcase/internal/core"
	"parallax-showcase/internal/tour"
)

// StartGuidedTour hands the camera to the tour. It reports whether the tour
// started.
func (s *Session) StartGuidedTour() bool {
	if err := s.Check(); err != nil {
		s.log.Printf("[session] cannot start tour: %v", err)
		return false
	}
	if !s.tour.Start(s.clock.NowMs()) {
		return false
	}
	// The tour frames the craft in world space, so the scene root goes back
	// to the origin.
	s.nav.ClearPan()
	s.pan = mgl64.Vec3{}
	s.trail.Reset()
	s.cancelCaption()
	s.setCaption(false)
	if s.cb.OnTourStateChange != nil {
		s.cb.OnTourStateChange(true)
	}
	return true
}

// StopGuidedTour interrupts a running tour and gives the camera back to free
// navigation.
func (s *Session) StopGuidedTour() {
	if s.tour == nil {
		return
	}
	s.tour.Interrupt()
}

// IsTourActive reports whether the tour owns the camera.
func (s *Session) IsTourActive() bool {
	return s.tour != nil && s.tour.Active()
}

func (s *Session) tourFadeOut() {
	if s.cb.OnFadeOut != nil {
		s.cb.OnFadeOut()
	}
}

func (s *Session) tourArrived(index int, wp tour.Waypoint) {
	if s.cb.OnWaypoint != nil {
		s.cb.OnWaypoint(index, wp.Label)
	}
}

// tourEnded resynchronizes navigation from where the tour left the camera so
// free look resumes without a snap.
func (s *Session) tourEnded() {
	s.nav.Resync(s.camera.Position)
	s.trail.Reset()
	if s.cb.OnTourStateChange != nil {
		s.cb.OnTourStateChange(false)
	}
	s.setCaption(true)
}

// Parameters captures the live state for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	if s.camera == nil {
		return core.ParameterSnapshot{}
	}
	yaw, pitch, radius := s.nav.Currents()
	status := s.tour.Status().String()
	label := "-"
	if wp, ok := s.tour.Current(); ok {
		label = wp.Label
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Scene", Params: []core.Parameter{
			intParam("groups", "Groups", len(s.registry.Groups())),
			intParam("entities", "Entities", s.registry.Len()),
			textParam("compositions", "Compositions", fmt.Sprint(s.built)),
		}},
		{Name: "Cursor", Params: []core.Parameter{
			floatParam("cursor_x", "Cursor X", s.cursor.Current[0]),
			floatParam("cursor_y", "Cursor Y", s.cursor.Current[1]),
		}},
		{Name: "Camera", Params: []core.Parameter{
			floatParam("yaw", "Yaw", yaw),
			floatParam("pitch", "Pitch", pitch),
			floatParam("radius", "Radius", radius),
			textParam("camera", "Position", fmt.Sprintf("%.2f %.2f %.2f", s.camera.Position[0], s.camera.Position[1], s.camera.Position[2])),
		}},
		{Name: "Tour", Params: []core.Parameter{
			textParam("tour_status", "Status", status),
			textParam("tour_waypoint", "Waypoint", label),
			floatParam("tour_progress", "Progress", s.tour.Progress()),
		}},
		{Name: "Trail", Params: []core.Parameter{
			intParam("particles", "Particles", s.trail.Alive()),
			intParam("capacity", "Capacity", s.trail.Capacity()),
		}},
		{Name: "Tuning", Params: s.tuningParams()},
		{Name: "Frame", Params: []core.Parameter{
			intParam("frames", "Frames", int(s.frames)),
			floatParam("dt_ms", "Delta ms", s.lastDelta*1000),
			intParam("timers", "Timers", s.timers.Pending()),
			textParam("surface", "Surface", fmt.Sprintf("%dx%d@%.1f", s.surface.W, s.surface.H, s.surface.PixelRatio)),
			boolParam("fullscreen", "Fullscreen", s.surface.Fullscreen),
		}},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: fmt.Sprintf("%.3f", v)}
}

func boolParam(key, label string, v bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: fmt.Sprintf("%t", v)}
}

func textParam(key, label, v string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: v}
}
