package tour

import "github.com/go-gl/mathgl/mgl64"

// Waypoint is one stop of the guided tour.
type Waypoint struct {
	Label    string     `yaml:"label"`
	Position mgl64.Vec3 `yaml:"position"`
	LookAt   mgl64.Vec3 `yaml:"look_at"`
	TravelMs float64    `yaml:"travel_ms"`
	PauseMs  float64    `yaml:"pause_ms"`
}

// DefaultWaypoints returns the stock route past each composition, ending on
// an overview of the whole scene.
func DefaultWaypoints() []Waypoint {
	return []Waypoint{
		{Label: "Portal", Position: mgl64.Vec3{4, 2, -6}, LookAt: mgl64.Vec3{4, 2, -6}, TravelMs: 6000, PauseMs: 2000},
		{Label: "Crystals", Position: mgl64.Vec3{-3, -2, 2}, LookAt: mgl64.Vec3{-3, -2, 2}, TravelMs: 6000, PauseMs: 2000},
		{Label: "Galaxy", Position: mgl64.Vec3{-4, -3, 8}, LookAt: mgl64.Vec3{-4, -3, 8}, TravelMs: 7000, PauseMs: 2000},
		{Label: "Abstract", Position: mgl64.Vec3{-5, 3, -10}, LookAt: mgl64.Vec3{-5, 3, -10}, TravelMs: 6000, PauseMs: 2000},
		{Label: "Overview", Position: mgl64.Vec3{0, 0, 8}, LookAt: mgl64.Vec3{0, 0, 0}, TravelMs: 5000, PauseMs: 0},
	}
}

// TotalMs is the nominal duration of a full run over the waypoints.
func TotalMs(waypoints []Waypoint) float64 {
	total := 0.0
	for _, wp := range waypoints {
		total += wp.TravelMs + wp.PauseMs
	}
	return total
}
