package formation

import "math"

// Phase tells whether an enemy is still closing in on its path or following it.
type Phase int

const (
	Converging Phase = iota // Far from the target point; angle frozen
	Tracking                // Close to the target point; angle advancing
)

func (p Phase) String() string {
	switch p {
	case Converging:
		return "converging"
	case Tracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// trackingDivisor scales the catch-up threshold: an enemy advances its angle
// only while it is within maxStep*speed/trackingDivisor of its target.
const trackingDivisor = 20.0

// State is the per-enemy formation state.
type State struct {
	Template Template
	Angle    float64
}

// NewState starts an enemy at the template's initial angle.
func NewState(t Template) State {
	return State{Template: t, Angle: t.Angle}
}

// Motion is the outcome of one integration step.
type Motion struct {
	Position Point   // New position
	Angle    float64 // New angle (unchanged while converging)
	Target   Point   // Point on the ellipse the enemy moved towards
	Distance float64 // Distance to Target before moving
	Phase    Phase
}

// Step advances an enemy at pos by one tick of dt seconds along its ellipse.
//
// The enemy moves straight towards the ellipse point at the next angle, by at
// most dt*speed, and never past that point on either axis. The next angle is
// kept only if the enemy was already close to the point; otherwise it catches
// up first.
func Step(pos Point, st State, dt float64) Motion {
	t := st.Template

	// Enemies entering from the left sweep counter-clockwise.
	dir := -1.0
	if t.Start.X < 0 {
		dir = 1
	}

	maxStep := dt * t.Speed
	rate := dir * t.Speed * dt / (math.Min(t.Radius.X, t.Radius.Y) * math.Pi / 2)
	next := st.Angle + rate

	target := Point{
		X: t.Pivot.X + t.Radius.X*math.Cos(next),
		Y: t.Pivot.Y + t.Radius.Y*math.Sin(next),
	}

	dx := pos.X - target.X
	dy := pos.Y - target.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	ratio := 0.0
	if distance != 0 {
		ratio = maxStep / distance
	}

	m := Motion{
		Position: Point{
			X: clampAxis(pos.X-dx*ratio, dx, target.X),
			Y: clampAxis(pos.Y-dy*ratio, dy, target.Y),
		},
		Angle:    st.Angle,
		Target:   target,
		Distance: distance,
		Phase:    Converging,
	}
	if distance < maxStep*t.Speed/trackingDivisor {
		m.Angle = next
		m.Phase = Tracking
	}
	return m
}

// Integrate returns the enemy's new position and angle after dt seconds.
func Integrate(pos Point, st State, dt float64) (Point, float64) {
	m := Step(pos, st, dt)
	return m.Position, m.Angle
}

// Advance moves pos by one tick, updating the state's angle in place.
func (s *State) Advance(pos Point, dt float64) Motion {
	m := Step(pos, *s, dt)
	s.Angle = m.Angle
	return m
}

// clampAxis stops v at target when moving along an axis where the current
// offset from target is d.
func clampAxis(v, d, target float64) float64 {
	if d > 0 {
		return math.Max(v, target)
	}
	return math.Min(v, target)
}
