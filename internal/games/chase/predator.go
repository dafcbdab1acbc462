package chase

import (
	"math"
	"math/rand"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
)

// PredatorState is the behavioral mode of a predator.
type PredatorState int

const (
	StateHunting PredatorState = iota
	StateIntercepting
	StatePatrolling
)

// String returns a human-readable name for the state.
func (s PredatorState) String() string {
	switch s {
	case StateHunting:
		return "Hunting"
	case StateIntercepting:
		return "Intercepting"
	case StatePatrolling:
		return "Patrolling"
	default:
		return "Unknown"
	}
}

// Behavior constants, in world units and seconds.
const (
	// Distance thresholds driving state transitions. The band between
	// HuntDistance and PatrolDistance is a hysteresis zone: a predator that
	// is not Hunting keeps its current state there, and Hunting is only left
	// through the LoseDistance branch.
	HuntDistance   = 100.0
	LoseDistance   = 200.0
	PatrolDistance = 300.0

	// Prediction horizons: fraction of distance/maxSpeed used to lead the
	// target while hunting (short) and intercepting (long).
	HuntLeadFactor      = 0.3
	InterceptLeadFactor = 0.8

	// Lateral offset added while intercepting to cut the target off.
	InterceptOffset = 50.0

	// Aim error span: each axis gets uniform noise in
	// [-AimJitter, AimJitter] * (1 - accuracy), re-rolled every update.
	AimJitter = 20.0

	// Steering is skipped when the aim point is closer than this, which
	// avoids a degenerate normalization and micro-jitter on arrival.
	ArrivalEpsilon = 1.0

	// Speed scales down near the aim point: desired = min(max, dist*2).
	ArrivalSlowFactor = 2.0

	// Velocity multiplier per update call while hesitating. Applied per call,
	// not per second, so the decay rate is tied to the tick rate.
	HesitationDamping = 0.5

	// Energy kept by the velocity component reflected off a wall.
	WallRestitution = 0.8

	// Rotation only follows velocity above this component threshold, so a
	// stopped predator keeps facing its last heading.
	RotationDeadzone = 0.1

	// Patrol orbit advances by this fixed angle per update call.
	// Deliberately independent of dt.
	PatrolAngleStep = 0.5 * 0.016
)

// Per-instance randomized parameter ranges.
const (
	minReactionDelay = 0.1
	maxReactionDelay = 0.3
	minAccuracy      = 0.7
	maxAccuracy      = 0.95
	minHesitateAfter = 3.0
	maxHesitateAfter = 8.0
	minHesitateFor   = 0.2
	maxHesitateFor   = 0.8
	minPatrolRadius  = 80.0
	maxPatrolRadius  = 140.0
)

// Predator is an AI chaser with a three-state pursuit model and deliberately
// human-like imperfection: it perceives the target's velocity only at discrete
// reaction intervals, aims with bounded inaccuracy, and occasionally hesitates.
//
// One instance per predator entity; Update is called once per simulated frame
// by the owning game, strictly single-threaded. dt must be positive; callers
// are responsible for supplying valid frame deltas and finite coordinates.
type Predator struct {
	Pos      core.Vec2
	Vel      core.Vec2
	State    PredatorState
	Rotation float64 // Visual heading in radians, derived from velocity
	Size     float64 // Collision diameter in world units

	MaxSpeed float64 // Velocity magnitude cap, world units per second
	Accel    float64 // Velocity change cap, world units per second squared

	rng *rand.Rand

	// Perception: target velocity is re-estimated only every reactionDelay
	// seconds, so the estimate is stale between updates by design.
	reactionDelay   float64
	reactionTimer   float64
	lastKnownTarget core.Vec2
	estTargetVel    core.Vec2

	// Fixed per-instance aiming quality in [minAccuracy, maxAccuracy].
	accuracy float64

	// Hesitation: a randomly timed pause in intentional movement.
	hesitating      bool
	hesitationTimer float64

	// Time since the last state transition.
	stateTimer float64

	// Patrol orbit parameters, fixed at creation except for the angle.
	patrolCenter core.Vec2
	patrolRadius float64
	patrolAngle  float64
}

// NewPredator creates a predator at the given spawn position.
// The rng is the predator's only source of randomness; two predators created
// from identically seeded sources behave identically given the same inputs.
func NewPredator(pos core.Vec2, size, maxSpeed, accel float64, rng *rand.Rand) *Predator {
	return &Predator{
		Pos:             pos,
		State:           StatePatrolling,
		Size:            size,
		MaxSpeed:        maxSpeed,
		Accel:           accel,
		rng:             rng,
		reactionDelay:   uniform(rng, minReactionDelay, maxReactionDelay),
		accuracy:        uniform(rng, minAccuracy, maxAccuracy),
		lastKnownTarget: pos,
		patrolCenter:    pos,
		patrolRadius:    uniform(rng, minPatrolRadius, maxPatrolRadius),
		patrolAngle:     uniform(rng, 0, 2*math.Pi),
	}
}

// IsHesitating reports whether the predator is currently pausing.
func (p *Predator) IsHesitating() bool {
	return p.hesitating
}

// Accuracy returns the fixed per-instance aiming quality.
func (p *Predator) Accuracy() float64 {
	return p.accuracy
}

// Update advances the predator by dt seconds toward (or around) target,
// keeping it inside bounds. It mutates the predator in place.
func (p *Predator) Update(dt float64, target, bounds core.Vec2) {
	p.perceive(dt, target)

	distance := p.Pos.Dist(target)
	p.transition(dt, distance)
	p.updateHesitation(dt)

	aim := p.aimPoint(distance, target)

	if p.hesitating {
		// Intentional steering suppressed; coast and bleed off speed.
		p.Vel = p.Vel.Scale(HesitationDamping)
	} else {
		p.steer(dt, aim)
	}

	p.integrate(dt, bounds)
}

// perceive re-estimates the target's velocity once per reaction interval.
// Between intervals the predator acts on the stale snapshot.
func (p *Predator) perceive(dt float64, target core.Vec2) {
	p.reactionTimer += dt
	if p.reactionTimer >= p.reactionDelay {
		p.estTargetVel = target.Sub(p.lastKnownTarget).Scale(1 / p.reactionDelay)
		p.lastKnownTarget = target
		p.reactionTimer = 0
	}
}

// transition applies the distance-driven state policy in priority order.
// Evaluated every frame; not a latched machine.
func (p *Predator) transition(dt float64, distance float64) {
	p.stateTimer += dt

	switch {
	case distance < HuntDistance:
		p.setState(StateHunting)
	case distance > LoseDistance && p.State == StateHunting:
		p.setState(StateIntercepting)
	case distance > PatrolDistance:
		p.setState(StatePatrolling)
	}
}

// setState records a transition, resetting the state timer on change.
func (p *Predator) setState(s PredatorState) {
	if p.State != s {
		p.State = s
		p.stateTimer = 0
	}
}

// updateHesitation toggles the hesitation pause. Both thresholds are
// re-rolled on every comparison, so the pause timing is irregular.
func (p *Predator) updateHesitation(dt float64) {
	p.hesitationTimer += dt
	if !p.hesitating {
		if p.hesitationTimer > uniform(p.rng, minHesitateAfter, maxHesitateAfter) {
			p.hesitating = true
			p.hesitationTimer = 0
		}
	} else {
		if p.hesitationTimer > uniform(p.rng, minHesitateFor, maxHesitateFor) {
			p.hesitating = false
			p.hesitationTimer = 0
		}
	}
}

// aimPoint computes the state-dependent pursuit point, then blurs it by the
// per-instance accuracy. The jitter is re-rolled every call, so the aim point
// wanders continuously even at high accuracy.
func (p *Predator) aimPoint(distance float64, target core.Vec2) core.Vec2 {
	var aim core.Vec2

	switch p.State {
	case StateHunting:
		lead := distance / p.MaxSpeed * HuntLeadFactor
		aim = target.Add(p.estTargetVel.Scale(lead))

	case StateIntercepting:
		lead := distance / p.MaxSpeed * InterceptLeadFactor
		aim = target.Add(p.estTargetVel.Scale(lead))

		// Cut the target off: push the aim sideways on whichever axis the
		// target is moving least along, toward the side the predator is on.
		if math.Abs(p.estTargetVel.X) < math.Abs(p.estTargetVel.Y) {
			if p.Pos.X < target.X {
				aim.X += InterceptOffset
			} else {
				aim.X -= InterceptOffset
			}
		} else {
			if p.Pos.Y < target.Y {
				aim.Y += InterceptOffset
			} else {
				aim.Y -= InterceptOffset
			}
		}

	case StatePatrolling:
		p.patrolAngle += PatrolAngleStep
		aim = core.Vec2{
			X: p.patrolCenter.X + math.Cos(p.patrolAngle)*p.patrolRadius,
			Y: p.patrolCenter.Y + math.Sin(p.patrolAngle)*p.patrolRadius,
		}
	}

	jitter := AimJitter * (1 - p.accuracy)
	aim.X += uniform(p.rng, -jitter, jitter)
	aim.Y += uniform(p.rng, -jitter, jitter)
	return aim
}

// steer accelerates toward the aim point with smooth arrival.
func (p *Predator) steer(dt float64, aim core.Vec2) {
	to := aim.Sub(p.Pos)
	dist := to.Len()
	if dist <= ArrivalEpsilon {
		return
	}

	dir := to.Scale(1 / dist)
	desiredSpeed := math.Min(p.MaxSpeed, dist*ArrivalSlowFactor)
	desired := dir.Scale(desiredSpeed)

	// The velocity change is capped at Accel*dt regardless of direction, so
	// Accel is the maximum speed change in world units per second squared.
	accel := desired.Sub(p.Vel).Scale(p.Accel * dt).ClampLen(p.Accel * dt)
	p.Vel = p.Vel.Add(accel).ClampLen(p.MaxSpeed)
}

// integrate moves the predator and resolves wall bounces. Runs even while
// hesitating so a coasting predator still slides and bounces.
func (p *Predator) integrate(dt float64, bounds core.Vec2) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	half := p.Size / 2

	// Reflected components are forced away from the wall regardless of the
	// prior sign, with energy loss on the bounce.
	if p.Pos.X < half {
		p.Pos.X = half
		p.Vel.X = math.Abs(p.Vel.X) * WallRestitution
	} else if p.Pos.X > bounds.X-half {
		p.Pos.X = bounds.X - half
		p.Vel.X = -math.Abs(p.Vel.X) * WallRestitution
	}
	if p.Pos.Y < half {
		p.Pos.Y = half
		p.Vel.Y = math.Abs(p.Vel.Y) * WallRestitution
	} else if p.Pos.Y > bounds.Y-half {
		p.Pos.Y = bounds.Y - half
		p.Vel.Y = -math.Abs(p.Vel.Y) * WallRestitution
	}

	if math.Abs(p.Vel.X) > RotationDeadzone || math.Abs(p.Vel.Y) > RotationDeadzone {
		p.Rotation = math.Atan2(p.Vel.Y, p.Vel.X)
	}
}

// CheckCollision reports whether the predator touches a target of the given
// size (diameter). Pure; callable any number of times per frame.
func (p *Predator) CheckCollision(target core.Vec2, targetSize float64) bool {
	return p.Pos.Dist(target) < (p.Size+targetSize)/2
}

// uniform draws from [min, max) using the given source.
func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
