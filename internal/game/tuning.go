// Package game implements the ink-soccer simulation: continuous ball physics
// inside a rounded-rectangle field, player-authored boost pads and decaying
// ink barriers, goal shields, anti-stall correction, and the kickoff state
// machine. The package is pure logic driven by externally supplied tick time;
// rendering, audio, and raw input live in the platform layer.
package game

// Field dimensions in field units. The terminal renderer scales these down;
// all physics happens at this resolution.
const (
	FieldWidth  = 1100.0
	FieldHeight = 650.0

	FieldMargin       = 40.0
	FieldCornerRadius = 92.0
)

// Goal geometry. Goals are openings in the left and right field edges.
const (
	GoalOpening = 246.0
	GoalDepth   = 30.0

	GoalLineXLeft  = FieldMargin
	GoalLineXRight = FieldWidth - FieldMargin
	GoalTop        = FieldHeight/2 - GoalOpening/2
	GoalBottom     = FieldHeight/2 + GoalOpening/2
	GoalCenterY    = FieldHeight / 2
)

// Ball tuning.
const (
	BallRadius   = 14.0
	BallDamping  = 0.995
	BallMaxSpeed = 1100.0
)

// Boost pad tuning. A pad is placed by a drag gesture; its impulse scales
// with drag length between the min and max impulse.
const (
	BoostPadThickness = 8.0
	BoostPadMinDrag   = 14.0
	BoostPadMaxLength = BallRadius * 2 * 5
	BoostImpulseMin   = 200.0
	BoostImpulseMax   = 760.0
	BoostCooldown     = 0.22

	// During WaitingTouch a candidate pad is sampled at this many evenly
	// spaced points; every sample must fall in the kicking-off half.
	boostSamplePoints = 12
)

// Ink barrier tuning. Strokes are subdivided into fixed-length segments that
// decay after a short lifetime; total live length is capped by the ink budget.
const (
	BarrierThickness   = 6.0
	BarrierSegmentStep = 8.0
	BarrierLifetime    = 2.0
	MaxInkLength       = GoalOpening * 0.34
)

// Kickoff and goal shield tuning.
const (
	KickoffCountdown   = 3.0
	GoalShieldDuration = 3.0
	ShieldRadius       = 120.0
	ShieldInsetX       = 28.0

	shieldRestitution = 2.25
	shieldCueInterval = 0.08
)

// Goal-approach block zone: a rounded rectangle in front of each goal where
// boosts are weakened and stalled balls get nudged out. Height is 1.5x the
// goal opening, with rounded corners and a straight front line.
const (
	BlockZoneHeight = 369.0 // GoalOpening * 1.5, truncated
	BlockZoneDepth  = 184.0 // GoalOpening * 0.75, truncated
	BlockZoneRadius = 92.0  // min(depth/2, height/2 - 4)

	BoostZoneMultiplier = 0.30
)

// Stall guard tuning.
const (
	StallSpeedThreshold = 20.0
	StallTimeToNudge    = 0.65
	StallNudgeImpulse   = 170.0
)

// wallRestitution applies to field edges, corners, and barrier segments.
const wallRestitution = 1.95
