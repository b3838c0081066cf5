package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for field elements:
// teal pitch, cyan goals and boost pads, pink barriers, orange shields.
const (
	ColorDefault Color = iota
	ColorPitch         // field border and midline
	ColorPitchDim      // inner field detail
	ColorGoal          // goal mouths
	ColorBall
	ColorBoost   // boost pad and drag preview
	ColorBarrier // ink wall segments
	ColorBarrierDim
	ColorShield // goal shields, stall nudges
	ColorZone   // goal-approach block zones
	ColorText
	ColorMuted
	ColorAccent // countdown, banners
)
