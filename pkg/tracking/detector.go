package tracking

import (
	"github.com/cbodonnell/swipemath/pkg/collisions"
	"github.com/cbodonnell/swipemath/pkg/game/types"
)

// Candidate is a side waiting to be confirmed. Token ties the confirmation to
// the observation that produced it.
type Candidate struct {
	Side  types.Side
	Token uint64
}

// Detector debounces per-frame anchor positions into side picks.
//
// A side becomes a candidate when the anchor enters a side zone different from
// the last stable side. The candidate is only confirmed if nothing has moved
// the anchor out of that zone in the meantime. Returning to the neutral band
// or losing the anchor forgets the last side, so the same side can be picked
// again.
type Detector struct {
	zones    *collisions.ZoneMap
	mirrored bool
	lastSide types.Side
	token    uint64
}

// NewDetector returns a detector whose side zones each cover sideZoneWidth of
// the screen. When mirrored is set the camera feed is shown flipped, so the
// left edge of the frame is the player's right.
func NewDetector(sideZoneWidth float64, mirrored bool) *Detector {
	return &Detector{
		zones:    collisions.NewZoneMap(sideZoneWidth),
		mirrored: mirrored,
	}
}

// Classify maps a projected anchor x (normalized device coordinates) to a side.
func (d *Detector) Classify(x float64) types.Side {
	var side types.Side
	switch d.zones.Classify(x) {
	case collisions.ZoneLow:
		side = types.SideLeft
	case collisions.ZoneHigh:
		side = types.SideRight
	default:
		return types.SideNone
	}
	if d.mirrored {
		return side.Opposite()
	}
	return side
}

// Observe processes one tracking frame. accepting reports whether the game
// would take a pick right now. It returns a candidate to confirm after the
// confirmation delay.
func (d *Detector) Observe(visible bool, x float64, accepting bool) (Candidate, bool) {
	if !visible {
		d.Reset()
		return Candidate{}, false
	}

	side := d.Classify(x)
	if side == types.SideNone {
		d.lastSide = types.SideNone
		return Candidate{}, false
	}
	if side == d.lastSide || !accepting {
		return Candidate{}, false
	}

	d.lastSide = side
	d.token++
	return Candidate{Side: side, Token: d.token}, true
}

// Confirm reports whether c is still the stable side.
func (d *Detector) Confirm(c Candidate) bool {
	return c.Token == d.token && c.Side != types.SideNone && c.Side == d.lastSide
}

// Reset forgets the last side and invalidates pending candidates.
func (d *Detector) Reset() {
	d.lastSide = types.SideNone
	d.token++
}

// LastSide is the last stable side, SideNone when the anchor is neutral or lost.
func (d *Detector) LastSide() types.Side {
	return d.lastSide
}
