package gridshift

import (
	"fmt"

	"github.com/vovakirdan/gridshift/internal/grid"
)

const (
	flashMS        = 250  // how long a freshly flipped cell stays bright
	cueMS          = 1000 // how long the chain and score cues stay up
	lowTimeSeconds = 5    // countdown turns red at this many seconds
)

// effects is presentation-only state. The board underneath is already in
// its final state; effects only change how it is drawn for a few ticks.
type effects struct {
	reveal  map[grid.Coord]uint64 // cell drawn as flipped from this tick
	flash   map[grid.Coord]uint64 // cell drawn bright until this tick
	landing map[int]uint64        // enemy index drawn bright until this tick

	cue      string
	cueUntil uint64
	delta    int
	deltaEnd uint64
	lowTime  bool
}

func (f *effects) reset() {
	*f = effects{}
}

// flipped staggers the highlight of a flip by each cell's distance from
// the anchor.
func (f *effects) flipped(res grid.FlipResult, now uint64, stepTicks, flashTicks int) {
	if res.Count() == 0 {
		return
	}
	if f.reveal == nil {
		f.reveal = make(map[grid.Coord]uint64)
		f.flash = make(map[grid.Coord]uint64)
	}
	for _, fl := range res.Flipped {
		at := now + uint64(fl.Distance*stepTicks)
		f.reveal[fl.Coord] = at
		f.flash[fl.Coord] = at + uint64(flashTicks)
	}
}

// landed marks enemies that changed cell this tick.
func (f *effects) landed(before, after []grid.Coord, now uint64, ticks int) {
	if ticks <= 0 {
		return
	}
	for i := range after {
		if i < len(before) && before[i] == after[i] {
			continue
		}
		if f.landing == nil {
			f.landing = make(map[int]uint64)
		}
		f.landing[i] = now + uint64(ticks)
	}
}

func (f *effects) chain(count int, now uint64, ticks int) {
	f.cue = fmt.Sprintf("CHAIN x%d!", count)
	f.cueUntil = now + uint64(ticks)
}

func (f *effects) scored(delta int, now uint64, ticks int) {
	if now > f.deltaEnd {
		f.delta = 0
	}
	f.delta += delta
	f.deltaEnd = now + uint64(ticks)
}

// hidden reports whether c flipped but its staggered highlight has not
// reached it yet.
func (f *effects) hidden(c grid.Coord, now uint64) bool {
	at, ok := f.reveal[c]
	return ok && now < at
}

func (f *effects) flashing(c grid.Coord, now uint64) bool {
	until, ok := f.flash[c]
	return ok && now < until && !f.hidden(c, now)
}

func (f *effects) enemyLanding(i int, now uint64) bool {
	until, ok := f.landing[i]
	return ok && now < until
}

// activeCue returns the chain banner, if one is showing.
func (f *effects) activeCue(now uint64) string {
	if now < f.cueUntil {
		return f.cue
	}
	return ""
}

// activeDelta returns the points gained recently, or 0.
func (f *effects) activeDelta(now uint64) int {
	if now < f.deltaEnd {
		return f.delta
	}
	return 0
}
