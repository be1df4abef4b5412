// Package tween animates numeric properties over clock time and sequences
// those animations into parallel groups and chains.
//
// Time is measured in milliseconds of Group clock time; a Group only moves
// forward when Update is called, so the whole package is deterministic and
// single-goroutine.
package tween

import (
	"log"
	"math"
	"sort"

	"github.com/gonewx/chestfx/pkg/utils"
)

// Tween is the interpolation primitive: one target, a set of destination
// values, one duration. Tweens are created by a Group.
type Tween struct {
	group  *Group
	target Target
	to     Values

	// resolved at start: start value prepended to the destination points
	points map[string][]float64
	props  []string

	duration float64
	delay    float64
	easing   utils.EasingFunc
	repeat   int // -1 = infinite
	left     int

	startTime  float64
	playing    bool
	startFired bool
	inGroup    bool

	onStart    func()
	onUpdate   func(progress float64)
	onComplete func()

	chained []*Tween
	peers   []*Tween // started from this tween's first update
}

func newTween(g *Group, target Target, to Values, opts Options) *Tween {
	tw := &Tween{
		group:      g,
		target:     target,
		to:         to,
		duration:   math.Max(0, opts.Time),
		delay:      math.Max(0, opts.Delay),
		easing:     ParseEasing(opts.Easing),
		repeat:     opts.Repeat,
		onStart:    opts.OnStart,
		onUpdate:   opts.OnUpdate,
		onComplete: opts.OnComplete,
	}
	if tw.repeat < -1 {
		tw.repeat = 0
	}
	return tw
}

// Start schedules the tween to begin after its delay.
func (tw *Tween) Start() {
	tw.begin(tw.group.now + tw.delay)
}

// begin captures start values and joins the group with an absolute start time.
func (tw *Tween) begin(startTime float64) {
	tw.resolve()
	tw.startTime = startTime
	tw.left = tw.repeat
	tw.startFired = false
	tw.playing = true
	tw.group.add(tw)
}

func (tw *Tween) resolve() {
	tw.points = make(map[string][]float64, len(tw.to))
	tw.props = tw.props[:0]
	if tw.target == nil {
		return
	}
	for prop, dest := range tw.to {
		if len(dest) == 0 {
			continue
		}
		start, ok := tw.target.Get(prop)
		if !ok {
			log.Printf("[Tween] ⚠️ target has no property %q, skipped", prop)
			continue
		}
		pts := make([]float64, 0, len(dest)+1)
		pts = append(pts, start)
		pts = append(pts, dest...)
		tw.points[prop] = pts
		tw.props = append(tw.props, prop)
	}
	// 固定写入顺序
	sort.Strings(tw.props)
}

// Stop removes the tween from its group and stops everything chained after
// it. Stopping a tween that is not playing is a no-op.
func (tw *Tween) Stop() {
	if !tw.playing {
		return
	}
	tw.playing = false
	tw.group.remove(tw)
	for _, c := range tw.chained {
		c.Stop()
	}
}

// Chain makes next start when tw completes, at tw's end time plus next's delay.
func (tw *Tween) Chain(next *Tween) *Tween {
	tw.chained = append(tw.chained, next)
	return tw
}

// IsPlaying reports whether the tween is scheduled or running.
func (tw *Tween) IsPlaying() bool {
	return tw.playing
}

func (tw *Tween) update(now float64) {
	if now < tw.startTime {
		return
	}

	if !tw.startFired {
		tw.startFired = true
		for _, peer := range tw.peers {
			peer.begin(tw.startTime)
		}
		if tw.onStart != nil {
			tw.onStart()
		}
		if !tw.playing {
			return
		}
	}

	elapsed := 1.0
	if tw.duration > 0 {
		elapsed = math.Min(1, (now-tw.startTime)/tw.duration)
	}
	value := tw.easing(elapsed)

	for _, prop := range tw.props {
		tw.target.Set(prop, interpolate(tw.points[prop], value))
	}

	if tw.onUpdate != nil {
		tw.onUpdate(elapsed)
		if !tw.playing {
			return
		}
	}

	if elapsed < 1 {
		return
	}

	if tw.left != 0 {
		if tw.left > 0 {
			tw.left--
		}
		tw.startTime = now + tw.delay
		return
	}

	tw.playing = false
	tw.group.remove(tw)
	if tw.onComplete != nil {
		tw.onComplete()
	}
	end := tw.startTime + tw.duration
	for _, c := range tw.chained {
		c.begin(end + c.delay)
	}
}

// interpolate samples the control points at k. Outside [0, 1] (back and
// elastic easings) the first or last segment is extrapolated.
func interpolate(points []float64, k float64) float64 {
	m := len(points) - 1
	switch {
	case m < 0:
		return 0
	case m == 0:
		return points[0]
	}

	f := float64(m) * k
	if k < 0 {
		return utils.Lerp(points[0], points[1], f)
	}
	if k > 1 {
		return utils.Lerp(points[m], points[m-1], float64(m)-f)
	}
	i := int(math.Floor(f))
	if i >= m {
		return points[m]
	}
	return utils.Lerp(points[i], points[i+1], f-float64(i))
}
