package tween

// Group owns a clock and the tweens running on it.
//
// Update advances the clock and updates every playing tween in start order.
// Tweens started during an Update (chained steps, parallel peers, timers
// scheduled from callbacks) are updated in the same call with the same
// clock value.
type Group struct {
	now      float64
	tweens   []*Tween
	added    []*Tween
	updating bool
}

// NewGroup creates a Group whose clock starts at 0.
func NewGroup() *Group {
	return &Group{}
}

// Now returns the group clock in milliseconds.
func (g *Group) Now() float64 {
	return g.now
}

// Len returns the number of playing tweens, timers included.
func (g *Group) Len() int {
	return len(g.tweens)
}

// Update advances the clock by dt milliseconds and updates all tweens.
func (g *Group) Update(dt float64) {
	if dt > 0 {
		g.now += dt
	}

	batch := append([]*Tween(nil), g.tweens...)
	g.updating = true
	for len(batch) > 0 {
		g.added = nil
		for _, tw := range batch {
			if tw.inGroup {
				tw.update(g.now)
			}
		}
		batch = g.added
	}
	g.added = nil
	g.updating = false
}

// New creates a tween on this group. It does not start it.
func (g *Group) New(target Target, to Values, opts Options) *Tween {
	return newTween(g, target, to, opts)
}

// After runs fn once after delayMs of group time. The returned cancel func
// is safe to call at any time, any number of times.
func (g *Group) After(delayMs float64, fn func()) (cancel func()) {
	tw := newTween(g, nil, nil, Options{Time: delayMs, OnComplete: fn})
	tw.Start()
	return tw.Stop
}

// RemoveAll stops every tween in the group. Chained tweens do not start.
func (g *Group) RemoveAll() {
	for _, tw := range append([]*Tween(nil), g.tweens...) {
		tw.playing = false
		tw.inGroup = false
	}
	g.tweens = nil
	g.added = nil
}

func (g *Group) add(tw *Tween) {
	if tw.inGroup {
		return
	}
	tw.inGroup = true
	g.tweens = append(g.tweens, tw)
	if g.updating {
		g.added = append(g.added, tw)
	}
}

func (g *Group) remove(tw *Tween) {
	if !tw.inGroup {
		return
	}
	tw.inGroup = false
	for i, t := range g.tweens {
		if t == tw {
			g.tweens = append(g.tweens[:i], g.tweens[i+1:]...)
			return
		}
	}
}
