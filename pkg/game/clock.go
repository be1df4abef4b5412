package game

// FrameClock fans one per-frame tick out to its subscribers, in subscription
// order. dt is in milliseconds.
//
// The viewer ticks it from ebiten's Update; the headless simulator ticks it
// with a fixed step.
type FrameClock struct {
	subs    []*clockSub
	elapsed float64
	frames  int
}

type clockSub struct {
	fn     func(dtMs float64)
	active bool
}

// NewFrameClock creates a clock with no subscribers.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Subscribe registers fn for every subsequent Tick. The returned func
// unsubscribes; it is safe to call from inside a tick and more than once.
func (c *FrameClock) Subscribe(fn func(dtMs float64)) (unsubscribe func()) {
	sub := &clockSub{fn: fn, active: true}
	c.subs = append(c.subs, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range c.subs {
			if s == sub {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Tick delivers dtMs to every subscriber. Subscribers added during a tick
// first run on the next one.
func (c *FrameClock) Tick(dtMs float64) {
	c.elapsed += dtMs
	c.frames++
	subs := c.subs[:len(c.subs):len(c.subs)]
	for _, s := range subs {
		if s.active {
			s.fn(dtMs)
		}
	}
}

// Elapsed returns the total ticked time in milliseconds.
func (c *FrameClock) Elapsed() float64 {
	return c.elapsed
}

// Frames returns the number of ticks so far.
func (c *FrameClock) Frames() int {
	return c.frames
}
