package tween

// Options configures one step of a Sequence. Time, Delay, Easing and Repeat
// are shared by every animation of a parallel step; the callbacks fire once
// per step, from its first animation.
type Options struct {
	Time   float64 // ms
	Delay  float64 // ms
	Easing string  // e.g. "cubicOut"; empty = linear
	Repeat int     // extra runs, -1 = infinite

	// AutoStart starts the sequence as soon as New returns. Only honoured on
	// the first step.
	AutoStart bool

	OnStart    func()
	OnUpdate   func(progress float64)
	OnComplete func()
}

// Animation pairs a target with its destination values.
type Animation struct {
	Target Target
	To     Values
}

// State is the lifecycle of a Sequence.
type State int

const (
	Idle State = iota
	Running
	Completed
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

type step struct {
	primary *Tween
	peers   []*Tween
}

// Sequence runs steps strictly one after another. A step is either a pure
// timer (no animations), a single animation or several animations started
// together.
type Sequence struct {
	group *Group
	steps []*step
	state State
}

// New creates a Sequence whose first step is described by opts and
// animations. With no animations the step is a timer of opts.Time.
func New(g *Group, opts Options, animations ...Animation) *Sequence {
	s := &Sequence{group: g}
	s.steps = append(s.steps, s.newStep(opts, animations))
	if opts.AutoStart {
		s.Start()
	}
	return s
}

// Next appends a step that starts when the previous one completes.
func (s *Sequence) Next(opts Options, animations ...Animation) *Sequence {
	last := s.steps[len(s.steps)-1]
	st := s.newStep(opts, animations)
	last.primary.Chain(st.primary)
	s.steps = append(s.steps, st)
	return s
}

func (s *Sequence) newStep(opts Options, animations []Animation) *step {
	index := len(s.steps)
	userComplete := opts.OnComplete

	primaryOpts := opts
	primaryOpts.OnComplete = func() {
		if index == len(s.steps)-1 && s.state == Running {
			s.state = Completed
		}
		if userComplete != nil {
			userComplete()
		}
	}

	if len(animations) == 0 {
		return &step{primary: newTween(s.group, nil, nil, primaryOpts)}
	}

	st := &step{primary: newTween(s.group, animations[0].Target, animations[0].To, primaryOpts)}

	peerOpts := Options{
		Time:   opts.Time,
		Delay:  opts.Delay,
		Easing: opts.Easing,
		Repeat: opts.Repeat,
	}
	for _, a := range animations[1:] {
		st.peers = append(st.peers, newTween(s.group, a.Target, a.To, peerOpts))
	}
	st.primary.peers = st.peers
	return st
}

// Start begins the first step. It is a no-op unless the sequence is Idle.
func (s *Sequence) Start() {
	if s.state != Idle {
		return
	}
	s.state = Running
	s.steps[0].primary.Start()
}

// Stop cancels the sequence wherever it is. Values keep whatever they were
// last set to; a stopped sequence cannot be resumed.
func (s *Sequence) Stop() {
	if s.state == Completed || s.state == Stopped {
		return
	}
	s.state = Stopped
	for _, st := range s.steps {
		st.primary.Stop()
		for _, p := range st.peers {
			p.Stop()
		}
	}
}

// IsPlaying reports whether the sequence is running.
func (s *Sequence) IsPlaying() bool {
	return s.state == Running
}

// State returns the lifecycle state.
func (s *Sequence) State() State {
	return s.state
}

// Steps returns the number of steps.
func (s *Sequence) Steps() int {
	return len(s.steps)
}
