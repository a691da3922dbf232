// Package ai runs timed combat actions and picks them with behavior trees.
package ai

// State is the result of one action update.
type State uint8

const (
	Running State = iota
	End
)

func (s State) String() string {
	if s == End {
		return "end"
	}
	return "running"
}

// Action is one activation-scoped unit of behavior. Enter starts an
// activation, Update advances it until it reports End, and Exit cleans up.
// Update is not called again after End until the next Enter.
type Action interface {
	Enter()
	Update(dt float64) State
	Exit()
}

// Funcs adapts plain functions to Action. Nil hooks are skipped and a nil
// OnUpdate ends immediately.
type Funcs struct {
	OnEnter  func()
	OnUpdate func(dt float64) State
	OnExit   func()
}

func (f Funcs) Enter() {
	if f.OnEnter != nil {
		f.OnEnter()
	}
}

func (f Funcs) Update(dt float64) State {
	if f.OnUpdate == nil {
		return End
	}
	return f.OnUpdate(dt)
}

func (f Funcs) Exit() {
	if f.OnExit != nil {
		f.OnExit()
	}
}

const timerTolerance = 1e-9

// Timer measures a fixed duration in seconds.
type Timer struct {
	Duration float64
	elapsed  float64
}

func NewTimer(d float64) Timer {
	return Timer{Duration: d}
}

func (t *Timer) Reset() { t.elapsed = 0 }

// Advance adds dt and reports whether the duration has elapsed. Negative dt
// is ignored.
func (t *Timer) Advance(dt float64) bool {
	if dt > 0 {
		t.elapsed += dt
	}
	return t.Done()
}

func (t *Timer) Done() bool { return t.elapsed+timerTolerance >= t.Duration }

func (t *Timer) Elapsed() float64 { return t.elapsed }

// Progress is elapsed/duration clamped to [0,1].
func (t *Timer) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := t.elapsed / t.Duration
	if p > 1 {
		return 1
	}
	return p
}
