package ai

// Sequence runs child actions one after another. A child is exited before
// the next one is entered; the next child gets its first update on the
// following frame.
type Sequence struct {
	steps  []Action
	index  int
	active bool
}

func NewSequence(steps ...Action) *Sequence {
	return &Sequence{steps: append([]Action(nil), steps...)}
}

func (s *Sequence) Enter() {
	s.index = 0
	s.active = false
	if len(s.steps) == 0 {
		return
	}
	s.steps[0].Enter()
	s.active = true
}

func (s *Sequence) Update(dt float64) State {
	if !s.active {
		return End
	}
	if s.steps[s.index].Update(dt) == Running {
		return Running
	}
	s.steps[s.index].Exit()
	s.active = false
	s.index++
	if s.index >= len(s.steps) {
		return End
	}
	s.steps[s.index].Enter()
	s.active = true
	return Running
}

// Exit exits the running child, if any.
func (s *Sequence) Exit() {
	if !s.active {
		return
	}
	s.steps[s.index].Exit()
	s.active = false
}

// Step is the index of the current child.
func (s *Sequence) Step() int { return s.index }
