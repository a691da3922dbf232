package component

// Animation tracks the clip an actor is playing. Clips carry no frames here;
// renderers pick what to draw from Clip and Progress.
type Animation struct {
	Clip    string
	Elapsed float64
	// Duration of one pass in seconds. Zero plays until the next clip.
	Duration float64
	Loop     bool
	Playing  bool
	// Speed scales the system dt. Paused holds the clip in place.
	Speed  float64
	Paused bool
}

// Play restarts the animation on clip. Asking for the looping clip that is
// already playing keeps its time.
func (a *Animation) Play(clip string, duration float64, loop bool) {
	if a.Playing && a.Loop && loop && a.Clip == clip {
		return
	}
	a.Clip = clip
	a.Duration = duration
	a.Loop = loop
	a.Elapsed = 0
	a.Playing = true
	if a.Speed <= 0 {
		a.Speed = 1
	}
}

// Progress is the position in the current pass, from 0 to 1. Open ended
// clips report 0.
func (a *Animation) Progress() float64 {
	if a.Duration <= 0 {
		return 0
	}
	p := a.Elapsed / a.Duration
	if p > 1 {
		return 1
	}
	return p
}

var AnimationComponent = NewComponent[Animation]("animation")
