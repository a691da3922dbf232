package boss

// Clip names played by the boss actions.
const (
	ClipIdle        = "idle"
	ClipWalk        = "walk"
	ClipCharge      = "charge"
	ClipJump        = "jump"
	ClipLanding     = "landing"
	ClipBeamCharge  = "beam_charge"
	ClipBeamFire    = "beam_fire"
	ClipBeamRecover = "beam_recover"
	ClipDeath       = "death"
)

// play starts clip at the current phase speed.
func (e *Enemy) play(clip string, duration float64, loop bool) {
	if e.phase < len(e.phases) {
		e.anim.Speed = e.phases[e.phase].speed
	}
	e.anim.Play(clip, duration, loop)
}

// Clip is the animation clip currently playing.
func (e *Enemy) Clip() string { return e.anim.Clip }
