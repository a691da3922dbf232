package component

type EffectKind uint8

const (
	EffectCharge EffectKind = iota
	EffectImpact
)

func (k EffectKind) String() string {
	switch k {
	case EffectCharge:
		return "charge"
	case EffectImpact:
		return "impact"
	default:
		return "unknown"
	}
}

type Effect struct {
	Kind EffectKind
}

var EffectComponent = NewComponent[Effect]("effect")
