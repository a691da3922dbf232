package messenger

import "github.com/milk9111/boomerang/common"

type ChargeEffect struct {
	Position common.Vec3
	Scale    common.Vec3
}

type ImpactEffect struct {
	Position common.Vec3
	Radius   float64
}

// Damage carries the boss HP ratio in [0,1].
type Damage struct {
	Ratio float64
}

type PhaseChange struct {
	Phase int
	Name  string
}

type Beam struct {
	Origin    common.Vec3
	Direction common.Vec3
}

type PlayerHit struct {
	Amount int
}

type Shake struct {
	Amount float64
}

type Empty struct{}
