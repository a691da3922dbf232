package component

import "github.com/milk9111/boomerang/common"

type Camera struct {
	// Target is the followed entity handle; zero leaves the camera still.
	Target     uint64
	Offset     common.Vec3
	Smoothness float64
	Eye        common.Vec3
	LookAt     common.Vec3
	Shake      float64
}

var CameraComponent = NewComponent[Camera]("camera")
