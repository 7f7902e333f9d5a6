package sketch

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera is a pinhole camera with a vertical field of view in degrees.
// Changing FOV, Aspect, Near or Far takes effect after UpdateProjectionMatrix.
type PerspectiveCamera struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Up       mgl32.Vec3

	target     mgl32.Vec3
	projection mgl32.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl32.Vec3{0, 1, 0},
		target: mgl32.Vec3{0, 0, -1},
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix rebuilds the projection from FOV, Aspect, Near and Far.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the matrix built by the last UpdateProjectionMatrix.
func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// LookAt aims the camera at target.
func (c *PerspectiveCamera) LookAt(target mgl32.Vec3) {
	c.target = target
}

// Target returns the point the camera is aimed at.
func (c *PerspectiveCamera) Target() mgl32.Vec3 {
	return c.target
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.target, c.Up)
}
