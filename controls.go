package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/sketch/gui"
)

const epsilon = 1e-6

// Spherical is a point in spherical coordinates with +Y as the pole.
// Theta is the azimuth around Y measured from +Z, Phi the angle from +Y.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// SphericalFromVec converts a cartesian offset.
func SphericalFromVec(v mgl32.Vec3) Spherical {
	r := v.Len()
	if r == 0 {
		return Spherical{}
	}
	y := mgl32.Clamp(v.Y()/r, -1, 1)
	return Spherical{
		Radius: r,
		Theta:  float32(math.Atan2(float64(v.X()), float64(v.Z()))),
		Phi:    float32(math.Acos(float64(y))),
	}
}

// Vec returns the cartesian offset.
func (s Spherical) Vec() mgl32.Vec3 {
	sinPhi := float32(math.Sin(float64(s.Phi)))
	return mgl32.Vec3{
		s.Radius * sinPhi * float32(math.Sin(float64(s.Theta))),
		s.Radius * float32(math.Cos(float64(s.Phi))),
		s.Radius * sinPhi * float32(math.Cos(float64(s.Theta))),
	}
}

type orbitState int

const (
	orbitNone orbitState = iota
	orbitRotate
	orbitPan
)

// OrbitControls orbits a camera around Target from pointer input: left drag
// rotates, right drag (or Ctrl/Shift + left drag) pans, the wheel dollies.
// Update must be called once per frame.
type OrbitControls struct {
	Target mgl32.Vec3

	// Enabled gates new input. Update keeps applying damping while disabled.
	Enabled bool

	EnableRotate bool
	EnableZoom   bool
	EnablePan    bool

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32

	EnableDamping bool
	DampingFactor float32

	MinDistance, MaxDistance         float32
	MinPolarAngle, MaxPolarAngle     float32
	MinAzimuthAngle, MaxAzimuthAngle float32

	camera  *PerspectiveCamera
	surface Surface

	state          orbitState
	sphericalDelta Spherical
	panOffset      mgl32.Vec3
	scale          float32
}

// NewOrbitControls binds controls to camera, reading pointer input from surface.
// The camera is aimed at the origin.
func NewOrbitControls(camera *PerspectiveCamera, surface Surface) *OrbitControls {
	inf := float32(math.Inf(1))
	c := &OrbitControls{
		Enabled:         true,
		EnableRotate:    true,
		EnableZoom:      true,
		EnablePan:       true,
		RotateSpeed:     1,
		ZoomSpeed:       1,
		PanSpeed:        1,
		DampingFactor:   0.05,
		MinDistance:     0,
		MaxDistance:     inf,
		MinPolarAngle:   0,
		MaxPolarAngle:   math.Pi,
		MinAzimuthAngle: -inf,
		MaxAzimuthAngle: inf,
		camera:          camera,
		surface:         surface,
		scale:           1,
	}
	camera.LookAt(c.Target)
	return c
}

// Camera returns the controlled camera.
func (c *OrbitControls) Camera() *PerspectiveCamera {
	return c.camera
}

// Spherical returns the camera's current position relative to Target.
func (c *OrbitControls) Spherical() Spherical {
	return SphericalFromVec(c.camera.Position.Sub(c.Target))
}

// RotateLeft orbits by angle radians around the vertical axis.
func (c *OrbitControls) RotateLeft(angle float32) {
	c.sphericalDelta.Theta -= angle
}

// RotateUp orbits by angle radians towards the pole.
func (c *OrbitControls) RotateUp(angle float32) {
	c.sphericalDelta.Phi -= angle
}

// DollyIn moves the camera towards Target by factor (< 1 zooms in).
func (c *OrbitControls) DollyIn(factor float32) {
	c.scale *= factor
}

// DollyOut moves the camera away from Target by 1/factor.
func (c *OrbitControls) DollyOut(factor float32) {
	c.scale /= factor
}

// Pan shifts camera and Target by a screen-space pixel delta.
func (c *OrbitControls) Pan(dx, dy float32) {
	_, h := c.surface.Size()
	if h <= 0 {
		return
	}
	offset := c.camera.Position.Sub(c.Target)
	targetDistance := offset.Len() * float32(math.Tan(float64(mgl32.DegToRad(c.camera.FOV))/2))

	view := c.camera.ViewMatrix()
	right := view.Row(0).Vec3()
	up := view.Row(1).Vec3()

	c.panOffset = c.panOffset.Add(right.Mul(-2 * dx * targetDistance / float32(h)))
	c.panOffset = c.panOffset.Add(up.Mul(2 * dy * targetDistance / float32(h)))
}

func (c *OrbitControls) zoomScale() float32 {
	return float32(math.Pow(0.95, float64(c.ZoomSpeed)))
}

func (c *OrbitControls) handleInput() {
	in := c.surface.Input()
	if in == nil {
		return
	}

	if c.Enabled {
		switch {
		case in.MouseClicked(gui.MouseButtonLeft):
			if (in.ModCtrl || in.ModShift) && c.EnablePan {
				c.state = orbitPan
			} else if c.EnableRotate {
				c.state = orbitRotate
			}
		case in.MouseClicked(gui.MouseButtonRight):
			if c.EnablePan {
				c.state = orbitPan
			}
		}

		if c.EnableZoom && in.MouseWheelY != 0 {
			notches := float64(in.MouseWheelY)
			if notches > 0 {
				c.DollyIn(float32(math.Pow(float64(c.zoomScale()), notches)))
			} else {
				c.DollyOut(float32(math.Pow(float64(c.zoomScale()), -notches)))
			}
		}
	}

	switch c.state {
	case orbitRotate:
		if !in.MouseDown(gui.MouseButtonLeft) {
			c.state = orbitNone
			return
		}
		_, h := c.surface.Size()
		if h <= 0 {
			return
		}
		dx, dy := in.MouseDelta()
		c.RotateLeft(2 * math.Pi * c.RotateSpeed * dx / float32(h))
		c.RotateUp(2 * math.Pi * c.RotateSpeed * dy / float32(h))
	case orbitPan:
		if !in.MouseDown(gui.MouseButtonLeft) && !in.MouseDown(gui.MouseButtonRight) {
			c.state = orbitNone
			return
		}
		dx, dy := in.MouseDelta()
		c.Pan(dx*c.PanSpeed, dy*c.PanSpeed)
	}
}

// Update consumes input and pending deltas, then moves and re-aims the camera.
// It reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	c.handleInput()

	before := c.camera.Position
	offset := before.Sub(c.Target)
	sph := SphericalFromVec(offset)

	if c.EnableDamping {
		sph.Theta += c.sphericalDelta.Theta * c.DampingFactor
		sph.Phi += c.sphericalDelta.Phi * c.DampingFactor
	} else {
		sph.Theta += c.sphericalDelta.Theta
		sph.Phi += c.sphericalDelta.Phi
	}

	if !math.IsInf(float64(c.MinAzimuthAngle), 0) && !math.IsInf(float64(c.MaxAzimuthAngle), 0) {
		sph.Theta = mgl32.Clamp(sph.Theta, c.MinAzimuthAngle, c.MaxAzimuthAngle)
	}
	sph.Phi = mgl32.Clamp(sph.Phi, c.MinPolarAngle, c.MaxPolarAngle)
	sph.Phi = mgl32.Clamp(sph.Phi, epsilon, math.Pi-epsilon)

	sph.Radius = mgl32.Clamp(sph.Radius*c.scale, c.MinDistance, c.MaxDistance)
	if sph.Radius < epsilon {
		sph.Radius = epsilon
	}

	if c.EnableDamping {
		c.Target = c.Target.Add(c.panOffset.Mul(c.DampingFactor))
	} else {
		c.Target = c.Target.Add(c.panOffset)
	}

	c.camera.Position = c.Target.Add(sph.Vec())
	c.camera.LookAt(c.Target)

	if c.EnableDamping {
		c.sphericalDelta.Theta *= 1 - c.DampingFactor
		c.sphericalDelta.Phi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
	} else {
		c.sphericalDelta = Spherical{}
		c.panOffset = mgl32.Vec3{}
	}
	c.scale = 1

	return c.camera.Position.Sub(before).LenSqr() > epsilon
}
