package battle

import (
	"math"

	"github.com/vovakirdan/gander/internal/core"
)

// randomDirection returns a velocity of length AutoSpeed pointing in a
// random direction.
func (s *Screen) randomDirection() core.Vec3 {
	r := func() float64 {
		return (s.rng.Float64() - 0.5) * 2 * s.p.DirVarMax
	}
	v := core.Vec3{X: r(), Y: r(), Z: r()}
	return v.Normalize().Scale(s.p.AutoSpeed)
}

// startAuto launches both spheres from the drop height.
func (s *Screen) startAuto() {
	for i := range s.spheres {
		s.vel[i] = s.randomDirection()
		s.acc[i] = core.Vec3{Y: -s.p.DropAcc}
		s.spheres[i].Center.Y = s.p.DropHeight
	}
}

// stopAuto halts both spheres at rest height.
func (s *Screen) stopAuto() {
	for i := range s.spheres {
		s.vel[i] = core.Vec3{}
		s.acc[i] = core.Vec3{}
		s.spheres[i].Center.Y = s.p.RestHeight
	}
}

// steer sets horizontal velocities from held keys: WASD for sphere 0,
// arrows for sphere 1. -z is away from the viewer.
func (s *Screen) steer(in core.InputFrame) {
	axis := func(pos, neg string) float64 {
		switch {
		case in.IsHeld(pos):
			return s.p.MoveSpeed
		case in.IsHeld(neg):
			return -s.p.MoveSpeed
		}
		return 0
	}

	s.vel[0].X = axis("d", "a")
	s.vel[0].Z = axis("s", "w")
	s.vel[1].X = axis(core.KeyRight.String(), core.KeyLeft.String())
	s.vel[1].Z = axis(core.KeyDown.String(), core.KeyUp.String())
}

// step integrates motion and resolves collisions.
func (s *Screen) step(dt float64, auto bool) {
	for i := range s.spheres {
		s.vel[i] = s.vel[i].Add(s.acc[i].Scale(dt))
		s.prev[i] = s.spheres[i].Center
		s.spheres[i].Center = s.spheres[i].Center.Add(s.vel[i].Scale(dt))
	}

	if auto {
		s.collideSpheres()
	}

	for i := range s.spheres {
		s.collideWalls(i)
		s.collideFloor(i)
	}
}

// collideSpheres moves overlapping spheres back to their previous positions
// and removes twice the contact-normal component from each velocity.
func (s *Screen) collideSpheres() {
	hit := core.SpheresCollide(s.spheres[0], s.spheres[1])
	if s.collided && !hit {
		s.collided = false
		return
	}
	if !hit {
		return
	}

	normal := s.spheres[0].Center.Sub(s.spheres[1].Center)
	for i := range s.spheres {
		s.spheres[i].Center = s.prev[i]
	}
	if normal.Dot(normal) == 0 {
		s.collided = true
		return
	}
	for i := range s.vel {
		proj := s.vel[i].Project(normal)
		s.vel[i] = s.vel[i].Sub(proj.Scale(2))
	}
	s.collided = true
}

func (s *Screen) collideWalls(i int) {
	c := &s.spheres[i].Center
	r := s.spheres[i].Radius

	if c.X-r < -s.p.SpaceWidth {
		c.X = s.prev[i].X
		s.vel[i].X = math.Abs(s.vel[i].X)
	} else if c.X+r > s.p.SpaceWidth {
		c.X = s.prev[i].X
		s.vel[i].X = -math.Abs(s.vel[i].X)
	}

	if c.Z-r < -s.p.SpaceDepth {
		c.Z = s.prev[i].Z
		s.vel[i].Z = math.Abs(s.vel[i].Z)
	} else if c.Z+r > s.p.SpaceDepth {
		c.Z = s.prev[i].Z
		s.vel[i].Z = -math.Abs(s.vel[i].Z)
	}
}

// collideFloor bounces a sphere off the floor box and records where it
// touched.
func (s *Screen) collideFloor(i int) {
	sp := &s.spheres[i]
	if !core.SphereBoxCollide(*sp, s.p.Floor) {
		return
	}
	s.touch[i] = core.Vec3{X: sp.Center.X, Y: s.prev[i].Y - sp.Radius, Z: sp.Center.Z}
	s.touched[i] = true
	sp.Center.Y = s.prev[i].Y
	s.vel[i].Y = math.Abs(s.vel[i].Y)
}
