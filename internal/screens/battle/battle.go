// Package battle implements the arena screen: two spheres on a walled
// floor, steered from the keyboard or bouncing on their own while auto
// movement is enabled.
package battle

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gander/internal/audio"
	"github.com/vovakirdan/gander/internal/core"
	"github.com/vovakirdan/gander/internal/flags"
	"github.com/vovakirdan/gander/internal/registry"
	"github.com/vovakirdan/gander/internal/shared"
	"github.com/vovakirdan/gander/internal/stack"
)

// ID is the registry id of the battle screen.
const ID = "battle"

// GroundResource is the resource holding the ground tile pattern.
const GroundResource = "res/ground.txt"

// Params are the arena and movement constants.
type Params struct {
	SpaceWidth float64 // Half extent of the arena along x
	SpaceDepth float64 // Half extent of the arena along z
	MoveSpeed  float64 // Manual movement speed
	AutoSpeed  float64 // Speed of the random auto-movement velocity
	DirVarMax  float64 // Per-axis range of the random direction
	DropAcc    float64 // Downward acceleration while auto moving
	Radius     float64
	RestHeight float64 // Sphere y while auto movement is off
	DropHeight float64 // Sphere y when auto movement starts
	Floor      core.Box
}

// DefaultParams returns the built-in arena constants.
func DefaultParams() Params {
	return Params{
		SpaceWidth: 2.0,
		SpaceDepth: 2.0,
		MoveSpeed:  1.0,
		AutoSpeed:  1.0,
		DirVarMax:  1.0,
		DropAcc:    2.0,
		Radius:     0.2,
		RestHeight: 0.21,
		DropHeight: 1.0,
		Floor: core.Box{
			Center: core.Vec3{X: 0, Y: -1, Z: 0},
			Size:   core.Vec3{X: 10, Y: 2, Z: 10},
		},
	}
}

// Loader provides resource bytes by name.
type Loader interface {
	Load(name string) []byte
}

// Options configures the screen's collaborators.
type Options struct {
	Params Params
	Loader Loader       // Ground pattern source; nil uses the built-in pattern
	Music  audio.Player // nil disables music
	Seed   int64        // 0 uses the current time
}

// DefaultOptions returns options without collaborators.
func DefaultOptions() Options {
	return Options{Params: DefaultParams()}
}

// Factory returns a stack factory building the screen with opts.
func Factory(opts Options) stack.Factory {
	return func(h stack.Handle) stack.Screen {
		return New(h, opts)
	}
}

func init() {
	registry.Register(ID, "Battle arena", Factory(DefaultOptions()))
}

// Screen is the battle arena.
type Screen struct {
	h      stack.Handle
	sd     *shared.Data
	logger *log.Logger
	p      Params
	rng    *rand.Rand
	music  audio.Player

	spheres [2]core.Sphere
	prev    [2]core.Vec3
	vel     [2]core.Vec3
	acc     [2]core.Vec3
	touch   [2]core.Vec3
	touched [2]bool

	collided  bool
	prevAuto  bool
	prevMusic bool

	ground []string
}

var _ stack.Screen = (*Screen)(nil)

// New builds the arena for the stack behind h. It declares the
// auto-movement and music flags, both off.
func New(h stack.Handle, opts Options) *Screen {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Screen{
		h:      h,
		sd:     shared.New(),
		logger: log.New(io.Discard),
		p:      opts.Params,
		rng:    rand.New(rand.NewSource(seed)),
		music:  opts.Music,
	}
	if st, ok := h.Stack(); ok {
		s.sd = st.Shared()
		s.logger = st.Logger()
	}

	s.sd.Ensure(flags.AutoMovementEnabled, false)
	s.sd.Ensure(flags.MusicEnabled, false)

	s.spheres[0] = core.Sphere{Center: core.Vec3{X: -1, Y: s.p.RestHeight}, Radius: s.p.Radius}
	s.spheres[1] = core.Sphere{Center: core.Vec3{X: 0, Y: s.p.RestHeight}, Radius: s.p.Radius}

	var data []byte
	if opts.Loader != nil {
		data = opts.Loader.Load(GroundResource)
	}
	s.ground = parseGround(data)

	s.logger.Debug("battle screen ready", "seed", seed, "ground_rows", len(s.ground))
	return s
}

// Spheres returns both spheres.
func (s *Screen) Spheres() [2]core.Sphere { return s.spheres }

// Velocities returns both sphere velocities.
func (s *Screen) Velocities() [2]core.Vec3 { return s.vel }

// TouchPoints returns the last floor contact of each sphere and whether
// it has touched the floor at all.
func (s *Screen) TouchPoints() ([2]core.Vec3, [2]bool) { return s.touch, s.touched }

// Colliding reports whether the spheres overlapped on the last update.
func (s *Screen) Colliding() bool { return s.collided }

// KnownFlags lists the flags the arena reads.
func (s *Screen) KnownFlags() []string {
	return []string{flags.AutoMovementEnabled, flags.MusicEnabled}
}

// Update advances the arena. Lower screens never update.
func (s *Screen) Update(dt float64, resized bool) bool {
	auto, ok := s.sd.Get(flags.AutoMovementEnabled)
	if ok && auto != s.prevAuto {
		s.prevAuto = auto
		if auto {
			s.startAuto()
		} else {
			s.stopAuto()
		}
	}

	if !ok || !auto {
		in := core.NewInputFrame()
		if st, ok := s.h.Stack(); ok {
			in = st.Input()
		}
		s.steer(in)
	}

	s.step(dt, ok && auto)
	s.syncMusic()
	return false
}

func (s *Screen) syncMusic() {
	on, ok := s.sd.Get(flags.MusicEnabled)
	if !ok || on == s.prevMusic {
		return
	}
	s.prevMusic = on
	if s.music == nil {
		return
	}
	if on {
		s.music.Play()
	} else {
		s.music.Pause()
	}
}

// Draw renders the arena seen from above. Screens above always draw.
func (s *Screen) Draw(target *core.Canvas) bool {
	s.render(target)
	return true
}
