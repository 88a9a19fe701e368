package lunar

import "github.com/go-gl/mathgl/mgl32"

// PlayerState is the discrete animation state of the player. It is always
// derived from the jumping/backward flags, never assigned from outside.
type PlayerState uint8

const (
	// PlayerIdle is the right-facing grounded state.
	PlayerIdle PlayerState = iota
	// PlayerIdleLeft is the left-facing grounded state.
	PlayerIdleLeft
	// PlayerJumping is the right-facing airborne state.
	PlayerJumping
	// PlayerJumpingLeft is the left-facing airborne state.
	PlayerJumpingLeft
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerIdleLeft:
		return "idle_left"
	case PlayerJumping:
		return "jumping"
	case PlayerJumpingLeft:
		return "jumping_left"
	default:
		return "unknown"
	}
}

// moveStep is the fixed positional nudge applied per HandleInput call for
// each unit of horizontal axis input.
const moveStep = 1.0 / 100.0

// Player is the single controllable entity of the session: a position, a
// velocity, a pair of facing/airborne flags, and a sprite binding per state.
//
// Movement flows through two independent channels. HandleInput applies a
// small fixed positional nudge per call from the horizontal axis, and
// Update integrates velocity over elapsed time. They are not unified;
// callers run both each frame (Session.Step does) to get combined movement.
type Player struct {
	state    PlayerState
	Position mgl32.Vec2
	Velocity mgl32.Vec2

	grounded bool
	backward bool
	jumping  bool

	sprites map[PlayerState]*SubTexture
}

// NewPlayer creates a player at the origin with the default sprite bindings
// for the idle states.
func NewPlayer() *Player {
	tex := DefaultTexture()
	return &Player{
		sprites: map[PlayerState]*SubTexture{
			PlayerIdle:     NewSubTexture(tex, 0.01, 0.1, 1.0/6.0, 2.0/6.0),
			PlayerIdleLeft: NewSubTexture(tex, 0.1, 0.01, 1.0/6.0, 2.0/6.0),
		},
	}
}

// HandleInput reads the net horizontal axis (D minus A) from the input
// manager, applies it as a fixed per-call position delta, and recomputes
// the state. This channel is deliberately not velocity-integrated.
func (p *Player) HandleInput(in *InputManager) {
	var axis float32
	if in.KeyState(KeyD) {
		axis++
	}
	if in.KeyState(KeyA) {
		axis--
	}
	p.Position[0] += axis * moveStep
	p.recomputeState()
}

// Update integrates velocity over the elapsed time. Call it every frame
// alongside HandleInput.
func (p *Player) Update(dt float32) {
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
}

// recomputeState derives the discrete state from the flag pair. There is no
// explicit transition table: the state is a pure function of
// (jumping, backward), so it is recomputed after every flag change.
func (p *Player) recomputeState() {
	if p.jumping {
		if p.backward {
			p.state = PlayerJumpingLeft
		} else {
			p.state = PlayerJumping
		}
	} else {
		if p.backward {
			p.state = PlayerIdleLeft
		} else {
			p.state = PlayerIdle
		}
	}
}

// State returns the current derived animation state.
func (p *Player) State() PlayerState { return p.state }

// Grounded reports whether the player is standing on ground.
func (p *Player) Grounded() bool { return p.grounded }

// SetGrounded sets the grounded flag. External collision code owns this
// signal; it does not participate in state derivation.
func (p *Player) SetGrounded(grounded bool) {
	p.grounded = grounded
}

// SetBackward sets the facing flag and recomputes the state.
func (p *Player) SetBackward(backward bool) {
	p.backward = backward
	p.recomputeState()
}

// SetJumping sets the airborne flag and recomputes the state.
func (p *Player) SetJumping(jumping bool) {
	p.jumping = jumping
	p.recomputeState()
}

// SetSprite binds a sprite region to a state, replacing any previous binding.
func (p *Player) SetSprite(state PlayerState, sprite *SubTexture) {
	p.sprites[state] = sprite
}

// Sprite returns the sprite region bound to the current state, falling back
// to the PlayerIdle binding when the state has none. States added without a
// binding therefore still yield a renderable result.
func (p *Player) Sprite() *SubTexture {
	if s, ok := p.sprites[p.state]; ok {
		return s
	}
	debugf("no sprite bound for player state %v, falling back to idle", p.state)
	return p.sprites[PlayerIdle]
}

// Quad builds the unit-size drawable rectangle anchored at the player's
// position, using the resolved sprite region.
func (p *Player) Quad() Quad {
	return NewQuad(p.Position.X(), p.Position.Y(), 1, 1, p.Sprite())
}
