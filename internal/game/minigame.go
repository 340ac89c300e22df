package game

import (
	"cmp"
	"slices"

	"github.com/deepdig/deepdig/internal/world"
	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
)

// Outcome is the state of a cave-in run.
type Outcome uint8

const (
	OutcomePending Outcome = iota // still dodging
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "pending"
	}
}

// Position is the top-left corner of a rectangle on the cave-in canvas.
type Position struct {
	X, Y float64
}

// Extent is the size of a rectangle on the cave-in canvas.
type Extent struct {
	W, H float64
}

// Falling marks a rock. Seq orders rocks by spawn time.
type Falling struct {
	Speed float64
	Seq   uint64
}

// PlayerControlled tags the entity moved by left/right intents.
type PlayerControlled struct{}

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share any interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// MinigameConfig fixes the parameters of a single run.
type MinigameConfig struct {
	Rules          world.CaveInRules
	TicksPerSecond int
	Depth          float64 // depth at activation, drives difficulty
	Duration       int     // seconds, skill bonus included
}

// Minigame is one cave-in run: rocks fall, the player dodges until the
// countdown ends. It is driven one frame at a time by Update and owns three
// periodic processes (frame updater, spawner, countdown), all stopped the
// moment the run resolves.
type Minigame struct {
	RunID string

	rules      world.CaveInRules
	difficulty float64
	rng        Roller
	onResult   func(Outcome)

	world  *ecs.World
	player ecs.Entity
	posMap *ecs.Map[Position]
	rocks  *ecs.Map3[Position, Extent, Falling]
	filter *ecs.Filter3[Position, Extent, Falling]

	frames    Interval
	spawner   Interval
	countdown Interval

	remaining int
	frame     int
	nextSeq   uint64
	outcome   Outcome
	reported  bool
}

// NewMinigame starts a run. onResult is called exactly once, when the run
// is won or lost.
func NewMinigame(cfg MinigameConfig, rng Roller, onResult func(Outcome)) *Minigame {
	r := cfg.Rules
	w := ecs.NewWorld(64)

	posMap := ecs.NewMap[Position](w)
	player := ecs.NewMap2[Position, PlayerControlled](w).NewEntity(
		&Position{X: (r.CanvasWidth - r.PlayerWidth) / 2, Y: r.CanvasHeight - r.PlayerHeight},
		&PlayerControlled{},
	)

	tps := max(cfg.TicksPerSecond, 1)
	m := &Minigame{
		RunID:      uuid.NewString(),
		rules:      r,
		difficulty: 1 + cfg.Depth/r.DifficultyDepth,
		rng:        rng,
		onResult:   onResult,
		world:      w,
		player:     player,
		posMap:     posMap,
		rocks:      ecs.NewMap3[Position, Extent, Falling](w),
		filter:     ecs.NewFilter3[Position, Extent, Falling](w),
		frames:     NewInterval(1),
		spawner:    NewInterval(int(r.SpawnInterval*float64(tps) + 0.5)),
		countdown:  NewInterval(tps),
		remaining:  max(cfg.Duration, 1),
	}
	m.frames.Start()
	m.spawner.Start()
	m.countdown.Start()
	return m
}

// Outcome returns the current state of the run.
func (m *Minigame) Outcome() Outcome { return m.outcome }

// Active reports whether the run is still pending.
func (m *Minigame) Active() bool { return m.outcome == OutcomePending }

// Difficulty is the fall-speed factor fixed at activation.
func (m *Minigame) Difficulty() float64 { return m.difficulty }

// RemainingSeconds is the countdown left.
func (m *Minigame) RemainingSeconds() int { return m.remaining }

// Update advances the run by one display frame.
// Collisions are tested before the countdown, so a hit on the last frame loses.
func (m *Minigame) Update() {
	if !m.Active() {
		return
	}
	if m.frames.Step() {
		m.frame++
		if m.advanceRocks() {
			m.finish(OutcomeLost)
			return
		}
	}
	if m.spawner.Step() {
		m.spawnRock()
	}
	if m.countdown.Step() {
		m.remaining--
		if m.remaining <= 0 {
			m.finish(OutcomeWon)
		}
	}
}

// MoveLeft shifts the player one step left, clamped to the canvas.
func (m *Minigame) MoveLeft() { m.move(-m.rules.PlayerStep) }

// MoveRight shifts the player one step right, clamped to the canvas.
func (m *Minigame) MoveRight() { m.move(m.rules.PlayerStep) }

func (m *Minigame) move(dx float64) {
	if !m.Active() {
		return
	}
	pos := m.posMap.Get(m.player)
	pos.X = min(max(pos.X+dx, 0), m.rules.CanvasWidth-m.rules.PlayerWidth)
}

// Dismiss abandons the run. A pending run counts as lost.
func (m *Minigame) Dismiss() Outcome {
	if m.Active() {
		m.finish(OutcomeLost)
	}
	return m.outcome
}

func (m *Minigame) finish(o Outcome) {
	m.outcome = o
	m.frames.Stop()
	m.spawner.Stop()
	m.countdown.Stop()
	if m.reported {
		return
	}
	m.reported = true
	if m.onResult != nil {
		m.onResult(o)
	}
}

func (m *Minigame) playerRect() Rect {
	pos := m.posMap.Get(m.player)
	return Rect{X: pos.X, Y: pos.Y, W: m.rules.PlayerWidth, H: m.rules.PlayerHeight}
}

// advanceRocks moves every rock down, drops the ones below the canvas and
// reports whether any remaining rock touches the player.
func (m *Minigame) advanceRocks() bool {
	player := m.playerRect()
	var gone []ecs.Entity
	hit := false

	query := m.filter.Query()
	for query.Next() {
		pos, ext, fall := query.Get()
		pos.Y += fall.Speed * m.difficulty
		if pos.Y > m.rules.CanvasHeight {
			gone = append(gone, query.Entity())
			continue
		}
		if player.Overlaps(Rect{X: pos.X, Y: pos.Y, W: ext.W, H: ext.H}) {
			hit = true
		}
	}
	for _, e := range gone {
		m.world.RemoveEntity(e)
	}
	return hit
}

func (m *Minigame) spawnRock() {
	r := m.rules
	width := r.ObstacleMinWidth + m.rng.Float64()*(r.ObstacleMaxWidth-r.ObstacleMinWidth)
	x := m.rng.Float64() * (r.CanvasWidth - width)
	speed := r.ObstacleMinSpeed + m.rng.Float64()*(r.ObstacleMaxSpeed-r.ObstacleMinSpeed)
	m.addRock(Rect{X: x, Y: -r.ObstacleHeight, W: width, H: r.ObstacleHeight}, speed)
}

func (m *Minigame) addRock(rect Rect, speed float64) {
	m.nextSeq++
	m.rocks.NewEntity(
		&Position{X: rect.X, Y: rect.Y},
		&Extent{W: rect.W, H: rect.H},
		&Falling{Speed: speed, Seq: m.nextSeq},
	)
}

// MinigameView is a read-only copy of a run for rendering.
type MinigameView struct {
	RunID            string
	Outcome          Outcome
	Frame            int
	RemainingSeconds int
	Difficulty       float64
	CanvasWidth      float64
	CanvasHeight     float64
	Player           Rect
	Rocks            []Rect // oldest first
}

// View copies the run state.
func (m *Minigame) View() MinigameView {
	type seqRect struct {
		seq  uint64
		rect Rect
	}
	var rocks []seqRect
	query := m.filter.Query()
	for query.Next() {
		pos, ext, fall := query.Get()
		rocks = append(rocks, seqRect{fall.Seq, Rect{X: pos.X, Y: pos.Y, W: ext.W, H: ext.H}})
	}
	slices.SortFunc(rocks, func(a, b seqRect) int { return cmp.Compare(a.seq, b.seq) })

	v := MinigameView{
		RunID:            m.RunID,
		Outcome:          m.outcome,
		Frame:            m.frame,
		RemainingSeconds: m.remaining,
		Difficulty:       m.difficulty,
		CanvasWidth:      m.rules.CanvasWidth,
		CanvasHeight:     m.rules.CanvasHeight,
		Player:           m.playerRect(),
		Rocks:            make([]Rect, len(rocks)),
	}
	for i, r := range rocks {
		v.Rocks[i] = r.rect
	}
	return v
}
