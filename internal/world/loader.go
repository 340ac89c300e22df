package world

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Tuning holds timing and geometry constants loaded from tuning.yaml.
type Tuning struct {
	TicksPerSecond   int         `yaml:"ticks_per_second"`
	AutoMineInterval float64     `yaml:"auto_mine_interval"` // seconds between auto-mine ticks
	MessageLogSize   int         `yaml:"message_log_size"`
	Minigame         CaveInRules `yaml:"minigame"`
}

// CaveInRules configures the falling-rock reflex minigame.
type CaveInRules struct {
	CanvasWidth      float64 `yaml:"canvas_width"`
	CanvasHeight     float64 `yaml:"canvas_height"`
	PlayerWidth      float64 `yaml:"player_width"`
	PlayerHeight     float64 `yaml:"player_height"`
	PlayerStep       float64 `yaml:"player_step"`
	Duration         int     `yaml:"duration"`       // seconds, before skill bonus
	SpawnInterval    float64 `yaml:"spawn_interval"` // seconds
	ObstacleHeight   float64 `yaml:"obstacle_height"`
	ObstacleMinWidth float64 `yaml:"obstacle_min_width"`
	ObstacleMaxWidth float64 `yaml:"obstacle_max_width"`
	ObstacleMinSpeed float64 `yaml:"obstacle_min_speed"` // pixels per frame
	ObstacleMaxSpeed float64 `yaml:"obstacle_max_speed"`
	WinExperience    float64 `yaml:"win_experience"`
	MilestoneStep    int     `yaml:"milestone_step"`   // depth multiple that starts a cave-in
	DifficultyDepth  float64 `yaml:"difficulty_depth"` // fall speed scales by 1 + depth/DifficultyDepth
}

// DefaultTuning returns the built-in tuning used when no file overrides it.
func DefaultTuning() Tuning {
	return Tuning{
		TicksPerSecond:   60,
		AutoMineInterval: 1,
		MessageLogSize:   50,
		Minigame: CaveInRules{
			CanvasWidth:      400,
			CanvasHeight:     300,
			PlayerWidth:      40,
			PlayerHeight:     20,
			PlayerStep:       20,
			Duration:         10,
			SpawnInterval:    0.5,
			ObstacleHeight:   20,
			ObstacleMinWidth: 30,
			ObstacleMaxWidth: 70,
			ObstacleMinSpeed: 2,
			ObstacleMaxSpeed: 5,
			WinExperience:    50,
			MilestoneStep:    10,
			DifficultyDepth:  50,
		},
	}
}

// LoadTuning parses YAML over the defaults. Keys missing from data keep
// their default values; unknown keys are an error.
func LoadTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	m := t.Minigame
	switch {
	case t.TicksPerSecond <= 0:
		return fmt.Errorf("tuning: ticks_per_second must be positive, got %d", t.TicksPerSecond)
	case t.AutoMineInterval <= 0:
		return fmt.Errorf("tuning: auto_mine_interval must be positive, got %g", t.AutoMineInterval)
	case t.MessageLogSize <= 0:
		return fmt.Errorf("tuning: message_log_size must be positive, got %d", t.MessageLogSize)
	case m.CanvasWidth <= 0 || m.CanvasHeight <= 0:
		return fmt.Errorf("tuning: minigame canvas must be positive, got %gx%g", m.CanvasWidth, m.CanvasHeight)
	case m.PlayerWidth <= 0 || m.PlayerWidth > m.CanvasWidth:
		return fmt.Errorf("tuning: minigame.player_width %g does not fit canvas width %g", m.PlayerWidth, m.CanvasWidth)
	case m.PlayerHeight <= 0 || m.PlayerHeight > m.CanvasHeight:
		return fmt.Errorf("tuning: minigame.player_height %g does not fit canvas height %g", m.PlayerHeight, m.CanvasHeight)
	case m.Duration <= 0:
		return fmt.Errorf("tuning: minigame.duration must be positive, got %d", m.Duration)
	case m.SpawnInterval <= 0:
		return fmt.Errorf("tuning: minigame.spawn_interval must be positive, got %g", m.SpawnInterval)
	case m.ObstacleMinWidth <= 0 || m.ObstacleMaxWidth < m.ObstacleMinWidth || m.ObstacleMaxWidth > m.CanvasWidth:
		return fmt.Errorf("tuning: minigame obstacle widths [%g, %g] invalid for canvas width %g",
			m.ObstacleMinWidth, m.ObstacleMaxWidth, m.CanvasWidth)
	case m.ObstacleMinSpeed <= 0 || m.ObstacleMaxSpeed < m.ObstacleMinSpeed:
		return fmt.Errorf("tuning: minigame obstacle speeds [%g, %g] invalid", m.ObstacleMinSpeed, m.ObstacleMaxSpeed)
	case m.ObstacleHeight <= 0:
		return fmt.Errorf("tuning: minigame.obstacle_height must be positive, got %g", m.ObstacleHeight)
	case m.MilestoneStep <= 0:
		return fmt.Errorf("tuning: minigame.milestone_step must be positive, got %d", m.MilestoneStep)
	case m.DifficultyDepth <= 0:
		return fmt.Errorf("tuning: minigame.difficulty_depth must be positive, got %g", m.DifficultyDepth)
	}
	return nil
}

// Ticks converts a duration in seconds to whole simulation ticks, minimum 1.
func (t Tuning) Ticks(seconds float64) int {
	n := int(seconds*float64(t.TicksPerSecond) + 0.5)
	if n < 1 {
		return 1
	}
	return n
}
