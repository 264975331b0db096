package prefabs

import (
	"fmt"

	"github.com/milk9111/boneyard/skeleton"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := decodeInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

func decodeInto(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type ClipSpec struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type PathSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
	Wobble    float64 `yaml:"wobble"`
}

type DormancySpec struct {
	Cooldown    float64 `yaml:"cooldown"`
	Probability float64 `yaml:"probability"`
	MinDuration float64 `yaml:"min_duration"`
	MaxDuration float64 `yaml:"max_duration"`
}

type EtherealSpec struct {
	Threshold   float64 `yaml:"threshold"`
	Probability float64 `yaml:"probability"`
	// Script names a tengo file under scripts/ that computes the odds from
	// health_fraction. Probability is the fallback when a run fails.
	Script string `yaml:"script"`
}

type BodySpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

type SkeletonSpec struct {
	Name                string              `yaml:"name"`
	Body                BodySpec            `yaml:"body"`
	LightRadius         float64             `yaml:"light_radius"`
	MaxHealth           float64             `yaml:"max_health"`
	Speed               float64             `yaml:"speed"`
	Power               float64             `yaml:"power"`
	Knockback           float64             `yaml:"knockback"`
	ChaseDistance       float64             `yaml:"chase_distance"`
	FlightLeaveDistance float64             `yaml:"flight_leave_distance"`
	FlightDrift         float64             `yaml:"flight_drift"`
	Dormancy            DormancySpec        `yaml:"dormancy"`
	Ethereal            EtherealSpec        `yaml:"ethereal"`
	Path                PathSpec            `yaml:"path"`
	Clips               map[string]ClipSpec `yaml:"clips"`
}

// SkeletonSpecFrom mirrors cfg so that a YAML document only needs the keys
// it changes.
func SkeletonSpecFrom(cfg skeleton.Config) SkeletonSpec {
	spec := SkeletonSpec{
		Name:                "skeleton",
		Body:                BodySpec{Width: 20, Height: 36, Mass: 1},
		LightRadius:         48,
		MaxHealth:           cfg.MaxHealth,
		Speed:               cfg.Speed,
		Power:               cfg.Power,
		Knockback:           cfg.Knockback,
		ChaseDistance:       cfg.ChaseDistance,
		FlightLeaveDistance: cfg.FlightLeaveDistance,
		FlightDrift:         cfg.FlightDrift,
		Dormancy: DormancySpec{
			Cooldown:    cfg.DormancyCooldown,
			Probability: cfg.DormancyProbability,
			MinDuration: cfg.MinDormancyDuration,
			MaxDuration: cfg.MaxDormancyDuration,
		},
		Ethereal: EtherealSpec{
			Threshold:   cfg.EtherealFormThreshold,
			Probability: cfg.EtherealFormProbability,
		},
		Path: PathSpec{
			Amplitude: cfg.Path.Amplitude,
			Period:    cfg.Path.Period,
			Wobble:    cfg.Path.Wobble,
		},
		Clips: make(map[string]ClipSpec, len(cfg.Clips)),
	}
	for name, c := range cfg.Clips {
		spec.Clips[name] = ClipSpec{Frames: c.Frames, FPS: c.FPS, Loop: c.Loop}
	}
	return spec
}

// LoadSkeletonSpec decodes filename over the default skeleton tuning.
func LoadSkeletonSpec(filename string) (SkeletonSpec, error) {
	spec := SkeletonSpecFrom(skeleton.DefaultConfig())
	if err := decodeInto(filename, &spec); err != nil {
		return SkeletonSpec{}, err
	}
	return spec, nil
}

// ToConfig builds the behavior config, compiling the odds script if one is
// named.
func (s SkeletonSpec) ToConfig() (skeleton.Config, error) {
	cfg := skeleton.Config{
		MaxHealth:               s.MaxHealth,
		Speed:                   s.Speed,
		Power:                   s.Power,
		Knockback:               s.Knockback,
		ChaseDistance:           s.ChaseDistance,
		FlightLeaveDistance:     s.FlightLeaveDistance,
		FlightDrift:             s.FlightDrift,
		DormancyCooldown:        s.Dormancy.Cooldown,
		DormancyProbability:     s.Dormancy.Probability,
		MinDormancyDuration:     s.Dormancy.MinDuration,
		MaxDormancyDuration:     s.Dormancy.MaxDuration,
		EtherealFormThreshold:   s.Ethereal.Threshold,
		EtherealFormProbability: s.Ethereal.Probability,
		Path: skeleton.PathParams{
			Amplitude: s.Path.Amplitude,
			Period:    s.Path.Period,
			Wobble:    s.Path.Wobble,
		},
		Clips: make(map[string]skeleton.Clip, len(s.Clips)),
	}
	for name, c := range s.Clips {
		cfg.Clips[name] = skeleton.Clip{Frames: c.Frames, FPS: c.FPS, Loop: c.Loop}
	}

	if s.Ethereal.Script != "" {
		src, err := LoadScript(s.Ethereal.Script)
		if err != nil {
			return skeleton.Config{}, fmt.Errorf("prefabs: load script %s: %w", s.Ethereal.Script, err)
		}
		odds, err := skeleton.CompileOdds(src, s.Ethereal.Probability)
		if err != nil {
			return skeleton.Config{}, fmt.Errorf("prefabs: %s: %w", s.Ethereal.Script, err)
		}
		cfg.EtherealOdds = odds
	}
	return cfg, nil
}

type PlayerSpec struct {
	Name           string   `yaml:"name"`
	Body           BodySpec `yaml:"body"`
	Health         float64  `yaml:"health"`
	Power          float64  `yaml:"power"`
	AttackRange    float64  `yaml:"attack_range"`
	AttackCooldown int      `yaml:"attack_cooldown"`
	PatrolSpeed    float64  `yaml:"patrol_speed"`
}

type SolidSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArenaSpec lays out the sandbox: static solids, the patrol bounds of the
// target and where skeletons spawn.
type ArenaSpec struct {
	Name      string      `yaml:"name"`
	Width     float64     `yaml:"width"`
	Height    float64     `yaml:"height"`
	Solids    []SolidSpec `yaml:"solids"`
	PlayerX   float64     `yaml:"player_x"`
	PlayerY   float64     `yaml:"player_y"`
	PatrolMin float64     `yaml:"patrol_min"`
	PatrolMax float64     `yaml:"patrol_max"`
	SpawnY    float64     `yaml:"spawn_y"`
	SpawnMinX float64     `yaml:"spawn_min_x"`
	SpawnMaxX float64     `yaml:"spawn_max_x"`
}
