package skeleton

// Animation clip names the skeleton plays.
const (
	AnimIdle         = "idle"
	AnimWalk         = "walk"
	AnimAttack       = "attack"
	AnimHurt         = "hurt"
	AnimDeath        = "death"
	AnimTransformIn  = "transform_in"
	AnimTransformOut = "transform_out"
	AnimFlyIdle      = "fly_idle"
)

// Clip describes the timing of one animation.
type Clip struct {
	Frames int
	FPS    float64
	Loop   bool
}

// Duration returns the clip length in ms.
func (c Clip) Duration() float64 {
	if c.Frames <= 0 || c.FPS <= 0 {
		return 0
	}
	return float64(c.Frames) / c.FPS * 1000
}

// PathParams shapes the flight path (see flightpath.New).
type PathParams struct {
	Amplitude float64
	Period    float64
	Wobble    float64
}

// Config holds the tunables fixed at construction. Durations and timestamps
// are simulation milliseconds, speed is pixels per second.
type Config struct {
	MaxHealth float64
	Speed     float64
	Power     float64
	Knockback float64

	ChaseDistance       float64
	FlightLeaveDistance float64
	FlightDrift         float64

	DormancyCooldown    float64
	DormancyProbability float64
	MinDormancyDuration float64
	MaxDormancyDuration float64

	EtherealFormThreshold   float64
	EtherealFormProbability float64
	// EtherealOdds overrides EtherealFormProbability when set.
	EtherealOdds Odds

	Path  PathParams
	Clips map[string]Clip
}

func DefaultConfig() Config {
	return Config{
		MaxHealth:               100,
		Speed:                   60,
		Power:                   10,
		Knockback:               120,
		ChaseDistance:           220,
		FlightLeaveDistance:     750,
		FlightDrift:             0.75,
		DormancyCooldown:        5000,
		DormancyProbability:     0.005,
		MinDormancyDuration:     1500,
		MaxDormancyDuration:     4000,
		EtherealFormThreshold:   0.3,
		EtherealFormProbability: 0.35,
		Path:                    PathParams{Amplitude: 90, Period: 3200, Wobble: 24},
		Clips: map[string]Clip{
			AnimIdle:         {Frames: 4, FPS: 6, Loop: true},
			AnimWalk:         {Frames: 8, FPS: 10, Loop: true},
			AnimAttack:       {Frames: 6, FPS: 12},
			AnimHurt:         {Frames: 3, FPS: 12},
			AnimDeath:        {Frames: 8, FPS: 10},
			AnimTransformIn:  {Frames: 10, FPS: 12},
			AnimTransformOut: {Frames: 10, FPS: 12},
			AnimFlyIdle:      {Frames: 4, FPS: 8, Loop: true},
		},
	}
}

func (c Config) clip(name string) Clip {
	if c.Clips == nil {
		return Clip{}
	}
	return c.Clips[name]
}

func (c Config) normalized() Config {
	if c.MinDormancyDuration > c.MaxDormancyDuration {
		c.MinDormancyDuration, c.MaxDormancyDuration = c.MaxDormancyDuration, c.MinDormancyDuration
	}
	if c.FlightLeaveDistance <= 0 {
		c.FlightLeaveDistance = 750
	}
	if c.FlightDrift == 0 {
		c.FlightDrift = 0.75
	}
	return c
}
