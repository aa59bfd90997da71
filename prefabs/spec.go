package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](l *Library, filename string) (T, error) {
	var zero T
	data, err := l.Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteSpec struct {
	Image       string  `yaml:"image"`
	OffsetX     float64 `yaml:"offset_x"`
	OffsetY     float64 `yaml:"offset_y"`
	Base        string  `yaml:"base"`
	BaseOffsetX float64 `yaml:"base_offset_x"`
	BaseOffsetY float64 `yaml:"base_offset_y"`
}

type AnimationSpec struct {
	Path   string `yaml:"path"`
	Frames int    `yaml:"frames"`
	Hold   int    `yaml:"hold"`
}

type PlayerSpec struct {
	Name        string                   `yaml:"name"`
	Life        int                      `yaml:"life"`
	Speed       float64                  `yaml:"speed"`
	JumpSpeed   float64                  `yaml:"jump_speed"`
	Gravity     float64                  `yaml:"gravity"`
	MaxFall     float64                  `yaml:"max_fall"`
	DashSpeed   float64                  `yaml:"dash_speed"`
	DashBoost   float64                  `yaml:"dash_boost"`
	DashFrames  int                      `yaml:"dash_frames"`
	DashCharges int                      `yaml:"dash_charges"`
	Collider    ColliderSpec             `yaml:"collider"`
	Sprite      SpriteSpec               `yaml:"sprite"`
	Animations  map[string]AnimationSpec `yaml:"animations"`
}

func (l *Library) Player() (PlayerSpec, error) {
	return LoadSpec[PlayerSpec](l, "player.yaml")
}

type BeeSpec struct {
	Name       string       `yaml:"name"`
	PatrolSpan float64      `yaml:"patrol_span"`
	Speed      float64      `yaml:"speed"`
	RestFrames int          `yaml:"rest_frames"`
	AnimFrames int          `yaml:"anim_frames"`
	WalkFrames []string     `yaml:"walk_frames"`
	RestFrame  string       `yaml:"rest_frame"`
	Collider   ColliderSpec `yaml:"collider"`
}

func (l *Library) Bee() (BeeSpec, error) {
	return LoadSpec[BeeSpec](l, "bee.yaml")
}

type CoinSpec struct {
	Name      string        `yaml:"name"`
	Collider  ColliderSpec  `yaml:"collider"`
	Animation AnimationSpec `yaml:"animation"`
}

func (l *Library) Coin() (CoinSpec, error) {
	return LoadSpec[CoinSpec](l, "coin.yaml")
}

type SpikeSpec struct {
	Name     string       `yaml:"name"`
	Image    string       `yaml:"image"`
	Collider ColliderSpec `yaml:"collider"`
}

func (l *Library) Spike() (SpikeSpec, error) {
	return LoadSpec[SpikeSpec](l, "spike.yaml")
}

// ParticleSpec describes a burst. Two-element lists are inclusive [min, max]
// ranges; Speed bounds each velocity axis to [-Speed, Speed].
type ParticleSpec struct {
	Name  string  `yaml:"name"`
	Count int     `yaml:"count"`
	Size  [2]int  `yaml:"size"`
	Life  [2]int  `yaml:"life"`
	Speed float64 `yaml:"speed"`
	Red   [2]int  `yaml:"red"`
	Green [2]int  `yaml:"green"`
	Blue  [2]int  `yaml:"blue"`
}

func (l *Library) Particles() (ParticleSpec, error) {
	return LoadSpec[ParticleSpec](l, "particles.yaml")
}

type FadeSpec struct {
	Name  string   `yaml:"name"`
	Alpha int      `yaml:"alpha"`
	Step  int      `yaml:"step"`
	Color [3]uint8 `yaml:"color"`
}

func (l *Library) Fade() (FadeSpec, error) {
	return LoadSpec[FadeSpec](l, "fade.yaml")
}

// Specs bundles every prefab a stage needs so a scene loads them once.
type Specs struct {
	Player    PlayerSpec
	Bee       BeeSpec
	Coin      CoinSpec
	Spike     SpikeSpec
	Particles ParticleSpec
	Fade      FadeSpec
}

func (l *Library) LoadAll() (Specs, error) {
	var (
		s   Specs
		err error
	)
	if s.Player, err = l.Player(); err != nil {
		return Specs{}, err
	}
	if s.Bee, err = l.Bee(); err != nil {
		return Specs{}, err
	}
	if s.Coin, err = l.Coin(); err != nil {
		return Specs{}, err
	}
	if s.Spike, err = l.Spike(); err != nil {
		return Specs{}, err
	}
	if s.Particles, err = l.Particles(); err != nil {
		return Specs{}, err
	}
	if s.Fade, err = l.Fade(); err != nil {
		return Specs{}, err
	}
	return s, nil
}
