package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wanderers/camera"
	"github.com/milk9111/wanderers/ecs/component"
	"github.com/milk9111/wanderers/render"
	"github.com/milk9111/wanderers/sim"
	"gopkg.in/yaml.v3"
)

// DefaultSpecFile is the spec the game loads when none is named.
const DefaultSpecFile = "wanderers.yaml"

// WanderSpec configures the roster, its animations and the view.
type WanderSpec struct {
	Name       string         `yaml:"name"`
	Roster     RosterSpec     `yaml:"roster"`
	Motion     MotionSpec     `yaml:"motion"`
	Sheet      SheetSpec      `yaml:"sheet"`
	Animations AnimationsSpec `yaml:"animations"`
	Camera     CameraSpec     `yaml:"camera"`
	Background *YAMLColor     `yaml:"background"`
}

type RosterSpec struct {
	Count int           `yaml:"count"`
	Spawn TransformSpec `yaml:"spawn"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type MotionSpec struct {
	InitialStandMS int     `yaml:"initial_stand_ms"`
	MinDurationMS  int     `yaml:"min_duration_ms"`
	JitterMS       int     `yaml:"jitter_ms"`
	MaxSpeed       float64 `yaml:"max_speed"`
}

type SheetSpec struct {
	Image      string  `yaml:"image"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	Columns    int     `yaml:"columns"`
	FrameCount int     `yaml:"frame_count"`
	SpriteSize float64 `yaml:"sprite_size"`
}

// AnimationsSpec lists one animation per facing direction.
type AnimationsSpec struct {
	TimingMS int              `yaml:"timing_ms"`
	South    AnimationDefSpec `yaml:"south"`
	West     AnimationDefSpec `yaml:"west"`
	North    AnimationDefSpec `yaml:"north"`
	East     AnimationDefSpec `yaml:"east"`
}

// AnimationDefSpec is either an explicit frame list or a run of Count frames
// starting at First. TimingMS overrides the shared timing when set.
type AnimationDefSpec struct {
	Frames   []int `yaml:"frames"`
	First    int   `yaml:"first"`
	Count    int   `yaml:"count"`
	TimingMS int   `yaml:"timing_ms"`
}

type CameraSpec struct {
	Height float64       `yaml:"height"`
	Aspect float64       `yaml:"aspect"`
	Speed  float64       `yaml:"speed"`
	Center TransformSpec `yaml:"center"`
}

// LoadSpec reads and decodes a YAML spec by prefab-relative name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadWanderSpec loads filename and fills unset fields with defaults.
func LoadWanderSpec(filename string) (*WanderSpec, error) {
	if filename == "" {
		filename = DefaultSpecFile
	}
	spec, err := LoadSpec[WanderSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.MotionTiming().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

func (s *WanderSpec) applyDefaults() {
	if s.Roster.Count == 0 {
		s.Roster.Count = 20
	}
	d := component.DefaultMotionTiming
	if s.Motion.InitialStandMS == 0 {
		s.Motion.InitialStandMS = int(d.InitialStand / time.Millisecond)
	}
	if s.Motion.MinDurationMS == 0 {
		s.Motion.MinDurationMS = int(d.MinDuration / time.Millisecond)
	}
	if s.Motion.JitterMS == 0 {
		s.Motion.JitterMS = int(d.Jitter / time.Millisecond)
	}
	if s.Motion.MaxSpeed == 0 {
		s.Motion.MaxSpeed = d.MaxSpeed
	}
	if s.Animations.TimingMS == 0 {
		s.Animations.TimingMS = 100
	}
	if s.Sheet.FrameW == 0 {
		s.Sheet.FrameW = 32
	}
	if s.Sheet.FrameH == 0 {
		s.Sheet.FrameH = 32
	}
	if s.Sheet.Columns == 0 {
		s.Sheet.Columns = 6
	}
	if s.Sheet.FrameCount == 0 {
		s.Sheet.FrameCount = 24
	}
	if s.Sheet.SpriteSize == 0 {
		s.Sheet.SpriteSize = 0.5
	}
	if s.Camera.Height == 0 {
		s.Camera.Height = 3
	}
	if s.Camera.Aspect == 0 {
		s.Camera.Aspect = 16.0 / 9.0
	}
	if s.Camera.Speed == 0 {
		s.Camera.Speed = 0.2
	}
	if s.Background == nil {
		s.Background = &YAMLColor{Color: color.NRGBA{R: 0x05, G: 0x05, B: 0x03, A: 0xff}}
	}
}

// MotionTiming converts the motion section.
func (s *WanderSpec) MotionTiming() component.MotionTiming {
	return component.MotionTiming{
		InitialStand: time.Duration(s.Motion.InitialStandMS) * time.Millisecond,
		MinDuration:  time.Duration(s.Motion.MinDurationMS) * time.Millisecond,
		Jitter:       time.Duration(s.Motion.JitterMS) * time.Millisecond,
		MaxSpeed:     s.Motion.MaxSpeed,
	}
}

// RosterConfig converts the roster and motion sections.
func (s *WanderSpec) RosterConfig() sim.Config {
	return sim.Config{
		Count:  s.Roster.Count,
		Spawn:  cp.Vector{X: s.Roster.Spawn.X, Y: s.Roster.Spawn.Y},
		Timing: s.MotionTiming(),
	}
}

// View converts the camera section.
func (s *WanderSpec) View() camera.Camera {
	return camera.Camera{
		Center: cp.Vector{X: s.Camera.Center.X, Y: s.Camera.Center.Y},
		Height: s.Camera.Height,
		Aspect: s.Camera.Aspect,
	}
}

// DirectionalAnimations builds the shared per-direction animation table.
func (s *WanderSpec) DirectionalAnimations() (*component.DirectionalAnimations, error) {
	defs := [component.DirectionCount]AnimationDefSpec{
		component.South: s.Animations.South,
		component.West:  s.Animations.West,
		component.North: s.Animations.North,
		component.East:  s.Animations.East,
	}

	var table component.DirectionalAnimations
	for d, def := range defs {
		dir := component.Direction(d)
		frames := def.Frames
		if len(frames) == 0 {
			frames = component.FrameRange(def.First, def.Count)
		}
		for _, f := range frames {
			if f < 0 || f >= s.Sheet.FrameCount {
				return nil, fmt.Errorf("prefabs: %s animation frame %d outside sheet of %d", dir, f, s.Sheet.FrameCount)
			}
		}
		timing := def.TimingMS
		if timing == 0 {
			timing = s.Animations.TimingMS
		}
		anim, err := component.NewAnimation(dir.String(), frames, time.Duration(timing)*time.Millisecond)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %w", err)
		}
		table[d] = anim
	}
	return &table, nil
}

// LoadSheet loads the configured sheet image, or generates a placeholder
// when none is set.
func (s *WanderSpec) LoadSheet() (*render.Sheet, error) {
	if s.Sheet.Image != "" {
		return render.LoadSheet(s.Sheet.Image, s.Sheet.FrameW, s.Sheet.FrameH, s.Sheet.FrameCount)
	}
	return render.PlaceholderSheet(s.Sheet.FrameW, s.Sheet.FrameH, s.Sheet.Columns, s.Sheet.FrameCount)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Hex formats a colour as #rrggbb.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
