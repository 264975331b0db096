package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/boneyard/ecs"
	"github.com/milk9111/boneyard/ecs/component"
	"github.com/milk9111/boneyard/prefabs"
	"github.com/milk9111/boneyard/scene"
	"github.com/milk9111/boneyard/skeleton"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 960
	baseHeight = 540
)

var (
	colorLit     = color.RGBA{0x3a, 0x3f, 0x4a, 0xff}
	colorDark    = color.RGBA{0x0c, 0x0d, 0x12, 0xff}
	colorSolid   = colornames.Saddlebrown
	colorPlayer  = colornames.Deepskyblue
	colorGlow    = color.RGBA{0xb3, 0xe5, 0xfc, 0x40}
	colorDead    = colornames.Dimgray
	skeletonTint = map[skeleton.State]color.RGBA{
		skeleton.StateRoam:   colornames.Beige,
		skeleton.StateChase:  colornames.Orange,
		skeleton.StateAttack: colornames.Crimson,
		skeleton.StateFly:    colornames.Mediumpurple,
	}
)

type Game struct {
	opts  scene.Options
	debug bool
	log   logrus.FieldLogger

	scene   *scene.Scene
	watcher *prefabs.Watcher
}

func NewGame(opts scene.Options, debug bool, log logrus.FieldLogger) (*Game, error) {
	s, err := scene.Build(opts)
	if err != nil {
		return nil, err
	}
	g := &Game{opts: opts, debug: debug, log: log, scene: s}

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.WithError(err).Warn("boneyard: prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollReload()
	g.scene.Update()
	return nil
}

// pollReload rebuilds the scene after a prefab edit. A broken edit keeps the
// running scene.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			s, err := scene.Build(g.opts)
			if err != nil {
				g.log.WithError(err).WithField("file", name).Error("boneyard: reload")
				continue
			}
			g.log.WithField("file", name).Info("boneyard: reloaded")
			g.scene = s
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.WithError(err).Warn("boneyard: watch")
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.scene.World()
	st := g.scene.Stats()

	if st.GlobalLight {
		screen.Fill(colorLit)
	} else {
		screen.Fill(colorDark)
	}

	ecs.ForEach2(w, component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.GroundTag, t *component.Transform) {
		if b, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			drawBox(screen, t, b.Width, b.Height, colorSolid)
		}
	})

	ecs.ForEach3(w, component.SkeletonBrainComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, brain *component.SkeletonBrain, t *component.Transform, b *component.PhysicsBody) {
		sk := brain.Skeleton
		if l, ok := ecs.Get(w, e, component.LightComponent.Kind()); ok && l.On {
			vector.FillCircle(screen, float32(t.X), float32(t.Y), float32(l.Radius), colorGlow, true)
		}
		tint := skeletonTint[sk.State()]
		if sk.Flags().Dead {
			tint = colorDead
		}
		drawBox(screen, t, b.Width, b.Height, tint)
		// facing marker
		vector.FillRect(screen, float32(t.X+float64(t.Facing)*b.Width/2-2), float32(t.Y-b.Height/2+4), 4, 4, colorDark, false)

		if g.debug {
			if b.Ghost {
				strokeBox(screen, t, b.Width, b.Height, colornames.Red)
			}
			clip, _ := sk.Animation()
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %s\n%.0f", sk.State(), clip, sk.Health()), int(t.X-b.Width), int(t.Y-b.Height/2-30))
		}
	})

	if t, ok := ecs.Get(w, g.scene.Player(), component.TransformComponent.Kind()); ok {
		if b, ok := ecs.Get(w, g.scene.Player(), component.PhysicsBodyComponent.Kind()); ok {
			drawBox(screen, t, b.Width, b.Height, colorPlayer)
		}
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, g.overlay(st))
	}
}

func (g *Game) overlay(st scene.Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "TPS: %.1f  t=%.0fms\n", ebiten.ActualTPS(), st.Now)
	fmt.Fprintf(&sb, "player hp: %.0f  skeletons: %d  flying: %v\n", st.PlayerHealth, st.Skeletons, st.Flying)
	for _, name := range st.StateNames() {
		fmt.Fprintf(&sb, "  %s: %d\n", name, st.States[name])
	}
	return sb.String()
}

func drawBox(screen *ebiten.Image, t *component.Transform, width, height float64, clr color.Color) {
	vector.FillRect(screen, float32(t.X-width/2), float32(t.Y-height/2), float32(width), float32(height), clr, false)
}

func strokeBox(screen *ebiten.Image, t *component.Transform, width, height float64, clr color.Color) {
	vector.StrokeRect(screen, float32(t.X-width/2), float32(t.Y-height/2), float32(width), float32(height), 1, clr, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
