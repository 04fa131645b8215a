// Package homestead wires the world together. A Game owns the player, the
// entity registries and the collision, proximity and dialogue engines, and
// drives them in a fixed order once per frame.
package homestead

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-homestead/internal/collision"
	"github.com/vovakirdan/tui-homestead/internal/config"
	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/dialogue"
	"github.com/vovakirdan/tui-homestead/internal/entity"
	"github.com/vovakirdan/tui-homestead/internal/proximity"
	"github.com/vovakirdan/tui-homestead/internal/registry"
	"github.com/vovakirdan/tui-homestead/internal/render"
)

// Game is the composition root of one running world.
type Game struct {
	cfg     config.WorldConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	seq      *entity.Sequence
	player   *Player
	camera   *Camera
	npcs     *registry.NPCManager
	objects  *registry.ObjectManager
	zones    []*entity.Zone
	resolver *collision.Resolver
	index    *proximity.Index
	dialogue *dialogue.Machine

	match proximity.Match // what the player stood next to last frame
	quit  bool
	frame int
}

// New builds a world from cfg. A nil logger discards output.
func New(cfg config.WorldConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{cfg: cfg, log: logger, runtime: core.DefaultConfig()}
	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the unique identifier for this world.
func (g *Game) ID() string {
	return "homestead"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.cfg.Name != "" {
		return g.cfg.Name
	}
	return "Homestead"
}

// Reset rebuilds the world from its configuration: entities respawn, cursors
// start over and the player returns to the start.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	g.runtime = rc
	return g.build()
}

func (g *Game) build() error {
	interior := g.cfg.Grid.Interior()

	g.seq = &entity.Sequence{}
	g.npcs = registry.NewNPCManager(g.seq)
	g.objects = registry.NewObjectManager(g.seq)

	for _, n := range g.cfg.NPCs {
		npc := g.npcs.AddNPC(n.Name, n.Position.Point(), n.Lines)
		if n.Radius > 0 {
			npc.SetInteractionRadius(n.Radius)
		}
	}
	for i, o := range g.cfg.Objects {
		obj, err := registry.Create(o.Archetype, registry.Params{
			Position:    o.Position.Point(),
			Lines:       o.Lines,
			Variant:     o.Variant,
			PatrolWidth: o.PatrolWidth,
			Speed:       o.Speed,
			Radius:      o.Radius,
			MinX:        float64(interior.X),
			MaxX:        float64(interior.Right() - entity.DogWidth),
		})
		if err != nil {
			return fmt.Errorf("homestead: object %d: %w", i, err)
		}
		g.objects.Add(obj)
	}

	g.zones = g.cfg.ZoneEntities()
	g.resolver = collision.NewResolver(interior, g.cfg.ObstacleRects(),
		g.npcs.CheckCollisionWithAny,
		g.objects.CheckCollisionWithAny,
	)
	g.index = proximity.NewIndex(g.zones, proximity.DefaultMargins().With(g.cfg.MarginsByKind()), g.npcs, g.objects)

	g.dialogue = dialogue.NewMachine(g.Directory(), g.index)
	g.dialogue.OnTransition = func(from, to dialogue.State) {
		g.log.Debug("dialogue", "from", from, "to", to, "frame", g.frame)
	}
	g.dialogue.OnFallback = func(lost entity.ID, zone *entity.Zone) {
		if zone == nil {
			g.log.Warn("speaker gone, closing dialogue", "id", lost)
			return
		}
		g.log.Warn("speaker gone, falling back to zone", "id", lost, "zone", zone.Kind())
	}

	g.player = NewPlayer(g.cfg.Player.Start.Point(), g.cfg.Player.Speed)
	g.camera = NewCamera(g.cfg.Grid.Bounds())
	g.camera.SetViewport(g.runtime.ScreenW*render.DefaultCellW, g.runtime.ScreenH*render.DefaultCellH)
	g.camera.Follow(g.player.Center())

	g.match = proximity.Match{}
	g.quit = false
	g.frame = 0

	g.log.Info("world loaded",
		"name", g.Title(),
		"zones", len(g.zones),
		"npcs", g.npcs.Len(),
		"objects", g.objects.Len(),
	)
	return nil
}

// Step advances the world by dt seconds. The order is fixed: movement is
// resolved first, then proximity is computed from the new position, then
// the dialogue reacts, and only then do entities move.
func (g *Game) Step(dt float64, in core.Input) core.StepResult {
	if in.IsActionPressed(core.ActionQuit) {
		g.quit = true
	}
	if g.quit {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	g.player.HandleInput(in)
	g.player.MoveTo(g.resolver.Slide(g.player.Position(), g.player.Proposed(dt)))
	g.camera.Follow(g.player.Center())

	g.match = g.index.FindNearbyInteractable(g.player.Position())
	g.dialogue.Update(dt, g.match, in)

	g.npcs.UpdateAll(dt)
	g.objects.UpdateWithPlayer(dt, g.player.Center())

	return core.StepResult{State: g.State()}
}

// Render draws the world into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	p := render.NewProjector(dst, render.DefaultCellW, render.DefaultCellH)

	vw, vh := p.ViewportPixels()
	if w, h := g.camera.Viewport(); w != vw || h != vh {
		g.camera.SetViewport(vw, vh)
		g.camera.Follow(g.player.Center())
	}
	cam := g.camera.Offset()

	render.PaintWorld(p, cam, g.cfg.Grid, g.zones, g.resolver.Obstacles())
	g.npcs.RenderAll(p, cam)
	g.objects.RenderAll(p, cam)
	g.player.Render(p, cam)
	render.DrawOverlay(p, g.dialogue.View())
}

// State returns the summary the platform polls after each frame.
func (g *Game) State() core.GameState {
	return core.GameState{
		Quit:           g.quit,
		NearTarget:     g.match.Found(),
		DialogueActive: g.dialogue.Active(),
	}
}

// RemoveEntity despawns an NPC or object. An open dialogue bound to it
// falls back to a zone of the same kind on the next frame.
func (g *Game) RemoveEntity(id entity.ID) bool {
	removed := g.npcs.Remove(id) || g.objects.Remove(id)
	if removed {
		g.log.Info("entity removed", "id", id)
	}
	return removed
}

// Directory resolves entity IDs across both registries.
func (g *Game) Directory() registry.Directory {
	return registry.Directory{NPCs: g.npcs, Objects: g.objects}
}

// Config returns the world configuration.
func (g *Game) Config() config.WorldConfig { return g.cfg }

// Player returns the avatar.
func (g *Game) Player() *Player { return g.player }

// Camera returns the camera.
func (g *Game) Camera() *Camera { return g.camera }

// NPCs returns the NPC registry.
func (g *Game) NPCs() *registry.NPCManager { return g.npcs }

// Objects returns the dynamic object registry.
func (g *Game) Objects() *registry.ObjectManager { return g.objects }

// Resolver returns the collision resolver.
func (g *Game) Resolver() *collision.Resolver { return g.resolver }

// Index returns the proximity index.
func (g *Game) Index() *proximity.Index { return g.index }

// Dialogue returns the dialogue session.
func (g *Game) Dialogue() *dialogue.Machine { return g.dialogue }

// Match returns what the player was next to after the last step.
func (g *Game) Match() proximity.Match { return g.match }

// Frame returns the number of frames stepped since the last reset.
func (g *Game) Frame() int { return g.frame }
