package systems

import (
	"fmt"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/fonts"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10

	bannerFrames = 90
	flashFrames  = 10
	ringFrames   = 20
)

// RegisterHUD creates the HUD state and subscribes it to the simulation's
// notifications. Subscribers only touch HUD state.
func RegisterHUD(e *ecs.ECS) {
	entry := e.World.Entry(e.World.Create(components.HUD))

	LevelStartEvent.Subscribe(e.World, func(_ donburi.World, ev LevelStart) {
		hud := components.HUD.Get(entry)
		hud.Banner = fmt.Sprintf("LEVEL %d", ev.Level)
		if ev.IsBoss {
			hud.Banner += " - BOSS"
		}
		hud.BannerFrames = bannerFrames
	})
	ScoreChangedEvent.Subscribe(e.World, func(_ donburi.World, _ ScoreChanged) {
		components.HUD.Get(entry).ScoreFlash = flashFrames
	})
	ExplosionEvent.Subscribe(e.World, func(_ donburi.World, ev Explosion) {
		hud := components.HUD.Get(entry)
		hud.Rings = append(hud.Rings, components.Ring{X: ev.X, Y: ev.Y, Intensity: ev.Intensity})
	})
	LifeLostEvent.Subscribe(e.World, func(_ donburi.World, ev LifeLost) {
		hud := components.HUD.Get(entry)
		if ev.LivesLeft == 1 {
			hud.Banner = "LAST LIFE"
			hud.BannerFrames = bannerFrames
		}
	})
}

// UpdateHUD ages the HUD animations.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	if hud.BannerFrames > 0 {
		hud.BannerFrames--
	}
	if hud.ScoreFlash > 0 {
		hud.ScoreFlash--
	}
	rings := hud.Rings[:0]
	for _, r := range hud.Rings {
		r.Frame++
		if r.Frame < ringFrames {
			rings = append(rings, r)
		}
	}
	hud.Rings = rings
}

// DrawHUD renders score, level, lives, shield, combo, weapon state and the
// cutscene captions.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	g := getGame(e)
	regular := fonts.Regular.Get()
	width := g.Width
	height := g.Height

	if entry, ok := components.HUD.First(e.World); ok {
		drawRings(screen, components.HUD.Get(entry))
	}

	scoreColor := cfg.HUD.TextColor
	if entry, ok := components.HUD.First(e.World); ok && components.HUD.Get(entry).ScoreFlash > 0 {
		scoreColor = cfg.BrightOrange
	}
	text.Draw(screen, formatScore(g.Score), regular, hudMargin, hudMargin+14, scoreColor)
	levelLabel := fmt.Sprintf("LV %d", g.Level)
	text.Draw(screen, levelLabel, regular, int(width)-hudMargin-text.BoundString(regular, levelLabel).Dx(), hudMargin+14, cfg.HUD.TextColor)

	// Shield bar and lives along the bottom
	barY := height - hudMargin - hudBarHeight
	drawBar(screen, hudMargin, barY, hudBarWidth, hudBarHeight, float64(g.Shield)/float64(cfg.Player.MaxShield), cfg.HUD.ShieldColor)
	for i := 0; i < g.Lives; i++ {
		x := float32(hudMargin + hudBarWidth + 14 + i*14)
		vector.DrawFilledCircle(screen, x, float32(barY+hudBarHeight/2), 5, extraLifeColor, true)
	}

	small := fonts.Small.Get()
	status := weaponStatus(e)
	if status != "" {
		text.Draw(screen, status, small, int(width)-hudMargin-text.BoundString(small, status).Dx(), int(height)-hudMargin, cfg.HUD.TextColor)
	}
	if g.Combo > 1 {
		drawCentered(screen, fmt.Sprintf("COMBO x%d", g.Combo), small, hudMargin+30, cfg.BrightOrange)
	}

	drawBossBar(e, screen)

	switch {
	case DeathMessageVisible(g):
		drawCentered(screen, "YOU DIED", fonts.Title.Get(), height/2-60, cfg.HUD.DeathColor)
	case g.Phase == components.PhaseLevelComplete:
		drawCentered(screen, "LEVEL COMPLETE", fonts.Bold.Get(), height/2, cfg.HUD.BannerColor)
	case g.Phase == components.PhaseGameOver:
		drawCentered(screen, "GAME OVER", fonts.Title.Get(), height/2, cfg.HUD.DeathColor)
	default:
		if entry, ok := components.HUD.First(e.World); ok {
			hud := components.HUD.Get(entry)
			if hud.BannerFrames > 0 {
				drawCentered(screen, hud.Banner, fonts.Bold.Get(), height/2, cfg.HUD.BannerColor)
			}
		}
	}
}

// weaponStatus summarizes the timed weapons and buffs in seconds.
func weaponStatus(e *ecs.ECS) string {
	g := getGame(e)
	s := ""
	if main := mainShip(e); main != nil && main.Weapon != components.WeaponNone {
		s = fmt.Sprintf("%s %ds", main.Weapon, main.WeaponTimer/60)
	}
	if g.AutoShoot > 0 {
		s += fmt.Sprintf("  auto %ds", g.AutoShoot/60)
	}
	if g.PierceCooldown > 0 {
		s += fmt.Sprintf("  pierce cd %ds", g.PierceCooldown/60+1)
	}
	return s
}

func drawBossBar(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Boss.First(e.World)
	if !ok {
		return
	}
	g := getGame(e)
	b := components.Boss.Get(entry)
	small := fonts.Small.Get()
	w := g.Width - 2*hudMargin
	drawBar(screen, hudMargin, hudMargin+22, w, 6, b.Remaining(), cfg.Red)
	text.Draw(screen, b.Name, small, hudMargin, hudMargin+44, cfg.HUD.TextColor)
}

func drawRings(screen *ebiten.Image, hud *components.HUDData) {
	for _, r := range hud.Rings {
		progress := float32(r.Frame) / ringFrames
		clr := faceColor
		clr.A = uint8(200 * (1 - progress))
		radius := float32(8+40*r.Intensity) * (0.3 + progress)
		vector.StrokeCircle(screen, float32(r.X), float32(r.Y), radius, 2, clr, true)
	}
}
