package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/pumpkin-invaders/components"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/automoto/pumpkin-invaders/fonts"
	"github.com/automoto/pumpkin-invaders/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var (
	pumpkinColor   = color.RGBA{R: 255, G: 120, B: 0, A: 255}
	bossTileColor  = color.RGBA{R: 200, G: 60, B: 0, A: 255}
	stemColor      = color.RGBA{R: 60, G: 140, B: 40, A: 255}
	faceColor      = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	shipColor      = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	laserColor     = color.RGBA{R: 255, G: 60, B: 200, A: 160}
	bulletColor    = color.RGBA{R: 255, G: 255, B: 160, A: 255}
	pierceColor    = color.RGBA{R: 160, G: 255, B: 255, A: 255}
	grenadeColor   = color.RGBA{R: 120, G: 255, B: 80, A: 255}
	projColor      = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	witchColor     = color.RGBA{R: 150, G: 60, B: 220, A: 255}
	extraLifeColor = color.RGBA{R: 255, G: 80, B: 120, A: 255}

	bossColors = []color.RGBA{
		{R: 230, G: 110, B: 20, A: 255},
		{R: 200, G: 170, B: 60, A: 255},
		{R: 250, G: 70, B: 20, A: 255},
		{R: 90, G: 60, B: 110, A: 255},
		{R: 220, G: 220, B: 200, A: 255},
		{R: 90, G: 120, B: 220, A: 255},
	}
	specialBossColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}

	powerUpColors = map[components.PowerUpKind]color.RGBA{
		components.PowerUpLaser:      {R: 255, G: 60, B: 200, A: 255},
		components.PowerUpPierce:     {R: 80, G: 240, B: 240, A: 255},
		components.PowerUpClone:      {R: 120, G: 220, B: 255, A: 255},
		components.PowerUpShield:     {R: 100, G: 180, B: 255, A: 255},
		components.PowerUpFullShield: {R: 40, G: 120, B: 255, A: 255},
		components.PowerUpAutoShoot:  {R: 255, G: 230, B: 60, A: 255},
	}
)

// DrawGame renders the play field, offset by the current screen shake.
func DrawGame(ecs *ecs.ECS, screen *ebiten.Image) {
	g := getGame(ecs)
	ox, oy := ShakeOffset(ecs)

	vector.FillRect(screen, 0, 0, float32(g.Width), float32(g.Height), cfg.Menu.BackgroundColor, false)

	drawLasers(ecs, screen, ox, oy)
	drawPumpkins(ecs, screen, ox, oy)
	drawBoss(ecs, screen, ox, oy)
	drawWitch(ecs, screen, ox, oy)
	drawShips(ecs, screen, ox, oy)
	drawProjectiles(ecs, screen, ox, oy)
	drawPickups(ecs, screen, ox, oy)
	drawParticles(ecs, screen, ox, oy)
}

func drawLasers(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	if getGame(ecs).Phase != components.PhasePlaying {
		return
	}
	width := cfg.Weapons.LaserWidth * getGame(ecs).Scale
	for _, ship := range laserShips(ecs) {
		obj := components.Object.Get(ship)
		x, _ := obj.Center()
		vector.FillRect(screen, float32(x-width/2+ox), float32(oy), float32(width), float32(obj.Y), laserColor, false)
	}
}

func drawPumpkins(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	tags.Pumpkin.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Pumpkin.Get(e)
		obj := components.Object.Get(e)
		x, y := obj.Center()
		x, y = x+ox, y+oy
		r := obj.W / 2

		if p.Exploding {
			progress := float64(p.ExplosionFrame) / float64(cfg.Formation.ExplosionFrames)
			c := pumpkinColor
			c.A = uint8(255 * (1 - progress))
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r*(1+progress)), c, true)
			return
		}

		body := pumpkinColor
		if p.BossTile {
			body = bossTileColor
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), body, true)
		vector.FillRect(screen, float32(x-2), float32(obj.Y+oy-4), 4, 6, stemColor, false)
		drawFace(screen, p.FaceType, x, y, r)

		if p.Damage > 0 {
			drawBar(screen, obj.X+ox, obj.Y+oy+obj.H+2, obj.W, 3, 1-p.Damage/p.MaxDamage, cfg.Red)
		}
	})
}

// drawFace draws one of the jack-o'-lantern faces.
func drawFace(screen *ebiten.Image, face int, x, y, r float64) {
	eye := float32(r * 0.18)
	switch face % cfg.Formation.FaceTypes {
	case 0:
		vector.FillRect(screen, float32(x-r*0.45), float32(y-r*0.35), eye*1.4, eye, faceColor, false)
		vector.FillRect(screen, float32(x+r*0.2), float32(y-r*0.35), eye*1.4, eye, faceColor, false)
	case 1:
		vector.DrawFilledCircle(screen, float32(x-r*0.35), float32(y-r*0.25), eye, faceColor, true)
		vector.DrawFilledCircle(screen, float32(x+r*0.35), float32(y-r*0.25), eye, faceColor, true)
	case 2:
		vector.StrokeLine(screen, float32(x-r*0.5), float32(y-r*0.4), float32(x-r*0.2), float32(y-r*0.2), 2, faceColor, true)
		vector.StrokeLine(screen, float32(x+r*0.5), float32(y-r*0.4), float32(x+r*0.2), float32(y-r*0.2), 2, faceColor, true)
	default:
		vector.DrawFilledCircle(screen, float32(x-r*0.35), float32(y-r*0.25), eye*0.7, faceColor, true)
		vector.FillRect(screen, float32(x+r*0.2), float32(y-r*0.3), eye*1.4, eye*0.6, faceColor, false)
	}
	vector.FillRect(screen, float32(x-r*0.45), float32(y+r*0.25), float32(r*0.9), float32(r*0.15), faceColor, false)
}

func drawBoss(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	entry, ok := tags.Boss.First(ecs.World)
	if !ok {
		return
	}
	b := components.Boss.Get(entry)
	obj := components.Object.Get(entry)
	x, y := obj.Center()
	x, y = x+ox, y+oy

	c := specialBossColor
	if !b.Special && b.Index >= 0 {
		c = bossColors[b.Index%len(bossColors)]
	}

	switch b.State {
	case components.BossTeleporting:
		// Fades out to the teleport midpoint and back in.
		half := float64(cfg.Boss.TeleportFrames) / 2
		c.A = uint8(255 * math.Abs(float64(b.StateFrame)-half) / half)
	case components.BossExploding:
		progress := float64(b.StateFrame) / float64(cfg.Boss.ExplosionFrames)
		c.A = uint8(255 * (1 - progress))
	}

	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(b.Size/2), c, true)
	drawFace(screen, max(0, b.Index), x, y, b.Size/2)
}

func drawWitch(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	entry, ok := tags.Witch.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	w := components.Witch.Get(entry)
	x, y := obj.X+ox, obj.Y+oy

	// Broom, body and hat
	vector.StrokeLine(screen, float32(x), float32(y+obj.H*0.8), float32(x+obj.W), float32(y+obj.H*0.8), 2, stemColor, true)
	vector.FillRect(screen, float32(x+obj.W*0.35), float32(y+obj.H*0.3), float32(obj.W*0.3), float32(obj.H*0.5), witchColor, false)
	hatX := x + obj.W/2
	vector.StrokeLine(screen, float32(hatX-obj.W*0.2), float32(y+obj.H*0.3), float32(hatX+w.Direction*obj.W*0.1), float32(y), 3, witchColor, true)
}

func drawShips(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	if entry, ok := getPlayer(ecs); ok {
		p := components.Player.Get(entry)
		if p.Visible {
			obj := components.Object.Get(entry)
			x, y := obj.Center()
			drawShip(screen, x+ox, y+oy, obj.W, obj.H, p.Rotation, shipColor)
		}
	}
	for _, c := range cloneEntries(ecs) {
		obj := components.Object.Get(c)
		x, y := obj.Center()
		clr := shipColor
		// Fainter as health drops
		clr.A = uint8(255 * components.Clone.Get(c).Health / cfg.Clone.Health)
		drawShip(screen, x+ox, y+oy, obj.W, obj.H, 0, clr)
	}
}

// drawShip outlines a triangle of size w x h centred on (x, y), rotated by
// rot radians.
func drawShip(screen *ebiten.Image, x, y, w, h, rot float64, clr color.Color) {
	pts := [3][2]float64{{0, -h / 2}, {-w / 2, h / 2}, {w / 2, h / 2}}
	sin, cos := math.Sincos(rot)
	for i := range pts {
		px, py := pts[i][0], pts[i][1]
		pts[i] = [2]float64{x + px*cos - py*sin, y + px*sin + py*cos}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%3]
		vector.StrokeLine(screen, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), 2, clr, true)
	}
}

func drawProjectiles(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	bulletQuery.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		clr := bulletColor
		if components.Bullet.Get(e).Pierce {
			clr = pierceColor
		}
		vector.FillRect(screen, float32(obj.X+ox), float32(obj.Y+oy), float32(obj.W), float32(obj.H), clr, false)
	})
	tags.Grenade.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		vector.DrawFilledCircle(screen, float32(x+ox), float32(y+oy), float32(components.Object.Get(e).W/2), grenadeColor, true)
	})
	tags.BossProjectile.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		vector.DrawFilledCircle(screen, float32(x+ox), float32(y+oy), float32(components.Object.Get(e).W/2), projColor, true)
	})
}

func drawPickups(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	small := fonts.Small.Get()
	tags.PowerUp.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		kind := components.PowerUp.Get(e).Kind
		vector.FillRect(screen, float32(obj.X+ox), float32(obj.Y+oy), float32(obj.W), float32(obj.H), powerUpColors[kind], false)
		label := strings.ToUpper(kind.String()[:1])
		text.Draw(screen, label, small, int(obj.X+ox+obj.W/2-4), int(obj.Y+oy+obj.H-4), color.Black)
	})
	tags.ExtraLife.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		vector.DrawFilledCircle(screen, float32(x+ox), float32(y+oy), float32(components.Object.Get(e).W/2), extraLifeColor, true)
		text.Draw(screen, "1UP", small, int(x+ox-9), int(y+oy+4), cfg.White)
	})
}

func drawParticles(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		clr := faceColor
		switch p.Kind {
		case components.ParticleDebris:
			clr = shipColor
		case components.ParticleBoss:
			clr = specialBossColor
		}
		clr.A = uint8(255 * p.Life / max(1, p.MaxLife))
		vector.FillRect(screen, float32(p.X+ox-1), float32(p.Y+oy-1), 3, 3, clr, false)
	})
}

// drawBar draws a horizontal bar filled to fraction.
func drawBar(screen *ebiten.Image, x, y, w, h, fraction float64, clr color.Color) {
	fraction = max(0, min(1, fraction))
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.HUD.ShieldBg, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*fraction), float32(h), clr, false)
}

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y float64, clr color.Color) {
	width := float64(screen.Bounds().Dx())
	bounds := text.BoundString(face, s)
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, s, face, x, int(y), clr)
}

func formatScore(v int) string {
	return fmt.Sprintf("%08d", v)
}
