package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// PlayerConfig contains all main-ship configuration values
type PlayerConfig struct {
	StartingLives int
	MaxLives      int
	MaxShield     int

	// Movement
	Speed        float64
	BottomMargin float64 // Distance from the bottom of the field to the ship centre

	// Dimensions
	Width  float64
	Height float64

	// Firing
	BulletSpeed      float64
	BulletWidth      float64
	BulletHeight     float64
	BaseBulletCap    int
	AutoShootEvery   int // frames between automatic shots
	BulletsPerLevels int // one extra bullet allowed per this many levels
}

// CloneConfig contains support-ship configuration values
type CloneConfig struct {
	MaxClones int
	Health    int
	Spacing   float64 // Horizontal distance per slot offset
	YOffset   float64 // Clones trail slightly behind the main ship
	Width     float64
	Height    float64
}

// FormationConfig contains pumpkin formation configuration values
type FormationConfig struct {
	BaseSpeed     float64
	SpeedPerLevel float64 // Added on every level completion
	EdgeMargin    float64
	DropDistance  float64
	OverrunLine   float64 // Distance above the main ship that counts as overrun

	PumpkinWidth  float64
	PumpkinHeight float64
	FaceTypes     int

	NormalMaxDamage   float64
	BossTileMaxDamage float64
	BossTileScale     float64 // Visual growth of boss-tiles
	SplashRadius      float64
	ExplosionFrames   int

	NormalScore   int
	BossTileScore int

	// Shooting
	ShooterChanceBase     float64
	ShooterChancePerLevel float64
	ShooterChanceMax      float64
	ShootCooldownMin      int // inclusive
	ShootCooldownMax      int // exclusive
}

// GrenadeConfig contains pumpkin grenade configuration
type GrenadeConfig struct {
	Speed  float64
	Damage int
	Size   float64
}

// BossProjectileConfig contains boss projectile configuration
type BossProjectileConfig struct {
	Speed           float64
	Damage          int
	Homing          float64 // horizontal acceleration toward the player per frame
	MaxSideSpeed    float64
	Size            float64
	BulletHitRadius float64
	BulletHitScore  int
}

// BossIdentity binds a named boss to its projectile kind
type BossIdentity struct {
	Name       string
	Projectile string
}

// BossConfig contains boss controller configuration
type BossConfig struct {
	BaseSize     float64
	SizeGrowth   float64 // Extra multiples of BaseSize gained by SizeCapLevel
	SizeMinimum  float64 // Multiples of BaseSize at level 0
	SizeCapLevel float64

	BaseHP     float64
	HPPerLevel float64

	// Movement
	EntranceDuration  float32 // seconds
	BandTop           float64
	BandHeight        float64 // Vertical extent of teleport targets below BandTop
	BandLeft          float64
	BandRight         float64
	SweepSpeed        float64
	DescentSpeed      float64
	OscillationX      float64
	OscillationY      float64
	OscillationPeriod time.Duration
	BottomMargin      float64 // Distance above the main ship that counts as overrun

	// Shooting
	ShootCooldownBase     int
	ShootCooldownPerLevel int
	ShootCooldownMin      int
	ShootCooldownJitter   int

	// Damage
	PierceBaseDamage    float64
	PierceLevelStep     int // +1 pierce damage per this many levels
	LaserDamagePerFrame float64

	// Phases
	TeleportFrames  int
	ExplosionFrames int
	Score           int

	// Special variant
	SpecialName     string
	SpecialMinLevel int
	SpecialChance   float64

	Roster []BossIdentity
}

// WeaponConfig contains laser, pierce and autoshoot configuration
type WeaponConfig struct {
	LaserFrames     int
	PierceFrames    int
	AutoShootFrames int

	LaserWidth          float64
	LaserEnemyDamage    float64 // per frame
	LaserStackFalloff   float64 // each additional laser on one target contributes this fraction of the previous
	PierceCooldown      int     // frames
	PierceCooldownStep  int     // frames removed per PierceLevelStep past PierceStartLevel
	PierceCooldownFloor int
	PierceStartLevel    int
	PierceLevelStep     int
}

// DropConfig contains power-up drop configuration
type DropConfig struct {
	NormalChance   float64
	BossTileChance float64
	FallSpeed      float64
	Size           float64
	ShieldBoost    int
}

// WitchConfig contains side-encounter configuration
type WitchConfig struct {
	MinLevel       int
	Gaps           []int
	MaxPasses      int
	Speed          float64
	Y              float64
	Width          float64
	Height         float64
	Score          int
	FlyAwaySpeed   float64
	TokenFallSpeed float64
	TokenSize      float64
}

// CutsceneConfig contains the fixed-length animation timings
type CutsceneConfig struct {
	DestroyFrames       int
	SpinFrames          int
	GlideFrames         int
	DeathMessageFrame   int
	SpinAcceleration    float64
	SpiralDrift         float64
	LevelCompleteFrames int
}

// ComboConfig contains combo decay configuration
type ComboConfig struct {
	DecayFrames int
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	KillIntensity      float64
	KillDuration       int
	BossKillIntensity  float64
	BossKillDuration   int
	PlayerHitIntensity float64
	PlayerHitDuration  int
	DeathIntensity     float64
	DeathDuration      int
}

// ParticleConfig contains particle spawn configuration
type ParticleConfig struct {
	KillCount   int
	BossCount   int
	DebrisCount int
	Speed       float64
	Life        int
	Gravity     float64
	MaxLive     int
}

// HighScoreConfig contains persisted table configuration
type HighScoreConfig struct {
	AppName  string
	ItemKey  string
	Capacity int
}

// HUDConfig contains HUD colors used by the renderer
type HUDConfig struct {
	TextColor    color.RGBA
	ShieldColor  color.RGBA
	ShieldBg     color.RGBA
	OverlayColor color.RGBA
	DeathColor   color.RGBA
	BannerColor  color.RGBA
}

// MenuConfig contains title menu layout values
type MenuConfig struct {
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Clone CloneConfig
var Formation FormationConfig
var Grenade GrenadeConfig
var BossProjectile BossProjectileConfig
var Boss BossConfig
var Weapons WeaponConfig
var Drops DropConfig
var Witch WitchConfig
var Cutscene CutsceneConfig
var Combo ComboConfig
var ScreenShake ScreenShakeConfig
var Particles ParticleConfig
var HighScores HighScoreConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	Seed       int64
	PlayerName string
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  480,
		Height: 720,
	}

	Player = PlayerConfig{
		StartingLives: 3,
		MaxLives:      9,
		MaxShield:     100,

		Speed:        6.0,
		BottomMargin: 80.0,

		Width:  40.0,
		Height: 30.0,

		BulletSpeed:      9.0,
		BulletWidth:      4.0,
		BulletHeight:     12.0,
		BaseBulletCap:    3,
		AutoShootEvery:   12,
		BulletsPerLevels: 5,
	}

	Clone = CloneConfig{
		MaxClones: 5,
		Health:    3,
		Spacing:   36.0,
		YOffset:   10.0,
		Width:     26.0,
		Height:    20.0,
	}

	Formation = FormationConfig{
		BaseSpeed:     1.0,
		SpeedPerLevel: 0.15,
		EdgeMargin:    10.0,
		DropDistance:  20.0,
		OverrunLine:   40.0,

		PumpkinWidth:  36.0,
		PumpkinHeight: 32.0,
		FaceTypes:     4,

		NormalMaxDamage:   3,
		BossTileMaxDamage: 8,
		BossTileScale:     1.3,
		SplashRadius:      80.0,
		ExplosionFrames:   15,

		NormalScore:   100,
		BossTileScore: 500,

		ShooterChanceBase:     0.10,
		ShooterChancePerLevel: 0.02,
		ShooterChanceMax:      0.50,
		ShootCooldownMin:      120,
		ShootCooldownMax:      300,
	}

	Grenade = GrenadeConfig{
		Speed:  3.0,
		Damage: 15,
		Size:   10.0,
	}

	BossProjectile = BossProjectileConfig{
		Speed:           3.5,
		Damage:          25,
		Homing:          0.05,
		MaxSideSpeed:    2.0,
		Size:            14.0,
		BulletHitRadius: 14.0,
		BulletHitScore:  10,
	}

	Boss = BossConfig{
		BaseSize:     20.0,
		SizeGrowth:   7.0,
		SizeMinimum:  2.0,
		SizeCapLevel: 40.0,

		BaseHP:     40,
		HPPerLevel: 15,

		EntranceDuration:  1.5,
		BandTop:           110.0,
		BandHeight:        160.0,
		BandLeft:          40.0,
		BandRight:         440.0,
		SweepSpeed:        1.2,
		DescentSpeed:      0.05,
		OscillationX:      12.0,
		OscillationY:      6.0,
		OscillationPeriod: time.Second,
		BottomMargin:      40.0,

		ShootCooldownBase:     120,
		ShootCooldownPerLevel: 3,
		ShootCooldownMin:      40,
		ShootCooldownJitter:   30,

		PierceBaseDamage:    4,
		PierceLevelStep:     5,
		LaserDamagePerFrame: 0.05,

		TeleportFrames:  30,
		ExplosionFrames: 15,
		Score:           5000,

		SpecialName:     "Arella",
		SpecialMinLevel: 15,
		SpecialChance:   0.10,

		Roster: []BossIdentity{
			{Name: "Gourdon", Projectile: "seed"},
			{Name: "Scarecrow King", Projectile: "straw"},
			{Name: "Hollow Jack", Projectile: "flame"},
			{Name: "Bat Matriarch", Projectile: "bat"},
			{Name: "Bone Baron", Projectile: "skull"},
			{Name: "Moonshade", Projectile: "orb"},
		},
	}

	Weapons = WeaponConfig{
		LaserFrames:     600,
		PierceFrames:    600,
		AutoShootFrames: 600,

		LaserWidth:          12.0,
		LaserEnemyDamage:    0.1,
		LaserStackFalloff:   0.5,
		PierceCooldown:      300,
		PierceCooldownStep:  60,
		PierceCooldownFloor: 60,
		PierceStartLevel:    40,
		PierceLevelStep:     5,
	}

	Drops = DropConfig{
		NormalChance:   0.15,
		BossTileChance: 0.50,
		FallSpeed:      2.0,
		Size:           18.0,
		ShieldBoost:    50,
	}

	Witch = WitchConfig{
		MinLevel:       4,
		Gaps:           []int{3, 6},
		MaxPasses:      5,
		Speed:          3.0,
		Y:              50.0,
		Width:          40.0,
		Height:         30.0,
		Score:          1000,
		FlyAwaySpeed:   5.0,
		TokenFallSpeed: 1.5,
		TokenSize:      16.0,
	}

	Cutscene = CutsceneConfig{
		DestroyFrames:       100,
		SpinFrames:          40,
		GlideFrames:         20,
		DeathMessageFrame:   25,
		SpinAcceleration:    0.02,
		SpiralDrift:         1.5,
		LevelCompleteFrames: 120,
	}

	Combo = ComboConfig{
		DecayFrames: 120,
	}

	ScreenShake = ScreenShakeConfig{
		KillIntensity:      2.0,
		KillDuration:       5,
		BossKillIntensity:  10.0,
		BossKillDuration:   30,
		PlayerHitIntensity: 4.0,
		PlayerHitDuration:  8,
		DeathIntensity:     8.0,
		DeathDuration:      20,
	}

	Particles = ParticleConfig{
		KillCount:   8,
		BossCount:   40,
		DebrisCount: 24,
		Speed:       3.0,
		Life:        30,
		Gravity:     0.08,
		MaxLive:     400,
	}

	HighScores = HighScoreConfig{
		AppName:  "pumpkin-invaders",
		ItemKey:  "highscores",
		Capacity: 100,
	}

	HUD = HUDConfig{
		TextColor:    White,
		ShieldColor:  LightBlue,
		ShieldBg:     DarkGray,
		OverlayColor: BlackOverlay,
		DeathColor:   LightRed,
		BannerColor:  BrightGreen,
	}

	Menu = MenuConfig{
		TitleY:            200,
		MenuStartY:        320,
		MenuItemHeight:    30,
		MenuItemGap:       14,
		BackgroundColor:   color.RGBA{R: 15, G: 8, B: 25, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
	}

	Debug = DebugConfig{
		SkipMenu:   false,
		PlayerName: "PLAYER",
	}
}
