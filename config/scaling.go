package config

import "math"

// Reference field the tuning values were authored against.
const (
	ReferenceWidth  = 480.0
	ReferenceHeight = 720.0
)

const (
	minScale = 0.5
	maxScale = 2.0
)

// ScaleFor returns the size/speed multiplier for a play field of the given
// dimensions.
func ScaleFor(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	s := math.Min(float64(width)/ReferenceWidth, float64(height)/ReferenceHeight)
	return math.Max(minScale, math.Min(maxScale, s))
}

// BulletDamage is the damage a normal bullet deals to the boss:
// 1, +1 from level 10, +1 more for every 5 levels beyond that.
func BulletDamage(level int) float64 {
	if level < 10 {
		return 1
	}
	return 2 + float64((level-10)/5)
}

// PierceBossDamage is the damage a pierce bullet deals to the boss.
func PierceBossDamage(level int) float64 {
	step := Boss.PierceLevelStep
	if step <= 0 {
		step = 1
	}
	return Boss.PierceBaseDamage + float64(level/step)
}

// BossMaxDamage is the boss hit-point pool for a level.
func BossMaxDamage(level int) float64 {
	return Boss.BaseHP + Boss.HPPerLevel*float64(level)
}

// BossSizeFactor grows linearly from SizeMinimum to SizeMinimum+SizeGrowth
// at SizeCapLevel and stays there.
func BossSizeFactor(level int) float64 {
	progress := math.Min(float64(level)/Boss.SizeCapLevel, 1)
	return Boss.SizeMinimum + progress*Boss.SizeGrowth
}

// BossShootCooldown is the level-scaled boss cooldown before jitter.
func BossShootCooldown(level int) int {
	cd := Boss.ShootCooldownBase - Boss.ShootCooldownPerLevel*level
	if cd < Boss.ShootCooldownMin {
		return Boss.ShootCooldownMin
	}
	return cd
}

// PierceCooldownFrames is how long pierce stays unavailable after it
// expires: 5 s, minus 1 s per 5 levels past 40, never below 1 s.
func PierceCooldownFrames(level int) int {
	if level <= Weapons.PierceStartLevel {
		return Weapons.PierceCooldown
	}
	steps := (level - Weapons.PierceStartLevel) / Weapons.PierceLevelStep
	cd := Weapons.PierceCooldown - steps*Weapons.PierceCooldownStep
	if cd < Weapons.PierceCooldownFloor {
		return Weapons.PierceCooldownFloor
	}
	return cd
}

// BulletCap is the maximum number of the player's bullets alive at once.
func BulletCap(level, clones int, autoShoot bool) int {
	n := Player.BaseBulletCap + clones
	if Player.BulletsPerLevels > 0 {
		n += level / Player.BulletsPerLevels
	}
	if autoShoot {
		n *= 2
	}
	return n
}

// DodgeChance is the special boss's teleport probability for the given
// remaining hit-point fraction.
func DodgeChance(remaining float64) float64 {
	switch {
	case remaining < 0.15:
		return 0.5
	case remaining < 0.30:
		return 0.33
	case remaining < 0.40:
		return 0.25
	}
	return 0.20
}

// FormationSpeedFor is the formation speed reached on a level when starting
// from level 1 and completing every level in between.
func FormationSpeedFor(level int) float64 {
	if level < 1 {
		level = 1
	}
	return Formation.BaseSpeed + Formation.SpeedPerLevel*float64(level-1)
}

// ShooterChance is the probability a freshly spawned pumpkin can shoot.
func ShooterChance(level int) float64 {
	p := Formation.ShooterChanceBase + Formation.ShooterChancePerLevel*float64(level)
	return math.Min(p, Formation.ShooterChanceMax)
}

// IsBossLevel reports whether a level is fought against a boss.
func IsBossLevel(level int) bool {
	return level > 0 && level%3 == 0
}
