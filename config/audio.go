package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundShoot
	SoundPierceShoot
	SoundHit
	SoundExplosion
	SoundBossExplosion
	SoundTeleport
	SoundEnemyShoot
	// Player sounds
	SoundPlayerHit
	SoundLifeLost
	SoundPowerUp
	SoundExtraLife
	// Flow sounds
	SoundLevelComplete
	SoundWitch
	SoundGameOver
)

// Waveform selects the oscillator used to synthesize a sound
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveNoise
)

// ToneConfig describes one synthesized sound: a frequency sweep with a
// linear fade out.
type ToneConfig struct {
	Wave      Waveform
	StartFreq float64 // Hz
	EndFreq   float64 // Hz
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundShoot:         {Wave: WaveSquare, StartFreq: 880, EndFreq: 440, Duration: 0.06, Volume: 0.3},
			SoundPierceShoot:   {Wave: WaveSquare, StartFreq: 1200, EndFreq: 600, Duration: 0.08, Volume: 0.35},
			SoundHit:           {Wave: WaveTriangle, StartFreq: 300, EndFreq: 200, Duration: 0.05, Volume: 0.4},
			SoundExplosion:     {Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 0.25, Volume: 0.5},
			SoundBossExplosion: {Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 0.9, Volume: 0.8},
			SoundTeleport:      {Wave: WaveTriangle, StartFreq: 200, EndFreq: 1600, Duration: 0.2, Volume: 0.4},
			SoundEnemyShoot:    {Wave: WaveSquare, StartFreq: 220, EndFreq: 160, Duration: 0.07, Volume: 0.2},
			SoundPlayerHit:     {Wave: WaveNoise, StartFreq: 0, EndFreq: 0, Duration: 0.12, Volume: 0.6},
			SoundLifeLost:      {Wave: WaveTriangle, StartFreq: 440, EndFreq: 55, Duration: 1.2, Volume: 0.7},
			SoundPowerUp:       {Wave: WaveTriangle, StartFreq: 520, EndFreq: 1040, Duration: 0.15, Volume: 0.5},
			SoundExtraLife:     {Wave: WaveTriangle, StartFreq: 660, EndFreq: 1320, Duration: 0.4, Volume: 0.6},
			SoundLevelComplete: {Wave: WaveSquare, StartFreq: 523, EndFreq: 1046, Duration: 0.6, Volume: 0.5},
			SoundWitch:         {Wave: WaveTriangle, StartFreq: 900, EndFreq: 700, Duration: 0.3, Volume: 0.4},
			SoundGameOver:      {Wave: WaveSquare, StartFreq: 330, EndFreq: 82, Duration: 1.5, Volume: 0.6},
		},
	}
}
