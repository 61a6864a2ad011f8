package systems

import (
	"sync"

	"github.com/automoto/pumpkin-invaders/assets"
	cfg "github.com/automoto/pumpkin-invaders/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes every sound effect up front so the first play
// does not stall a frame.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Tones {
		_ = globalAudioLoader.PreloadSFX(id)
	}
}

// RegisterAudio plays every SoundRequested notification of the world.
func RegisterAudio(e *ecs.ECS) {
	initGlobalAudio()
	SoundRequestedEvent.Subscribe(e.World, func(_ donburi.World, ev SoundRequested) {
		playSFX(ev.ID)
	})
}

// PlaySFX plays a sound immediately, for scenes without a simulation.
func PlaySFX(id cfg.SoundID) {
	initGlobalAudio()
	playSFX(id)
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 || id == cfg.SoundNone {
		return
	}

	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// SetSFXVolume sets the effect volume in [0, 1].
func SetSFXVolume(v float64) {
	globalSFXVolume = max(0, min(1, v))
}

// SFXVolume returns the current effect volume.
func SFXVolume() float64 {
	return globalSFXVolume
}
