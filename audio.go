package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/mistwood/assets"
)

// Audio plays cues from the asset library. Missing cues are skipped.
type Audio struct {
	ctx    *audio.Context
	lib    *assets.Library
	logger *log.Logger

	sounds map[string][]byte
	music  *audio.Player
	track  string
}

func newAudio(ctx *audio.Context, lib *assets.Library, logger *log.Logger) *Audio {
	return &Audio{
		ctx:    ctx,
		lib:    lib,
		logger: logger,
		sounds: make(map[string][]byte),
	}
}

func (a *Audio) PlaySound(name string) {
	pcm, ok := a.sounds[name]
	if !ok {
		var err error
		pcm, err = a.lib.Sound(name)
		if err != nil {
			pcm = nil
		}
		a.sounds[name] = pcm
	}
	if len(pcm) == 0 {
		return
	}
	a.ctx.NewPlayerFromBytes(pcm).Play()
}

// PlayMusic replaces the current track. Asking for the track already playing
// leaves it running.
func (a *Audio) PlayMusic(name string) {
	if name == a.track && a.music != nil && a.music.IsPlaying() {
		return
	}
	a.stopMusic()

	stream, err := a.lib.Music(name)
	if err != nil {
		return
	}
	p, err := a.ctx.NewPlayer(assets.NewLoop(stream))
	if err != nil {
		a.logger.Warn("music player", "track", name, "err", err)
		return
	}
	p.Play()
	a.music = p
	a.track = name
}

func (a *Audio) stopMusic() {
	if a.music == nil {
		return
	}
	_ = a.music.Close()
	a.music = nil
	a.track = ""
}
