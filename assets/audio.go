package assets

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every cue is decoded to.
const SampleRate = 44100

// Stream is decoded PCM that knows its length, as both wav and vorbis
// streams do.
type Stream interface {
	io.ReadSeeker
	Length() int64
}

// SoundPath lists the files a sound cue may live in, preferred first.
func SoundPath(name string) []string {
	return []string{
		path.Join("sounds", name+".wav"),
		path.Join("sounds", name+".ogg"),
	}
}

// MusicPath lists the files a music track may live in, preferred first.
func MusicPath(name string) []string {
	return []string{
		path.Join("music", name+".ogg"),
		path.Join("music", name+".wav"),
	}
}

// Sound returns the fully decoded PCM of a short cue.
func (l *Library) Sound(name string) ([]byte, error) {
	s, err := l.decode(SoundPath(name)...)
	if err != nil {
		l.mu.Lock()
		l.warnOnce(name, "sound", err)
		l.mu.Unlock()
		return nil, err
	}
	return io.ReadAll(s)
}

// Music returns a decoded stream for a music track.
func (l *Library) Music(name string) (Stream, error) {
	s, err := l.decode(MusicPath(name)...)
	if err != nil {
		l.mu.Lock()
		l.warnOnce(name, "music", err)
		l.mu.Unlock()
		return nil, err
	}
	return s, nil
}

func (l *Library) decode(candidates ...string) (Stream, error) {
	name, data, err := l.firstExisting(candidates...)
	if err != nil {
		return nil, err
	}

	reader := bytes.NewReader(data)
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %s: %w", name, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode ogg %s: %w", name, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("assets: unsupported audio %s", name)
	}
}

// NewLoop wraps a music stream so it repeats forever.
func NewLoop(s Stream) *audio.InfiniteLoop {
	return audio.NewInfiniteLoop(s, s.Length())
}
