package screens

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

const musicSampleRate = 44100

// Music loops one background track while the viewer is open
type Music struct {
	audioContext *audio.Context
	player       *audio.Player
	file         *os.File
	volume       float64
}

// NewMusic creates a music player with its own audio context
func NewMusic(volume float64) *Music {
	return &Music{
		audioContext: audio.NewContext(musicSampleRate),
		volume:       min(max(volume, 0), 1),
	}
}

// Play starts looping the mp3 or ogg file at path, replacing any track
// already playing
func (m *Music) Play(path string) error {
	m.Stop()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open music: %w", err)
	}

	var stream io.ReadSeeker
	var length int64
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(musicSampleRate, file)
		if err != nil {
			file.Close()
			return fmt.Errorf("decode %s: %w", path, err)
		}
		stream, length = s, s.Length()
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(musicSampleRate, file)
		if err != nil {
			file.Close()
			return fmt.Errorf("decode %s: %w", path, err)
		}
		stream, length = s, s.Length()
	default:
		file.Close()
		return fmt.Errorf("unsupported audio format: %s", path)
	}

	player, err := m.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		file.Close()
		return fmt.Errorf("create audio player: %w", err)
	}

	m.file = file
	m.player = player
	m.player.SetVolume(m.volume)
	m.player.Play()
	return nil
}

// IsPlaying returns whether a track is currently playing
func (m *Music) IsPlaying() bool {
	return m.player != nil && m.player.IsPlaying()
}

// Pause holds the track at its current position
func (m *Music) Pause() {
	if m.player != nil {
		m.player.Pause()
	}
}

// Resume continues a paused track
func (m *Music) Resume() {
	if m.player != nil {
		m.player.Play()
	}
}

// Stop stops the track and releases the file
func (m *Music) Stop() {
	if m.player != nil {
		m.player.Close()
		m.player = nil
	}
	if m.file != nil {
		m.file.Close()
		m.file = nil
	}
}
