// Package audio defines the music collaborator screens talk to.
package audio

import (
	"io"

	"github.com/charmbracelet/log"
)

// Player starts and pauses background music.
type Player interface {
	Play()
	Pause()
	Playing() bool
}

// LogPlayer is a Player without a sound device: it tracks the play state
// and logs every transition.
type LogPlayer struct {
	track   string
	logger  *log.Logger
	playing bool
}

// NewLogPlayer creates a player for track. A nil logger discards output.
func NewLogPlayer(track string, logger *log.Logger) *LogPlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LogPlayer{track: track, logger: logger}
}

// Play marks the track as playing.
func (p *LogPlayer) Play() {
	if p.playing {
		return
	}
	p.playing = true
	p.logger.Info("music playing", "track", p.track)
}

// Pause marks the track as paused.
func (p *LogPlayer) Pause() {
	if !p.playing {
		return
	}
	p.playing = false
	p.logger.Info("music paused", "track", p.track)
}

// Playing reports whether the track is playing.
func (p *LogPlayer) Playing() bool { return p.playing }
