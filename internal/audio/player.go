// Package audio plays the game's sound assets through the beep speaker.
//
// Assets are decoded once at startup and kept in memory. A missing or
// undecodable file only disables that one sound.
package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)
	// resampleQuality is the beep resampler quality (1 fastest, 6 best).
	resampleQuality = 4
)

// Player manages all game audio.
type Player struct {
	mu          sync.Mutex
	logger      *log.Logger
	sounds      map[string]*beep.Buffer
	loop        *beep.Ctrl
	initialized bool
}

// Open loads the named assets from dir and starts the speaker if at least
// one asset decoded. It never fails on missing assets; the returned player
// is always usable.
func Open(dir string, names []string, logger *log.Logger) *Player {
	p := &Player{
		logger: logger,
		sounds: make(map[string]*beep.Buffer),
	}

	for _, name := range names {
		if _, ok := p.sounds[name]; ok {
			continue
		}
		buf, err := load(filepath.Join(dir, name))
		if err != nil {
			logger.Debug("sound disabled", "name", name, "error", err)
			continue
		}
		p.sounds[name] = buf
	}

	if len(p.sounds) == 0 {
		return p
	}

	if err := p.initialize(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		p.sounds = make(map[string]*beep.Buffer)
	}
	return p
}

// initialize sets up the audio device.
func (p *Player) initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// load decodes an mp3 or wav file into a buffer at the speaker's rate.
func load(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	target := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(target)
	buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
	return buf, nil
}

// Has reports whether the named sound loaded.
func (p *Player) Has(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.sounds[name]
	return ok
}

// Loaded returns the number of playable sounds.
func (p *Player) Loaded() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sounds)
}

// Play starts the named sound and returns immediately. Unknown names are ignored.
func (p *Player) Play(name string) {
	p.mu.Lock()
	buf, ok := p.sounds[name]
	ready := p.initialized
	p.mu.Unlock()

	if !ok || !ready {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Loop plays the named sound repeatedly until StopLoop. Starting a new loop
// replaces the old one.
func (p *Player) Loop(name string) {
	p.StopLoop()

	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.sounds[name]
	if !ok || !p.initialized {
		return
	}
	p.loop = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	speaker.Play(p.loop)
}

// StopLoop silences the looping sound, if any.
func (p *Player) StopLoop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loop == nil {
		return
	}
	speaker.Lock()
	p.loop.Paused = true
	p.loop.Streamer = nil
	speaker.Unlock()
	p.loop = nil
}

// Close stops all sounds and releases the audio device.
func (p *Player) Close() {
	p.StopLoop()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Silent is a player that plays nothing. Used for --mute.
type Silent struct{}

// Play does nothing.
func (Silent) Play(string) {}

// Loop does nothing.
func (Silent) Loop(string) {}

// StopLoop does nothing.
func (Silent) StopLoop() {}

// Has always reports false.
func (Silent) Has(string) bool { return false }
