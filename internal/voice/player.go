package voice

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Player enforces exclusive playback: at most one voice note plays at a
// time, starting a second one stops and unloads the first, and tapping
// the playing note stops it. Failures reset state and are reported to
// the caller to log; nothing here is user-facing.
type Player struct {
	output Output

	mu        sync.Mutex
	playingID string
	track     Track
}

func NewPlayer(output Output) *Player {
	return &Player{output: output}
}

// Toggle stops the note identified by id if it is currently playing,
// otherwise stops whatever else is playing and starts this one.
func (p *Player) Toggle(ctx context.Context, id, url string, duration time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playingID == id {
		p.stopLocked()
		return nil
	}

	p.stopLocked()

	track, err := p.output.Load(ctx, url, duration)
	if err != nil {
		return fmt.Errorf("failed to load voice note: %w", err)
	}

	if err := track.Play(); err != nil {
		track.Unload()
		return fmt.Errorf("failed to start playback: %w", err)
	}

	p.playingID = id
	p.track = track
	go p.watch(track)

	return nil
}

// Stop halts the current playback, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Playing returns the ID of the note currently playing, or "".
func (p *Player) Playing() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playingID
}

func (p *Player) stopLocked() {
	if p.track == nil {
		return
	}
	_ = p.track.Stop()
	p.track.Unload()
	p.track = nil
	p.playingID = ""
}

// watch releases the track once it finishes on its own. The identity
// check keeps a stale watcher from clearing a newer track.
func (p *Player) watch(track Track) {
	<-track.Done()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == track {
		p.track.Unload()
		p.track = nil
		p.playingID = ""
	}
}
