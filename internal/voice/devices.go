package voice

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// SampleCapture is the capture driver used by the terminal client: it
// "records" by timing how long capture was held and returns the bytes
// of a configured sample file. An empty or unreadable path behaves like
// a denied microphone permission, which exercises the same UX path a
// mobile build hits.
type SampleCapture struct {
	path string

	mu        sync.Mutex
	active    bool
	startedAt time.Time

	now func() time.Time
}

func NewSampleCapture(path string) *SampleCapture {
	return &SampleCapture{
		path: path,
		now:  time.Now,
	}
}

func (c *SampleCapture) RequestPermission(_ context.Context) (bool, error) {
	if c.path == "" {
		return false, nil
	}
	if _, err := os.Stat(c.path); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *SampleCapture) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.active = true
	c.startedAt = c.now()
	return nil
}

func (c *SampleCapture) Stop() (Clip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return Clip{}, fmt.Errorf("capture is not active")
	}
	c.active = false

	data, err := os.ReadFile(c.path)
	if err != nil {
		return Clip{}, fmt.Errorf("failed to read sample file: %w", err)
	}

	return Clip{
		Data:     data,
		Duration: c.now().Sub(c.startedAt),
	}, nil
}

func (c *SampleCapture) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
}

// TimedOutput is the playback driver used by the terminal client: a
// track "plays" for the duration hinted by the message record, then
// finishes. It keeps the exclusive-playback controller honest without a
// real audio backend.
type TimedOutput struct{}

func (TimedOutput) Load(_ context.Context, _ string, duration time.Duration) (Track, error) {
	if duration <= 0 {
		duration = time.Second
	}
	return &timedTrack{
		duration: duration,
		done:     make(chan struct{}),
	}, nil
}

type timedTrack struct {
	duration time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	finished bool
	done     chan struct{}
}

func (t *timedTrack) Play() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return fmt.Errorf("track already released")
	}
	t.timer = time.AfterFunc(t.duration, t.finish)
	return nil
}

func (t *timedTrack) Stop() error {
	t.finish()
	return nil
}

func (t *timedTrack) Unload() {
	t.finish()
}

func (t *timedTrack) Done() <-chan struct{} {
	return t.done
}

func (t *timedTrack) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return
	}
	t.finished = true
	if t.timer != nil {
		t.timer.Stop()
	}
	close(t.done)
}
