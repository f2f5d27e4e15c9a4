// Package voice implements the recording and playback state machines
// for voice notes. Actual audio hardware access sits behind the
// CaptureDevice and Output interfaces so each platform embedding the
// toolkit supplies its own driver.
package voice

import (
	"context"
	"time"
)

// Clip is a finished recording ready for upload.
type Clip struct {
	Data     []byte
	Duration time.Duration
}

type CaptureDevice interface {
	// RequestPermission asks for microphone access. false means the
	// user denied it; an error means the platform call itself failed.
	RequestPermission(ctx context.Context) (bool, error)
	Start(ctx context.Context) error
	// Stop ends capture and returns the recorded clip.
	Stop() (Clip, error)
	// Discard ends capture and drops whatever was recorded.
	Discard()
}

// Track is one loaded voice note. Done closes when playback finishes
// naturally or the track is stopped or unloaded.
type Track interface {
	Play() error
	Stop() error
	Unload()
	Done() <-chan struct{}
}

type Output interface {
	// Load prepares a track for the asset at url. duration is a hint
	// from the message record; drivers that read the asset's own
	// header may ignore it.
	Load(ctx context.Context, url string, duration time.Duration) (Track, error)
}
