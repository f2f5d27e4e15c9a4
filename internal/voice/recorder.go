package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const defaultMinDuration = time.Second

var (
	ErrPermissionDenied = errors.New("microphone permission denied")
	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)

// Recorder drives one capture device through Idle -> Recording -> Idle.
// Recordings shorter than the minimum duration are treated as an
// accidental tap and discarded silently.
type Recorder struct {
	device      CaptureDevice
	minDuration time.Duration
	tickEvery   time.Duration

	mu        sync.Mutex
	recording bool
	elapsed   int
	stopTick  chan struct{}
}

func NewRecorder(device CaptureDevice, minDuration time.Duration) *Recorder {
	if minDuration <= 0 {
		minDuration = defaultMinDuration
	}
	return &Recorder{
		device:      device,
		minDuration: minDuration,
		tickEvery:   time.Second,
	}
}

// Start requests microphone access and begins capture. On grant it also
// starts the elapsed-seconds counter the UI renders next to the pulse.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrAlreadyRecording
	}

	granted, err := r.device.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("failed to request microphone permission: %w", err)
	}
	if !granted {
		return ErrPermissionDenied
	}

	if err := r.device.Start(ctx); err != nil {
		return fmt.Errorf("failed to start capture: %w", err)
	}

	r.recording = true
	r.elapsed = 0
	r.stopTick = make(chan struct{})
	go r.tickLoop(r.stopTick)

	return nil
}

func (r *Recorder) tickLoop(stop chan struct{}) {
	ticker := time.NewTicker(r.tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			r.elapsed++
			r.mu.Unlock()
		}
	}
}

// Cancel discards the capture without sending anything.
func (r *Recorder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return
	}

	close(r.stopTick)
	r.recording = false
	r.device.Discard()
}

// Finish stops capture and returns the clip. ok is false when the
// recording was below the minimum duration and was dropped.
func (r *Recorder) Finish() (clip Clip, ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return Clip{}, false, ErrNotRecording
	}

	close(r.stopTick)
	r.recording = false

	clip, err = r.device.Stop()
	if err != nil {
		return Clip{}, false, fmt.Errorf("failed to stop capture: %w", err)
	}

	if clip.Duration < r.minDuration {
		return Clip{}, false, nil
	}

	return clip, true, nil
}

func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Elapsed returns whole seconds since capture began.
func (r *Recorder) Elapsed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.elapsed
}
