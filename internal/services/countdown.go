package services

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const DefaultCountdownDuration = 10 * time.Minute

// Countdown is the routine focus timer: it counts down from a fixed start
// once per second while running and stops at zero.
type Countdown struct {
	mu        sync.Mutex
	start     time.Duration
	remaining time.Duration
	running   bool
}

func NewCountdown(start time.Duration) *Countdown {
	if start <= 0 {
		start = DefaultCountdownDuration
	}
	return &Countdown{start: start, remaining: start}
}

// Toggle starts or pauses the timer and returns the new running state. A
// finished timer cannot be started again before Reset.
func (countdown *Countdown) Toggle() bool {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()

	if countdown.remaining <= 0 {
		countdown.running = false
		return false
	}
	countdown.running = !countdown.running
	return countdown.running
}

// Tick advances a running timer by one second.
func (countdown *Countdown) Tick() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()

	if !countdown.running {
		return
	}
	countdown.remaining -= time.Second
	if countdown.remaining <= 0 {
		countdown.remaining = 0
		countdown.running = false
	}
}

func (countdown *Countdown) Reset() {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()

	countdown.remaining = countdown.start
	countdown.running = false
}

func (countdown *Countdown) Remaining() time.Duration {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.remaining
}

func (countdown *Countdown) Running() bool {
	countdown.mu.Lock()
	defer countdown.mu.Unlock()
	return countdown.running
}

func (countdown *Countdown) Finished() bool {
	return countdown.Remaining() <= 0
}

// Display renders the remaining time as MM:SS.
func (countdown *Countdown) Display() string {
	remaining := countdown.Remaining()
	minutes := int(remaining / time.Minute)
	seconds := int((remaining % time.Minute) / time.Second)
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Run ticks the timer every interval until ctx is done or the countdown
// finishes. onTick, when set, observes the remaining time after each tick.
func (countdown *Countdown) Run(ctx context.Context, interval time.Duration, onTick func(time.Duration)) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			countdown.Tick()
			remaining := countdown.Remaining()
			if onTick != nil {
				onTick(remaining)
			}
			if remaining <= 0 {
				return
			}
		}
	}
}
