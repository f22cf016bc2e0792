package service

import (
	"context"
	"fmt"
	"time"

	"navsim/internal/ports"
)

// The progress timer stands in for GPS-driven progress: while the session
// navigates, a ticker advances the step cursor by one per period and emits a
// user-visible notification for the new current step. The timer is armed
// from a clean state on every StartNavigation and cancelled on
// EndNavigation/Close, so there is never more than one live timer per
// session and it never fires after teardown.

// armProgressTimerLocked cancels any previous timer and starts a fresh one
// when there is something to advance through. Callers hold s.mu.
func (s *Session) armProgressTimerLocked() {
	s.stopProgressLocked()
	if len(s.turns) <= 1 {
		return
	}
	stop := make(chan struct{})
	s.stopProgress = stop
	go s.progressLoop(stop)
}

// stopProgressLocked cancels the live timer, if any. Callers hold s.mu.
func (s *Session) stopProgressLocked() {
	if s.stopProgress != nil {
		close(s.stopProgress)
		s.stopProgress = nil
	}
}

// progressLoop ticks until the cursor saturates or the timer is cancelled.
func (s *Session) progressLoop(stop chan struct{}) {
	ticker := time.NewTicker(s.cfg.StepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.advanceStep() {
				return
			}
		case <-stop:
			return
		}
	}
}

// advanceStep moves the cursor forward one turn and reports whether further
// advances remain. The cursor only increases and saturates at the last turn.
func (s *Session) advanceStep() bool {
	s.mu.Lock()
	if s.closed || !s.isNavigating || len(s.turns) < 2 || s.stepIndex >= len(s.turns)-1 {
		s.mu.Unlock()
		return false
	}
	s.stepIndex++
	step := s.turns[s.stepIndex]
	more := s.stepIndex < len(s.turns)-1
	snap := s.snapshotLocked()
	s.mu.Unlock()

	ctx := s.ctxWithSession(context.Background())
	s.logger.Info(ctx, "navigation_step_advanced", "Progress cursor advanced",
		map[string]any{
			"step_index":  snap.CurrentStepIndex,
			"instruction": step.Instruction,
			"distance_km": step.DistanceKM,
		})
	s.notifyObservers(ports.Notification{
		Level:   ports.NotificationInfo,
		Message: fmt.Sprintf("%s (%.2f km)", step.Instruction, step.DistanceKM),
		SentAt:  time.Now().UTC(),
	})
	s.publish(snap)
	return more
}
