package routesimulator

import (
	"fmt"
	"os"
	"sync"

	"navsim/internal/domain/geo"
	"navsim/internal/ports"
)

// consoleRenderer is the terminal rendering backend: it draws session
// snapshots and notifications as plain text. It signals on done once a
// snapshot shows the step cursor at the final turn.
type consoleRenderer struct {
	mu   sync.Mutex
	done chan struct{}
	once sync.Once
}

func newConsoleRenderer() *consoleRenderer {
	return &consoleRenderer{done: make(chan struct{})}
}

func (renderer *consoleRenderer) OnSnapshot(snap ports.NavigationSnapshot) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()

	if !snap.IsNavigating {
		return
	}

	if snap.CurrentStepIndex < len(snap.Turns) {
		step := snap.Turns[snap.CurrentStepIndex]
		fmt.Printf("  [%d/%d] %-25s %6.2f km  heading %s\n",
			snap.CurrentStepIndex+1, len(snap.Turns),
			step.Instruction, step.DistanceKM, geo.DirectionName(step.ToBearing))
	}

	if len(snap.Turns) > 0 && snap.CurrentStepIndex >= len(snap.Turns)-1 {
		renderer.once.Do(func() { close(renderer.done) })
	}
}

func (renderer *consoleRenderer) OnNotification(n ports.Notification) {
	renderer.mu.Lock()
	defer renderer.mu.Unlock()

	if n.Level == ports.NotificationWarning {
		fmt.Fprintf(os.Stderr, "  ! %s\n", n.Message)
		return
	}
	fmt.Printf("  * %s\n", n.Message)
}

// Done is closed when the session has stepped through every turn.
func (renderer *consoleRenderer) Done() <-chan struct{} {
	return renderer.done
}
