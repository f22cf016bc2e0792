package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"navsim/internal/domain/geo"
	"navsim/internal/general/logger"
	"navsim/internal/ports"

	"github.com/google/uuid"
)

// Config holds the tunables of a navigation session.
type Config struct {
	SpeedKMH     float64       // assumed constant travel speed used for ETA
	StepInterval time.Duration // simulated progress tick period
}

// Session owns the state of one navigation session: current location,
// destination, waypoints, and the derived route/turn/ETA state produced by
// StartNavigation. It is the single logical owner of that state; transport
// adapters call it from multiple goroutines, so all access goes through one
// mutex. A Session is constructed explicitly and handed to its consumers —
// there is no ambient global session.
type Session struct {
	id     string
	logger *logger.Logger
	cfg    Config

	mu           sync.Mutex
	rng          *rand.Rand
	observers    []ports.Observer
	current      *geo.Location
	destination  *geo.Location
	waypoints    []geo.Waypoint
	routePath    []geo.Location
	turns        []geo.TurnDirection
	isNavigating bool
	eta          *time.Time
	distanceKM   *float64
	stepIndex    int
	viewport     *ports.Viewport
	stopProgress chan struct{} // nil unless a progress timer is armed
	closed       bool
}

// Option customizes a Session at construction time.
type Option func(*Session)

// WithRandSource injects the random source used by route synthesis. Tests
// seed it to make the otherwise stochastic street-grid paths reproducible.
func WithRandSource(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewSession constructs a navigation session. Zero config fields fall back
// to the production defaults (50 km/h, 10 s progress ticks).
func NewSession(log *logger.Logger, cfg Config, opts ...Option) *Session {
	if cfg.SpeedKMH <= 0 {
		cfg.SpeedKMH = 50
	}
	if cfg.StepInterval <= 0 {
		cfg.StepInterval = 10 * time.Second
	}

	session := &Session{
		id:     uuid.NewString(),
		logger: log,
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(session)
	}
	return session
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Attach registers an observer. Observers receive a snapshot after every
// mutation and every advisory notification; attaching zero or many observers
// does not change session behavior.
func (s *Session) Attach(obs ports.Observer) {
	if obs == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, obs)
	s.mu.Unlock()
}

// Close permanently tears the session down: the progress timer is cancelled
// and will never fire again. Mutations after Close are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopProgressLocked()
	s.mu.Unlock()
}

// ----- Mutators: endpoints -----

// SetCurrentLocation replaces the current location wholesale.
func (s *Session) SetCurrentLocation(ctx context.Context, loc geo.Location) ports.NavigationSnapshot {
	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return s.snapshotLocked()
	}
	point := loc
	s.current = &point
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug(s.ctxWithSession(ctx), "current_location_set", "Current location replaced",
		map[string]any{"latitude": loc.Latitude, "longitude": loc.Longitude, "name": loc.Name})
	s.publish(snap)
	return snap
}

// SetDestination replaces the destination wholesale.
func (s *Session) SetDestination(ctx context.Context, loc geo.Location) ports.NavigationSnapshot {
	s.mu.Lock()
	if s.closed {
		defer s.mu.Unlock()
		return s.snapshotLocked()
	}
	point := loc
	s.destination = &point
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug(s.ctxWithSession(ctx), "destination_set", "Destination replaced",
		map[string]any{"latitude": loc.Latitude, "longitude": loc.Longitude, "name": loc.Name})
	s.publish(snap)
	return snap
}

// ----- Derived-state queries -----

// CurrentStep returns the turn at the progress cursor, or nil when not
// navigating.
func (s *Session) CurrentStep() *geo.TurnDirection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isNavigating || s.stepIndex < 0 || s.stepIndex >= len(s.turns) {
		return nil
	}
	step := s.turns[s.stepIndex]
	return &step
}

// NextTurn returns the turn after the progress cursor, or nil when there is
// none.
func (s *Session) NextTurn() *geo.TurnDirection {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isNavigating || s.stepIndex+1 >= len(s.turns) {
		return nil
	}
	step := s.turns[s.stepIndex+1]
	return &step
}

// Progress returns the percentage of the estimated distance already covered,
// clamped to [0, 100]. It is 0 before the first advance and whenever the
// session is not navigating.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isNavigating || s.stepIndex == 0 || s.distanceKM == nil || *s.distanceKM <= 0 {
		return 0
	}

	var coveredKM float64
	for i := 0; i < s.stepIndex && i < len(s.turns); i++ {
		coveredKM += s.turns[i].DistanceKM
	}

	percent := coveredKM / *s.distanceKM * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Snapshot returns a read-only copy of the full session state.
func (s *Session) Snapshot() ports.NavigationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// ----- Internal helpers -----

// snapshotLocked copies the session state; callers hold s.mu. Slices are
// cloned so observers never alias live state.
func (s *Session) snapshotLocked() ports.NavigationSnapshot {
	snap := ports.NavigationSnapshot{
		SessionID:        s.id,
		Waypoints:        cloneSlice(s.waypoints),
		RoutePath:        cloneSlice(s.routePath),
		Turns:            cloneSlice(s.turns),
		IsNavigating:     s.isNavigating,
		CurrentStepIndex: s.stepIndex,
	}
	if s.current != nil {
		point := *s.current
		snap.CurrentLocation = &point
	}
	if s.destination != nil {
		point := *s.destination
		snap.Destination = &point
	}
	if s.eta != nil {
		at := *s.eta
		snap.EstimatedTimeOfArrival = &at
	}
	if s.distanceKM != nil {
		km := *s.distanceKM
		snap.EstimatedDistanceKM = &km
	}
	if s.viewport != nil {
		vp := *s.viewport
		snap.Viewport = &vp
	}
	return snap
}

// publish pushes a snapshot to all observers, outside the session lock.
func (s *Session) publish(snap ports.NavigationSnapshot) {
	for _, obs := range s.observersCopy() {
		obs.OnSnapshot(snap)
	}
}

// notifyObservers delivers an advisory notification to all observers.
func (s *Session) notifyObservers(n ports.Notification) {
	for _, obs := range s.observersCopy() {
		obs.OnNotification(n)
	}
}

func (s *Session) observersCopy() []ports.Observer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.observers)
}

func (s *Session) ctxWithSession(ctx context.Context) context.Context {
	return s.logger.WithSessionID(ctx, s.id)
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
