package routesimulator

import (
	"context"
	"fmt"
	"time"

	"navsim/internal/domain/geo"
	"navsim/internal/domain/place"
	"navsim/internal/general/config"
	"navsim/internal/general/logger"
	directoryservice "navsim/internal/software/directory/service"
	"navsim/internal/software/navigation/service"
)

// Run drives a full trip between two directory places without a server:
// resolve the endpoints, start navigation on a fast step clock, print each
// step as it lands, and finish with a trip summary.
func Run(ctx context.Context, cfgPath, from, to, via string, stepSeconds int) error {
	logger := logger.New("route-simulator")
	ctx = logger.WithRequestID(ctx, "startup-001")

	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	directory := directoryservice.NewDirectoryService(logger)

	origin, ok := directory.FindFirst(ctx, from)
	if !ok {
		return fmt.Errorf("no directory match for origin %q", from)
	}
	dest, ok := directory.FindFirst(ctx, to)
	if !ok {
		return fmt.Errorf("no directory match for destination %q", to)
	}

	session := service.NewSession(logger, service.Config{
		SpeedKMH:     cfg.Navigation.SpeedKMH,
		StepInterval: time.Duration(stepSeconds) * time.Second,
	})
	defer session.Close()

	renderer := newConsoleRenderer()
	session.Attach(renderer)

	fmt.Printf("Trip: %s -> %s\n", origin.Name, dest.Name)
	session.SetCurrentLocation(ctx, placeLocation(origin))
	session.SetDestination(ctx, placeLocation(dest))

	if via != "" {
		stop, ok := directory.FindFirst(ctx, via)
		if !ok {
			return fmt.Errorf("no directory match for waypoint %q", via)
		}
		fmt.Printf("  via %s\n", stop.Name)
		session.AddWaypoint(ctx, placeLocation(stop))
	}

	snap := session.StartNavigation(ctx)
	if !snap.IsNavigating {
		return fmt.Errorf("navigation did not start")
	}
	fmt.Printf("Route: %d points, %d steps, %.2f km\n",
		len(snap.RoutePath), len(snap.Turns), *snap.EstimatedDistanceKM)
	if snap.EstimatedTimeOfArrival != nil {
		fmt.Printf("ETA at cruise speed: %s\n", snap.EstimatedTimeOfArrival.Format(time.Kitchen))
	}

	// wait for the renderer to see the final step, or for a signal
	select {
	case <-renderer.Done():
	case <-time.After(time.Duration(stepSeconds) * time.Second * time.Duration(len(snap.Turns)+2)):
		// safety stop: every step plus slack has elapsed
	case <-ctx.Done():
		fmt.Println("Interrupted.")
		session.EndNavigation(ctx)
		return ctx.Err()
	}

	final := session.EndNavigation(ctx)
	fmt.Printf("Arrived at %s. Progress reset, %d waypoint(s) kept.\n",
		dest.Name, len(final.Waypoints))
	return nil
}

// placeLocation converts a directory entry to a session location.
func placeLocation(p place.Place) geo.Location {
	loc, _ := geo.NewLocation(p.Latitude, p.Longitude, p.Name)
	return loc
}
