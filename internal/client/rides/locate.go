package rides

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/common"
)

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("location information is unavailable")
	ErrLocateTimeout       = errors.New("the request to get your location timed out")
	ErrLocateUnsupported   = errors.New("geolocation is not supported")
)

// LocateTimeout bounds a single NearestPickup call.
const LocateTimeout = 10 * time.Second

// Locator reports the device position.
type Locator interface {
	Locate(ctx context.Context) (models.LatLng, error)
}

// StaticLocator always answers with Position, or with Err when it is set.
type StaticLocator struct {
	Position models.LatLng
	Err      error
}

func (s StaticLocator) Locate(ctx context.Context) (models.LatLng, error) {
	if err := ctx.Err(); err != nil {
		return models.LatLng{}, err
	}
	return s.Position, s.Err
}

type locateResult struct {
	pos models.LatLng
	err error
}

// NearestPickup asks loc for the current position and returns the closest
// of points together with its distance in km.
func NearestPickup(ctx context.Context, loc Locator, points []PickupPoint) (PickupPoint, float64, error) {
	if loc == nil {
		return PickupPoint{}, 0, ErrLocateUnsupported
	}
	if len(points) == 0 {
		return PickupPoint{}, 0, fmt.Errorf("pickup points: %w", common.ErrorNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, LocateTimeout)
	defer cancel()

	ch := make(chan locateResult, 1)
	go func() {
		pos, err := loc.Locate(ctx)
		ch <- locateResult{pos: pos, err: err}
	}()

	var res locateResult
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.err = ctx.Err()
	}

	if res.err != nil {
		if errors.Is(res.err, context.DeadlineExceeded) {
			return PickupPoint{}, 0, ErrLocateTimeout
		}
		return PickupPoint{}, 0, res.err
	}

	best, bestKm := points[0], Haversine(res.pos, points[0].Position)
	for _, p := range points[1:] {
		if km := Haversine(res.pos, p.Position); km < bestKm {
			best, bestKm = p, km
		}
	}
	return best, bestKm, nil
}
