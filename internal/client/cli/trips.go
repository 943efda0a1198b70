package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/rides"
	"github.com/ifti227i/RideShareX/internal/client/services"
	"github.com/ifti227i/RideShareX/internal/common"
)

// Estimate prints distance, time and fare between two pickup points.
func (a *App) Estimate(ctx context.Context, from, to string) error {
	p1, err := pickup("from", from)
	if err != nil {
		return err
	}
	p2, err := pickup("to", to)
	if err != nil {
		return err
	}

	route := rides.EstimateRoute(p1.Position, p2.Position)
	fmt.Fprintf(a.out, "%s → %s: %.1f km, about %d min, fare %s\n",
		p1.Name, p2.Name, route.DistanceKm, route.Minutes, rides.FormatTaka(route.Fare))
	return nil
}

func pickup(field, name string) (rides.PickupPoint, error) {
	p, ok := rides.Lookup(name)
	if !ok {
		return p, common.NewValidationError(field, common.RuleOneOf,
			fmt.Sprintf("unknown pickup point %q, see 'pickups'", name))
	}
	return p, nil
}

func (a *App) Pickups(ctx context.Context) error {
	tw := newTable(a.out)
	fmt.Fprintln(tw, "NAME\tLAT\tLNG")
	for _, p := range rides.PickupPoints() {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\n", p.Name, p.Position.Lat, p.Position.Lng)
	}
	return tw.Flush()
}

// Nearest finds the pickup point closest to the given coordinates. The
// terminal has no position source of its own, so without coordinates it
// reports geolocation as unsupported.
func (a *App) Nearest(ctx context.Context, lat, lng string) error {
	var loc rides.Locator
	if lat != "" || lng != "" {
		pos, err := parseLatLng(lat, lng)
		if err != nil {
			return err
		}
		loc = rides.StaticLocator{Position: pos}
	}

	p, km, err := rides.NearestPickup(ctx, loc, rides.PickupPoints())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Nearest pickup: %s (%.1f km away)\n", p.Name, km)
	return nil
}

func parseLatLng(lat, lng string) (models.LatLng, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil || math.Abs(la) > 90 {
		return models.LatLng{}, common.NewValidationError("lat", common.RuleRange, "latitude must be between -90 and 90")
	}
	lo, err := strconv.ParseFloat(lng, 64)
	if err != nil || math.Abs(lo) > 180 {
		return models.LatLng{}, common.NewValidationError("lng", common.RuleRange, "longitude must be between -180 and 180")
	}
	return models.LatLng{Lat: la, Lng: lo}, nil
}

// Riders lists drivers offering a ride right now.
func (a *App) Riders(ctx context.Context) error {
	riders, src, err := a.rides.AvailableRides(ctx)
	if err != nil {
		return err
	}

	if src == services.SourceLocalFallback {
		fmt.Fprintln(a.out, "Offline, showing sample riders")
	}
	if len(riders) == 0 {
		fmt.Fprintln(a.out, "No riders available")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "NAME\tRATING\tCAR\tPLATE\tPRICE\tETA")
	for _, r := range riders {
		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\t%s\t%s\n",
			r.Name, r.Rating, r.Car, r.Plate, rides.FormatTaka(int(math.Round(r.Price))), r.ETA)
	}
	return tw.Flush()
}
