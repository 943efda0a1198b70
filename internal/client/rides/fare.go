// Package rides has the ride helpers that run without the remote API: fare
// and route estimates, the Dhaka pickup catalogue, nearest-pickup lookup,
// ride history statistics and the sample riders.
package rides

import (
	"math"
	"strconv"

	"github.com/ifti227i/RideShareX/internal/client/models"
)

const (
	BaseFare     = 50
	RatePerKm    = 15
	AverageSpeed = 30.0 // km/h
	kmPerDegree  = 111.0
)

// EstimateFare prices a trip of km kilometres, rounded to the nearest 10 taka.
func EstimateFare(km float64) int {
	price := BaseFare + km*RatePerKm
	return int(math.Round(price/10) * 10)
}

func FormatTaka(amount int) string {
	return "৳" + strconv.Itoa(amount)
}

type RouteInfo struct {
	DistanceKm float64
	Minutes    int
	Fare       int
}

// EstimateRoute gives a rough straight-line estimate between two points.
func EstimateRoute(from, to models.LatLng) RouteInfo {
	km := math.Hypot(from.Lat-to.Lat, from.Lng-to.Lng) * kmPerDegree
	return RouteInfo{
		DistanceKm: km,
		Minutes:    int(math.Round(km / AverageSpeed * 60)),
		Fare:       EstimateFare(km),
	}
}

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between a and b in km.
func Haversine(a, b models.LatLng) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := rad(b.Lat - a.Lat)
	dLng := rad(b.Lng - a.Lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
