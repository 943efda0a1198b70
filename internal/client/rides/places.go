package rides

import (
	"strings"

	"github.com/ifti227i/RideShareX/internal/client/models"
)

type PickupPoint struct {
	Name     string
	Position models.LatLng
}

var pickupPoints = []PickupPoint{
	{"Airport", models.LatLng{Lat: 23.8513, Lng: 90.4061}},
	{"Dhanmondi", models.LatLng{Lat: 23.7461, Lng: 90.3742}},
	{"Gulshan", models.LatLng{Lat: 23.7925, Lng: 90.4078}},
	{"Uttara", models.LatLng{Lat: 23.8759, Lng: 90.3795}},
	{"Banani", models.LatLng{Lat: 23.7937, Lng: 90.4066}},
	{"Mohakhali", models.LatLng{Lat: 23.7950, Lng: 90.4100}},
	{"Mirpur", models.LatLng{Lat: 23.8220, Lng: 90.3640}},
	{"Farmgate", models.LatLng{Lat: 23.7950, Lng: 90.3700}},
	{"Motijheel", models.LatLng{Lat: 23.7300, Lng: 90.4100}},
	{"Bashundhara", models.LatLng{Lat: 23.8200, Lng: 90.4200}},
	{"Khilkhet", models.LatLng{Lat: 23.8250, Lng: 90.4250}},
}

// PickupPoints returns a copy of the pickup catalogue.
func PickupPoints() []PickupPoint {
	return append([]PickupPoint(nil), pickupPoints...)
}

// Lookup finds a pickup point by name, ignoring case.
func Lookup(name string) (PickupPoint, bool) {
	name = strings.TrimSpace(name)
	for _, p := range pickupPoints {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return PickupPoint{}, false
}
