package rides

import "github.com/ifti227i/RideShareX/internal/client/models"

// SampleRiders is the offline list shown when GET /rides cannot be reached.
func SampleRiders() []models.Rider {
	return []models.Rider{
		{ID: "1", Name: "John Smith", Rating: 4.8, Car: "Toyota Camry", Plate: "ABC-123", Price: 12.50, ETA: "5 mins", Position: models.LatLng{Lat: 51.505, Lng: -0.09}},
		{ID: "2", Name: "Sarah Johnson", Rating: 4.9, Car: "Honda Civic", Plate: "XYZ-789", Price: 14.75, ETA: "8 mins", Position: models.LatLng{Lat: 51.508, Lng: -0.11}},
		{ID: "3", Name: "David Chen", Rating: 4.7, Car: "Tesla Model 3", Plate: "EV-2023", Price: 18.00, ETA: "12 mins", Position: models.LatLng{Lat: 51.503, Lng: -0.08}},
	}
}
