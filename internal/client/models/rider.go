package models

// LatLng is a coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Rider is a driver offering a ride, as listed by GET /rides.
type Rider struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Car      string  `json:"car"`
	Plate    string  `json:"plate"`
	Price    float64 `json:"price"`
	ETA      string  `json:"eta"`
	Position LatLng  `json:"position"`
}
