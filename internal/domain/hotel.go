package domain

// Location holds the postal address and the geographic point of a hotel.
// Coordinates, when present, is a two-element [longitude, latitude] pair.
type Location struct {
	Address     string
	Coordinates []float64
}

// Hotel is the root entity. Reviews live embedded inside it and have no
// independent lifecycle.
type Hotel struct {
	ID          string
	Name        string
	Description string
	Stars       int
	Services    []string
	Photos      []string
	Currency    string
	Location    Location
	Reviews     []Review
}

// GeoResult pairs a hotel with its distance from the search point, in metres.
type GeoResult struct {
	Distance float64
	Hotel    Hotel
}
