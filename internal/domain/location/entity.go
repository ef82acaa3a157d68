package location

import "time"

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

type Kind string

const (
	KindFixed    Kind = "fixed"     // permanent office site
	KindTripSite Kind = "trip_site" // ad hoc business-trip site
)

var KindValues = []string{
	string(KindFixed),
	string(KindTripSite),
}

// Location is a registered check-in site with a circular geofence.
type Location struct {
	ID           string
	Name         string
	Center       GeoPoint
	RadiusMeters int
	Kind         Kind
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Verdict is the geofence outcome for a single submitted coordinate.
// DistanceMeters is rounded to the nearest meter for display; the in/out
// decision is made on the unrounded value before the verdict is built.
type Verdict struct {
	MatchedLocationID *string `json:"matched_location_id,omitempty"`
	DistanceMeters    float64 `json:"distance_meters"`
	WithinRadius      bool    `json:"within_radius"`
}
