package geofence

import (
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/geo"
)

// Validator evaluates submitted coordinates against registered geofences.
// It is stateless and safe for concurrent use.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// DistanceMeters returns the great-circle distance between two points.
func (v *Validator) DistanceMeters(a, b location.GeoPoint) float64 {
	return geo.HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// IsWithinRadius reports whether the point lies inside the location's
// geofence. The boundary counts as inside.
func (v *Validator) IsWithinRadius(p location.GeoPoint, loc location.Location) bool {
	return v.DistanceMeters(p, loc.Center) <= float64(loc.RadiusMeters)
}

// Evaluate checks the point against every eligible location. The verdict is
// inside as soon as any location matches; the first match is reported for
// audit. When nothing matches, the verdict carries the distance to the
// nearest eligible location. With no eligible locations at all, the verdict
// is outside with no distance; the caller records the event with a flag
// instead of dropping it.
func (v *Validator) Evaluate(p location.GeoPoint, eligible []location.Location) location.Verdict {
	verdict := location.Verdict{}

	nearest := -1.0
	for i := range eligible {
		d := v.DistanceMeters(p, eligible[i].Center)
		if d <= float64(eligible[i].RadiusMeters) {
			id := eligible[i].ID
			verdict.MatchedLocationID = &id
			verdict.DistanceMeters = geo.RoundMeters(d)
			verdict.WithinRadius = true
			return verdict
		}
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}

	if nearest >= 0 {
		verdict.DistanceMeters = geo.RoundMeters(nearest)
	}
	return verdict
}
