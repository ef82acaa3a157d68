package geofence

import (
	"testing"

	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bandungOffice = location.GeoPoint{Latitude: -6.8915, Longitude: 107.6107}
	nearOffice    = location.GeoPoint{Latitude: -6.8915, Longitude: 107.6115}
)

func TestDistanceMeters_SelfIsZero(t *testing.T) {
	v := NewValidator()
	assert.Equal(t, 0.0, v.DistanceMeters(bandungOffice, bandungOffice))
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	v := NewValidator()
	jakarta := location.GeoPoint{Latitude: -6.2088, Longitude: 106.8456}

	assert.InDelta(t, v.DistanceMeters(bandungOffice, jakarta), v.DistanceMeters(jakarta, bandungOffice), 1e-9)
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	v := NewValidator()
	// ~0.0008 degrees of longitude near the equator is roughly 89 meters.
	d := v.DistanceMeters(bandungOffice, nearOffice)
	assert.InDelta(t, 89, d, 1.0)
}

func TestIsWithinRadius_BoundaryIsInside(t *testing.T) {
	v := NewValidator()
	d := v.DistanceMeters(bandungOffice, nearOffice)

	exact := location.Location{
		ID:           "loc-1",
		Center:       bandungOffice,
		RadiusMeters: int(d) + 1,
		Kind:         location.KindFixed,
	}
	assert.True(t, v.IsWithinRadius(nearOffice, exact))

	// A radius exactly equal to the distance still counts as inside.
	north := location.GeoPoint{Latitude: bandungOffice.Latitude, Longitude: bandungOffice.Longitude}
	same := location.Location{ID: "loc-2", Center: north, RadiusMeters: 0}
	assert.True(t, v.IsWithinRadius(north, same))
}

func TestEvaluate_InsideOfficeRadius(t *testing.T) {
	v := NewValidator()
	office := location.Location{
		ID:           "office-bdg",
		Name:         "Kantor Bandung",
		Center:       bandungOffice,
		RadiusMeters: 500,
		Kind:         location.KindFixed,
	}

	verdict := v.Evaluate(nearOffice, []location.Location{office})
	assert.True(t, verdict.WithinRadius)
	require.NotNil(t, verdict.MatchedLocationID)
	assert.Equal(t, "office-bdg", *verdict.MatchedLocationID)
	assert.InDelta(t, 89, verdict.DistanceMeters, 1.0)
	// Reported distance is rounded to whole meters.
	assert.Equal(t, geo.RoundMeters(verdict.DistanceMeters), verdict.DistanceMeters)
}

func TestEvaluate_AnyEligibleLocationMatches(t *testing.T) {
	v := NewValidator()
	far := location.Location{
		ID:           "site-a",
		Center:       location.GeoPoint{Latitude: -7.25, Longitude: 112.75},
		RadiusMeters: 100,
		Kind:         location.KindTripSite,
	}
	near := location.Location{
		ID:           "site-b",
		Center:       bandungOffice,
		RadiusMeters: 500,
		Kind:         location.KindTripSite,
	}

	verdict := v.Evaluate(nearOffice, []location.Location{far, near})
	assert.True(t, verdict.WithinRadius)
	require.NotNil(t, verdict.MatchedLocationID)
	assert.Equal(t, "site-b", *verdict.MatchedLocationID)
}

func TestEvaluate_OutsideReportsNearestDistance(t *testing.T) {
	v := NewValidator()
	office := location.Location{
		ID:           "office-bdg",
		Center:       bandungOffice,
		RadiusMeters: 50,
		Kind:         location.KindFixed,
	}

	verdict := v.Evaluate(nearOffice, []location.Location{office})
	assert.False(t, verdict.WithinRadius)
	assert.Nil(t, verdict.MatchedLocationID)
	assert.InDelta(t, 89, verdict.DistanceMeters, 1.0)
}

func TestEvaluate_NoRegisteredLocations(t *testing.T) {
	v := NewValidator()

	verdict := v.Evaluate(nearOffice, nil)
	assert.False(t, verdict.WithinRadius)
	assert.Nil(t, verdict.MatchedLocationID)
	assert.Equal(t, 0.0, verdict.DistanceMeters)
}
