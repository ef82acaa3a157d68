package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("budi.santoso+hr@kantor.co.id"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@domain"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("01912f9e-1a2b-7c3d-8e4f-5a6b7c8d9e0f"))
	// UUIDv4 is rejected: version nibble must be 7
	assert.False(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-01-05")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("05-01-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	m, ok := IsValidTimeOfDay("08:45")
	assert.True(t, ok)
	assert.Equal(t, 8*60+45, m)

	m, ok = IsValidTimeOfDay("00:00")
	assert.True(t, ok)
	assert.Equal(t, 0, m)

	m, ok = IsValidTimeOfDay("23:59")
	assert.True(t, ok)
	assert.Equal(t, 23*60+59, m)

	_, ok = IsValidTimeOfDay("24:00")
	assert.False(t, ok)
	_, ok = IsValidTimeOfDay("8am")
	assert.False(t, ok)
}

func TestCoordinateRanges(t *testing.T) {
	assert.True(t, IsValidLatitude(-6.8915))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.0001))
	assert.True(t, IsValidLongitude(107.6107))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(180.5))
}

func TestIsInSlice(t *testing.T) {
	kinds := []string{"national", "religious", "company"}
	assert.True(t, IsInSlice("religious", kinds))
	assert.False(t, IsInSlice("weekend", kinds))
}
