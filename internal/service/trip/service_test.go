package trip

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadirin/hadirin-backend-go/internal/domain/employee"
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
)

type tripRepoStub struct {
	created *trip.BusinessTrip
}

func (s *tripRepoStub) Create(ctx context.Context, t trip.BusinessTrip) (trip.BusinessTrip, error) {
	s.created = &t
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	return t, nil
}

func (s *tripRepoStub) GetByID(ctx context.Context, id string) (trip.BusinessTrip, error) {
	return trip.BusinessTrip{}, trip.ErrTripNotFound
}

func (s *tripRepoStub) List(ctx context.Context, filter trip.TripFilter) ([]trip.BusinessTrip, int64, error) {
	return nil, 0, nil
}

func (s *tripRepoStub) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]trip.BusinessTrip, error) {
	return nil, nil
}

func (s *tripRepoStub) ListOverlapping(ctx context.Context, start, end time.Time) ([]trip.BusinessTrip, error) {
	return nil, nil
}

func (s *tripRepoStub) Delete(ctx context.Context, id string) error {
	return nil
}

type employeeRepoStub struct{}

func (employeeRepoStub) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id}, nil
}

func (employeeRepoStub) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (employeeRepoStub) ExistAll(ctx context.Context, ids []string) (bool, error) {
	return len(ids) > 0, nil
}

type locationRepoStub struct{}

func (locationRepoStub) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	return loc, nil
}

func (locationRepoStub) GetByID(ctx context.Context, id string) (location.Location, error) {
	return location.Location{ID: id}, nil
}

func (locationRepoStub) List(ctx context.Context) ([]location.Location, error) {
	return nil, nil
}

func (locationRepoStub) ListByKind(ctx context.Context, kind location.Kind) ([]location.Location, error) {
	return nil, nil
}

func (locationRepoStub) ListByIDs(ctx context.Context, ids []string) ([]location.Location, error) {
	locations := make([]location.Location, 0, len(ids))
	for _, id := range ids {
		locations = append(locations, location.Location{ID: id})
	}
	return locations, nil
}

func (locationRepoStub) Delete(ctx context.Context, id string) error {
	return nil
}

func authedContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestCreateTripRecordsCreator(t *testing.T) {
	repo := &tripRepoStub{}
	svc := NewTripService(repo, employeeRepoStub{}, locationRepoStub{}, NewResolver())

	ctx := authedContext(t, map[string]interface{}{
		"user_id": "admin-1",
		"role":    "admin",
		"type":    "access",
	})

	resp, err := svc.CreateTrip(ctx, trip.CreateTripRequest{
		Title:       "Site survey",
		OrderNumber: "ST-2025-001",
		StartDate:   "2025-02-03",
		EndDate:     "2025-02-05",
		StartTime:   "08:00",
		EndTime:     "17:00",
		EmployeeIDs: []string{"emp-1", "emp-2"},
		LocationIDs: []string{"loc-1"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.CreatedBy)
	assert.Equal(t, "admin-1", *repo.created.CreatedBy)
}

func TestCreateTripWithoutIdentityFails(t *testing.T) {
	repo := &tripRepoStub{}
	svc := NewTripService(repo, employeeRepoStub{}, locationRepoStub{}, NewResolver())

	_, err := svc.CreateTrip(context.Background(), trip.CreateTripRequest{
		Title:       "Site survey",
		OrderNumber: "ST-2025-001",
		StartDate:   "2025-02-03",
		EndDate:     "2025-02-05",
		StartTime:   "08:00",
		EndTime:     "17:00",
		EmployeeIDs: []string{"emp-1"},
		LocationIDs: []string{"loc-1"},
	})
	require.Error(t, err)
	assert.Nil(t, repo.created)
}