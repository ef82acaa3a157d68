package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequest() Request {
	return Request{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Kind:       KindAnnualLeave,
		StartDate:  time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC),
		Status:     StatusPending,
	}
}

func TestApprove_PendingBecomesApproved(t *testing.T) {
	r := pendingRequest()
	now := time.Now()
	note := "enjoy"

	require.NoError(t, r.Approve("admin-1", &note, now))

	assert.Equal(t, StatusApproved, r.Status)
	require.NotNil(t, r.DecidedBy)
	assert.Equal(t, "admin-1", *r.DecidedBy)
	require.NotNil(t, r.DecidedAt)
	assert.True(t, r.DecidedAt.Equal(now))
	assert.Equal(t, &note, r.DecisionNote)
}

func TestReject_PendingBecomesRejected(t *testing.T) {
	r := pendingRequest()
	note := "insufficient balance"

	require.NoError(t, r.Reject("admin-1", &note, time.Now()))
	assert.Equal(t, StatusRejected, r.Status)
}

func TestDecide_TerminalStatesAreFinal(t *testing.T) {
	r := pendingRequest()
	require.NoError(t, r.Approve("admin-1", nil, time.Now()))

	// No transition out of a decided request, in either direction.
	assert.ErrorIs(t, r.Approve("admin-2", nil, time.Now()), ErrRequestAlreadyProcessed)
	assert.ErrorIs(t, r.Reject("admin-2", nil, time.Now()), ErrRequestAlreadyProcessed)

	assert.Equal(t, StatusApproved, r.Status)
	assert.Equal(t, "admin-1", *r.DecidedBy)
}

func TestIsTerminal(t *testing.T) {
	r := pendingRequest()
	assert.False(t, r.IsTerminal())

	require.NoError(t, r.Reject("admin-1", nil, time.Now()))
	assert.True(t, r.IsTerminal())
}

func TestCovers_InclusiveBounds(t *testing.T) {
	r := pendingRequest()

	assert.True(t, r.Covers(time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Covers(time.Date(2025, time.February, 4, 12, 30, 0, 0, time.UTC)))
	assert.True(t, r.Covers(time.Date(2025, time.February, 5, 23, 59, 0, 0, time.UTC)))

	assert.False(t, r.Covers(time.Date(2025, time.February, 2, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Covers(time.Date(2025, time.February, 6, 0, 0, 0, 0, time.UTC)))
}
