package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadirin/hadirin-backend-go/internal/domain/attendance"
	"github.com/hadirin/hadirin-backend-go/internal/domain/auth"
	"github.com/hadirin/hadirin-backend-go/internal/domain/calendar"
	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/domain/location"
	"github.com/hadirin/hadirin-backend-go/internal/domain/trip"
	"github.com/hadirin/hadirin-backend-go/internal/domain/user"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"revoked refresh token", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"admin access required", user.ErrAdminAccessRequired, http.StatusForbidden},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"request not found", leave.ErrRequestNotFound, http.StatusNotFound},
		{"holiday not found", calendar.ErrHolidayNotFound, http.StatusNotFound},
		{"location not found", location.ErrLocationNotFound, http.StatusNotFound},
		{"trip not found", trip.ErrTripNotFound, http.StatusNotFound},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusConflict},
		{"request already processed", leave.ErrRequestAlreadyProcessed, http.StatusConflict},
		{"attachment required", leave.ErrAttachmentRequired, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestHandleErrorWrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("failed to decide request: %w", leave.ErrRequestAlreadyProcessed))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleErrorValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "password", Message: "password is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid email format", resp.Error.Details["email"])
	assert.Equal(t, "password is required", resp.Error.Details["password"])
}
