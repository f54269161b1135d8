package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aston-csic/csic-go/domain"
)

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "alice@csic.club", Password: "anything"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  LoginRequest
	}{
		{name: "missing email", req: LoginRequest{Password: "anything"}},
		{name: "malformed email", req: LoginRequest{Email: "not-an-email", Password: "anything"}},
		{name: "missing password", req: LoginRequest{Email: "alice@csic.club"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestSignupRequestPasswordRule(t *testing.T) {
	base := SignupRequest{FirstName: "Alice", LastName: "Doe", Email: "alice@csic.club"}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "letters and digits", password: "Passw0rd1"},
		{name: "minimum length boundary", password: "abcdefg1"},
		{name: "too short", password: "abc1", wantErr: true},
		{name: "no digit", password: "passwords", wantErr: true},
		{name: "no letter", password: "12345678", wantErr: true},
		{name: "symbols are allowed on top", password: "p@ssw0rd!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Password = tt.password

			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidPassword)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreateEventRequestValidate(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	valid := CreateEventRequest{
		Title:       "Guest Lecture",
		Description: "An evening talk",
		StartDate:   start,
		EndDate:     start.Add(2 * time.Hour),
		Capacity:    50,
		Location:    "MB404",
	}
	require.NoError(t, valid.Validate())

	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.EndDate = start.Add(-time.Hour)
		assert.ErrorIs(t, req.Validate(), errEndBeforeStart)
	})

	t.Run("end equals start", func(t *testing.T) {
		req := valid
		req.EndDate = start
		assert.ErrorIs(t, req.Validate(), errEndBeforeStart)
	})

	t.Run("zero capacity", func(t *testing.T) {
		req := valid
		req.Capacity = 0
		assert.Error(t, req.Validate())
	})

	t.Run("short title", func(t *testing.T) {
		req := valid
		req.Title = "ab"
		assert.Error(t, req.Validate())
	})
}

func TestUpdateEventStatusRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdateEventStatusRequest{Status: domain.EventCancelled}).Validate())
	assert.Error(t, (&UpdateEventStatusRequest{Status: domain.EventStatus("Paused")}).Validate())
}

func TestMarkAttendanceRequestValidate(t *testing.T) {
	assert.NoError(t, (&MarkAttendanceRequest{Status: domain.BookingAttended}).Validate())
	assert.NoError(t, (&MarkAttendanceRequest{Status: domain.BookingNoShow}).Validate())
	assert.ErrorIs(t, (&MarkAttendanceRequest{Status: domain.BookingConfirmed}).Validate(), errInvalidAttendance)
	assert.ErrorIs(t, (&MarkAttendanceRequest{Status: domain.BookingCancelled}).Validate(), errInvalidAttendance)
}

func TestFeedbackRequestsValidateRatingBounds(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		req := CreateFeedbackRequest{EventID: "e1", Rating: rating}
		assert.NoError(t, req.Validate(), "rating %d should be accepted", rating)
	}

	assert.Error(t, (&CreateFeedbackRequest{EventID: "e1", Rating: 0}).Validate())
	assert.Error(t, (&CreateFeedbackRequest{EventID: "e1", Rating: 6}).Validate())
	assert.Error(t, (&CreateFeedbackRequest{Rating: 3}).Validate(), "the event id is required")
	assert.Error(t, (&UpdateFeedbackRequest{ID: "f1", Rating: 6}).Validate())
	assert.NoError(t, (&UpdateFeedbackRequest{ID: "f1", Rating: 4}).Validate())
}

func TestContactMessageRequestValidate(t *testing.T) {
	valid := ContactMessageRequest{Name: "Alice", Email: "alice@csic.club", Message: "Hello"}
	require.NoError(t, valid.Validate())

	assert.Error(t, (&ContactMessageRequest{Email: "alice@csic.club", Message: "Hello"}).Validate())
	assert.Error(t, (&ContactMessageRequest{Name: "Alice", Email: "nope", Message: "Hello"}).Validate())
	assert.Error(t, (&ContactMessageRequest{Name: "Alice", Email: "alice@csic.club"}).Validate())
}

func TestUserRequestsValidateRole(t *testing.T) {
	valid := CreateUserRequest{
		FirstName: "Alice", LastName: "Doe", Email: "alice@csic.club",
		Password: "Passw0rd1", Role: domain.RoleStaff,
	}
	require.NoError(t, valid.Validate())

	invalidRole := valid
	invalidRole.Role = domain.Role("Wizard")
	assert.Error(t, invalidRole.Validate())

	weakPassword := valid
	weakPassword.Password = "short"
	assert.ErrorIs(t, weakPassword.Validate(), errInvalidPassword)

	assert.NoError(t, (&UpdateUserRoleRequest{UserID: "u1", Role: domain.RoleAdmin}).Validate())
	assert.Error(t, (&UpdateUserRoleRequest{Role: domain.RoleAdmin}).Validate())
	assert.Error(t, (&UpdateUserRoleRequest{UserID: "u1", Role: domain.Role("Wizard")}).Validate())
}
