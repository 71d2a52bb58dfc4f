package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysRequested(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day counts as one", date(2025, 6, 2), date(2025, 6, 2), 1},
		{"inclusive span", date(2025, 6, 2), date(2025, 6, 6), 5},
		{"month boundary", date(2025, 1, 30), date(2025, 2, 2), 4},
		{"year boundary", date(2025, 12, 30), date(2026, 1, 2), 4},
		{"end before start goes non-positive", date(2025, 6, 6), date(2025, 6, 2), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysRequested(tt.start, tt.end))
		})
	}
}

func TestDaysRequested_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysRequested(start, end))
}

func TestRequestStatus_Terminal(t *testing.T) {
	assert.False(t, RequestStatusPending.Terminal())
	assert.True(t, RequestStatusApproved.Terminal())
	assert.True(t, RequestStatusDenied.Terminal())
}

func TestInsufficientBalanceError_Message(t *testing.T) {
	err := &InsufficientBalanceError{RemainingDays: 3}
	assert.Equal(t, "Insufficient vacation days. You have 3 days remaining.", err.Error())
}

func TestSubmitVacationRequest_Validate(t *testing.T) {
	valid := SubmitVacationRequest{StartDate: "2025-06-02", EndDate: "2025-06-06"}
	assert.NoError(t, valid.Validate())

	missing := SubmitVacationRequest{}
	assert.Error(t, missing.Validate())

	malformed := SubmitVacationRequest{StartDate: "02/06/2025", EndDate: "2025-06-06"}
	assert.Error(t, malformed.Validate())
}

func TestDecideVacationRequest_Validate(t *testing.T) {
	assert.NoError(t, DecideVacationRequest{Status: "approved"}.Validate())
	assert.NoError(t, DecideVacationRequest{Status: "denied"}.Validate())
	assert.ErrorIs(t, DecideVacationRequest{Status: "pending"}.Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, DecideVacationRequest{Status: "cancelled"}.Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, DecideVacationRequest{}.Validate(), ErrInvalidStatus)
}
