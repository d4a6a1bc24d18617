package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() *policy.AttendancePolicy {
	return &policy.AttendancePolicy{
		ID:                   "pol-1",
		Name:                 "Standard",
		Status:               policy.PolicyStatusActive,
		GracePeriodInMinutes: 15,
		BreakDurationHours:   1,
		LatenessTiers: []policy.LatenessTier{
			{FromMinutes: 16, ToMinutes: 30, PenaltyHours: 0.5},
			{FromMinutes: 31, ToMinutes: 60, PenaltyHours: 1},
		},
	}
}

func testOvertimePolicy() *policy.OvertimePolicy {
	return &policy.OvertimePolicy{
		ID:                   "ot-1",
		AllowOvertime:        true,
		MinOvertimeInMinutes: 30,
	}
}

func punchAt(hour, minute int, eventType attendance.EventType) attendance.AttendanceEvent {
	return attendance.AttendanceEvent{
		EmployeeID: "emp-1",
		Timestamp:  time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC),
		Type:       eventType,
	}
}

func TestApplyEventCreatesRecordOnFirstCheckIn(t *testing.T) {
	event := punchAt(8, 55, attendance.EventCheckIn)

	rec := ApplyEvent(nil, event, testPolicy(), testOvertimePolicy())

	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.Equal(t, "2025-06-02", rec.Date)
	assert.Equal(t, "Monday", rec.Day)
	assert.Equal(t, attendance.RecordStatusPresent, rec.Status)
	require.NotNil(t, rec.FirstCheckIn)
	assert.Equal(t, event.Timestamp, *rec.FirstCheckIn)
	assert.Nil(t, rec.LastCheckOut)
	assert.Zero(t, rec.WorkedHours)
}

func TestApplyEventKeepsFirstCheckIn(t *testing.T) {
	rec := ApplyEvent(nil, punchAt(8, 55, attendance.EventCheckIn), testPolicy(), testOvertimePolicy())
	rec = ApplyEvent(&rec, punchAt(13, 0, attendance.EventCheckIn), testPolicy(), testOvertimePolicy())

	require.NotNil(t, rec.FirstCheckIn)
	assert.Equal(t, 8, rec.FirstCheckIn.Hour())
	assert.Equal(t, 55, rec.FirstCheckIn.Minute())
}

func TestApplyEventLastCheckOutWins(t *testing.T) {
	rec := ApplyEvent(nil, punchAt(9, 0, attendance.EventCheckIn), testPolicy(), testOvertimePolicy())
	rec = ApplyEvent(&rec, punchAt(17, 0, attendance.EventCheckOut), testPolicy(), testOvertimePolicy())
	rec = ApplyEvent(&rec, punchAt(19, 0, attendance.EventCheckOut), testPolicy(), testOvertimePolicy())

	require.NotNil(t, rec.LastCheckOut)
	assert.Equal(t, 19, rec.LastCheckOut.Hour())
}

func TestApplyEventSubtractsBreak(t *testing.T) {
	// 09:00 to 18:00 is a 9 hour span; minus the 1 hour break leaves a full
	// standard shift and no overtime.
	rec := ApplyEvent(nil, punchAt(9, 0, attendance.EventCheckIn), testPolicy(), testOvertimePolicy())
	rec = ApplyEvent(&rec, punchAt(18, 0, attendance.EventCheckOut), testPolicy(), testOvertimePolicy())

	assert.Equal(t, 8.0, rec.WorkedHours)
	assert.Zero(t, rec.Overtime)
}

func TestApplyEventShortSpanKeepsBreak(t *testing.T) {
	// A span shorter than the break duration is not reduced below itself.
	rec := ApplyEvent(nil, punchAt(9, 0, attendance.EventCheckIn), testPolicy(), testOvertimePolicy())
	rec = ApplyEvent(&rec, punchAt(9, 30, attendance.EventCheckOut), testPolicy(), testOvertimePolicy())

	assert.Equal(t, 0.5, rec.WorkedHours)
}

func TestApplyEventNilPolicySkipsBreak(t *testing.T) {
	rec := ApplyEvent(nil, punchAt(9, 0, attendance.EventCheckIn), nil, nil)
	rec = ApplyEvent(&rec, punchAt(18, 0, attendance.EventCheckOut), nil, nil)

	assert.Equal(t, 9.0, rec.WorkedHours)
	assert.Zero(t, rec.Overtime)
}

func TestApplyEventCreditsOvertime(t *testing.T) {
	// 09:00 to 19:00 minus break is 9 worked hours, one beyond the shift.
	rec := ApplyEvent(nil, punchAt(9, 0, attendance.EventCheckIn), testPolicy(), testOvertimePolicy())
	rec = ApplyEvent(&rec, punchAt(19, 0, attendance.EventCheckOut), testPolicy(), testOvertimePolicy())

	assert.Equal(t, 9.0, rec.WorkedHours)
	assert.Equal(t, 1.0, rec.Overtime)
}

func TestCreditOvertime(t *testing.T) {
	cases := []struct {
		name        string
		workedHours float64
		otPolicy    *policy.OvertimePolicy
		want        float64
	}{
		{"no policy", 10, nil, 0},
		{"overtime disallowed", 10, &policy.OvertimePolicy{AllowOvertime: false}, 0},
		{"within standard shift", 8, testOvertimePolicy(), 0},
		{"below minimum threshold", 8.25, testOvertimePolicy(), 0},
		{"exactly minimum threshold", 8.5, testOvertimePolicy(), 0.5},
		{"well beyond shift", 10.5, testOvertimePolicy(), 2.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, creditOvertime(c.workedHours, c.otPolicy))
		})
	}
}

func TestResolveLateness(t *testing.T) {
	checkInAt := func(hour, minute int) *time.Time {
		ts := time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
		return &ts
	}

	t.Run("no check-in is never late", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{}, testPolicy())
		assert.False(t, result.IsLate)
	})

	t.Run("on time", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{FirstCheckIn: checkInAt(8, 55)}, testPolicy())
		assert.False(t, result.IsLate)
	})

	t.Run("inside grace period", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{FirstCheckIn: checkInAt(9, 10)}, testPolicy())
		assert.False(t, result.IsLate)
	})

	t.Run("at the grace boundary", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{FirstCheckIn: checkInAt(9, 15)}, testPolicy())
		assert.False(t, result.IsLate)
	})

	t.Run("past grace counts from standard start", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{FirstCheckIn: checkInAt(9, 20)}, testPolicy())
		assert.True(t, result.IsLate)
		assert.Equal(t, 20, result.MinutesLate)
		require.NotNil(t, result.Tier)
		assert.Equal(t, 0.5, result.Tier.PenaltyHours)
	})

	t.Run("second tier", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{FirstCheckIn: checkInAt(9, 45)}, testPolicy())
		assert.True(t, result.IsLate)
		assert.Equal(t, 45, result.MinutesLate)
		require.NotNil(t, result.Tier)
		assert.Equal(t, 1.0, result.Tier.PenaltyHours)
	})

	t.Run("beyond all tiers has no tier", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{FirstCheckIn: checkInAt(10, 30)}, testPolicy())
		assert.True(t, result.IsLate)
		assert.Equal(t, 90, result.MinutesLate)
		assert.Nil(t, result.Tier)
	})

	t.Run("nil policy means no grace", func(t *testing.T) {
		result := ResolveLateness(attendance.AttendanceRecord{FirstCheckIn: checkInAt(9, 1)}, nil)
		assert.True(t, result.IsLate)
		assert.Equal(t, 1, result.MinutesLate)
		assert.Nil(t, result.Tier)
	})
}
