package attendance

import (
	"math"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
)

// Fixed assumptions inherited from the source system: every employee works an
// 8-hour shift starting at 09:00. These are not policy fields.
const (
	StandardShiftHours  = 8.0
	StandardStartHour   = 9
	StandardStartMinute = 0
)

// ApplyEvent folds a punch event into the day's summary record, creating the
// record when it does not exist yet. The record is the only thing mutated.
func ApplyEvent(record *attendance.AttendanceRecord, event attendance.AttendanceEvent, attendancePolicy *policy.AttendancePolicy, overtimePolicy *policy.OvertimePolicy) attendance.AttendanceRecord {
	var rec attendance.AttendanceRecord
	if record != nil {
		rec = *record
	} else {
		rec = attendance.AttendanceRecord{
			EmployeeID: event.EmployeeID,
			Date:       event.Timestamp.Format("2006-01-02"),
			Day:        event.Timestamp.Weekday().String(),
			Status:     attendance.RecordStatusPresent,
		}
	}

	switch event.Type {
	case attendance.EventCheckIn:
		if rec.FirstCheckIn == nil {
			ts := event.Timestamp
			rec.FirstCheckIn = &ts
		}
		rec.Status = attendance.RecordStatusPresent
	case attendance.EventCheckOut:
		// Multiple check-out punches per day are allowed; the last one wins.
		ts := event.Timestamp
		rec.LastCheckOut = &ts
	}

	if rec.FirstCheckIn != nil && rec.LastCheckOut != nil {
		span := rec.LastCheckOut.Sub(*rec.FirstCheckIn).Hours()

		worked := span
		if attendancePolicy != nil && attendancePolicy.BreakDurationHours > 0 && span > attendancePolicy.BreakDurationHours {
			worked = span - attendancePolicy.BreakDurationHours
		}
		rec.WorkedHours = round2(worked)
		rec.Overtime = creditOvertime(rec.WorkedHours, overtimePolicy)
	}

	return rec
}

// creditOvertime converts hours worked beyond the standard shift into credited
// overtime. Without a policy, or with overtime disallowed, nothing is ever
// credited.
func creditOvertime(workedHours float64, overtimePolicy *policy.OvertimePolicy) float64 {
	if overtimePolicy == nil || !overtimePolicy.AllowOvertime {
		return 0
	}
	if workedHours <= StandardShiftHours {
		return 0
	}

	overtimeMinutes := (workedHours - StandardShiftHours) * 60
	if overtimeMinutes < float64(overtimePolicy.MinOvertimeInMinutes) {
		return 0
	}

	return round2(overtimeMinutes / 60)
}

// ResolveLateness derives the lateness flag for a record on demand. Lateness
// is measured against the standard 09:00 start; the policy's grace period only
// decides whether the employee counts as late at all.
func ResolveLateness(record attendance.AttendanceRecord, attendancePolicy *policy.AttendancePolicy) attendance.LatenessResult {
	if record.FirstCheckIn == nil {
		return attendance.LatenessResult{}
	}

	checkIn := *record.FirstCheckIn
	standardStart := time.Date(
		checkIn.Year(), checkIn.Month(), checkIn.Day(),
		StandardStartHour, StandardStartMinute, 0, 0,
		checkIn.Location(),
	)

	graceLimit := standardStart
	if attendancePolicy != nil {
		graceLimit = standardStart.Add(time.Duration(attendancePolicy.GracePeriodInMinutes) * time.Minute)
	}

	if !checkIn.After(graceLimit) {
		return attendance.LatenessResult{}
	}

	minutesLate := int(math.Floor(checkIn.Sub(standardStart).Minutes()))
	result := attendance.LatenessResult{
		IsLate:      true,
		MinutesLate: minutesLate,
	}

	if attendancePolicy != nil {
		if tier := attendancePolicy.MatchLatenessTier(minutesLate); tier != nil {
			result.Tier = &attendance.LatenessTierRef{
				FromMinutes:  tier.FromMinutes,
				ToMinutes:    tier.ToMinutes,
				PenaltyHours: tier.PenaltyHours,
			}
		}
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
