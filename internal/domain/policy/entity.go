package policy

type PolicyStatus string

const (
	PolicyStatusActive          PolicyStatus = "Active"
	PolicyStatusPendingApproval PolicyStatus = "PendingApproval"
)

// LatenessTier maps a band of minutes-late to a penalty expressed in hours of
// pay. Tiers on a policy are non-overlapping and ordered ascending by
// FromMinutes.
type LatenessTier struct {
	FromMinutes  int
	ToMinutes    int
	PenaltyHours float64
}

// Matches reports whether minutesLate falls inside the tier's window.
func (t LatenessTier) Matches(minutesLate int) bool {
	return minutesLate >= t.FromMinutes && minutesLate <= t.ToMinutes
}

type AttendancePolicy struct {
	ID                       string
	Name                     string
	Status                   PolicyStatus
	GracePeriodInMinutes     int
	BreakDurationHours       float64
	LatenessTiers            []LatenessTier
	WorkLocationIDs          []string
	MinPermitDurationMinutes int
	MaxPermitDurationHours   float64
	MaxPermitsPerMonth       int
}

// MatchLatenessTier returns the tier whose window contains minutesLate, or nil
// when no tier applies.
func (p AttendancePolicy) MatchLatenessTier(minutesLate int) *LatenessTier {
	for i := range p.LatenessTiers {
		if p.LatenessTiers[i].Matches(minutesLate) {
			return &p.LatenessTiers[i]
		}
	}
	return nil
}

type OvertimePolicy struct {
	ID                   string
	Name                 string
	Status               PolicyStatus
	AllowOvertime        bool
	MinOvertimeInMinutes int
}

type LeavePolicy struct {
	ID              string
	Name            string
	Status          PolicyStatus
	AnnualQuotaDays int
}

// WorkLocation defines a circular geofence inside which punches count as
// on-site.
type WorkLocation struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}
