package policy

type LatenessTierResponse struct {
	FromMinutes  int     `json:"from_minutes"`
	ToMinutes    int     `json:"to_minutes"`
	PenaltyHours float64 `json:"penalty_hours"`
}

type AttendancePolicyResponse struct {
	ID                       string                 `json:"id"`
	Name                     string                 `json:"name"`
	Status                   string                 `json:"status"`
	GracePeriodInMinutes     int                    `json:"grace_period_in_minutes"`
	BreakDurationHours       float64                `json:"break_duration_hours"`
	LatenessTiers            []LatenessTierResponse `json:"lateness_tiers"`
	WorkLocationIDs          []string               `json:"work_location_ids"`
	MinPermitDurationMinutes int                    `json:"min_permit_duration_minutes"`
	MaxPermitDurationHours   float64                `json:"max_permit_duration_hours"`
	MaxPermitsPerMonth       int                    `json:"max_permits_per_month"`
}

type OvertimePolicyResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Status               string `json:"status"`
	AllowOvertime        bool   `json:"allow_overtime"`
	MinOvertimeInMinutes int    `json:"min_overtime_in_minutes"`
}

type LeavePolicyResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	AnnualQuotaDays int    `json:"annual_quota_days"`
}

type WorkLocationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
}

func (p AttendancePolicy) ToResponse() AttendancePolicyResponse {
	tiers := make([]LatenessTierResponse, 0, len(p.LatenessTiers))
	for _, t := range p.LatenessTiers {
		tiers = append(tiers, LatenessTierResponse{
			FromMinutes:  t.FromMinutes,
			ToMinutes:    t.ToMinutes,
			PenaltyHours: t.PenaltyHours,
		})
	}

	return AttendancePolicyResponse{
		ID:                       p.ID,
		Name:                     p.Name,
		Status:                   string(p.Status),
		GracePeriodInMinutes:     p.GracePeriodInMinutes,
		BreakDurationHours:       p.BreakDurationHours,
		LatenessTiers:            tiers,
		WorkLocationIDs:          p.WorkLocationIDs,
		MinPermitDurationMinutes: p.MinPermitDurationMinutes,
		MaxPermitDurationHours:   p.MaxPermitDurationHours,
		MaxPermitsPerMonth:       p.MaxPermitsPerMonth,
	}
}

func (p OvertimePolicy) ToResponse() OvertimePolicyResponse {
	return OvertimePolicyResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		Status:               string(p.Status),
		AllowOvertime:        p.AllowOvertime,
		MinOvertimeInMinutes: p.MinOvertimeInMinutes,
	}
}

func (p LeavePolicy) ToResponse() LeavePolicyResponse {
	return LeavePolicyResponse{
		ID:              p.ID,
		Name:            p.Name,
		Status:          string(p.Status),
		AnnualQuotaDays: p.AnnualQuotaDays,
	}
}

func (l WorkLocation) ToResponse() WorkLocationResponse {
	return WorkLocationResponse{
		ID:           l.ID,
		Name:         l.Name,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		RadiusMeters: l.RadiusMeters,
	}
}
