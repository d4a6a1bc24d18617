package policy

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/policy"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver() *Resolver {
	return NewResolver(
		memory.NewAttendancePolicyRepository([]policy.AttendancePolicy{
			{ID: "pol-1", Name: "Standard", Status: policy.PolicyStatusActive},
		}),
		memory.NewOvertimePolicyRepository([]policy.OvertimePolicy{
			{ID: "ot-1", Name: "Standard Overtime", AllowOvertime: true},
		}),
		memory.NewLeavePolicyRepository([]policy.LeavePolicy{
			{ID: "lv-1", Name: "Standard Leave", AnnualQuotaDays: 12},
		}),
	)
}

func strPtr(s string) *string { return &s }

func TestResolveAttendancePolicy(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()

	t.Run("assigned policy resolves", func(t *testing.T) {
		p, err := r.ResolveAttendancePolicy(ctx, employee.Employee{AttendancePolicyID: strPtr("pol-1")})
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Standard", p.Name)
	})

	t.Run("nil reference means no policy", func(t *testing.T) {
		p, err := r.ResolveAttendancePolicy(ctx, employee.Employee{})
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("empty reference means no policy", func(t *testing.T) {
		p, err := r.ResolveAttendancePolicy(ctx, employee.Employee{AttendancePolicyID: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("dangling reference means no policy", func(t *testing.T) {
		p, err := r.ResolveAttendancePolicy(ctx, employee.Employee{AttendancePolicyID: strPtr("deleted")})
		require.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestResolveOvertimePolicy(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()

	p, err := r.ResolveOvertimePolicy(ctx, employee.Employee{OvertimePolicyID: strPtr("ot-1")})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.AllowOvertime)

	p, err = r.ResolveOvertimePolicy(ctx, employee.Employee{OvertimePolicyID: strPtr("deleted")})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestResolveLeavePolicy(t *testing.T) {
	ctx := context.Background()
	r := newTestResolver()

	p, err := r.ResolveLeavePolicy(ctx, employee.Employee{LeavePolicyID: strPtr("lv-1")})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 12, p.AnnualQuotaDays)

	p, err = r.ResolveLeavePolicy(ctx, employee.Employee{})
	require.NoError(t, err)
	assert.Nil(t, p)
}
