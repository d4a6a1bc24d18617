package permit

import "context"

// PermitService validates and stores permit and adjustment requests.
type PermitService interface {
	// SubmitPermit enforces the policy's duration and monthly quota limits
	// before persisting. An employee with no attendance policy is accepted
	// unconditionally.
	SubmitPermit(ctx context.Context, req SubmitPermitRequest) (PermitResponse, error)

	// SubmitAdjustment accepts any well-formed request into Pending state;
	// there is no business-rule rejection path.
	SubmitAdjustment(ctx context.Context, req SubmitAdjustmentRequest) (AdjustmentResponse, error)

	ApprovePermit(ctx context.Context, id string) (PermitResponse, error)
	RejectPermit(ctx context.Context, id string) (PermitResponse, error)
	ApproveAdjustment(ctx context.Context, id string) (AdjustmentResponse, error)
	RejectAdjustment(ctx context.Context, id string) (AdjustmentResponse, error)

	ListPermits(ctx context.Context, employeeID string) ([]PermitResponse, error)
	ListAdjustments(ctx context.Context, employeeID string) ([]AdjustmentResponse, error)
}
