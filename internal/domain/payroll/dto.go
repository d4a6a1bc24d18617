package payroll

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateComponentRequest struct {
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *CreateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Type, []string{string(ComponentTypeAllowance), string(ComponentTypeDeduction)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Allowance or Deduction",
		})
	}

	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreatePackageRequest struct {
	Name               string   `json:"name"`
	SalaryComponentIDs []string `json:"salary_component_ids"`
}

func (r *CreatePackageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ComponentResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

type PackageResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	SalaryComponentIDs []string `json:"salary_component_ids"`
}

func (c SalaryComponent) ToResponse() ComponentResponse {
	return ComponentResponse{
		ID:     c.ID,
		Name:   c.Name,
		Type:   string(c.Type),
		Amount: c.Amount,
	}
}

func (p CompensationPackage) ToResponse() PackageResponse {
	return PackageResponse{
		ID:                 p.ID,
		Name:               p.Name,
		SalaryComponentIDs: p.SalaryComponentIDs,
	}
}
