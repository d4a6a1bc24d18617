package payroll

import "context"

type SalaryComponentRepository interface {
	Create(ctx context.Context, c SalaryComponent) (SalaryComponent, error)
	// GetByIDs resolves a package's components; unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]SalaryComponent, error)
	List(ctx context.Context) ([]SalaryComponent, error)
}

type CompensationPackageRepository interface {
	Create(ctx context.Context, p CompensationPackage) (CompensationPackage, error)
	GetByID(ctx context.Context, id string) (CompensationPackage, error)
	List(ctx context.Context) ([]CompensationPackage, error)
}
