package memory

import (
	"context"
	"sync"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/google/uuid"
)

type salaryComponentRepository struct {
	mu         sync.RWMutex
	components map[string]payroll.SalaryComponent
}

func NewSalaryComponentRepository(components []payroll.SalaryComponent) payroll.SalaryComponentRepository {
	m := make(map[string]payroll.SalaryComponent, len(components))
	for _, c := range components {
		m[c.ID] = c
	}
	return &salaryComponentRepository{components: m}
}

func (r *salaryComponentRepository) Create(_ context.Context, c payroll.SalaryComponent) (payroll.SalaryComponent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.components[c.ID] = c
	return c, nil
}

func (r *salaryComponentRepository) GetByIDs(_ context.Context, ids []string) ([]payroll.SalaryComponent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]payroll.SalaryComponent, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.components[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *salaryComponentRepository) List(_ context.Context) ([]payroll.SalaryComponent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]payroll.SalaryComponent, 0, len(r.components))
	for _, c := range r.components {
		result = append(result, c)
	}
	return result, nil
}

type compensationPackageRepository struct {
	mu       sync.RWMutex
	packages map[string]payroll.CompensationPackage
}

func NewCompensationPackageRepository(packages []payroll.CompensationPackage) payroll.CompensationPackageRepository {
	m := make(map[string]payroll.CompensationPackage, len(packages))
	for _, p := range packages {
		m[p.ID] = p
	}
	return &compensationPackageRepository{packages: m}
}

func (r *compensationPackageRepository) Create(_ context.Context, p payroll.CompensationPackage) (payroll.CompensationPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.packages[p.ID] = p
	return p, nil
}

func (r *compensationPackageRepository) GetByID(_ context.Context, id string) (payroll.CompensationPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.packages[id]
	if !ok {
		return payroll.CompensationPackage{}, payroll.ErrPackageNotFound
	}
	return p, nil
}

func (r *compensationPackageRepository) List(_ context.Context) ([]payroll.CompensationPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]payroll.CompensationPackage, 0, len(r.packages))
	for _, p := range r.packages {
		result = append(result, p)
	}
	return result, nil
}
