package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/payroll"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryComponentRepository struct {
	db *database.DB
}

func NewSalaryComponentRepository(db *database.DB) payroll.SalaryComponentRepository {
	return &salaryComponentRepository{db: db}
}

// Create implements payroll.SalaryComponentRepository.
func (r *salaryComponentRepository) Create(ctx context.Context, c payroll.SalaryComponent) (payroll.SalaryComponent, error) {
	q := r.db.Pool

	query := `
		INSERT INTO salary_components (name, type, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, c.Name, c.Type, c.Amount).Scan(&c.ID); err != nil {
		return payroll.SalaryComponent{}, fmt.Errorf("failed to create salary component: %w", err)
	}

	return c, nil
}

// GetByIDs implements payroll.SalaryComponentRepository.
func (r *salaryComponentRepository) GetByIDs(ctx context.Context, ids []string) ([]payroll.SalaryComponent, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := r.db.Pool

	query := `
		SELECT id, name, type, amount
		FROM salary_components
		WHERE id = ANY($1)
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary components: %w", err)
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		var c payroll.SalaryComponent
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

// List implements payroll.SalaryComponentRepository.
func (r *salaryComponentRepository) List(ctx context.Context) ([]payroll.SalaryComponent, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, type, amount
		FROM salary_components
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary components: %w", err)
	}
	defer rows.Close()

	var components []payroll.SalaryComponent
	for rows.Next() {
		var c payroll.SalaryComponent
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan salary component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

type compensationPackageRepository struct {
	db *database.DB
}

func NewCompensationPackageRepository(db *database.DB) payroll.CompensationPackageRepository {
	return &compensationPackageRepository{db: db}
}

// Create implements payroll.CompensationPackageRepository.
func (r *compensationPackageRepository) Create(ctx context.Context, p payroll.CompensationPackage) (payroll.CompensationPackage, error) {
	q := r.db.Pool

	query := `
		INSERT INTO compensation_packages (name, salary_component_ids)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, p.Name, p.SalaryComponentIDs).Scan(&p.ID); err != nil {
		return payroll.CompensationPackage{}, fmt.Errorf("failed to create compensation package: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.CompensationPackageRepository.
func (r *compensationPackageRepository) GetByID(ctx context.Context, id string) (payroll.CompensationPackage, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, salary_component_ids
		FROM compensation_packages
		WHERE id = $1
	`

	var p payroll.CompensationPackage
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.SalaryComponentIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.CompensationPackage{}, payroll.ErrPackageNotFound
		}
		return payroll.CompensationPackage{}, fmt.Errorf("failed to get compensation package: %w", err)
	}

	return p, nil
}

// List implements payroll.CompensationPackageRepository.
func (r *compensationPackageRepository) List(ctx context.Context) ([]payroll.CompensationPackage, error) {
	q := r.db.Pool

	query := `
		SELECT id, name, salary_component_ids
		FROM compensation_packages
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation packages: %w", err)
	}
	defer rows.Close()

	var packages []payroll.CompensationPackage
	for rows.Next() {
		var p payroll.CompensationPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.SalaryComponentIDs); err != nil {
			return nil, fmt.Errorf("failed to scan compensation package: %w", err)
		}
		packages = append(packages, p)
	}

	return packages, rows.Err()
}
