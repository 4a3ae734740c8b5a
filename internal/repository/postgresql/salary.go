package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/notch-hr/notch-backend-go/internal/domain/salary"
	"github.com/notch-hr/notch-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

func (r *salaryRepositoryImpl) Create(ctx context.Context, sal salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salaries (employee_id, month, basic_salary, deductions, bonuses, net_salary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		sal.EmployeeID, sal.Month, sal.BasicSalary, sal.Deductions, sal.Bonuses, sal.NetSalary,
	).Scan(&sal.ID)
	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to create salary: %w", err)
	}

	return sal, nil
}

func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id int64) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, basic_salary, deductions, bonuses, net_salary
		FROM salaries
		WHERE id = $1
	`

	var sal salary.Salary
	err := q.QueryRow(ctx, query, id).Scan(
		&sal.ID, &sal.EmployeeID, &sal.Month, &sal.BasicSalary, &sal.Deductions, &sal.Bonuses, &sal.NetSalary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary by id: %w", err)
	}

	return sal, nil
}
