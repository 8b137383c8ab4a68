package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

const employeeColumns = `e.id, e.employee_number, e.first_name, e.last_name, e.middle_name,
	       e.email, e.phone, e.date_of_birth, e.gender, e.civil_status, e.address,
	       e.position_id, e.branch_id, e.date_hired, e.basic_salary, e.rfid, e.status,
	       e.sss, e.philhealth, e.pagibig, e.tin, e.bank_name, e.bank_account,
	       e.emergency_contact_name, e.emergency_contact_phone,
	       e.deleted_at, e.created_at, e.updated_at,
	       p.name, b.name`

type employeeRepository struct {
	repository.BaseRepository
}

// NewEmployeeRepository creates a postgres-backed employee repository
func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{BaseRepository: repository.NewBaseRepository(db)}
}

func scanEmployee(row interface{ Scan(...interface{}) error }) (*models.Employee, error) {
	e := &models.Employee{}
	var positionName, branchName *string
	err := row.Scan(
		&e.ID,
		&e.EmployeeNumber,
		&e.FirstName,
		&e.LastName,
		&e.MiddleName,
		&e.Email,
		&e.Phone,
		&e.DateOfBirth,
		&e.Gender,
		&e.CivilStatus,
		&e.Address,
		&e.PositionID,
		&e.BranchID,
		&e.DateHired,
		&e.BasicSalary,
		&e.RFID,
		&e.Status,
		&e.SSS,
		&e.Philhealth,
		&e.Pagibig,
		&e.TIN,
		&e.BankName,
		&e.BankAccount,
		&e.EmergencyContactName,
		&e.EmergencyContactPhone,
		&e.DeletedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
		&positionName,
		&branchName,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	if e.PositionID != nil && positionName != nil {
		e.Position = &models.Position{ID: *e.PositionID, Name: *positionName}
	}
	if e.BranchID != nil && branchName != nil {
		e.Branch = &models.Branch{ID: *e.BranchID, Name: *branchName}
	}
	return e, nil
}

const employeeJoin = ` FROM employees e
		LEFT JOIN positions p ON e.position_id = p.id
		LEFT JOIN branches b ON e.branch_id = b.id`

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (
			employee_number, first_name, last_name, middle_name, email, phone,
			date_of_birth, gender, civil_status, address, position_id, branch_id,
			date_hired, basic_salary, rfid, status, sss, philhealth, pagibig, tin,
			bank_name, bank_account, emergency_contact_name, emergency_contact_phone
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING id, created_at, updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		employee.EmployeeNumber,
		employee.FirstName,
		employee.LastName,
		employee.MiddleName,
		employee.Email,
		employee.Phone,
		employee.DateOfBirth,
		employee.Gender,
		employee.CivilStatus,
		employee.Address,
		employee.PositionID,
		employee.BranchID,
		employee.DateHired,
		employee.BasicSalary,
		employee.RFID,
		employee.Status,
		employee.SSS,
		employee.Philhealth,
		employee.Pagibig,
		employee.TIN,
		employee.BankName,
		employee.BankAccount,
		employee.EmergencyContactName,
		employee.EmergencyContactPhone,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "employees_employee_number_key") {
		return repository.ErrEmployeeNumberExists
	}
	if err != nil && strings.Contains(err.Error(), "employees_rfid_key") {
		return repository.ErrRFIDExists
	}
	return err
}

func (r *employeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET employee_number = $1, first_name = $2, last_name = $3, middle_name = $4,
		    email = $5, phone = $6, date_of_birth = $7, gender = $8, civil_status = $9,
		    address = $10, position_id = $11, branch_id = $12, date_hired = $13,
		    basic_salary = $14, rfid = $15, status = $16, sss = $17, philhealth = $18,
		    pagibig = $19, tin = $20, bank_name = $21, bank_account = $22,
		    emergency_contact_name = $23, emergency_contact_phone = $24,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $25 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		employee.EmployeeNumber,
		employee.FirstName,
		employee.LastName,
		employee.MiddleName,
		employee.Email,
		employee.Phone,
		employee.DateOfBirth,
		employee.Gender,
		employee.CivilStatus,
		employee.Address,
		employee.PositionID,
		employee.BranchID,
		employee.DateHired,
		employee.BasicSalary,
		employee.RFID,
		employee.Status,
		employee.SSS,
		employee.Philhealth,
		employee.Pagibig,
		employee.TIN,
		employee.BankName,
		employee.BankAccount,
		employee.EmergencyContactName,
		employee.EmergencyContactPhone,
		employee.ID,
	).Scan(&employee.UpdatedAt)
	if err == sql.ErrNoRows {
		return repository.ErrEmployeeNotFound
	}
	if err != nil && strings.Contains(err.Error(), "employees_employee_number_key") {
		return repository.ErrEmployeeNumberExists
	}
	if err != nil && strings.Contains(err.Error(), "employees_rfid_key") {
		return repository.ErrRFIDExists
	}
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE employees
		SET deleted_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.DB().ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) ForceDelete(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB().ExecContext(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		if strings.Contains(err.Error(), "violates foreign key constraint") {
			return repository.ErrHasAssociatedRecords
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	query := "SELECT " + employeeColumns + employeeJoin + " WHERE e.id = $1 AND e.deleted_at IS NULL"
	return scanEmployee(r.DB().QueryRowContext(ctx, query, id))
}

func (r *employeeRepository) GetByRFID(ctx context.Context, rfid string) (*models.Employee, error) {
	query := "SELECT " + employeeColumns + employeeJoin + " WHERE e.rfid = $1 AND e.deleted_at IS NULL"
	return scanEmployee(r.DB().QueryRowContext(ctx, query, rfid))
}

func (r *employeeRepository) List(ctx context.Context, filter repository.EmployeeFilter) ([]models.Employee, error) {
	query := "SELECT " + employeeColumns + employeeJoin
	conditions := []string{"e.deleted_at IS NULL"}
	var args []interface{}

	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_number ILIKE $%d OR e.email ILIKE $%d)",
			len(args), len(args), len(args), len(args)))
	}
	if filter.PositionID != nil {
		args = append(args, *filter.PositionID)
		conditions = append(conditions, fmt.Sprintf("e.position_id = $%d", len(args)))
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conditions = append(conditions, fmt.Sprintf("e.branch_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", len(args)))
	}
	query += " WHERE " + strings.Join(conditions, " AND ")

	orderBy := "e.created_at"
	if filter.OrderBy != "" {
		orderBy = "e." + filter.OrderBy
	}
	query += " ORDER BY " + orderBy
	if filter.OrderDesc {
		query += " DESC"
	}
	if filter.Limit != nil {
		args = append(args, *filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset != nil {
		args = append(args, *filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *employee)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL").Scan(&count)
	return count, err
}
