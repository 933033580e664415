package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
)

const customerColumns = `customer_id, national_id, full_name, father_name, phone,
	kyc_status, risk_level, registered_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCustomerRepository creates a new repository for KYC customer records.
func NewPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{pool: pool}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.NationalID,
		&c.FullName,
		&c.FatherName,
		&c.Phone,
		&c.KYCStatus,
		&c.RiskLevel,
		&c.RegisteredAt,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, national_id, full_name, father_name, phone,
			kyc_status, risk_level, registered_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.NationalID,
		customer.FullName,
		customer.FatherName,
		customer.Phone,
		customer.KYCStatus,
		customer.RiskLevel,
		customer.RegisteredAt,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE customer_id = $1;`, customerColumns)
	customer, err := scanCustomer(r.pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers ORDER BY registered_at DESC;`, customerColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET national_id = $2, full_name = $3, father_name = $4, phone = $5,
			kyc_status = $6, risk_level = $7, last_updated_at = $8, last_updated_by = $9
		WHERE customer_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.NationalID,
		customer.FullName,
		customer.FatherName,
		customer.Phone,
		customer.KYCStatus,
		customer.RiskLevel,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
