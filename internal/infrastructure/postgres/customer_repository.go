package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO customers (id, name, email, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.ImageURL,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, image_url, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListNames todos los clientes como (id, name), orden alfabético.
func (r *CustomerRepo) ListNames(ctx context.Context) ([]repository.CustomerName, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM customers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list customer names: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerName
	for rows.Next() {
		var c repository.CustomerName
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan customer name: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListFilteredWithTotals clientes que emparejan search por nombre o email,
// con agregados derivados en lectura: LEFT JOIN para que los clientes sin
// facturas también aparezcan, con sumas en cero. Las sumas se calculan en
// centavos; el formateo a moneda ocurre en el caso de uso.
func (r *CustomerRepo) ListFilteredWithTotals(ctx context.Context, search string) ([]repository.CustomerWithTotals, error) {
	query := `
	SELECT
	    c.id,
	    c.name,
	    c.email,
	    c.image_url,
	    COUNT(i.id)                                                              AS total_invoices,
	    COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0)::numeric AS total_pending,
	    COALESCE(SUM(CASE WHEN i.status = 'paid'    THEN i.amount ELSE 0 END), 0)::numeric AS total_paid
	FROM customers c
	LEFT JOIN invoices i ON i.customer_id = c.id
	WHERE c.name ILIKE $1 OR c.email ILIKE $1
	GROUP BY c.id, c.name, c.email, c.image_url
	ORDER BY c.name`

	rows, err := r.q.Query(ctx, query, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list customers with totals: %w", err)
	}
	defer rows.Close()

	var list []repository.CustomerWithTotals
	for rows.Next() {
		var row repository.CustomerWithTotals
		var pending, paid decimal.Decimal
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.ImageURL,
			&row.TotalInvoices, &pending, &paid,
		); err != nil {
			return nil, fmt.Errorf("scan customer totals: %w", err)
		}
		row.TotalPending = pending.IntPart()
		row.TotalPaid = paid.IntPart()
		list = append(list, row)
	}
	return list, rows.Err()
}
