package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Finanzas-api/internal/domain"
	"github.com/jhoicas/Finanzas-api/internal/domain/entity"
	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// invoiceSearchFilter predicado de búsqueda compartido entre el listado y el
// conteo de páginas: cualquier divergencia entre ambos rompe la paginación.
// Monto y fecha se comparan contra su representación textual: una búsqueda de
// "150" debe encontrar amount=15000 renderizado como "150.00". $1 es el
// patrón %texto% como parámetro atado (nunca interpolado en el SQL).
const invoiceSearchFilter = `
		c.name ILIKE $1
		OR c.email ILIKE $1
		OR to_char(i.amount / 100.0, 'FM999999999990.00') ILIKE $1
		OR i.date::text ILIKE $1
		OR i.status ILIKE $1`

const invoiceListSelect = `
	SELECT i.id, i.amount, i.date, i.status, c.id, c.name, c.email, c.image_url
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// ListFiltered facturas que cumplen el predicado de búsqueda, de la más
// reciente a la más antigua. Los empates de fecha quedan en el orden nativo
// del store (no determinista, aceptado). Siempre consulta datos frescos.
func (r *InvoiceRepo) ListFiltered(ctx context.Context, search string, limit, offset int) ([]repository.InvoiceWithCustomer, error) {
	query := invoiceListSelect + `
	WHERE (` + invoiceSearchFilter + `)
	ORDER BY i.date DESC
	LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, likePattern(search), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

// ListAllFiltered igual que ListFiltered pero sin paginación (export).
func (r *InvoiceRepo) ListAllFiltered(ctx context.Context, search string) ([]repository.InvoiceWithCustomer, error) {
	query := invoiceListSelect + `
	WHERE (` + invoiceSearchFilter + `)
	ORDER BY i.date DESC`
	rows, err := r.q.Query(ctx, query, likePattern(search))
	if err != nil {
		return nil, fmt.Errorf("list all invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

// CountFiltered total de filas que cumplen el mismo predicado de ListFiltered.
func (r *InvoiceRepo) CountFiltered(ctx context.Context, search string) (int64, error) {
	query := `
	SELECT COUNT(*)
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id
	WHERE (` + invoiceSearchFilter + `)`
	var total int64
	if err := r.q.QueryRow(ctx, query, likePattern(search)).Scan(&total); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return total, nil
}

// Latest las n facturas más recientes con su cliente.
func (r *InvoiceRepo) Latest(ctx context.Context, n int) ([]repository.InvoiceWithCustomer, error) {
	query := invoiceListSelect + `
	ORDER BY i.date DESC
	LIMIT $1`
	rows, err := r.q.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("latest invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoiceRows(rows)
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe:
// "no encontrada" es un resultado normal, no un error. Un id que no es UUID
// no puede existir en la columna uuid, así que se resuelve como no
// encontrada sin viaje al store (atarlo como parámetro produciría un error
// de sintaxis del servidor, 22P02, que no es una falla del store).
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if uuid.Validate(id) != nil {
		return nil, nil
	}
	query := `
		SELECT id, customer_id, amount, status, date, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("customer_id", "el cliente no existe")
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update actualiza cliente, monto y estado de la factura.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $2, amount = $3, status = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidationError("customer_id", "el cliente no existe")
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura por ID. Un fallo del store se propaga al
// llamador (política explícita: un borrado financiero no falla en silencio).
// Un id que no es UUID no empareja ninguna fila: mismo resultado que borrar
// un id desconocido.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoiceRows(rows pgx.Rows) ([]repository.InvoiceWithCustomer, error) {
	var list []repository.InvoiceWithCustomer
	for rows.Next() {
		var row repository.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID, &row.Amount, &row.Date, &row.Status,
			&row.CustomerID, &row.CustomerName, &row.CustomerEmail, &row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// likePattern envuelve el texto de búsqueda en comodines. Texto vacío produce
// "%%", que empareja todas las filas (el predicado se vuelve trivialmente
// verdadero, no "cero filas").
func likePattern(search string) string {
	return "%" + search + "%"
}
