package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kalitafoto/backend/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceFormRepository persists customer session requests.
type ServiceFormRepository interface {
	Create(ctx context.Context, in *model.ServiceFormInput) (*model.ServiceForm, error)
	FindByID(ctx context.Context, id string) (*model.ServiceForm, error)
	FindByEmail(ctx context.Context, email string) ([]model.ServiceForm, error)
	FindAll(ctx context.Context, p model.Pagination) ([]model.ServiceForm, error)
	Count(ctx context.Context, status string) (int64, error)
	Update(ctx context.Context, id string, upd *model.ServiceFormUpdate) (*model.ServiceForm, error)
	Delete(ctx context.Context, id string) error
}

type pgServiceFormRepository struct {
	db *pgxpool.Pool
}

// NewServiceFormRepository returns the PostgreSQL-backed implementation.
func NewServiceFormRepository(db *pgxpool.Pool) ServiceFormRepository {
	return &pgServiceFormRepository{db: db}
}

const serviceFormColumns = `id, full_name, email, phone, photo_session_type, message, status, assigned_photographer, created_at, updated_at`

func scanServiceForm(row pgx.Row) (*model.ServiceForm, error) {
	var f model.ServiceForm
	err := row.Scan(
		&f.ID,
		&f.FullName,
		&f.Email,
		&f.Phone,
		&f.PhotoSessionType,
		&f.Message,
		&f.Status,
		&f.AssignedPhotographer,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new form. The phone mask is stripped and the status
// defaults to pending here, at the persistence boundary.
func (r *pgServiceFormRepository) Create(ctx context.Context, in *model.ServiceFormInput) (*model.ServiceForm, error) {
	status := in.Status
	if status == "" {
		status = model.StatusPending
	}

	query := fmt.Sprintf(`
		INSERT INTO service_forms (full_name, email, phone, photo_session_type, message, status, assigned_photographer)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, serviceFormColumns)

	row := r.db.QueryRow(ctx, query,
		in.FullName,
		in.Email,
		NormalizePhone(in.Phone),
		in.PhotoSessionType,
		in.Message,
		status,
		in.AssignedPhotographer,
	)

	return scanServiceForm(row)
}

// FindByID returns (nil, nil) when no form matches id.
func (r *pgServiceFormRepository) FindByID(ctx context.Context, id string) (*model.ServiceForm, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_forms WHERE id = $1`, serviceFormColumns)

	form, err := scanServiceForm(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (r *pgServiceFormRepository) FindByEmail(ctx context.Context, email string) ([]model.ServiceForm, error) {
	query := fmt.Sprintf(`SELECT %s FROM service_forms WHERE email = $1 ORDER BY created_at DESC`, serviceFormColumns)

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectServiceForms(rows)
}

func (r *pgServiceFormRepository) FindAll(ctx context.Context, p model.Pagination) ([]model.ServiceForm, error) {
	p = p.Normalize()

	var (
		query string
		args  []any
	)
	if p.Status != "" {
		query = fmt.Sprintf(`SELECT %s FROM service_forms WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, serviceFormColumns)
		args = []any{p.Status, p.Limit, p.Offset()}
	} else {
		query = fmt.Sprintf(`SELECT %s FROM service_forms ORDER BY created_at DESC LIMIT $1 OFFSET $2`, serviceFormColumns)
		args = []any{p.Limit, p.Offset()}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectServiceForms(rows)
}

func (r *pgServiceFormRepository) Count(ctx context.Context, status string) (int64, error) {
	var (
		count int64
		err   error
	)
	if status != "" {
		err = r.db.QueryRow(ctx, `SELECT count(*) FROM service_forms WHERE status = $1`, status).Scan(&count)
	} else {
		err = r.db.QueryRow(ctx, `SELECT count(*) FROM service_forms`).Scan(&count)
	}
	return count, err
}

// Update applies a partial update. Only the supplied fields change; a
// supplied phone is re-normalized before being written. Returns
// ErrNotFound when id does not match any row.
func (r *pgServiceFormRepository) Update(ctx context.Context, id string, upd *model.ServiceFormUpdate) (*model.ServiceForm, error) {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 8)

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.FullName != nil {
		addSet("full_name", *upd.FullName)
	}
	if upd.Email != nil {
		addSet("email", *upd.Email)
	}
	if upd.Phone != nil {
		addSet("phone", NormalizePhone(*upd.Phone))
	}
	if upd.PhotoSessionType != nil {
		addSet("photo_session_type", *upd.PhotoSessionType)
	}
	if upd.Message != nil {
		addSet("message", *upd.Message)
	}
	if upd.Status != nil {
		addSet("status", *upd.Status)
	}
	if upd.AssignedPhotographer != nil {
		addSet("assigned_photographer", *upd.AssignedPhotographer)
	}

	if len(sets) == 0 {
		// Nothing to change; still verify the row exists.
		form, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if form == nil {
			return nil, ErrNotFound
		}
		return form, nil
	}

	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE service_forms SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), serviceFormColumns)

	form, err := scanServiceForm(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (r *pgServiceFormRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM service_forms WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectServiceForms(rows pgx.Rows) ([]model.ServiceForm, error) {
	forms := make([]model.ServiceForm, 0)
	for rows.Next() {
		form, err := scanServiceForm(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, *form)
	}
	return forms, rows.Err()
}
