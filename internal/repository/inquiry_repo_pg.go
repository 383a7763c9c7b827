package repository

import (
	"context"

	"manomangal/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *domain.ContactInquiry) error
	ListByStatus(ctx context.Context, status domain.InquiryStatus) ([]domain.ContactInquiry, error)
	GetByID(ctx context.Context, id string) (*domain.ContactInquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.ContactInquiry, error)
}

type PGInquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) InquiryRepository {
	return &PGInquiryRepository{db: db}
}

const inquiryColumns = `id, name, email, phone, message, status, created_at`

func (r *PGInquiryRepository) Create(ctx context.Context, q *domain.ContactInquiry) error {
	return r.db.QueryRow(ctx, `INSERT INTO contact_inquiries (id, name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		q.ID, q.Name, q.Email, q.Phone, q.Message, q.Status).
		Scan(&q.CreatedAt)
}

func (r *PGInquiryRepository) ListByStatus(ctx context.Context, status domain.InquiryStatus) ([]domain.ContactInquiry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+inquiryColumns+` FROM contact_inquiries WHERE status=$1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := make([]domain.ContactInquiry, 0)
	for rows.Next() {
		var q domain.ContactInquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Message, &q.Status, &q.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, q)
	}
	return inquiries, rows.Err()
}

func (r *PGInquiryRepository) GetByID(ctx context.Context, id string) (*domain.ContactInquiry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+inquiryColumns+` FROM contact_inquiries WHERE id=$1`, id)
	var q domain.ContactInquiry
	if err := row.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Message, &q.Status, &q.CreatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *PGInquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.ContactInquiry, error) {
	row := r.db.QueryRow(ctx, `UPDATE contact_inquiries SET status=$1 WHERE id=$2 RETURNING `+inquiryColumns, status, id)
	var q domain.ContactInquiry
	if err := row.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Message, &q.Status, &q.CreatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

var _ InquiryRepository = (*PGInquiryRepository)(nil)
