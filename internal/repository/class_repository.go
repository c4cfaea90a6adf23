package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

// ClassRepository loads class detail aggregates.
type ClassRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB, observer QueryObserver) *ClassRepository {
	return &ClassRepository{db: db, observer: observerOrNop(observer)}
}

// FindDetails returns the class with its teacher, subject and department references.
// sql.ErrNoRows is returned untouched when the class does not exist.
func (r *ClassRepository) FindDetails(ctx context.Context, id string) (*models.ClassRecord, error) {
	defer track(r.observer, "class_details")()

	var row classRow
	if err := r.db.GetContext(ctx, &row, classSelect+" WHERE c.id = $1", id); err != nil {
		return nil, err
	}
	record := row.record()
	return &record, nil
}
