package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
	"github.com/BruksfildServices01/cafe-directory/internal/models"
)

type CafeGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*CafeGormRepository)(nil)

func NewCafeGormRepository(db *gorm.DB) *CafeGormRepository {
	return &CafeGormRepository{db: db}
}

// --------------------------------------------------
// Insert
// --------------------------------------------------

func (r *CafeGormRepository) InsertRecord(
	ctx context.Context,
	candidate domain.Candidate,
) (*models.Cafe, error) {

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	cafe := candidate.Model()
	if err := r.db.WithContext(ctx).Create(cafe).Error; err != nil {
		return nil, translate(err)
	}
	return cafe, nil
}

// --------------------------------------------------
// Scans
// --------------------------------------------------

func (r *CafeGormRepository) ListAll(
	ctx context.Context,
) ([]models.Cafe, error) {

	cafes := make([]models.Cafe, 0)
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&cafes).Error; err != nil {
		return nil, translate(err)
	}
	return cafes, nil
}

func (r *CafeGormRepository) FindByField(
	ctx context.Context,
	field string,
	value string,
) ([]models.Cafe, error) {

	f, ok := domain.LookupField(field)
	if !ok || !f.Filterable {
		return nil, httperr.Business(domain.ErrValidation, "unknown_field")
	}

	cafes := make([]models.Cafe, 0)
	if err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: f.Name}, Value: value}).
		Order("id ASC").
		Find(&cafes).Error; err != nil {
		return nil, translate(err)
	}
	return cafes, nil
}

// --------------------------------------------------
// Point access
// --------------------------------------------------

func (r *CafeGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Cafe, error) {

	var cafe models.Cafe
	if err := r.db.WithContext(ctx).First(&cafe, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cafe, nil
}

// UpdateField loads, sets and persists one column inside a single
// transaction, returning the row as committed.
func (r *CafeGormRepository) UpdateField(
	ctx context.Context,
	id uint,
	field string,
	value string,
) (*models.Cafe, error) {

	f, ok := domain.LookupField(field)
	if !ok || !f.Updatable {
		return nil, httperr.Business(domain.ErrValidation, "field_not_updatable")
	}
	if err := f.CheckLength(value); err != nil {
		return nil, err
	}

	var cafe models.Cafe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&cafe, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&cafe).Update(f.Name, value).Error; err != nil {
			return err
		}

		return tx.First(&cafe, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &cafe, nil
}

// --------------------------------------------------
// Errors
// --------------------------------------------------

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return httperr.Business(domain.ErrConstraintViolation, "name_taken")
	case isNotNullViolation(err):
		return httperr.Business(domain.ErrConstraintViolation, "required_field_missing")
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23502"
	}
	return strings.Contains(err.Error(), "NOT NULL constraint failed")
}
