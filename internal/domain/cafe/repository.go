package cafe

import (
	"context"

	"github.com/BruksfildServices01/cafe-directory/internal/models"
)

// Repository is the Record Store. Implementations report failures using
// the sentinel errors of this package.
type Repository interface {
	InsertRecord(
		ctx context.Context,
		candidate Candidate,
	) (*models.Cafe, error)

	ListAll(
		ctx context.Context,
	) ([]models.Cafe, error)

	FindByField(
		ctx context.Context,
		field string,
		value string,
	) ([]models.Cafe, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Cafe, error)

	UpdateField(
		ctx context.Context,
		id uint,
		field string,
		value string,
	) (*models.Cafe, error)
}
