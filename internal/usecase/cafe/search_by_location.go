package cafe

import (
	"context"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/dto"
	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
)

type SearchCafesByLocation struct {
	repo domain.Repository
}

func NewSearchCafesByLocation(
	repo domain.Repository,
) *SearchCafesByLocation {
	return &SearchCafesByLocation{
		repo: repo,
	}
}

// Execute matches the location exactly. An empty result is reported as
// ErrNotFound so callers can answer 404.
func (uc *SearchCafesByLocation) Execute(
	ctx context.Context,
	location string,
) ([]dto.CafeDTO, error) {

	cafes, err := uc.repo.FindByField(ctx, domain.FieldLocation, location)
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, httperr.Business(domain.ErrNotFound, "no_cafe_at_location")
	}
	return dto.NewCafeDTOs(cafes), nil
}
