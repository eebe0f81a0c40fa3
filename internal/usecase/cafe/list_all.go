package cafe

import (
	"context"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/dto"
)

type ListCafes struct {
	repo domain.Repository
}

func NewListCafes(
	repo domain.Repository,
) *ListCafes {
	return &ListCafes{
		repo: repo,
	}
}

func (uc *ListCafes) Execute(
	ctx context.Context,
) ([]dto.CafeDTO, error) {

	cafes, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCafeDTOs(cafes), nil
}
