package cafe

import (
	"context"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/dto"
)

type GetCafe struct {
	repo domain.Repository
}

func NewGetCafe(
	repo domain.Repository,
) *GetCafe {
	return &GetCafe{
		repo: repo,
	}
}

func (uc *GetCafe) Execute(
	ctx context.Context,
	id uint,
) (*dto.CafeDTO, error) {

	cafe, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewCafeDTO(*cafe)
	return &out, nil
}
