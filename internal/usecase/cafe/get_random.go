package cafe

import (
	"context"
	"math/rand/v2"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/dto"
)

// Picker returns an index in [0, n). n is always > 0.
type Picker func(n int) int

type GetRandomCafe struct {
	repo domain.Repository
	pick Picker
}

func NewGetRandomCafe(
	repo domain.Repository,
	pick Picker,
) *GetRandomCafe {
	if pick == nil {
		pick = rand.IntN
	}
	return &GetRandomCafe{
		repo: repo,
		pick: pick,
	}
}

func (uc *GetRandomCafe) Execute(
	ctx context.Context,
) (*dto.CafeDTO, error) {

	cafes, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, domain.ErrEmptyCollection
	}

	out := dto.NewCafeDTO(cafes[uc.pick(len(cafes))])
	return &out, nil
}
