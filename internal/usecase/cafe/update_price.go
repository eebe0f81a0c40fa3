package cafe

import (
	"context"

	"github.com/BruksfildServices01/cafe-directory/internal/audit"
	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/dto"
	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
)

type UpdateCoffeePrice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCoffeePrice(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateCoffeePrice {
	return &UpdateCoffeePrice{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateCoffeePrice) Execute(
	ctx context.Context,
	id uint,
	price string,
) (*dto.CafeDTO, error) {

	// --------------------------------------------------
	// Digits only, checked before touching the store
	// --------------------------------------------------
	if !domain.ValidPrice(price) {
		return nil, httperr.Business(domain.ErrValidation, "invalid_coffee_price")
	}

	updated, err := uc.repo.UpdateField(ctx, id, domain.FieldCoffeePrice, price)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionCafePriceUpdated,
		Entity:   audit.EntityCafe,
		EntityID: &updated.ID,
		Metadata: map[string]string{"coffee_price": price},
	})

	out := dto.NewCafeDTO(*updated)
	return &out, nil
}
