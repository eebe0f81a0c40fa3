package cafe

import (
	"context"

	"github.com/BruksfildServices01/cafe-directory/internal/audit"
	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/dto"
)

type CreateCafe struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCafe(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateCafe {
	return &CreateCafe{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateCafe) Execute(
	ctx context.Context,
	in domain.Candidate,
) (*dto.CafeDTO, error) {

	cafe, err := uc.repo.InsertRecord(ctx, in)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionCafeCreated,
		Entity:   audit.EntityCafe,
		EntityID: &cafe.ID,
		Metadata: map[string]string{
			"name":     cafe.Name,
			"location": cafe.Location,
		},
	})

	out := dto.NewCafeDTO(*cafe)
	return &out, nil
}
