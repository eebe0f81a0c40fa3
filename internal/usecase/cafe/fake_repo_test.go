package cafe

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/models"
)

// memRepo is an in-memory domain.Repository for use case tests.
type memRepo struct {
	mu     sync.Mutex
	rows   []models.Cafe
	nextID uint

	failWith error
	gets     int
	updates  int
}

func (r *memRepo) InsertRecord(_ context.Context, c domain.Candidate) (*models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	for _, row := range r.rows {
		if row.Name == c.Name {
			return nil, domain.ErrConstraintViolation
		}
	}
	r.nextID++
	m := c.Model()
	m.ID = r.nextID
	r.rows = append(r.rows, *m)
	return m, nil
}

func (r *memRepo) ListAll(context.Context) ([]models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	return append([]models.Cafe{}, r.rows...), nil
}

func (r *memRepo) FindByField(_ context.Context, field, value string) ([]models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	if field != domain.FieldLocation {
		return nil, domain.ErrValidation
	}
	out := []models.Cafe{}
	for _, row := range r.rows {
		if row.Location == value {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *memRepo) GetByID(_ context.Context, id uint) (*models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, row := range r.rows {
		if row.ID == id {
			cp := row
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) UpdateField(_ context.Context, id uint, field, value string) (*models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	if field != domain.FieldCoffeePrice {
		return nil, domain.ErrValidation
	}
	for i := range r.rows {
		if r.rows[i].ID == id {
			v := value
			r.rows[i].CoffeePrice = &v
			r.updates++
			cp := r.rows[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func seed(r *memRepo, rows ...domain.Candidate) {
	for _, c := range rows {
		if _, err := r.InsertRecord(context.Background(), c); err != nil {
			panic(err)
		}
	}
}

func cand(name, location string) domain.Candidate {
	return domain.Candidate{
		Name:     name,
		MapURL:   "https://maps.example/" + name,
		ImgURL:   "https://img.example/" + name,
		Location: location,
		Seats:    "10-20",
	}
}
