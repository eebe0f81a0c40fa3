package cafe

import (
	"strings"

	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
	"github.com/BruksfildServices01/cafe-directory/internal/models"
)

// Candidate is an unpersisted cafe awaiting validation and insertion.
type Candidate struct {
	Name     string
	MapURL   string
	ImgURL   string
	Location string
	Seats    string

	HasToilet    bool
	HasWifi      bool
	HasSockets   bool
	CanTakeCalls bool

	CoffeePrice *string
}

// Validate checks not-null and length constraints. Uniqueness is left to the store.
func (c Candidate) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{FieldName, c.Name},
		{FieldMapURL, c.MapURL},
		{FieldImgURL, c.ImgURL},
		{FieldLocation, c.Location},
		{FieldSeats, c.Seats},
	}
	for _, r := range required {
		f := fields[r.name]
		if strings.TrimSpace(r.value) == "" {
			return httperr.Business(ErrConstraintViolation, r.name+"_required")
		}
		if err := f.CheckLength(r.value); err != nil {
			return err
		}
	}
	if c.CoffeePrice != nil {
		if err := fields[FieldCoffeePrice].CheckLength(*c.CoffeePrice); err != nil {
			return err
		}
	}
	return nil
}

// Model maps the candidate onto a fresh row; the id stays zero for the store to assign.
func (c Candidate) Model() *models.Cafe {
	return &models.Cafe{
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

// ParseBool is true only for a case-insensitive "true". Everything else,
// including an absent value, is false.
func ParseBool(v string) bool {
	return strings.EqualFold(v, "true")
}

// ValidPrice accepts a non-empty string of ASCII digits and nothing else.
// Decimals and currency symbols are rejected rather than normalized.
func ValidPrice(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}
