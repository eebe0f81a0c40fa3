package cafe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
)

func validCandidate() Candidate {
	price := "£2.40"
	return Candidate{
		Name:        "Science Gallery London",
		MapURL:      "https://g.page/scigallerylon",
		ImgURL:      "https://example.com/sgl.jpg",
		Location:    "London Bridge",
		Seats:       "50+",
		HasToilet:   true,
		HasWifi:     false,
		HasSockets:  true,
		CoffeePrice: &price,
	}
}

func TestParseBool(t *testing.T) {
	cases := map[string]bool{
		"true":  true,
		"TRUE":  true,
		"True":  true,
		"tRuE":  true,
		"false": false,
		"":      false,
		"1":     false,
		"yes":   false,
		"treu":  false,
		" true": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseBool(in), "input %q", in)
	}
}

func TestValidPrice(t *testing.T) {
	for _, ok := range []string{"0", "250", "300", "0123456789"} {
		assert.True(t, ValidPrice(ok), ok)
	}
	for _, bad := range []string{"", "2.50", "free", "£3", "-1", " 1", "1 ", "١٢٣"} {
		assert.False(t, ValidPrice(bad), bad)
	}
}

func TestCandidateValidate(t *testing.T) {
	require.NoError(t, validCandidate().Validate())

	noPrice := validCandidate()
	noPrice.CoffeePrice = nil
	assert.NoError(t, noPrice.Validate())

	missing := validCandidate()
	missing.Seats = "   "
	err := missing.Validate()
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.True(t, httperr.IsBusiness(err, "seats_required"))

	longName := validCandidate()
	longName.Name = strings.Repeat("a", 251)
	err = longName.Validate()
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.True(t, httperr.IsBusiness(err, "name_too_long"))

	longURL := validCandidate()
	longURL.MapURL = strings.Repeat("u", 500)
	assert.NoError(t, longURL.Validate())
	longURL.MapURL += "u"
	assert.ErrorIs(t, longURL.Validate(), ErrConstraintViolation)

	longPrice := validCandidate()
	p := strings.Repeat("9", 251)
	longPrice.CoffeePrice = &p
	assert.True(t, httperr.IsBusiness(longPrice.Validate(), "coffee_price_too_long"))
}

func TestCandidateModelLeavesIDUnset(t *testing.T) {
	c := validCandidate()
	m := c.Model()

	assert.Zero(t, m.ID)
	assert.Equal(t, c.Name, m.Name)
	assert.Equal(t, c.MapURL, m.MapURL)
	assert.Equal(t, c.Location, m.Location)
	assert.True(t, m.HasToilet)
	assert.False(t, m.CanTakeCalls)
	require.NotNil(t, m.CoffeePrice)
	assert.Equal(t, "£2.40", *m.CoffeePrice)
}

func TestLookupField(t *testing.T) {
	f, ok := LookupField("location")
	require.True(t, ok)
	assert.True(t, f.Filterable)
	assert.False(t, f.Updatable)

	f, ok = LookupField("coffee_price")
	require.True(t, ok)
	assert.True(t, f.Updatable)

	_, ok = LookupField("id; DROP TABLE cafes")
	assert.False(t, ok)
	_, ok = LookupField("Location")
	assert.False(t, ok)
}
