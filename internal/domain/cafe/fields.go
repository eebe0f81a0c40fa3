package cafe

import (
	"unicode/utf8"

	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
)

// Field describes one string column of the cafes table.
type Field struct {
	Name       string
	MaxLen     int
	Required   bool
	Filterable bool
	Updatable  bool
}

const (
	FieldName        = "name"
	FieldMapURL      = "map_url"
	FieldImgURL      = "img_url"
	FieldLocation    = "location"
	FieldSeats       = "seats"
	FieldCoffeePrice = "coffee_price"
)

var fields = map[string]Field{
	FieldName:        {Name: FieldName, MaxLen: 250, Required: true, Filterable: true},
	FieldMapURL:      {Name: FieldMapURL, MaxLen: 500, Required: true, Filterable: true},
	FieldImgURL:      {Name: FieldImgURL, MaxLen: 500, Required: true, Filterable: true},
	FieldLocation:    {Name: FieldLocation, MaxLen: 250, Required: true, Filterable: true},
	FieldSeats:       {Name: FieldSeats, MaxLen: 250, Required: true, Filterable: true},
	FieldCoffeePrice: {Name: FieldCoffeePrice, MaxLen: 250, Filterable: true, Updatable: true},
}

// LookupField resolves a column name against the catalogue. Names are
// matched exactly; callers never get to build SQL from arbitrary input.
func LookupField(name string) (Field, bool) {
	f, ok := fields[name]
	return f, ok
}

// CheckLength enforces the column size in characters.
func (f Field) CheckLength(v string) error {
	if utf8.RuneCountInString(v) > f.MaxLen {
		return httperr.Business(ErrConstraintViolation, f.Name+"_too_long")
	}
	return nil
}
