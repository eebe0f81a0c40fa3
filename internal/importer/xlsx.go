package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
)

const DefaultSheet = "Sheet1"

var requiredColumns = []string{
	domain.FieldName,
	domain.FieldMapURL,
	domain.FieldImgURL,
	domain.FieldLocation,
	domain.FieldSeats,
}

// Row is one data line of the workbook. Line is 1-based as shown in Excel.
type Row struct {
	Line      int
	Candidate domain.Candidate
}

type Summary struct {
	Inserted   int
	Duplicates int
	Invalid    int
}

// ReadCafes parses a workbook whose first row names the cafe columns.
// Column order is free; unknown columns are ignored.
func ReadCafes(r io.Reader, sheet string) ([]Row, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer xl.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, errors.New("workbook must have a header row and at least one data row")
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	cell := func(row []string, col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	out := make([]Row, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		get := func(col string) string {
			v, _ := cell(row, col)
			return v
		}

		c := domain.Candidate{
			Name:         get(domain.FieldName),
			MapURL:       get(domain.FieldMapURL),
			ImgURL:       get(domain.FieldImgURL),
			Location:     get(domain.FieldLocation),
			Seats:        get(domain.FieldSeats),
			HasToilet:    domain.ParseBool(get("has_toilet")),
			HasWifi:      domain.ParseBool(get("has_wifi")),
			HasSockets:   domain.ParseBool(get("has_sockets")),
			CanTakeCalls: domain.ParseBool(get("can_take_calls")),
		}
		if price, ok := cell(row, domain.FieldCoffeePrice); ok && price != "" {
			c.CoffeePrice = &price
		}

		out = append(out, Row{Line: n + 2, Candidate: c})
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Import inserts rows one by one. Rejected rows are logged and counted;
// only a store failure stops the run.
func Import(ctx context.Context, repo domain.Repository, rows []Row, log *zap.Logger) (Summary, error) {
	var s Summary
	for _, row := range rows {
		_, err := repo.InsertRecord(ctx, row.Candidate)
		switch {
		case err == nil:
			s.Inserted++
		case httperr.IsBusiness(err, "name_taken"):
			s.Duplicates++
			log.Info("duplicate cafe skipped", zap.Int("line", row.Line), zap.String("name", row.Candidate.Name))
		case errors.Is(err, domain.ErrConstraintViolation), errors.Is(err, domain.ErrValidation):
			s.Invalid++
			log.Warn("invalid row skipped", zap.Int("line", row.Line), zap.Error(err))
		default:
			return s, fmt.Errorf("line %d: %w", row.Line, err)
		}
	}
	return s, nil
}
