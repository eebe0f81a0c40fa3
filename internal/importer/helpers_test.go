package importer

import domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"

func validRow() domain.Candidate {
	return domain.Candidate{
		Name:     "Kaffeine",
		MapURL:   "m",
		ImgURL:   "i",
		Location: "Fitzrovia",
		Seats:    "20-30",
	}
}
