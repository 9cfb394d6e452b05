package runs

import (
	"context"
	"encoding/csv"
	"log"
	"os"
	"time"

	"trexstore/models"
)

// CSVSource reads runs from a flat file with an id,date,location header
// row. Dates are YYYY-MM-DD.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a source over the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) All(_ context.Context) ([]models.RunEvent, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var events []models.RunEvent
	for i, rec := range records {
		if i == 0 {
			// header row
			continue
		}
		if len(rec) < 3 {
			continue
		}
		date, err := time.Parse("2006-01-02", rec[1])
		if err != nil {
			log.Printf("Skipping run %s: bad date %q: %v", rec[0], rec[1], err)
			continue
		}
		events = append(events, annotate(models.RunEvent{
			ID:       rec[0],
			Date:     date,
			Location: rec[2],
		}, now))
	}
	return events, nil
}
