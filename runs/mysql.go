package runs

import (
	"context"
	"database/sql"
	"time"

	"trexstore/models"
)

// MySQLSource reads runs from the community_runs table.
type MySQLSource struct {
	DB *sql.DB
}

// NewMySQLSource creates a source over the given connection pool.
func NewMySQLSource(db *sql.DB) *MySQLSource {
	return &MySQLSource{DB: db}
}

func (s *MySQLSource) All(ctx context.Context) ([]models.RunEvent, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, date, location FROM community_runs ORDER BY date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now()
	var events []models.RunEvent
	for rows.Next() {
		var e models.RunEvent
		var date string
		if err := rows.Scan(&e.ID, &date, &e.Location); err != nil {
			return nil, err
		}
		e.Date, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, err
		}
		events = append(events, annotate(e, now))
	}
	return events, rows.Err()
}
