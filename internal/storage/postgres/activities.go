package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/models"
)

// day is a DATE column; cast to text so it scans as YYYY-MM-DD
const activityColumns = "id, to_char(day, 'YYYY-MM-DD'), description, created_at, deleted_at"

// ErrActivityNotFound is returned when no activity matches the given ID
var ErrActivityNotFound = errors.New("activity not found")

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (models.ActivityEntry, error) {
	var e models.ActivityEntry
	var deletedAt sql.NullTime

	if err := row.Scan(&e.ID, &e.Day, &e.Description, &e.CreatedAt, &deletedAt); err != nil {
		return models.ActivityEntry{}, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		e.DeletedAt = &t
	}
	return e, nil
}

func (s *Store) queryActivities(query string, args ...any) ([]models.ActivityEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityEntry
	for rows.Next() {
		e, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AddActivity inserts the entry, replacing any existing row with the same ID.
func (s *Store) AddActivity(entry models.ActivityEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	var deletedAt sql.NullTime
	if entry.DeletedAt != nil {
		deletedAt = sql.NullTime{Time: *entry.DeletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO activities (id, day, description, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			description = EXCLUDED.description,
			deleted_at = EXCLUDED.deleted_at`,
		entry.ID, entry.Day, entry.Description, entry.CreatedAt, deletedAt)
	return err
}

func (s *Store) GetActivity(id string) (models.ActivityEntry, error) {
	row := s.db.QueryRow("SELECT "+activityColumns+" FROM activities WHERE id = $1", id)
	e, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ActivityEntry{}, ErrActivityNotFound
	}
	return e, err
}

func (s *Store) GetActivitiesForDay(day string) ([]models.ActivityEntry, error) {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return nil, fmt.Errorf("invalid day %q: %w", day, err)
	}
	return s.queryActivities(`
		SELECT `+activityColumns+`
		FROM activities WHERE day = $1 AND deleted_at IS NULL
		ORDER BY created_at`, day)
}

func (s *Store) GetActivitiesInRange(startDay, endDay string, includeDeleted bool) ([]models.ActivityEntry, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities WHERE day >= $1 AND day <= $2`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	query += " ORDER BY day, created_at"
	return s.queryActivities(query, startDay, endDay)
}

func (s *Store) DeleteActivity(id string) error {
	result, err := s.db.Exec(`
		UPDATE activities SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().UTC(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("activity not found or already deleted")
	}

	return nil
}

func (s *Store) RestoreActivity(id string) error {
	result, err := s.db.Exec(`
		UPDATE activities SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("activity not found or not deleted")
	}

	return nil
}
