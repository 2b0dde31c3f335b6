package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/heatcal/internal/models"
)

const activityColumns = "id, day, description, created_at, deleted_at"

// timestampLayout keeps a fixed-width fraction so stored timestamps sort
// lexically in time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrActivityNotFound is returned when no activity matches the given ID
var ErrActivityNotFound = errors.New("activity not found")

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (models.ActivityEntry, error) {
	var e models.ActivityEntry
	var createdAt string
	var deletedAt sql.NullString

	if err := row.Scan(&e.ID, &e.Day, &e.Description, &createdAt, &deletedAt); err != nil {
		return models.ActivityEntry{}, err
	}

	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.ActivityEntry{}, fmt.Errorf("failed to parse created_at for activity %s: %w", e.ID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, deletedAt.String)
		if err != nil {
			return models.ActivityEntry{}, fmt.Errorf("failed to parse deleted_at for activity %s: %w", e.ID, err)
		}
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

	var deletedAt sql.NullString
	if entry.DeletedAt != nil {
		deletedAt = sql.NullString{String: entry.DeletedAt.UTC().Format(timestampLayout), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO activities (id, day, description, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			day = excluded.day,
			description = excluded.description,
			deleted_at = excluded.deleted_at`,
		entry.ID, entry.Day, entry.Description,
		entry.CreatedAt.UTC().Format(timestampLayout), deletedAt)
	return err
}

func (s *Store) GetActivity(id string) (models.ActivityEntry, error) {
	row := s.db.QueryRow("SELECT "+activityColumns+" FROM activities WHERE id = ?", id)
	e, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ActivityEntry{}, ErrActivityNotFound
	}
	return e, err
}

func (s *Store) GetActivitiesForDay(day string) ([]models.ActivityEntry, error) {
	return s.queryActivities(`
		SELECT `+activityColumns+`
		FROM activities WHERE day = ? AND deleted_at IS NULL
		ORDER BY created_at`, day)
}

func (s *Store) GetActivitiesInRange(startDay, endDay string, includeDeleted bool) ([]models.ActivityEntry, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities WHERE day >= ? AND day <= ?`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	query += " ORDER BY day, created_at"
	return s.queryActivities(query, startDay, endDay)
}

func (s *Store) DeleteActivity(id string) error {
	result, err := s.db.Exec(`
		UPDATE activities SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC().Format(timestampLayout), id)
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
		UPDATE activities SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`,
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
