package storage

import "github.com/julianstephens/heatcal/internal/models"

// Provider is an external activity source backed by a database. The grid
// builder never calls it; callers load activity before rendering.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Activities
	AddActivity(models.ActivityEntry) error
	GetActivity(id string) (models.ActivityEntry, error)
	GetActivitiesForDay(day string) ([]models.ActivityEntry, error)
	// GetActivitiesInRange returns entries with startDay <= day <= endDay,
	// ordered by day then creation time.
	GetActivitiesInRange(startDay, endDay string, includeDeleted bool) ([]models.ActivityEntry, error)
	DeleteActivity(id string) error
	RestoreActivity(id string) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by providers with a versioned schema.
type Migrator interface {
	// Migrate applies pending migrations and returns how many ran.
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
	Ping() error
}
