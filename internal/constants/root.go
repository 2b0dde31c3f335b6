package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "heatcal"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/heatcal/heatcal.db"
	Version            = "v0.1.0"

	// DateFormat is the canonical date key format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// GridCells is the number of cells in a month grid (six full weeks)
	GridCells = 42

	// MinTrimmedCells is the smallest grid the trailing-week trim pass produces
	MinTrimmedCells = 35

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "heatcal-"
	BackupFileSuffix = ".db"

	// Mock data defaults
	DefaultSeedDays = 120

	// Environment variables
	EnvDBConnection = "HEATCAL_DB_CONNECTION"

	// Session States
	StateCalendar SessionState = iota
	StateDetail
	StateAddActivity
	StateHelp
)
