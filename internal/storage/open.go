package storage

import (
	"errors"
	"os"

	"github.com/julianstephens/heatcal/internal/constants"
	"github.com/julianstephens/heatcal/internal/keyring"
	"github.com/julianstephens/heatcal/internal/logger"
	"github.com/julianstephens/heatcal/internal/storage/postgres"
	"github.com/julianstephens/heatcal/internal/storage/sqlite"
	"github.com/julianstephens/heatcal/internal/utils"
)

// Source names where the database location came from
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceKeyring Source = "keyring"
)

// Resolve picks the database location. An explicit --config wins; otherwise
// HEATCAL_DB_CONNECTION, then the OS keyring, then the default SQLite path.
func Resolve(config string) (string, Source) {
	if config != "" && config != constants.DefaultConfigPath {
		return config, SourceFlag
	}
	if env := os.Getenv(constants.EnvDBConnection); env != "" {
		return env, SourceEnv
	}
	connStr, err := keyring.GetConnectionString()
	if err == nil {
		return connStr, SourceKeyring
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		logger.Debug("Keyring lookup failed", "error", err)
	}
	return constants.DefaultConfigPath, SourceFlag
}

// New builds the provider for config without opening it. PostgreSQL strings
// passed on the command line must not carry a password; the environment and
// keyring are trusted to hold one.
func New(config string, source Source) (Provider, error) {
	if utils.IsPostgresConnString(config) {
		if source == SourceFlag {
			if _, err := postgres.ValidateConnString(config); err != nil {
				return nil, err
			}
		}
		return postgres.New(config), nil
	}

	path, err := utils.ExpandHome(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}
