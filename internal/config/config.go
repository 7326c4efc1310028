package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Wordbase WordbaseConfig `mapstructure:"wordbase"`
	Storage  StorageConfig  `mapstructure:"storage" validate:"required"`
	Stats    StatsConfig    `mapstructure:"stats" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// WordbaseConfig selects the word database.
type WordbaseConfig struct {
	// Path to a database file. Empty selects the database bundled with the
	// binary.
	Path string `mapstructure:"path" validate:"omitempty,file"`
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects where statistics are persisted.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory sqlite postgres"`
	// DSN is a file path for sqlite and a connection URL for postgres.
	DSN string `mapstructure:"dsn" validate:"required_unless=Driver memory"`
	Key string `mapstructure:"key" validate:"required"`
}

// Fault policies for storage errors.
const (
	FaultPolicyFail    = "fail"
	FaultPolicyDegrade = "degrade"
)

// StatsConfig tunes the statistics engine.
type StatsConfig struct {
	FaultPolicy string `mapstructure:"fault_policy" validate:"required,oneof=fail degrade"`
}
