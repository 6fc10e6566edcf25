package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/council-vote/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
	Admins       []models.Admin
	SeedData     bool
	MaxAttempts  int
}

// DefaultDatabasePath is used for the file-backed stores when no URL is set.
const DefaultDatabasePath = "data/council.db"

// LoadEnv reads a .env file into the process environment. A missing file is
// not an error. Variables already set win over the file.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var admins, seed string

	fs := flag.NewFlagSet("council-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or bolt)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&admins, "admins", "", "Admin accounts as id:code:name[:role],... (prefer env)")

	fs.StringVar(&seed, "seed", "", "Seed default candidates and voters into an empty store")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", 0, "Attempts per vote transaction before giving up")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = models.DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case models.DatabaseSQLite, models.DatabasePostgres, models.DatabaseBolt:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == models.DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultDatabasePath
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if admins == "" {
		admins = os.Getenv("ADMIN_ACCOUNTS")
	}
	if admins == "" {
		return Config{}, errors.New("ADMIN_ACCOUNTS required")
	}
	parsed, err := ParseAdmins(admins)
	if err != nil {
		return Config{}, err
	}
	cfg.Admins = parsed

	if seed == "" {
		seed = os.Getenv("SEED_DATA")
	}
	if seed != "" {
		b, err := strconv.ParseBool(seed)
		if err != nil {
			return Config{}, errors.New("invalid SEED_DATA value")
		}
		cfg.SeedData = b
	}

	if cfg.MaxAttempts == 0 {
		if s := os.Getenv("TX_MAX_ATTEMPTS"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid TX_MAX_ATTEMPTS env variable")
			}
			cfg.MaxAttempts = n
		}
	}
	if cfg.MaxAttempts < 0 {
		return Config{}, errors.New("max attempts must not be negative")
	}

	return cfg, nil
}

// ParseAdmins parses a comma separated list of id:code:name[:role] entries.
func ParseAdmins(s string) ([]models.Admin, error) {
	var admins []models.Admin
	seen := make(map[string]bool)

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.Split(entry, ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, fmt.Errorf("invalid admin account %q: want id:code:name[:role]", entry)
		}
		a := models.Admin{
			ID:   strings.TrimSpace(parts[0]),
			Code: strings.TrimSpace(parts[1]),
			Name: strings.TrimSpace(parts[2]),
			Role: "Administrator",
		}
		if len(parts) == 4 && strings.TrimSpace(parts[3]) != "" {
			a.Role = strings.TrimSpace(parts[3])
		}
		if a.ID == "" || a.Code == "" || a.Name == "" {
			return nil, fmt.Errorf("invalid admin account %q: empty field", entry)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate admin id %q", a.ID)
		}
		seen[a.ID] = true
		admins = append(admins, a)
	}

	if len(admins) == 0 {
		return nil, errors.New("at least one admin account required")
	}
	return admins, nil
}
