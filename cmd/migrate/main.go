package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/saeid-a/CoachAIBack/pkg/logger"
)

type migrateConfig struct {
	DBUrl     string `envconfig:"DB_URL" required:"true"`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal().Err(err).Msg("DB_URL environment variable is required")
	}
	logger.Init(logger.Config{Pretty: cfg.LogPretty})

	migrationsPath, err := findMigrationsDir()
	if err != nil {
		log.Fatal().Err(err).Msg("migrations directory not found")
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.DBUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open migrations")
	}
	defer m.Close()

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migration up failed")
		}
		log.Info().Msg("migration up successful")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal().Err(err).Msg("migration down failed")
		}
		log.Info().Msg("migration down successful")
	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatal().Err(err).Msg("failed to read migration version")
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("migration version")
	default:
		log.Fatal().Str("command", cmd).Msg("unknown command, expected up, down or version")
	}
}

// findMigrationsDir looks for a migrations directory above the working
// directory, then next to the executable.
func findMigrationsDir() (string, error) {
	var candidates []string

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	current := cwd
	for i := 0; i < 6; i++ {
		candidates = append(candidates, filepath.Join(current, "migrations"))
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		candidates = append(candidates,
			filepath.Join(exeDir, "migrations"),
			filepath.Join(exeDir, "..", "migrations"),
		)
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
	}
	return "", os.ErrNotExist
}
