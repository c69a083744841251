// Command migration applies the schema under db/migrations to the
// configured Postgres database.
package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/lapolla/quiniela/internal/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "migration: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dir, err := migrationsDir()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), databaseURL(cfg))
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			fmt.Fprintf(os.Stderr, "migration: close source: %v\n", srcErr)
		}
		if dbErr != nil {
			fmt.Fprintf(os.Stderr, "migration: close database: %v\n", dbErr)
		}
	}()

	switch strings.ToLower(args[0]) {
	case "up":
		if err := m.Up(); !applied(err) {
			return err
		}
		fmt.Printf("schema up to date (source %s)\n", dir)
		return nil
	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps <= 0 {
				return fmt.Errorf("down: step count must be a positive integer, got %q", args[1])
			}
		}
		if err := m.Steps(-steps); !applied(err) {
			return err
		}
		fmt.Printf("rolled back %d migration(s)\n", steps)
		return nil
	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied yet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Printf("version %d (dirty=%t)\n", v, dirty)
		return nil
	case "force":
		v, err := versionArg(args)
		if err != nil {
			return fmt.Errorf("force: %w", err)
		}
		if err := m.Force(int(v)); err != nil {
			return fmt.Errorf("force %d: %w", v, err)
		}
		fmt.Printf("forced version to %d\n", v)
		return nil
	case "goto":
		v, err := versionArg(args)
		if err != nil {
			return fmt.Errorf("goto: %w", err)
		}
		if err := m.Migrate(uint(v)); !applied(err) {
			return err
		}
		fmt.Printf("migrated to version %d\n", v)
		return nil
	default:
		return errUsage
	}
}

// applied reports whether a migrate call succeeded, treating ErrNoChange
// as success.
func applied(err error) bool {
	return err == nil || errors.Is(err, migrate.ErrNoChange)
}

func versionArg(args []string) (uint64, error) {
	if len(args) < 2 {
		return 0, errors.New("missing version argument")
	}
	v, err := strconv.ParseUint(strings.TrimSpace(args[1]), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q", args[1])
	}
	return v, nil
}

func migrationsDir() (string, error) {
	for _, candidate := range []string{os.Getenv("MIGRATIONS_DIR"), "db/migrations", "/app/db/migrations"} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", errors.New("no migrations directory found; set MIGRATIONS_DIR or run from the repository root")
}

// databaseURL applies the same DSN tweaks the API server uses so both
// binaries talk to Postgres identically.
func databaseURL(cfg config.Config) string {
	if !cfg.DBDisablePreparedBinary {
		return cfg.DBURL
	}
	parsed, err := url.Parse(cfg.DBURL)
	if err != nil {
		return cfg.DBURL
	}
	q := parsed.Query()
	if q.Get("disable_prepared_binary_result") == "" {
		q.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = q.Encode()
	}
	return parsed.String()
}

func usage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, `usage: %[1]s <command> [args]

commands:
  up              apply all pending migrations
  down [n]        roll back n migrations (default 1)
  version         print the current schema version
  force <v>       mark version v as applied without running it
  goto <v>        migrate up or down to version v
`, name)
}
