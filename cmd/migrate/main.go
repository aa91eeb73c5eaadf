package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/yourusername/bhp-api/internal/config"
)

// Ручное управление миграциями: up, down, force (снять dirty-состояние), version
func main() {
	dsn := flag.String("dsn", "", "строка подключения (по умолчанию из конфига)")
	dir := flag.String("dir", "migrations", "каталог с миграциями")
	cmd := flag.String("cmd", "up", "команда: up | down | force | version")
	version := flag.Int("version", -1, "версия для force")
	flag.Parse()

	connStr := *dsn
	if connStr == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		connStr = cfg.Database.PostgresConnectionString()
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+*dir, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	switch *cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "force":
		if *version < 0 {
			log.Fatal("force requires -version")
		}
		fmt.Printf("Forcing migration version to %d to clean dirty state...\n", *version)
		err = m.Force(*version)
	case "version":
		v, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatal(verr)
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)
		return
	default:
		log.Fatalf("unknown command %q", *cmd)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Migration %s failed: %v", *cmd, err)
	}
	fmt.Printf("Migration %s done.\n", *cmd)
}
