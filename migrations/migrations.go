package main

import (
	"database/sql"
	"fmt"
	"khe/config"
	"khe/repository"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// Applies the numbered SQL files in migrations/ that gorm's AutoMigrate
// cannot express (partial indexes, check constraints). Run from the
// repository root after the service created the tables once.
func main() {
	connStr := config.DatabaseDSN(config.Env()) + " search_path=" + repository.Schema
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	version, err := getMigrationVersion(db)
	if err != nil {
		log.Fatal(err)
	}

	for {
		version++
		err = migrateUp(db, version)
		if err != nil {
			break
		}
	}
}

func migrateUp(db *sql.DB, version int) error {
	file, err := os.ReadFile(fmt.Sprintf("migrations/%d.sql", version))
	if err != nil {
		fmt.Println("Cannot migrate further up")
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(string(file)); err != nil {
		fmt.Printf("error executing migration: %v\n", err)
		tx.Rollback()
		return err
	}
	if _, err = tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		fmt.Printf("error updating migration version: %v\n", err)
		tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	fmt.Printf("Migrated to version %d\n", version)
	return nil
}

func getMigrationVersion(db *sql.DB) (version int, err error) {
	db.Exec("CREATE SCHEMA IF NOT EXISTS " + repository.Schema)
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		err := generateMigrationTable(db)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	if err != nil {
		return err
	}
	return nil
}
