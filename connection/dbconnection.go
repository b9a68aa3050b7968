package connection

import (
	"fmt"
	"os"

	"taskhub/store"

	"github.com/joho/godotenv"
)

// OpenDatabase loads the environment and opens the SQLite store, running
// migrations in the process.
func OpenDatabase() (*store.DB, error) {
	err := godotenv.Load()
	if err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "taskhub.db"
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	fmt.Println("Database connection successful")
	return db, nil
}
