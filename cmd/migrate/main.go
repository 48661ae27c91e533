// Command migrate creates the rating tables ahead of the first server start.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Polsaker/dongerdong/pkg/database"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional here, the environment may already be set
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set in environment")
	}

	db, err := database.Connect(dbURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate: ", err)
	}
	fmt.Println("Schema is up to date")

	for _, table := range []string{"player_stats", "match_records"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			log.Fatalf("Failed to verify %s: %v", table, err)
		}
		fmt.Printf("%s: %d rows\n", table, count)
	}
}
