package db

import (
	"fmt"
	"os"

	"restapi/config"
)

const INDEX_NAME = "books"

// SetupLibrary picks the storage backend from the STORAGE_BACKEND env var.
// Supported values: memory (the default), elastic, postgres.
func SetupLibrary() (LibraryManager, error) {
	switch backend := os.Getenv("STORAGE_BACKEND"); backend {
	case "", "memory":
		return CreateMemoryLibrary(), nil
	case "elastic":
		elasticClient, err := config.SetupElasticSearch()
		if err != nil {
			return nil, err
		}
		return CreateElasticLibrary(INDEX_NAME, elasticClient)
	case "postgres":
		database, err := config.SetupPostgres()
		if err != nil {
			return nil, err
		}
		return CreatePostgresLibrary(database)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
