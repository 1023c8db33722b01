package config

import (
	"os"

	"github.com/olivere/elastic/v7"
)

// SetupElasticSearch dials the cluster named by ELASTIC_URL.
func SetupElasticSearch() (*elastic.Client, error) {
	return elastic.NewClient(elastic.SetURL(os.Getenv("ELASTIC_URL")))
}
