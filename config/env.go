package config

import "github.com/joho/godotenv"

// LoadEnv reads an optional .env file into the process environment. A missing
// file is not an error; deployments set the variables directly.
func LoadEnv() {
	_ = godotenv.Load()
}
