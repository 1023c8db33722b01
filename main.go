package main

import (
	"log"

	"restapi/cache"
	"restapi/config"
	"restapi/db"
	"restapi/service"
)

func main() {
	config.LoadEnv()
	config.SetupRedis()

	library, err := db.SetupLibrary()
	if err != nil {
		log.Fatal("Failed setting up storage: ", err)
	}

	handlers := service.NewHandlers(library, cache.CreateRedisCache(service.MAX_NUMBER_CACHED))
	routes := service.SetupRoutes(handlers)

	if err := routes.Run(); err != nil {
		log.Fatal("Failed starting server: ", err)
	}
}
