package main

import (
	"authgate/internal/config"
	"authgate/internal/logger"
	"authgate/internal/routing"
	"authgate/pkg/credentials"
	"authgate/pkg/middleware"

	"github.com/gorilla/mux"
)

func main() {
	config.Load()

	logger := logger.Load()

	username, password, role := config.Credentials()
	creds := credentials.NewStaticProvider(username, password, role)

	r := mux.NewRouter()
	r.Use(middleware.Panic(logger))

	routing.InitBasicRoutes(r, creds, logger)
	routing.StartServer(r, config.Addr(":8080"))
}
