package main

import (
	"context"
	"time"

	"authgate/internal/config"
	"authgate/internal/logger"
	"authgate/internal/mongo"
	"authgate/internal/routing"
	"authgate/pkg/credentials"
	"authgate/pkg/middleware"
	"authgate/pkg/session"

	"github.com/gorilla/mux"
)

const reapInterval = time.Minute

func main() {
	config.Load("MONGO_URI", "MONGO_DB_NAME")

	mongoDB := mongo.LoadDB()

	logger := logger.Load()

	username, password, role := config.Credentials()
	creds := credentials.NewStaticProvider(username, password, role)

	r := mux.NewRouter()
	r.Use(middleware.Panic(logger))

	sessionRepo := routing.InitSessionRoutes(r, mongoDB, creds, logger)
	session.StartReaper(context.Background(), sessionRepo, reapInterval, logger)

	routing.StartServer(r, config.Addr(":8081"))
}
