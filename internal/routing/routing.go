package routing

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"authgate/pkg/auth"
	"authgate/pkg/credentials"
	"authgate/pkg/handlers"
	"authgate/pkg/middleware"
	"authgate/pkg/session"
)

const basicRealm = "restricted"

func InitBasicRoutes(r *mux.Router, creds credentials.Provider, logger *slog.Logger) {
	siteHandler := handlers.NewSiteHandler(logger)

	r.HandleFunc("/", siteHandler.Home).Methods("GET")
	r.HandleFunc("/public", siteHandler.Public).Methods("GET")

	gate := middleware.BasicAuth(creds, basicRealm)
	r.Handle("/secure", gate(http.HandlerFunc(siteHandler.Secure))).Methods("GET")
}

func InitSessionRoutes(r *mux.Router, mongoDB *mongo.Database, creds credentials.Provider, logger *slog.Logger) session.Repository {
	sessionRepo := session.NewMongoSessionRepo(mongoDB)

	authService := auth.NewService(creds, sessionRepo)
	authHandler := handlers.NewAuthHandler(authService, logger)

	r.HandleFunc("/login", authHandler.Login).Methods("POST").Name("login")
	r.HandleFunc("/logout", authHandler.Logout).Methods("POST").Name("logout")

	gate := middleware.CheckSession(sessionRepo, logger)
	r.Handle("/profile", gate(http.HandlerFunc(authHandler.Profile))).Methods("GET")

	return sessionRepo
}

func StartServer(r *mux.Router, addr string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
