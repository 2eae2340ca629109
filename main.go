package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"chirp/internal/config"
	"chirp/internal/handlers"
	"chirp/internal/middleware"
	"chirp/internal/service"
	"chirp/internal/store/sqlstore"
	"chirp/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg.LogJSON)

	// Initialize Database
	st, err := sqlstore.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("open store")
	}
	defer st.Close()

	// Initialize message feed hub
	hub := ws.NewHub(logger.With().Str("component", "ws").Logger())
	go hub.Run()

	// Domain services
	var hasher service.PasswordHasher = service.Plain{}
	if cfg.HashPasswords {
		hasher = service.Bcrypt{}
	}
	accountService := service.NewAccountService(st, hasher)
	messageService := service.NewMessageService(st)

	// Initialize Handlers
	accountHandler := &handlers.AccountHandler{Service: accountService}
	messageHandler := &handlers.MessageHandler{Service: messageService, Hub: hub}

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	// API Endpoints
	r.HandleFunc("/register", accountHandler.Register).Methods("POST")
	r.HandleFunc("/login", accountHandler.Login).Methods("POST")
	r.HandleFunc("/messages", messageHandler.CreateMessage).Methods("POST")
	r.HandleFunc("/messages", messageHandler.GetAllMessages).Methods("GET")
	r.HandleFunc("/messages/{id}", messageHandler.GetMessageByID).Methods("GET")
	r.HandleFunc("/messages/{id}", messageHandler.DeleteMessage).Methods("DELETE")
	r.HandleFunc("/messages/{id}", messageHandler.UpdateMessage).Methods("PATCH")
	r.HandleFunc("/accounts/{id}/messages", messageHandler.GetMessagesByAccount).Methods("GET")
	r.HandleFunc("/accounts/{id}", accountHandler.GetAccount).Methods("GET")

	// Live message feed
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	logger.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func newLogger(jsonOut bool) zerolog.Logger {
	if jsonOut {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}
