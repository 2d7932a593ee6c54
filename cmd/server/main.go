package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"blackjack-server/internal/config"
	"blackjack-server/internal/mux"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/store"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the config)")

func main() {
	flag.Parse()
	setupLogger()

	st := openStore()
	game, err := blackjack.NewGame(logrus.StandardLogger(), st, blackjack.Options{
		StartingBankroll: config.Instance().StartingBankroll,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game engine")
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listenAddr := config.Instance().Addr
	if *addr != "" {
		listenAddr = *addr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, game))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func openStore() store.Store {
	path := config.Instance().StoragePath
	if path == "" {
		logrus.Warn("no storage path configured, game state will not survive a restart")
		return store.NewMemoryStore()
	}

	st, err := store.NewSQLiteStore(path)
	if err != nil {
		logrus.WithError(err).Fatal("could not open storage")
	}

	logrus.WithField("path", path).Info("storage opened")
	return st
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
