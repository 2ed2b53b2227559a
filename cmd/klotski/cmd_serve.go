package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/klotski/internal/adapters/http"
	"svw.info/klotski/internal/generator"
	"svw.info/klotski/internal/infrastructure/storage"
	"svw.info/klotski/internal/ports"
	"svw.info/klotski/internal/search"
	"svw.info/klotski/internal/usecase"
)

var (
	serveAddr  string
	serveStore string
	serveData  string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver as a JSON API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&serveStore, "store", "fs", "puzzle store backend (fs or bolt)")
	commandServe.Flags().StringVar(&serveData, "data", "data", "path to the puzzle store (directory for fs, file for bolt)")
	mainCommand.AddCommand(commandServe)
}

func openStorage() (ports.Storage, func() error, error) {
	switch serveStore {
	case "fs":
		return storage.NewFS(serveData), func() error { return nil }, nil
	case "bolt":
		st, err := storage.OpenBolt(serveData)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return st, st.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", serveStore)
}

func serve() error {
	st, closeStore, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	uc := usecase.NewService(map[string]ports.Solver{
		"iddfs":   search.NewIDDFS(),
		"idastar": search.NewIDAStar(),
	}, generator.New(), st)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return httpadapter.RequestLogger(logrus.StandardLogger(), next)
	})
	httpadapter.New(uc).Register(router)

	server := &http.Server{
		Addr:              serveAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logrus.WithFields(logrus.Fields{"addr": serveAddr, "store": serveStore}).Info("listening")
	return server.ListenAndServe()
}
