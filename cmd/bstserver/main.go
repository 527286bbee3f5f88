package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlexisHarris18/Binary-Tree-Lab/internal/api"
	"github.com/AlexisHarris18/Binary-Tree-Lab/internal/store"
)

var (
	addr     string
	logLevel string
	seed     []int64
)

var rootCmd = &cobra.Command{
	Use:          "bstserver",
	Short:        "Serve a binary search tree over HTTP",
	Example:      `bstserver --addr :8080 --seed 5,3,8,1,4`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "invalid --log-level")
		}
		log := logrus.New()
		log.SetLevel(level)

		return run(log)
	},
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().Int64SliceVar(&seed, "seed", nil, "values inserted before serving")
}

func run(log *logrus.Logger) error {
	st := store.NewStore()
	for _, v := range seed {
		st.Insert(v)
	}
	if len(seed) > 0 {
		log.WithField("count", len(seed)).Info("seeded tree")
	}

	r := mux.NewRouter()
	api.NewServer(st, log).Routes(r)

	srv := &http.Server{Addr: addr, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return errors.Wrap(err, "failed to start server")
	case <-quit:
	}
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown")
	}

	log.Info("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
