package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "ember_sculpt/docs"
	"ember_sculpt/internal/handlers"
	"ember_sculpt/internal/logger"
	"ember_sculpt/internal/repository"
	"ember_sculpt/internal/repository/db"
	"ember_sculpt/internal/server"
	"ember_sculpt/internal/service"
	"ember_sculpt/internal/solver"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title                       Ember Sculpt API
// @version                     1.0
// @description                 Candle burn-state solver: edit the burn window, play it back, stream snapshots.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	if err := loadConfig(os.Args[1:]); err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.format"))

	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Config{
		Clock:      service.SystemClock(),
		Log:        log,
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	})
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := services.Candle.Ensure(ctx); err != nil {
		log.Fatalw("failed to initialize candle state", "err", err)
	}

	go services.Simulator.Run(ctx, viper.GetDuration("playback.frame_interval"))

	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	waitForShutdown(cancel, srv, log)
}

// loadConfig reads configs/config.yml (or --config), then EMBER_* env vars.
func loadConfig(args []string) error {
	flags := pflag.NewFlagSet("ember", pflag.ContinueOnError)
	flags.String("config", "", "path to config file (default configs/config.yml)")
	flags.String("port", "", "HTTP listen port")
	if err := flags.Parse(args); err != nil {
		return err
	}

	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", "ember.db")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("log.format", logger.FormatConsole)
	viper.SetDefault("auth.token_ttl", time.Hour)
	viper.SetDefault("playback.frame_interval", solver.FrameStep)

	viper.SetEnvPrefix("ember")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if f := flags.Lookup("port"); f.Changed {
		if err := viper.BindPFlag("port", f); err != nil {
			return err
		}
	}

	if path, _ := flags.GetString("config"); path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath("configs")
		viper.SetConfigName("config")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	if viper.GetString("auth.signing_key") == "" {
		return errors.New("auth.signing_key is required (set EMBER_AUTH_SIGNING_KEY)")
	}
	return nil
}

func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening sqlite", "path", dbPath)
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		err := srv.Run(port, handler.InitRoutes(), server.Options{})
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then stops the frame loop
// and drains in-flight requests.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
