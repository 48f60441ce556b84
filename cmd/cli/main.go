package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/synckeeper/internal/buildinfo"
	"github.com/dmitrijs2005/synckeeper/internal/client/cli"
	"github.com/dmitrijs2005/synckeeper/internal/client/client"
	"github.com/dmitrijs2005/synckeeper/internal/client/config"
	"github.com/dmitrijs2005/synckeeper/internal/client/models"
	"github.com/dmitrijs2005/synckeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/synckeeper/internal/client/services"
	"github.com/dmitrijs2005/synckeeper/internal/client/store"
	"github.com/dmitrijs2005/synckeeper/internal/filex"
	"github.com/dmitrijs2005/synckeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, syncLog := newLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	var db *sql.DB
	repo := session.Repository(session.NewMemoryRepository(0))
	if cfg.SessionStore == config.SessionStoreSQLite {
		var err error
		db, err = client.InitDatabase(ctx, cfg.DBPath)
		if err != nil {
			log.Fatalf("error initializing database: %v", err)
		}
		repo = session.NewMetadataRepository(db)
	}

	st := store.New()
	logger.Debug(ctx, "store ready", "collections", st.Kinds())
	opts := []client.Option{client.WithLogger(logger)}

	authenticator := client.NewHTTPAuthenticator(cfg.APIBaseURL, int(cfg.TokenLifetime.Minutes()), opts...)
	auth := services.NewAuthService(authenticator, repo, st, logger)
	if err := auth.Restore(ctx); err != nil {
		logger.Warn(ctx, "could not restore session", "error", err)
	}

	posts := services.NewCollectionService[models.Post](st.Posts(),
		client.NewHTTPGateway[models.Post](cfg.APIBaseURL, string(store.KindPosts), auth, opts...), auth, logger)
	products := services.NewCollectionService[models.Product](st.Products(),
		client.NewHTTPGateway[models.Product](cfg.APIBaseURL, string(store.KindProducts), auth, opts...), auth, logger)

	app := cli.NewApp(ctx, cfg, auth, posts, products, logger)

	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			cancel()
			app.Close()
			if db != nil {
				_ = db.Close()
			}
			_ = syncLog()
		})
	}

	initSignalHandler(func() {
		shutdown()
		os.Exit(130)
	})

	app.Run(ctx)
	shutdown()
}

// newLogger logs to a rotated file through zap when a log file is set,
// and to stderr through slog otherwise.
func newLogger(cfg *config.Config) (logging.Logger, func() error) {
	if cfg.LogFile != "" {
		if _, err := filex.EnsureParentDir(cfg.LogFile); err != nil {
			log.Fatalf("error preparing log directory: %v", err)
		}
		l := logging.NewFileLogger(cfg.LogFile, cfg.LogLevel)
		return l, l.Sync
	}
	return logging.NewTextLogger(os.Stderr, cfg.LogLevel), func() error { return nil }
}

func initSignalHandler(onSignal func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		onSignal()
	}()
}
