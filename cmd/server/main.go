package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"essentialfeed/backend/internal/config"
	"essentialfeed/backend/internal/dispatch"
	"essentialfeed/backend/internal/handler"
	transport "essentialfeed/backend/internal/http"
	"essentialfeed/backend/internal/logger"
	"essentialfeed/backend/internal/scheduler"
	"essentialfeed/backend/internal/service"
	"essentialfeed/backend/internal/snowflake"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := snowflake.Init(cfg.NodeID); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	stores, err := openStores(cfg)
	if err != nil {
		log.Fatalf("open stores: %v", err)
	}
	defer stores.Close()

	mainQueue := dispatch.NewQueue("main")

	composer := service.NewComposer(service.ComposerConfig{
		BaseURL:    cfg.RemoteBaseURL,
		Client:     newHTTPClient(cfg),
		FeedMapper: feedMapper(cfg.RemoteFormat),
		FeedStore:  stores.Feed,
		ImageStore: stores.Images,
		Deliver:    dispatch.ImmediateWhenOnQueue(mainQueue),
	})
	warmer := service.NewImageWarmer(composer)

	feedHandler := handler.NewFeedHandler(composer)
	imageHandler := handler.NewImageHandler(composer, warmer)
	cacheHandler := handler.NewCacheHandler(composer.LocalFeed())

	router := transport.NewRouter(feedHandler, imageHandler, cacheHandler)

	sched := scheduler.New(composer.LocalFeed(), cfg.ValidateInterval)
	sched.Start()

	go func() {
		logger.Info("server listening", "module", "main", "addr", cfg.Addr, "store", cfg.Store, "format", cfg.RemoteFormat, "client", cfg.HTTPClient)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("start server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down", "module", "main")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		logger.Warn("server shutdown", "module", "main", "error", err)
	}

	imageHandler.Wait()
	composer.WaitForCacheWrites()
	sched.Stop()
	mainQueue.Close()
}
