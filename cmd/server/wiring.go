package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"essentialfeed/backend/internal/config"
	"essentialfeed/backend/internal/db"
	"essentialfeed/backend/internal/model"
	"essentialfeed/backend/internal/network"
	"essentialfeed/backend/internal/repository"
	"essentialfeed/backend/internal/service"
)

const remoteTimeout = 30 * time.Second

type stores struct {
	Feed   repository.FeedStore
	Images repository.ImageDataStore
	db     *sql.DB
}

func (s stores) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

func openStores(cfg config.Config) (stores, error) {
	switch cfg.Store {
	case config.StoreFile:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return stores{}, fmt.Errorf("create data dir: %w", err)
		}
		fs := osfs.New(cfg.DataDir)
		return stores{
			Feed:   repository.NewFileFeedStore(fs, "feed.json"),
			Images: repository.NewFileImageDataStore(fs, "images"),
		}, nil
	default:
		conn, err := db.Open(cfg.DBPath)
		if err != nil {
			return stores{}, fmt.Errorf("open database: %w", err)
		}
		return stores{
			Feed:   repository.NewSQLiteFeedStore(conn),
			Images: repository.NewSQLiteImageDataStore(conn),
			db:     conn,
		}, nil
	}
}

func newHTTPClient(cfg config.Config) network.HTTPClient {
	factory := network.NewClientFactory(cfg.ProxyURL)

	var client network.HTTPClient
	switch cfg.HTTPClient {
	case config.ClientBrowser:
		client = network.NewBrowserClient(factory, remoteTimeout)
	default:
		client = network.NewStdClient(factory, remoteTimeout)
	}

	if cfg.RemoteQPS > 0 {
		client = network.NewRateLimitedClient(client, cfg.RemoteQPS)
	}
	return client
}

func feedMapper(format string) service.Mapper[[]model.FeedImage] {
	if format == config.FormatRSS {
		return service.MapFeedRSS
	}
	return service.MapFeedItems
}
