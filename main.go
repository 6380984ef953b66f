package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/codewisedev/mongodb-pagination/apis"
	articlesAPI "github.com/codewisedev/mongodb-pagination/apis/articles"
	"github.com/codewisedev/mongodb-pagination/config"
	"github.com/codewisedev/mongodb-pagination/mongodb"
	"github.com/codewisedev/mongodb-pagination/objects"
)

func main() {

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var confPath string
	flag.StringVar(&confPath, "conf", "", "e.g: ./config.yaml")
	flag.Parse()

	cfg, err := config.Load(confPath)
	if err != nil {
		slog.Error("Load configuration failed", "error", err)
		return
	}

	conn, err := mongodb.InitConnection(cfg.MongoDB.URI, cfg.MongoDB.Database)
	if err != nil {
		slog.Error("Create MongoDB connection failed", "error", err)
		return
	}

	defer conn.Disconnect()

	newArticlesAPI, err := articlesAPI.NewArticlesAPI(conn)
	if err != nil {
		slog.Error("Create articles model failed", "error", err)
		return
	}

	g := gin.Default()
	apis.RegisterCrudAPI[objects.Article](newArticlesAPI, g.Group("api/articles"))

	if err := g.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		slog.Error("Run server failed", "error", err)
		return
	}
}
