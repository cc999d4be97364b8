package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/MamunHossain005/blog-website-server/internal/blogservice"
	"github.com/MamunHossain005/blog-website-server/internal/commentservice"
	"github.com/MamunHossain005/blog-website-server/internal/common"
	"github.com/MamunHossain005/blog-website-server/internal/tokenservice"
	"github.com/MamunHossain005/blog-website-server/internal/wishlistservice"
)

const version = "1.0.0"

type application struct {
	config          *Config
	logger          *slog.Logger
	tokenService    *tokenservice.TokenService
	blogService     *blogservice.BlogService
	wishlistService *wishlistservice.WishlistService
	commentService  *commentservice.CommentService
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connect to the database
	URI := fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", cfg.Mongo.User, cfg.Mongo.Password, cfg.Mongo.Host)
	client, err := common.NewDB(URI, 50*time.Second)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(client)

	db := client.Database(common.Database)

	// The text index backs the pagination endpoint's title search
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := common.EnsureIndexes(ctx, db); err != nil {
		logger.Error("failed to create indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	// Initialize the services
	app := &application{
		config:          cfg,
		logger:          logger,
		tokenService:    tokenservice.NewTokenService(cfg.JWT.AccessSecret, cfg.production()),
		blogService:     blogservice.NewBlogService(blogservice.NewBlogModel(db), cache),
		wishlistService: wishlistservice.NewWishlistService(wishlistservice.NewWishlistModel(db)),
		commentService:  commentservice.NewCommentService(commentservice.NewCommentModel(db)),
	}

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
