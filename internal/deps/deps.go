package deps

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvbakke/wcag-reviews/config"
	"github.com/mvbakke/wcag-reviews/internal/db"
	"github.com/mvbakke/wcag-reviews/internal/http/screenshot"
	"github.com/mvbakke/wcag-reviews/util/storage"
	"github.com/mvbakke/wcag-reviews/util/websockets"
)

type Dependencies struct {
	DB         *db.DB
	Cloudinary *storage.Cloudinary
	Screenshot *screenshot.Client
	Feed       *websockets.ActivityFeed
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	deps := Dependencies{
		DB:         database,
		Cloudinary: storage.NewCloudinary(cfg),
		Screenshot: screenshot.NewClient(cfg.ScreenshotBaseURL),
		Feed:       websockets.NewActivityFeed(),
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
