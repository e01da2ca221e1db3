package storage

import (
	"context"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/mvbakke/wcag-reviews/config"
)

// Cloudinary re-hosts website preview screenshots so listings do not
// depend on the thumbnail service staying up. A nil *Cloudinary means
// re-hosting is disabled and callers keep the original URL.
type Cloudinary struct {
	CLD *cloudinary.Cloudinary
}

func NewCloudinary(cfg *config.Config) *Cloudinary {
	if cfg.CloudinaryCloudName == "" {
		return nil
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		log.Printf("failed to initialize Cloudinary: %v", err)
		return nil
	}

	return &Cloudinary{CLD: cld}
}

func (c *Cloudinary) UploadImage(ctx context.Context, filePath string, folder string) (string, error) {
	resp, err := c.CLD.Upload.Upload(ctx, filePath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
