package uploader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"turf-booking/pkg/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Uploader stores turf photos on an external image CDN and hands back
// the public URL kept on the Turf record.
type Uploader interface {
	UploadTurfPhoto(ctx context.Context, file io.Reader, turfID string) (string, error)
	DeletePhoto(ctx context.Context, photoURL string) error
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    *zap.Logger
}

func NewCloudinary(config utils.UploadConfig, log *zap.Logger) (Uploader, error) {
	cld, err := cloudinary.NewFromURL(config.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &cloudinaryUploader{
		cld:    cld,
		folder: config.Folder,
		log:    log.With(zap.String("component", "uploader")),
	}, nil
}

func (u *cloudinaryUploader) UploadTurfPhoto(ctx context.Context, file io.Reader, turfID string) (string, error) {
	// Public ID carries the turf ID plus a nanosecond suffix so repeated
	// uploads for one turf never collide.
	publicID := fmt.Sprintf("turf_%s_%d", turfID, time.Now().UnixNano())

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    u.folder,
		PublicID:  publicID,
		Overwrite: api.Bool(false),
	})
	if err != nil {
		u.log.Error("Failed to upload turf photo",
			zap.Error(err),
			zap.String("turf_id", turfID),
		)
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	return resp.SecureURL, nil
}

func (u *cloudinaryUploader) DeletePhoto(ctx context.Context, photoURL string) error {
	publicID, err := extractPublicID(photoURL)
	if err != nil {
		return fmt.Errorf("extract public ID: %w", err)
	}

	_, err = u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		u.log.Error("Failed to delete photo",
			zap.Error(err),
			zap.String("public_id", publicID),
		)
		return fmt.Errorf("cloudinary destroy: %w", err)
	}

	return nil
}

// extractPublicID pulls the asset public ID back out of a delivery URL.
func extractPublicID(photoURL string) (string, error) {
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	pathParts := strings.Split(parsedURL.Path, "/")
	for i, part := range pathParts {
		if part == "upload" && i+1 < len(pathParts) {
			id := strings.Join(pathParts[i+1:], "/")
			// Strip the file extension, Cloudinary public IDs do not carry it
			if dot := strings.LastIndex(id, "."); dot > 0 {
				id = id[:dot]
			}
			return id, nil
		}
	}

	return "", errors.New("no public ID in URL")
}
