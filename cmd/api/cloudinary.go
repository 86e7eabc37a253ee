package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var errImagesDisabled = errors.New("image hosting is not configured")

var versionSegment = regexp.MustCompile(`^v\d+$`)

func (app *application) deletePhotoFromCloudinary(photoURL string) error {
	if app.cld == nil {
		return errImagesDisabled
	}

	publicID, err := extractPublicIDFromURL(photoURL)
	if err != nil {
		return fmt.Errorf("failed to extract public ID: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err = app.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo from Cloudinary: %w", err)
	}

	return nil
}

// extractPublicIDFromURL turns
// https://res.cloudinary.com/demo/image/upload/v1700000000/venues/venue_3_1.jpg
// into venues/venue_3_1.
func extractPublicIDFromURL(photoURL string) (string, error) {
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	pathParts := strings.Split(parsedURL.Path, "/")
	for i, part := range pathParts {
		if part != "upload" || i+1 >= len(pathParts) {
			continue
		}

		rest := pathParts[i+1:]
		if len(rest) > 1 && versionSegment.MatchString(rest[0]) {
			rest = rest[1:]
		}

		id := strings.Join(rest, "/")
		id = strings.TrimSuffix(id, path.Ext(id))
		if id == "" {
			break
		}
		return id, nil
	}

	return "", errors.New("failed to extract public ID from URL")
}

// uploadVenuePhoto stores file under venues/ with a name derived from the
// venue id.
func (app *application) uploadVenuePhoto(ctx context.Context, file io.Reader, venueID int64) (string, error) {
	if app.cld == nil {
		return "", errImagesDisabled
	}

	resp, err := app.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    "venues",
		PublicID:  fmt.Sprintf("venue_%d_image_%d", venueID, time.Now().UnixNano()),
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
