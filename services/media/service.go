// File: services/media/service.go
package media

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadJobPhoto uploads a photo into the job folder and returns the
// permanent identifier plus its serving URL.
func (s *CloudinaryMediaService) UploadJobPhoto(ctx context.Context, localFilePath string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload job photo: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("no public ID returned for job photo")
	}
	return result.PublicID, result.SecureURL, nil
}

// Delete removes a photo by its public ID.
func (s *CloudinaryMediaService) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete job photo: %w", err)
	}
	return nil
}

// DownloadURL returns the public serving URL for a stored photo.
func (s *CloudinaryMediaService) DownloadURL(ctx context.Context, publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve job photo: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build job photo URL: %w", err)
	}
	return url, nil
}
