// File: services/media/interface.go
package media

import (
	"context"
	"fmt"

	"detailify/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

const jobPhotoFolder = "detailify/jobs"

// MediaService stores job photos used by marketing content.
type MediaService interface {
	UploadJobPhoto(ctx context.Context, localFilePath string) (publicID, url string, err error)
	Delete(ctx context.Context, publicID string) error
	DownloadURL(ctx context.Context, publicID string) (string, error)
}

// CloudinaryMediaService implements MediaService on Cloudinary.
type CloudinaryMediaService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryMediaService() (*CloudinaryMediaService, error) {
	cloudName := config.AppConfig.CloudinaryCloudName
	apiKey := config.AppConfig.CloudinaryAPIKey
	apiSecret := config.AppConfig.CloudinaryAPISecret
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryMediaService{
		cld:    cld,
		folder: jobPhotoFolder,
	}, nil
}
