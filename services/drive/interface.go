// File: services/drive/interface.go
package drive

import (
	"context"
	"io"

	"detailify/models"

	gdrive "google.golang.org/api/drive/v3"
)

// DriveService is the file manager over the business's Drive folder.
type DriveService interface {
	List(ctx context.Context, folderID, pageToken string) (*models.DriveListing, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, *models.DriveFile, error)
	Delete(ctx context.Context, fileID string) error
	Move(ctx context.Context, fileID, newParentID string) (*models.DriveFile, error)
	Rename(ctx context.Context, fileID, name string) (*models.DriveFile, error)
}

// Files is the narrow seam over the Drive v3 client, so the service can
// be exercised in tests without the real API.
type Files interface {
	List(ctx context.Context, query, pageToken string, pageSize int64) (*gdrive.FileList, error)
	Get(ctx context.Context, fileID string) (*gdrive.File, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
	Delete(ctx context.Context, fileID string) error
	Update(ctx context.Context, fileID string, meta *gdrive.File, addParents, removeParents string) (*gdrive.File, error)
}

// DefaultDriveService is the production DriveService rooted at the
// configured media folder.
type DefaultDriveService struct {
	Files        Files
	RootFolderID string
}

func NewDefaultDriveService(files Files, rootFolderID string) *DefaultDriveService {
	return &DefaultDriveService{
		Files:        files,
		RootFolderID: rootFolderID,
	}
}
