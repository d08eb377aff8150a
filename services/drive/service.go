// File: services/drive/service.go
package drive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"detailify/models"

	gdrive "google.golang.org/api/drive/v3"
)

const folderMimeType = "application/vnd.google-apps.folder"

const defaultPageSize = 100

// List returns one page of the given folder (the configured root when
// folderID is empty), folders first, trashed files excluded.
func (s *DefaultDriveService) List(ctx context.Context, folderID, pageToken string) (*models.DriveListing, error) {
	if folderID == "" {
		folderID = s.RootFolderID
	}
	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)

	list, err := s.Files.List(ctx, query, pageToken, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list drive folder %s: %w", folderID, err)
	}

	listing := &models.DriveListing{
		Files:         make([]models.DriveFile, 0, len(list.Files)),
		NextPageToken: list.NextPageToken,
	}
	for _, f := range list.Files {
		listing.Files = append(listing.Files, toDriveFile(f))
	}
	return listing, nil
}

// Download streams the file content along with its metadata, so the
// handler can set name and content type on the response. The caller
// closes the reader.
func (s *DefaultDriveService) Download(ctx context.Context, fileID string) (io.ReadCloser, *models.DriveFile, error) {
	meta, err := s.Files.Get(ctx, fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("stat drive file %s: %w", fileID, err)
	}
	if meta.MimeType == folderMimeType {
		return nil, nil, fmt.Errorf("cannot download a folder")
	}

	body, err := s.Files.Download(ctx, fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("download drive file %s: %w", fileID, err)
	}
	file := toDriveFile(meta)
	return body, &file, nil
}

// Delete removes a file permanently.
func (s *DefaultDriveService) Delete(ctx context.Context, fileID string) error {
	if err := s.Files.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("delete drive file %s: %w", fileID, err)
	}
	return nil
}

// Move reparents a file under newParentID, detaching it from all current
// parents.
func (s *DefaultDriveService) Move(ctx context.Context, fileID, newParentID string) (*models.DriveFile, error) {
	if newParentID == "" {
		newParentID = s.RootFolderID
	}
	meta, err := s.Files.Get(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("stat drive file %s: %w", fileID, err)
	}

	removeParents := strings.Join(meta.Parents, ",")
	updated, err := s.Files.Update(ctx, fileID, &gdrive.File{}, newParentID, removeParents)
	if err != nil {
		return nil, fmt.Errorf("move drive file %s: %w", fileID, err)
	}
	file := toDriveFile(updated)
	return &file, nil
}

// Rename changes the display name of a file.
func (s *DefaultDriveService) Rename(ctx context.Context, fileID, name string) (*models.DriveFile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("new name must not be empty")
	}
	updated, err := s.Files.Update(ctx, fileID, &gdrive.File{Name: name}, "", "")
	if err != nil {
		return nil, fmt.Errorf("rename drive file %s: %w", fileID, err)
	}
	file := toDriveFile(updated)
	return &file, nil
}

func toDriveFile(f *gdrive.File) models.DriveFile {
	parent := ""
	if len(f.Parents) > 0 {
		parent = f.Parents[0]
	}
	return models.DriveFile{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Size:         f.Size,
		ModifiedTime: f.ModifiedTime,
		IsFolder:     f.MimeType == folderMimeType,
		Icon:         iconFor(f.MimeType),
		WebViewLink:  f.WebViewLink,
		Parent:       parent,
	}
}

// iconFor maps a MIME type onto the small icon set the dashboard renders.
func iconFor(mimeType string) string {
	switch {
	case mimeType == folderMimeType:
		return "folder"
	case mimeType == "application/pdf":
		return "pdf"
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	case strings.Contains(mimeType, "spreadsheet"):
		return "sheet"
	case strings.Contains(mimeType, "document") || strings.HasPrefix(mimeType, "text/"):
		return "doc"
	default:
		return "file"
	}
}
