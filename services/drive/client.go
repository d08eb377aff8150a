// File: services/drive/client.go
package drive

import (
	"context"
	"fmt"
	"io"

	"detailify/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const listFields = "nextPageToken, files(id, name, mimeType, size, modifiedTime, parents, webViewLink)"

// NewDriveClient builds an authorized Drive v3 client from the stored
// OAuth refresh token. Access tokens are minted and renewed by the token
// source; only the refresh token is configuration.
func NewDriveClient(ctx context.Context) (*gdrive.Service, error) {
	conf := &oauth2.Config{
		ClientID:     config.AppConfig.GoogleOAuthClientID,
		ClientSecret: config.AppConfig.GoogleOAuthClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gdrive.DriveScope},
	}
	token := &oauth2.Token{RefreshToken: config.AppConfig.GoogleOAuthRefreshToken}

	svc, err := gdrive.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}
	return svc, nil
}

// NewGoogleFiles wraps a Drive v3 service in the Files seam.
func NewGoogleFiles(svc *gdrive.Service) Files {
	return &googleFiles{svc: svc}
}

type googleFiles struct {
	svc *gdrive.Service
}

func (g *googleFiles) List(ctx context.Context, query, pageToken string, pageSize int64) (*gdrive.FileList, error) {
	call := g.svc.Files.List().
		Q(query).
		PageSize(pageSize).
		Fields(listFields).
		OrderBy("folder,name")
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	return call.Context(ctx).Do()
}

func (g *googleFiles) Get(ctx context.Context, fileID string) (*gdrive.File, error) {
	return g.svc.Files.Get(fileID).
		Fields("id, name, mimeType, size, modifiedTime, parents, webViewLink").
		Context(ctx).Do()
}

func (g *googleFiles) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := g.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (g *googleFiles) Delete(ctx context.Context, fileID string) error {
	return g.svc.Files.Delete(fileID).Context(ctx).Do()
}

func (g *googleFiles) Update(ctx context.Context, fileID string, meta *gdrive.File, addParents, removeParents string) (*gdrive.File, error) {
	call := g.svc.Files.Update(fileID, meta)
	if addParents != "" {
		call = call.AddParents(addParents)
	}
	if removeParents != "" {
		call = call.RemoveParents(removeParents)
	}
	return call.Fields("id, name, mimeType, size, modifiedTime, parents, webViewLink").Context(ctx).Do()
}
