package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func (c *Client) ListFolders(ctx context.Context) ([]models.DocumentFolder, error) {
	var ws []folderWire
	if err := c.do(ctx, http.MethodGet, "/folders", nil, &ws); err != nil {
		return nil, err
	}
	folders := make([]models.DocumentFolder, 0, len(ws))
	for _, w := range ws {
		folders = append(folders, normalizeFolder(w))
	}
	return folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, in CreateFolderInput) (models.DocumentFolder, error) {
	if err := c.validateInput(in); err != nil {
		return models.DocumentFolder{}, err
	}
	var w folderWire
	if err := c.do(ctx, http.MethodPost, "/folders", in, &w); err != nil {
		return models.DocumentFolder{}, err
	}
	return normalizeFolder(w), nil
}

func (c *Client) UpdateFolder(ctx context.Context, id models.ID, in UpdateFolderInput) (models.DocumentFolder, error) {
	if err := c.validateInput(in); err != nil {
		return models.DocumentFolder{}, err
	}
	var w folderWire
	if err := c.do(ctx, http.MethodPut, "/folders/"+id.String(), in, &w); err != nil {
		return models.DocumentFolder{}, err
	}
	return normalizeFolder(w), nil
}

func (c *Client) DeleteFolder(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/folders/"+id.String(), nil, nil)
}

// ListDocuments returns documents, optionally limited to one folder.
// A nil folderID lists everything.
func (c *Client) ListDocuments(ctx context.Context, folderID *models.ID) ([]models.DocumentFile, error) {
	path := "/documents"
	if folderID != nil {
		path += "?" + url.Values{"folder_id": {folderID.String()}}.Encode()
	}

	var ws []documentWire
	if err := c.do(ctx, http.MethodGet, path, nil, &ws); err != nil {
		return nil, err
	}
	docs := make([]models.DocumentFile, 0, len(ws))
	for _, w := range ws {
		docs = append(docs, normalizeDocument(w))
	}
	return docs, nil
}

// UploadDocument stores a new document, optionally inside a folder.
func (c *Client) UploadDocument(ctx context.Context, folderID *models.ID, filename string, data []byte) (models.DocumentFile, error) {
	fields := map[string]string{}
	if folderID != nil {
		fields["folder_id"] = folderID.String()
	}

	var w documentWire
	if err := c.upload(ctx, "/documents", "file", filename, data, fields, &w); err != nil {
		return models.DocumentFile{}, err
	}
	return normalizeDocument(w), nil
}

// DownloadDocument fetches a document's raw bytes and content type.
func (c *Client) DownloadDocument(ctx context.Context, id models.ID) ([]byte, string, error) {
	return c.download(ctx, "/documents/"+id.String()+"/download")
}

func (c *Client) DeleteDocument(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/documents/"+id.String(), nil, nil)
}
