package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/ysemenovs/deskhub/internal/client/models"
	"github.com/ysemenovs/deskhub/internal/filex"
)

// downloadsDir is created under the working directory on first download.
const downloadsDir = "downloads"

func (a *App) listFolders(ctx context.Context) {
	folders, err := a.client.ListFolders(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	if len(folders) == 0 {
		fmt.Fprintln(a.out, "no folders")
		return
	}
	for _, f := range folders {
		fmt.Fprintf(a.out, "[%s] %s (%d files)\n", f.ID, f.Name, f.DocumentCount)
	}
}

func (a *App) listDocuments(ctx context.Context, args []string) {
	var folderID *models.ID
	if len(args) == 1 {
		id := models.ID(args[0])
		folderID = &id
	}

	docs, err := a.client.ListDocuments(ctx, folderID)
	if err != nil {
		a.printErr(err)
		return
	}
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "no documents")
		return
	}
	for _, d := range docs {
		folder := "-"
		if d.FolderName != "" {
			folder = d.FolderName
		}
		fmt.Fprintf(a.out, "[%s] %s (%s, %d bytes, folder: %s)\n", d.ID, d.Name, d.Type, d.Size, folder)
	}
}

func (a *App) uploadDocument(ctx context.Context, args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(a.out, "usage: upload <path> [folder-id]")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		a.printErr(err)
		return
	}

	var folderID *models.ID
	if len(args) == 2 {
		id := models.ID(args[1])
		folderID = &id
	}

	doc, err := a.client.UploadDocument(ctx, folderID, filepath.Base(args[0]), data)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "uploaded %s as %s\n", doc.Name, doc.ID)
}

func (a *App) downloadDocument(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: download <id>")
		return
	}

	data, contentType, err := a.client.DownloadDocument(ctx, models.ID(args[0]))
	if err != nil {
		a.printErr(err)
		return
	}

	dir, err := filex.EnsureDir(downloadsDir)
	if err != nil {
		a.printErr(err)
		return
	}

	name := "document-" + args[0] + extensionFor(contentType)
	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "saved %s (%d bytes)\n", path, len(data))
}

// extensionFor picks a file extension for a download's content type;
// unknown types get none.
func extensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
