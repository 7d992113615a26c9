package models

import "time"

type DocumentFolder struct {
	ID            ID     `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	Icon          string `json:"icon"`
	DocumentCount int    `json:"documentCount"`
}

// DocumentFile is a stored document. FolderID is nil for files living
// outside any folder; FolderName and FolderColor are denormalized from the
// owning folder for display.
type DocumentFile struct {
	ID          ID        `json:"id"`
	FolderID    *ID       `json:"folderId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	DateAdded   time.Time `json:"dateAdded"`
	Size        int64     `json:"size"`
	FolderName  string    `json:"folderName,omitempty"`
	FolderColor string    `json:"folderColor,omitempty"`
}
