package api

import (
	"time"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// Wire DTOs mirror the server's snake_case field naming. Each entity has
// exactly one normalizer turning its wire shape into the client model; the
// resource methods all go through these instead of renaming fields inline.

type userWire struct {
	ID        models.ID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) normalizeUser(w userWire) models.User {
	return models.User{
		ID:        w.ID,
		Email:     w.Email,
		Name:      w.Name,
		Role:      w.Role,
		AvatarURL: c.absoluteURL(w.Avatar),
		CreatedAt: w.CreatedAt,
	}
}

func (c *Client) normalizeUsers(ws []userWire) []models.User {
	users := make([]models.User, 0, len(ws))
	for _, w := range ws {
		users = append(users, c.normalizeUser(w))
	}
	return users
}

type taskWire struct {
	ID          models.ID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssignedTo  []userWire `json:"assigned_to"`
}

func (c *Client) normalizeTask(w taskWire) models.Task {
	return models.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Date:        w.Date,
		Priority:    models.Priority(w.Priority),
		Status:      models.Status(w.Status),
		AssignedTo:  c.normalizeUsers(w.AssignedTo),
	}
}

type contactWire struct {
	ID      models.ID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Role    string    `json:"role"`
	Address string    `json:"address"`
	Company string    `json:"company"`
	Notes   string    `json:"notes"`
	Avatar  string    `json:"avatar"`
}

func (c *Client) normalizeContact(w contactWire) models.Contact {
	return models.Contact{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Phone:     w.Phone,
		Role:      w.Role,
		Address:   w.Address,
		Company:   w.Company,
		Notes:     w.Notes,
		AvatarURL: c.absoluteURL(w.Avatar),
	}
}

type eventWire struct {
	ID         models.ID  `json:"id"`
	Title      string     `json:"title"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    time.Time  `json:"end_time"`
	Color      string     `json:"color"`
	Type       string     `json:"type"`
	AssignedTo []userWire `json:"assigned_to"`
}

func (c *Client) normalizeEvent(w eventWire) models.CalendarEvent {
	return models.CalendarEvent{
		ID:         w.ID,
		Title:      w.Title,
		StartsAt:   w.StartTime,
		EndsAt:     w.EndTime,
		Color:      w.Color,
		Type:       w.Type,
		AssignedTo: c.normalizeUsers(w.AssignedTo),
	}
}

type folderWire struct {
	ID            models.ID `json:"id"`
	Name          string    `json:"name"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	DocumentCount int       `json:"document_count"`
}

func normalizeFolder(w folderWire) models.DocumentFolder {
	return models.DocumentFolder{
		ID:            w.ID,
		Name:          w.Name,
		Color:         w.Color,
		Icon:          w.Icon,
		DocumentCount: w.DocumentCount,
	}
}

type documentWire struct {
	ID          models.ID  `json:"id"`
	FolderID    *models.ID `json:"folder_id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	DateAdded   time.Time  `json:"date_added"`
	Size        int64      `json:"size"`
	FolderName  string     `json:"folder_name"`
	FolderColor string     `json:"folder_color"`
}

func normalizeDocument(w documentWire) models.DocumentFile {
	return models.DocumentFile{
		ID:          w.ID,
		FolderID:    w.FolderID,
		Name:        w.Name,
		Type:        w.Type,
		DateAdded:   w.DateAdded,
		Size:        w.Size,
		FolderName:  w.FolderName,
		FolderColor: w.FolderColor,
	}
}

type noteWire struct {
	ID        models.ID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func normalizeNote(w noteWire) models.Note {
	return models.Note{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Content,
		Color:     w.Color,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

type notificationWire struct {
	ID          models.ID `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	RelatedType string    `json:"related_type"`
	RelatedID   models.ID `json:"related_id"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func normalizeNotification(w notificationWire) models.Notification {
	return models.Notification{
		ID:          w.ID,
		Title:       w.Title,
		Message:     w.Message,
		Type:        w.Type,
		RelatedType: w.RelatedType,
		RelatedID:   w.RelatedID,
		Read:        w.Read,
		CreatedAt:   w.CreatedAt,
	}
}
