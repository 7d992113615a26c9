package api

import (
	"time"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

// Write-operation inputs. Fields are enumerated explicitly and validated
// client-side before the request goes out; JSON tags follow the server's
// snake_case convention because these structs are what actually hits the
// wire. Pointer fields on update inputs mean "leave unchanged".

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateTaskInput struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description,omitempty"`
	Date        time.Time   `json:"date" validate:"required"`
	Priority    string      `json:"priority" validate:"required,oneof=low medium high"`
	Status      string      `json:"status" validate:"required,oneof=pending in_progress completed"`
	AssignedTo  []models.ID `json:"assigned_to,omitempty"`
}

type UpdateTaskInput struct {
	Title       *string     `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string     `json:"description,omitempty"`
	Date        *time.Time  `json:"date,omitempty"`
	Priority    *string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	AssignedTo  []models.ID `json:"assigned_to,omitempty"`
}

type CreateContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Role    string `json:"role,omitempty"`
	Address string `json:"address,omitempty"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type UpdateContactInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Role    *string `json:"role,omitempty"`
	Address *string `json:"address,omitempty"`
	Company *string `json:"company,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

type CreateEventInput struct {
	Title      string      `json:"title" validate:"required"`
	StartTime  time.Time   `json:"start_time" validate:"required"`
	EndTime    time.Time   `json:"end_time" validate:"required,gtfield=StartTime"`
	Color      string      `json:"color,omitempty"`
	Type       string      `json:"type,omitempty"`
	AssignedTo []models.ID `json:"assigned_to,omitempty"`
}

type UpdateEventInput struct {
	Title      *string     `json:"title,omitempty" validate:"omitempty,min=1"`
	StartTime  *time.Time  `json:"start_time,omitempty"`
	EndTime    *time.Time  `json:"end_time,omitempty"`
	Color      *string     `json:"color,omitempty"`
	Type       *string     `json:"type,omitempty"`
	AssignedTo []models.ID `json:"assigned_to,omitempty"`
}

type CreateFolderInput struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type UpdateFolderInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

type CreateNoteInput struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content,omitempty"`
	Color   string `json:"color,omitempty"`
}

type UpdateNoteInput struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Content *string `json:"content,omitempty"`
	Color   *string `json:"color,omitempty"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type AskInput struct {
	Prompt  string `json:"prompt" validate:"required"`
	Context string `json:"context,omitempty"`
}

type UpdateAppConfigInput struct {
	AppName  *string `json:"app_name,omitempty" validate:"omitempty,min=1"`
	Language *string `json:"language,omitempty" validate:"omitempty,bcp47_language_tag"`
	Theme    *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark system"`
}
