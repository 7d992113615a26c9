package models

import "time"

type Notification struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	RelatedType string    `json:"relatedType,omitempty"`
	RelatedID   ID        `json:"relatedId,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}
