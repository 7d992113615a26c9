package models

import "time"

type CalendarEvent struct {
	ID         ID        `json:"id"`
	Title      string    `json:"title"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	Color      string    `json:"color"`
	Type       string    `json:"type"`
	AssignedTo []User    `json:"assignedTo"`
}
