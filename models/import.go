package models

import "time"

// Import records a batch contact import, its settings and outcome counts
type Import struct {
	ID                string            `json:"id"`
	Settings          map[string]string `json:"settings"`
	ProcessedContacts int               `json:"processed_contacts"`
	FailedContacts    int               `json:"failed_contacts"`
	UserID            string            `json:"user_id"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
