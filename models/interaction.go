package models

import "time"

type ContactInteraction struct {
	ID                      string     `json:"id"`
	ContactID               string     `json:"contact_id"`
	Note                    string     `json:"note"`
	InteractionTimestamp    time.Time  `json:"interaction_timestamp"`
	Action                  string     `json:"action,omitempty"`
	CustomActionDescription string     `json:"custom_action_description,omitempty"`
	ActionTimestamp         *time.Time `json:"action_timestamp,omitempty"`
	CreatedByID             string     `json:"created_by_id"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
	DeletedAt               *time.Time `json:"deleted_at,omitempty"`
}

// InteractionWithContact pairs an interaction with its contact for
// dashboard-style responses
type InteractionWithContact struct {
	Interaction ContactInteraction `json:"interaction"`
	Contact     Contact            `json:"contact"`
}

type CreateInteractionRequest struct {
	Note                    string     `json:"note" validate:"required"`
	InteractionTimestamp    *time.Time `json:"interaction_timestamp"`
	Action                  string     `json:"action" validate:"omitempty,interactionaction"`
	CustomActionDescription string     `json:"custom_action_description" validate:"omitempty,max=255"`
	ActionTimestamp         *time.Time `json:"action_timestamp"`
}

type UpdateInteractionRequest struct {
	Note                    *string    `json:"note" validate:"omitempty,min=1"`
	InteractionTimestamp    *time.Time `json:"interaction_timestamp"`
	Action                  *string    `json:"action" validate:"omitempty,interactionaction"`
	CustomActionDescription *string    `json:"custom_action_description" validate:"omitempty,max=255"`
	ActionTimestamp         *time.Time `json:"action_timestamp"`
}
