package models

import "time"

type ContactList struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsPublic    bool       `json:"is_public"`
	CreatedByID string     `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type ContactListMember struct {
	ID            string     `json:"id"`
	ContactListID string     `json:"contact_list_id"`
	ContactID     string     `json:"contact_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

type WaitingList struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedByID string     `json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type WaitingListMember struct {
	ID            string     `json:"id"`
	WaitingListID string     `json:"waiting_list_id"`
	ContactID     string     `json:"contact_id"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

type CreateContactListRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1024"`
	IsPublic    bool   `json:"is_public"`
}

type UpdateContactListRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
	IsPublic    *bool   `json:"is_public"`
}

type CreateWaitingListRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1024"`
}

type UpdateWaitingListRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1024"`
}

type AddMembersRequest struct {
	ContactIDs []string `json:"contact_ids" validate:"required,min=1,dive,uuid4"`
}

type AddWaitingMembersRequest struct {
	ContactIDs []string `json:"contact_ids" validate:"required,min=1,dive,uuid4"`
	Status     string   `json:"status" validate:"omitempty,memberstatus"`
}

type UpdateMemberStatusRequest struct {
	Status string `json:"status" validate:"required,memberstatus"`
}

type BulkMemberStatusRequest struct {
	ContactIDs []string `json:"contact_ids" validate:"required,min=1,dive,uuid4"`
	Status     string   `json:"status" validate:"required,memberstatus"`
}
