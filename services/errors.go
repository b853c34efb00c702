package services

import "errors"

// Common service-level errors
var (
	// Contact errors
	ErrContactNotFound = errors.New("contact not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrDuplicatePhone  = errors.New("phone number already registered")
	ErrEmptyBatch      = errors.New("no contacts provided")
	ErrImportNotFound  = errors.New("import not found")

	// List errors
	ErrContactListNotFound = errors.New("contact list not found")
	ErrWaitingListNotFound = errors.New("waiting list not found")
	ErrMemberNotFound      = errors.New("member not found")

	// Interaction errors
	ErrInteractionNotFound  = errors.New("interaction not found")
	ErrCustomActionRequired = errors.New("custom action requires a description")

	// Status errors
	ErrInvalidMemberStatus = errors.New("invalid member status")
)
