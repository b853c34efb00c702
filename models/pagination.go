package models

// Page is the standard paginated response envelope
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

func NewPage[T any](items []T, total, page, size int) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	pages := 0
	if size > 0 {
		pages = (total + size - 1) / size
	}
	return Page[T]{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}

type Stats struct {
	NumberOfContacts     int                      `json:"number_of_contacts"`
	NumberOfLists        int                      `json:"number_of_lists"`
	NumberOfPublicLists  int                      `json:"number_of_public_lists"`
	NumberOfPrivateLists int                      `json:"number_of_private_lists"`
	LastContacts         []Contact                `json:"last_contacts"`
	UpcomingInteractions []InteractionWithContact `json:"upcoming_interactions"`
}
