package database

import "contact-hub/models"

func (r *Repository) CountContacts() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE deleted_at IS NULL`).Scan(&count)
	return count, err
}

func (r *Repository) CountContactLists() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_lists WHERE deleted_at IS NULL`).Scan(&count)
	return count, err
}

func (r *Repository) CountPublicContactLists() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_lists WHERE is_public = 1 AND deleted_at IS NULL`).Scan(&count)
	return count, err
}

func (r *Repository) GetLastContacts(limit int) ([]models.Contact, error) {
	rows, err := r.db.Query(`
		SELECT `+contactColumns+` FROM contacts
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectContacts(rows)
}
