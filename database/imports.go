package database

import (
	"database/sql"
	"encoding/json"

	"contact-hub/models"
)

func (r *Repository) CreateImport(imp *models.Import) error {
	settings, err := json.Marshal(imp.Settings)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO imports (id, settings, processed_contacts, failed_contacts, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, imp.ID, string(settings), imp.ProcessedContacts, imp.FailedContacts, imp.UserID, imp.CreatedAt, imp.UpdatedAt)
	return err
}

func (r *Repository) GetImport(id string) (*models.Import, error) {
	var imp models.Import
	var settings string
	err := r.db.QueryRow(`
		SELECT id, settings, processed_contacts, failed_contacts, user_id, created_at, updated_at
		FROM imports WHERE id = ?
	`, id).Scan(&imp.ID, &settings, &imp.ProcessedContacts, &imp.FailedContacts, &imp.UserID, &imp.CreatedAt, &imp.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(settings), &imp.Settings); err != nil {
		return nil, err
	}
	return &imp, nil
}
