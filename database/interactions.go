package database

import (
	"database/sql"
	"time"

	"contact-hub/models"
)

const interactionColumns = `id, contact_id, note, interaction_timestamp, action,
	custom_action_description, action_timestamp, created_by_id,
	created_at, updated_at, deleted_at`

func scanInteraction(row scanner) (*models.ContactInteraction, error) {
	var i models.ContactInteraction
	var actionTS, deletedAt sql.NullTime
	err := row.Scan(
		&i.ID, &i.ContactID, &i.Note, &i.InteractionTimestamp, &i.Action,
		&i.CustomActionDescription, &actionTS, &i.CreatedByID,
		&i.CreatedAt, &i.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	i.ActionTimestamp = nullTime(actionTS)
	i.DeletedAt = nullTime(deletedAt)
	return &i, nil
}

func (r *Repository) CreateInteraction(i *models.ContactInteraction) error {
	_, err := r.db.Exec(`
		INSERT INTO contact_interactions (id, contact_id, note, interaction_timestamp,
			action, custom_action_description, action_timestamp, created_by_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		i.ID, i.ContactID, i.Note, i.InteractionTimestamp,
		i.Action, i.CustomActionDescription, toNullTime(i.ActionTimestamp), i.CreatedByID,
		i.CreatedAt, i.UpdatedAt,
	)
	return err
}

func (r *Repository) GetInteraction(id string) (*models.ContactInteraction, error) {
	row := r.db.QueryRow(`
		SELECT `+interactionColumns+` FROM contact_interactions
		WHERE id = ? AND deleted_at IS NULL
	`, id)

	i, err := scanInteraction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *Repository) ListInteractions(limit, offset int) ([]models.ContactInteraction, int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_interactions WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT `+interactionColumns+` FROM contact_interactions
		WHERE deleted_at IS NULL
		ORDER BY interaction_timestamp DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	interactions, err := collectInteractions(rows)
	return interactions, total, err
}

func (r *Repository) ListInteractionsByContact(contactID string, limit, offset int) ([]models.ContactInteraction, int, error) {
	var total int
	if err := r.db.QueryRow(`
		SELECT COUNT(*) FROM contact_interactions
		WHERE contact_id = ? AND deleted_at IS NULL
	`, contactID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT `+interactionColumns+` FROM contact_interactions
		WHERE contact_id = ? AND deleted_at IS NULL
		ORDER BY interaction_timestamp DESC
		LIMIT ? OFFSET ?
	`, contactID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	interactions, err := collectInteractions(rows)
	return interactions, total, err
}

func (r *Repository) GetLastInteraction(contactID string) (*models.ContactInteraction, error) {
	row := r.db.QueryRow(`
		SELECT `+interactionColumns+` FROM contact_interactions
		WHERE contact_id = ? AND deleted_at IS NULL
		ORDER BY interaction_timestamp DESC
		LIMIT 1
	`, contactID)

	i, err := scanInteraction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return i, nil
}

// ListPendingActions returns interactions whose follow-up is still open:
// action set and action_timestamp unset or in the future
func (r *Repository) ListPendingActions(limit, offset int) ([]models.ContactInteraction, int, error) {
	now := time.Now().UTC()

	var total int
	if err := r.db.QueryRow(`
		SELECT COUNT(*) FROM contact_interactions
		WHERE deleted_at IS NULL AND action != ''
		  AND (action_timestamp IS NULL OR action_timestamp >= ?)
	`, now).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT `+interactionColumns+` FROM contact_interactions
		WHERE deleted_at IS NULL AND action != ''
		  AND (action_timestamp IS NULL OR action_timestamp >= ?)
		ORDER BY action_timestamp ASC
		LIMIT ? OFFSET ?
	`, now, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	interactions, err := collectInteractions(rows)
	return interactions, total, err
}

// ListUpcomingActions returns interactions with an action due inside the
// window, each joined with its contact
func (r *Repository) ListUpcomingActions(window time.Duration) ([]models.InteractionWithContact, error) {
	now := time.Now().UTC()
	until := now.Add(window)

	rows, err := r.db.Query(`
		SELECT `+prefixColumns("i", interactionColumns)+`, `+prefixColumns("c", contactColumns)+`
		FROM contact_interactions i
		JOIN contacts c ON i.contact_id = c.id
		WHERE i.deleted_at IS NULL AND c.deleted_at IS NULL
		  AND i.action != ''
		  AND i.action_timestamp IS NOT NULL
		  AND i.action_timestamp >= ? AND i.action_timestamp <= ?
		ORDER BY i.action_timestamp ASC
	`, now, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.InteractionWithContact, 0)
	for rows.Next() {
		var i models.ContactInteraction
		var c models.Contact
		var actionTS, iDeleted, cDeleted sql.NullTime
		err := rows.Scan(
			&i.ID, &i.ContactID, &i.Note, &i.InteractionTimestamp, &i.Action,
			&i.CustomActionDescription, &actionTS, &i.CreatedByID,
			&i.CreatedAt, &i.UpdatedAt, &iDeleted,
			&c.ID, &c.FirstName, &c.MiddleName, &c.LastName, &c.Company, &c.Job,
			&c.ContactType, &c.PhoneType, &c.Phone, &c.Email, &c.Website,
			&c.AddressLine1, &c.AddressLine2, &c.City, &c.State, &c.ZipCode,
			&c.Country, &c.Notes, &c.IsActive, &c.CreatedByID,
			&c.CreatedAt, &c.UpdatedAt, &cDeleted,
		)
		if err != nil {
			return nil, err
		}
		i.ActionTimestamp = nullTime(actionTS)
		results = append(results, models.InteractionWithContact{Interaction: i, Contact: c})
	}
	return results, rows.Err()
}

func (r *Repository) UpdateInteraction(i *models.ContactInteraction) error {
	i.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE contact_interactions SET
			note = ?, interaction_timestamp = ?, action = ?,
			custom_action_description = ?, action_timestamp = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`,
		i.Note, i.InteractionTimestamp, i.Action,
		i.CustomActionDescription, toNullTime(i.ActionTimestamp), i.UpdatedAt,
		i.ID,
	)
	return err
}

func (r *Repository) SoftDeleteInteraction(id string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE contact_interactions SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func collectInteractions(rows *sql.Rows) ([]models.ContactInteraction, error) {
	interactions := make([]models.ContactInteraction, 0)
	for rows.Next() {
		i, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, *i)
	}
	return interactions, rows.Err()
}
