package database

import (
	"database/sql"
	"time"

	"contact-hub/models"
)

const contactListColumns = `id, name, description, is_public, created_by_id,
	created_at, updated_at, deleted_at`

var contactListFilterColumns = map[string]bool{
	"name": true, "description": true, "is_public": true,
	"created_by_id": true, "deleted_at": true,
}

func scanContactList(row scanner) (*models.ContactList, error) {
	var l models.ContactList
	var deletedAt sql.NullTime
	err := row.Scan(
		&l.ID, &l.Name, &l.Description, &l.IsPublic, &l.CreatedByID,
		&l.CreatedAt, &l.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	l.DeletedAt = nullTime(deletedAt)
	return &l, nil
}

func (r *Repository) CreateContactList(l *models.ContactList) error {
	_, err := r.db.Exec(`
		INSERT INTO contact_lists (id, name, description, is_public, created_by_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, l.ID, l.Name, l.Description, l.IsPublic, l.CreatedByID, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *Repository) GetContactList(id string) (*models.ContactList, error) {
	row := r.db.QueryRow(`
		SELECT `+contactListColumns+` FROM contact_lists
		WHERE id = ? AND deleted_at IS NULL
	`, id)

	l, err := scanContactList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *Repository) ListContactLists(publicOnly bool, limit, offset int) ([]models.ContactList, int, error) {
	where := "deleted_at IS NULL"
	if publicOnly {
		where += " AND is_public = 1"
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM contact_lists WHERE ` + where).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT `+contactListColumns+` FROM contact_lists
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	lists := make([]models.ContactList, 0)
	for rows.Next() {
		l, err := scanContactList(rows)
		if err != nil {
			return nil, 0, err
		}
		lists = append(lists, *l)
	}
	return lists, total, rows.Err()
}

func (r *Repository) SearchContactLists(filters FilterSet) ([]models.ContactList, error) {
	clause, args, err := buildFilterClause(contactListFilterColumns, filters)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT `+contactListColumns+` FROM contact_lists
		WHERE deleted_at IS NULL`+clause+`
		ORDER BY created_at DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := make([]models.ContactList, 0)
	for rows.Next() {
		l, err := scanContactList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

func (r *Repository) UpdateContactList(l *models.ContactList) error {
	l.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE contact_lists SET name = ?, description = ?, is_public = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, l.Name, l.Description, l.IsPublic, l.UpdatedAt, l.ID)
	return err
}

func (r *Repository) SoftDeleteContactList(id string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE contact_lists SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ==================== MEMBERS ====================

func (r *Repository) GetContactListMember(listID, contactID string) (*models.ContactListMember, error) {
	var m models.ContactListMember
	var deletedAt sql.NullTime
	err := r.db.QueryRow(`
		SELECT id, contact_list_id, contact_id, created_at, updated_at, deleted_at
		FROM contact_list_members
		WHERE contact_list_id = ? AND contact_id = ? AND deleted_at IS NULL
	`, listID, contactID).Scan(
		&m.ID, &m.ContactListID, &m.ContactID, &m.CreatedAt, &m.UpdatedAt, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m.DeletedAt = nullTime(deletedAt)
	return &m, nil
}

func (r *Repository) CreateContactListMember(m *models.ContactListMember) error {
	_, err := r.db.Exec(`
		INSERT INTO contact_list_members (id, contact_list_id, contact_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, m.ID, m.ContactListID, m.ContactID, m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *Repository) RemoveContactListMember(listID, contactID string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE contact_list_members SET deleted_at = ?, updated_at = ?
		WHERE contact_list_id = ? AND contact_id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), listID, contactID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repository) GetContactListMembers(listID string) ([]models.Contact, error) {
	rows, err := r.db.Query(`
		SELECT `+prefixColumns("c", contactColumns)+`
		FROM contacts c
		JOIN contact_list_members m ON c.id = m.contact_id
		WHERE m.contact_list_id = ? AND m.deleted_at IS NULL AND c.deleted_at IS NULL
		ORDER BY m.created_at ASC
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectContacts(rows)
}

func (r *Repository) CountContactListMembers(listID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM contact_list_members
		WHERE contact_list_id = ? AND deleted_at IS NULL
	`, listID).Scan(&count)
	return count, err
}

func (r *Repository) ClearContactListMembers(listID string) (int, error) {
	res, err := r.db.Exec(`
		UPDATE contact_list_members SET deleted_at = ?, updated_at = ?
		WHERE contact_list_id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), listID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *Repository) GetContactListsForContact(contactID string) ([]models.ContactList, error) {
	rows, err := r.db.Query(`
		SELECT `+prefixColumns("l", contactListColumns)+`
		FROM contact_lists l
		JOIN contact_list_members m ON l.id = m.contact_list_id
		WHERE m.contact_id = ? AND m.deleted_at IS NULL AND l.deleted_at IS NULL
		ORDER BY l.created_at DESC
	`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := make([]models.ContactList, 0)
	for rows.Next() {
		l, err := scanContactList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}
