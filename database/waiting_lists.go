package database

import (
	"database/sql"
	"strings"
	"time"

	"contact-hub/models"
)

const waitingListColumns = `id, name, description, created_by_id,
	created_at, updated_at, deleted_at`

const waitingMemberColumns = `id, waiting_list_id, contact_id, status,
	created_at, updated_at, deleted_at`

var waitingListFilterColumns = map[string]bool{
	"name": true, "description": true, "created_by_id": true, "deleted_at": true,
}

func scanWaitingList(row scanner) (*models.WaitingList, error) {
	var l models.WaitingList
	var deletedAt sql.NullTime
	err := row.Scan(
		&l.ID, &l.Name, &l.Description, &l.CreatedByID,
		&l.CreatedAt, &l.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	l.DeletedAt = nullTime(deletedAt)
	return &l, nil
}

func scanWaitingMember(row scanner) (*models.WaitingListMember, error) {
	var m models.WaitingListMember
	var deletedAt sql.NullTime
	err := row.Scan(
		&m.ID, &m.WaitingListID, &m.ContactID, &m.Status,
		&m.CreatedAt, &m.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	m.DeletedAt = nullTime(deletedAt)
	return &m, nil
}

func (r *Repository) CreateWaitingList(l *models.WaitingList) error {
	_, err := r.db.Exec(`
		INSERT INTO waiting_lists (id, name, description, created_by_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, l.ID, l.Name, l.Description, l.CreatedByID, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *Repository) GetWaitingList(id string) (*models.WaitingList, error) {
	row := r.db.QueryRow(`
		SELECT `+waitingListColumns+` FROM waiting_lists
		WHERE id = ? AND deleted_at IS NULL
	`, id)

	l, err := scanWaitingList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *Repository) ListWaitingLists(limit, offset int) ([]models.WaitingList, int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM waiting_lists WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT `+waitingListColumns+` FROM waiting_lists
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	lists := make([]models.WaitingList, 0)
	for rows.Next() {
		l, err := scanWaitingList(rows)
		if err != nil {
			return nil, 0, err
		}
		lists = append(lists, *l)
	}
	return lists, total, rows.Err()
}

func (r *Repository) SearchWaitingLists(filters FilterSet) ([]models.WaitingList, error) {
	clause, args, err := buildFilterClause(waitingListFilterColumns, filters)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT `+waitingListColumns+` FROM waiting_lists
		WHERE deleted_at IS NULL`+clause+`
		ORDER BY created_at DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := make([]models.WaitingList, 0)
	for rows.Next() {
		l, err := scanWaitingList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

func (r *Repository) UpdateWaitingList(l *models.WaitingList) error {
	l.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE waiting_lists SET name = ?, description = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, l.Name, l.Description, l.UpdatedAt, l.ID)
	return err
}

func (r *Repository) SoftDeleteWaitingList(id string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE waiting_lists SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ==================== MEMBERS ====================

func (r *Repository) GetWaitingListMember(listID, contactID string) (*models.WaitingListMember, error) {
	row := r.db.QueryRow(`
		SELECT `+waitingMemberColumns+` FROM waiting_list_members
		WHERE waiting_list_id = ? AND contact_id = ? AND deleted_at IS NULL
	`, listID, contactID)

	m, err := scanWaitingMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Repository) CreateWaitingListMember(m *models.WaitingListMember) error {
	_, err := r.db.Exec(`
		INSERT INTO waiting_list_members (id, waiting_list_id, contact_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.ID, m.WaitingListID, m.ContactID, m.Status, m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *Repository) RemoveWaitingListMember(listID, contactID string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE waiting_list_members SET deleted_at = ?, updated_at = ?
		WHERE waiting_list_id = ? AND contact_id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), listID, contactID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repository) GetWaitingListMembers(listID string) ([]models.WaitingListMember, error) {
	rows, err := r.db.Query(`
		SELECT `+waitingMemberColumns+` FROM waiting_list_members
		WHERE waiting_list_id = ? AND deleted_at IS NULL
		ORDER BY created_at ASC
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWaitingMembers(rows)
}

func (r *Repository) GetWaitingListMembersByStatus(listID, status string) ([]models.WaitingListMember, error) {
	rows, err := r.db.Query(`
		SELECT `+waitingMemberColumns+` FROM waiting_list_members
		WHERE waiting_list_id = ? AND status = ? AND deleted_at IS NULL
		ORDER BY created_at ASC
	`, listID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWaitingMembers(rows)
}

func (r *Repository) CountWaitingListMembers(listID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM waiting_list_members
		WHERE waiting_list_id = ? AND deleted_at IS NULL
	`, listID).Scan(&count)
	return count, err
}

func (r *Repository) CountWaitingListMembersByStatus(listID, status string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM waiting_list_members
		WHERE waiting_list_id = ? AND status = ? AND deleted_at IS NULL
	`, listID, status).Scan(&count)
	return count, err
}

func (r *Repository) UpdateWaitingListMemberStatus(listID, contactID, status string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE waiting_list_members SET status = ?, updated_at = ?
		WHERE waiting_list_id = ? AND contact_id = ? AND deleted_at IS NULL
	`, status, time.Now().UTC(), listID, contactID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repository) UpdateWaitingListMembersStatusBulk(listID string, contactIDs []string, status string) (int, error) {
	if len(contactIDs) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?, ", len(contactIDs))
	args := []any{status, time.Now().UTC(), listID}
	for _, id := range contactIDs {
		args = append(args, id)
	}

	res, err := r.db.Exec(`
		UPDATE waiting_list_members SET status = ?, updated_at = ?
		WHERE waiting_list_id = ? AND contact_id IN (`+placeholders[:len(placeholders)-2]+`) AND deleted_at IS NULL
	`, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *Repository) ClearWaitingListMembers(listID string) (int, error) {
	res, err := r.db.Exec(`
		UPDATE waiting_list_members SET deleted_at = ?, updated_at = ?
		WHERE waiting_list_id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), listID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *Repository) GetWaitingListsForContact(contactID string) ([]models.WaitingList, error) {
	rows, err := r.db.Query(`
		SELECT `+prefixColumns("l", waitingListColumns)+`
		FROM waiting_lists l
		JOIN waiting_list_members m ON l.id = m.waiting_list_id
		WHERE m.contact_id = ? AND m.deleted_at IS NULL AND l.deleted_at IS NULL
		ORDER BY l.created_at DESC
	`, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := make([]models.WaitingList, 0)
	for rows.Next() {
		l, err := scanWaitingList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *l)
	}
	return lists, rows.Err()
}

func collectWaitingMembers(rows *sql.Rows) ([]models.WaitingListMember, error) {
	members := make([]models.WaitingListMember, 0)
	for rows.Next() {
		m, err := scanWaitingMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}
