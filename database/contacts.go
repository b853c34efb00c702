package database

import (
	"database/sql"
	"strings"
	"time"

	"contact-hub/models"
)

const contactColumns = `id, first_name, middle_name, last_name, company, job,
	contact_type, phone_type, phone, email, website, address_line_1, address_line_2,
	city, state, zip_code, country, notes, is_active, created_by_id,
	created_at, updated_at, deleted_at`

// contactFilterColumns whitelists the fields allowed in dynamic searches
var contactFilterColumns = map[string]bool{
	"first_name": true, "middle_name": true, "last_name": true,
	"company": true, "job": true, "contact_type": true, "phone_type": true,
	"phone": true, "email": true, "website": true,
	"address_line_1": true, "address_line_2": true,
	"city": true, "state": true, "zip_code": true, "country": true,
	"is_active": true, "created_by_id": true, "deleted_at": true,
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*models.Contact, error) {
	var c models.Contact
	var deletedAt sql.NullTime
	err := row.Scan(
		&c.ID, &c.FirstName, &c.MiddleName, &c.LastName, &c.Company, &c.Job,
		&c.ContactType, &c.PhoneType, &c.Phone, &c.Email, &c.Website,
		&c.AddressLine1, &c.AddressLine2, &c.City, &c.State, &c.ZipCode,
		&c.Country, &c.Notes, &c.IsActive, &c.CreatedByID,
		&c.CreatedAt, &c.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}
	c.DeletedAt = nullTime(deletedAt)
	return &c, nil
}

// contactSearchText builds the lowercased blob backing full-text search,
// standing in for the generated tsvector column of the original schema
func contactSearchText(c *models.Contact) string {
	parts := []string{
		c.FirstName, c.MiddleName, c.LastName, c.Company, c.Job,
		c.Email, c.Phone, c.Notes,
		c.AddressLine1, c.AddressLine2, c.City, c.State, c.ZipCode, c.Country,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func (r *Repository) CreateContact(c *models.Contact) error {
	_, err := r.db.Exec(`
		INSERT INTO contacts (id, first_name, middle_name, last_name, company, job,
			contact_type, phone_type, phone, email, website, address_line_1, address_line_2,
			city, state, zip_code, country, notes, is_active, search_text, created_by_id,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ID, c.FirstName, c.MiddleName, c.LastName, c.Company, c.Job,
		c.ContactType, c.PhoneType, c.Phone, c.Email, c.Website,
		c.AddressLine1, c.AddressLine2, c.City, c.State, c.ZipCode,
		c.Country, c.Notes, c.IsActive, contactSearchText(c), c.CreatedByID,
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *Repository) GetContact(id string) (*models.Contact, error) {
	row := r.db.QueryRow(`
		SELECT `+contactColumns+` FROM contacts
		WHERE id = ? AND deleted_at IS NULL
	`, id)

	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetContactByEmail(email string) (*models.Contact, error) {
	row := r.db.QueryRow(`
		SELECT `+contactColumns+` FROM contacts
		WHERE email = ? AND deleted_at IS NULL
	`, email)

	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetContactByPhone(phone string) (*models.Contact, error) {
	row := r.db.QueryRow(`
		SELECT `+contactColumns+` FROM contacts
		WHERE phone = ? AND deleted_at IS NULL
	`, phone)

	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) ListContacts(limit, offset int) ([]models.Contact, int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE deleted_at IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT `+contactColumns+` FROM contacts
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contacts, err := collectContacts(rows)
	return contacts, total, err
}

func (r *Repository) ListDeletedContacts(limit, offset int) ([]models.Contact, int, error) {
	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE deleted_at IS NOT NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(`
		SELECT `+contactColumns+` FROM contacts
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contacts, err := collectContacts(rows)
	return contacts, total, err
}

// SearchContactsText matches every whitespace-separated token of q against
// the search_text blob
func (r *Repository) SearchContactsText(q string, limit, offset int) ([]models.Contact, int, error) {
	tokens := strings.Fields(strings.ToLower(q))
	if len(tokens) == 0 {
		return make([]models.Contact, 0), 0, nil
	}

	where := "deleted_at IS NULL"
	var args []any
	for _, token := range tokens {
		where += ` AND search_text LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(token)+"%")
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM contacts WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.db.Query(`
		SELECT `+contactColumns+` FROM contacts
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contacts, err := collectContacts(rows)
	return contacts, total, err
}

func (r *Repository) SearchContacts(filters FilterSet) ([]models.Contact, error) {
	clause, args, err := buildFilterClause(contactFilterColumns, filters)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`
		SELECT `+contactColumns+` FROM contacts
		WHERE deleted_at IS NULL`+clause+`
		ORDER BY created_at DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectContacts(rows)
}

func (r *Repository) UpdateContact(c *models.Contact) error {
	c.UpdatedAt = time.Now().UTC()
	_, err := r.db.Exec(`
		UPDATE contacts SET
			first_name = ?, middle_name = ?, last_name = ?, company = ?, job = ?,
			contact_type = ?, phone_type = ?, phone = ?, email = ?, website = ?,
			address_line_1 = ?, address_line_2 = ?, city = ?, state = ?, zip_code = ?,
			country = ?, notes = ?, is_active = ?, search_text = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`,
		c.FirstName, c.MiddleName, c.LastName, c.Company, c.Job,
		c.ContactType, c.PhoneType, c.Phone, c.Email, c.Website,
		c.AddressLine1, c.AddressLine2, c.City, c.State, c.ZipCode,
		c.Country, c.Notes, c.IsActive, contactSearchText(c), c.UpdatedAt,
		c.ID,
	)
	return err
}

func (r *Repository) SoftDeleteContact(id string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE contacts SET deleted_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`, time.Now().UTC(), time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *Repository) RestoreContact(id string) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE contacts SET deleted_at = NULL, updated_at = ?
		WHERE id = ? AND deleted_at IS NOT NULL
	`, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func collectContacts(rows *sql.Rows) ([]models.Contact, error) {
	contacts := make([]models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

// escapeLike escapes LIKE wildcards in user input so they match
// literally. The queries using it set ESCAPE '\'.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
