package tabular

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// PostgresSource serves logical tables out of Postgres, one SQL table per
// sheet with columns named after the sheet headers. Unlike the workbook
// source it can push lookups down to the database, so it also implements
// Searcher.
type PostgresSource struct {
	db *gorm.DB
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Table resolves a SQL table by name, or (nil, nil) when no such table
// exists in the connected schema.
func (s *PostgresSource) Table(name string) (Table, error) {
	var headers []string
	err := s.db.Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = ?
		ORDER BY ordinal_position
	`, name).Scan(&headers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read columns for table %s: %w", name, err)
	}
	if len(headers) == 0 {
		return nil, nil
	}

	return &postgresTable{
		db:      s.db,
		name:    name,
		headers: headers,
		binding: BindHeaders(headers),
	}, nil
}

type postgresTable struct {
	db      *gorm.DB
	name    string
	headers []string
	binding Binding
}

func (t *postgresTable) Name() string      { return t.name }
func (t *postgresTable) Headers() []string { return t.headers }

func (t *postgresTable) Rows() ([]Row, error) {
	var records []map[string]interface{}
	if err := t.db.Table(t.name).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to scan table %s: %w", t.name, err)
	}
	return t.toRows(records), nil
}

// Search finds rows whose cell under column equals value under Canon. The
// translate call strips the formatting characters that appear in sheet-fed
// cells so stored values like "+91 11111-11111" still surface as
// candidates.
func (t *postgresTable) Search(column, value string, limit int) ([]Row, error) {
	if _, ok := t.binding[column]; !ok {
		return nil, nil
	}
	var records []map[string]interface{}
	err := t.db.Table(t.name).
		Where(fmt.Sprintf("LOWER(translate(%q, ' ()-', '')) = ?", column), Canon(value)).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search table %s by %s: %w", t.name, column, err)
	}
	return t.toRows(records), nil
}

// SearchIn finds rows whose cell under column equals any of values, case
// sensitively.
func (t *postgresTable) SearchIn(column string, values []string, limit int) ([]Row, error) {
	if _, ok := t.binding[column]; !ok || len(values) == 0 {
		return nil, nil
	}
	var records []map[string]interface{}
	err := t.db.Table(t.name).
		Where(fmt.Sprintf("%q IN ?", column), values).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search table %s by %s: %w", t.name, column, err)
	}
	return t.toRows(records), nil
}

func (t *postgresTable) toRows(records []map[string]interface{}) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		cells := make([]string, len(t.headers))
		for j, h := range t.headers {
			cells[j] = cellString(rec[h])
		}
		rows[i] = NewRow(t.binding, cells)
	}
	return rows
}

func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
