package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"eventcomposer/internal/domain"

	"github.com/lib/pq"
)

// identifierRe matches the table and column names the store accepts. Identifiers are
// interpolated into SQL, values never are.
var identifierRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type store struct {
	DB *sql.DB
}

// NewStore returns a domain.Store implemented with Postgres. Every call is a single
// statement run outside of any transaction.
func NewStore(db *sql.DB) domain.Store {
	return &store{DB: db}
}

func (s *store) Insert(ctx context.Context, table string, row domain.Row) (domain.Row, error) {
	if err := checkIdentifier(table); err != nil {
		return nil, err
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: insert into %s without columns", domain.ErrInvalidInput, table)
	}
	columns, err := sortedColumns(row)
	if err != nil {
		return nil, err
	}
	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = toArg(row[c])
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	out, err := scanRows(rows)
	if err != nil {
		return nil, mapError(err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("insert into %s returned no row", table)
	}
	return out[0], nil
}

func (s *store) Delete(ctx context.Context, table string, filter domain.Filter) error {
	if err := checkIdentifier(table); err != nil {
		return err
	}
	if len(filter) == 0 {
		return fmt.Errorf("%w: delete from %s without filter", domain.ErrInvalidInput, table)
	}
	where, args, err := whereClause(filter)
	if err != nil {
		return err
	}
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM `+table+where, args...); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *store) Select(ctx context.Context, table string, filter domain.Filter) ([]domain.Row, error) {
	if err := checkIdentifier(table); err != nil {
		return nil, err
	}
	where, args, err := whereClause(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.QueryContext(ctx, `SELECT * FROM `+table+where, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	out, err := scanRows(rows)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func checkIdentifier(name string) error {
	if !identifierRe.MatchString(name) {
		return fmt.Errorf("%w: identifier %q", domain.ErrInvalidInput, name)
	}
	return nil
}

func sortedColumns[M ~map[string]any](m M) ([]string, error) {
	columns := make([]string, 0, len(m))
	for c := range m {
		if err := checkIdentifier(c); err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	sort.Strings(columns)
	return columns, nil
}

// whereClause builds " WHERE a = $1 AND b = $2" from filter; an empty filter yields "".
func whereClause(filter domain.Filter) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	columns, err := sortedColumns(filter)
	if err != nil {
		return "", nil, err
	}
	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		conds[i] = fmt.Sprintf("%s = $%d", c, i+1)
		args[i] = toArg(filter[c])
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// toArg converts row values lib/pq cannot send as is: string slices become text
// arrays and JSON payloads are sent as text for jsonb columns.
func toArg(v any) any {
	switch val := v.(type) {
	case []string:
		return pq.Array(val)
	case json.RawMessage:
		return string(val)
	default:
		return v
	}
}

func scanRows(rows *sql.Rows) ([]domain.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := make(domain.Row, len(columns))
		for i, c := range columns {
			if b, ok := values[i].([]byte); ok {
				row[c] = string(b)
				continue
			}
			row[c] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func mapError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == "23505" {
		return fmt.Errorf("%w: %s", domain.ErrConflict, perr.Message)
	}
	return err
}
