package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mindcheck/screener/internal/db"
	"github.com/mindcheck/screener/internal/domain"
)

// SQLiteScreeningRepo implements ScreeningRepo. Answer maps live in JSON text
// columns, one per instrument.
type SQLiteScreeningRepo struct {
	db db.DBTX
}

func NewSQLiteScreeningRepo(conn db.DBTX) *SQLiteScreeningRepo {
	return &SQLiteScreeningRepo{db: conn}
}

const screeningColumns = `id, respondent_name, status, source, asrs_answers, impairment_answers,
	wurs_answers, created_at, updated_at, completed_at`

func (r *SQLiteScreeningRepo) Create(ctx context.Context, s *domain.Screening) error {
	asrs, imp, wurs, err := encodeAnswerSet(s.Answers)
	if err != nil {
		return err
	}
	source := s.Source
	if source == "" {
		source = domain.SourceWizard
	}

	query := `INSERT INTO screenings (` + screeningColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.RespondentName,
		string(s.Status),
		string(source),
		asrs, imp, wurs,
		formatTime(s.CreatedAt),
		formatTime(s.UpdatedAt),
		nullableTime(s.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting screening: %w", err)
	}
	return nil
}

func (r *SQLiteScreeningRepo) GetByID(ctx context.Context, id string) (*domain.Screening, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+screeningColumns+` FROM screenings WHERE id = ?`, id)
	s, err := scanScreening(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("screening %s: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteScreeningRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Screening, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, fmt.Errorf("screening: empty id: %w", ErrNotFound)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+screeningColumns+` FROM screenings WHERE substr(id, 1, ?) = ? LIMIT 2`,
		len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("looking up screening: %w", err)
	}
	defer rows.Close()

	var found []*domain.Screening
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating screenings: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("screening %s: %w", prefix, ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("screening %s: %w", prefix, ErrAmbiguousID)
	}
}

func (r *SQLiteScreeningRepo) List(ctx context.Context, filter ScreeningFilter) ([]*domain.Screening, error) {
	query := `SELECT ` + screeningColumns + ` FROM screenings`
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing screenings: %w", err)
	}
	defer rows.Close()

	var out []*domain.Screening
	for rows.Next() {
		s, err := scanScreening(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating screenings: %w", err)
	}
	return out, nil
}

func (r *SQLiteScreeningRepo) Update(ctx context.Context, s *domain.Screening) error {
	asrs, imp, wurs, err := encodeAnswerSet(s.Answers)
	if err != nil {
		return err
	}

	query := `UPDATE screenings SET respondent_name = ?, status = ?, asrs_answers = ?,
		impairment_answers = ?, wurs_answers = ?, updated_at = ?, completed_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.RespondentName,
		string(s.Status),
		asrs, imp, wurs,
		formatTime(s.UpdatedAt),
		nullableTime(s.CompletedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating screening: %w", err)
	}
	return requireAffected(res, s.ID)
}

func (r *SQLiteScreeningRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM screenings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting screening: %w", err)
	}
	return requireAffected(res, id)
}

func (r *SQLiteScreeningRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM screenings`)
	if err != nil {
		return 0, fmt.Errorf("deleting screenings: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted screenings: %w", err)
	}
	return n, nil
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("screening %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScreening(row rowScanner) (*domain.Screening, error) {
	var s domain.Screening
	var status, source, asrs, imp, wurs, createdAt, updatedAt string
	var completedAt sql.NullString

	err := row.Scan(
		&s.ID, &s.RespondentName, &status, &source,
		&asrs, &imp, &wurs,
		&createdAt, &updatedAt, &completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning screening: %w", err)
	}

	s.Status = domain.ScreeningStatus(status)
	s.Source = domain.ScreeningSource(source)

	if s.Answers.ASRS, err = decodeAnswers[domain.OrdinalAnswers](asrs); err != nil {
		return nil, fmt.Errorf("asrs answers of %s: %w", s.ID, err)
	}
	if s.Answers.Impairment, err = decodeAnswers[domain.ImpairmentAnswers](imp); err != nil {
		return nil, fmt.Errorf("impairment answers of %s: %w", s.ID, err)
	}
	if s.Answers.WURS, err = decodeAnswers[domain.OrdinalAnswers](wurs); err != nil {
		return nil, fmt.Errorf("wurs answers of %s: %w", s.ID, err)
	}

	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	s.CompletedAt = parseNullableTime(completedAt)

	return &s, nil
}

func encodeAnswerSet(a domain.AnswerSet) (asrs, imp, wurs string, err error) {
	if asrs, err = encodeAnswers(a.ASRS); err != nil {
		return "", "", "", err
	}
	if imp, err = encodeAnswers(a.Impairment); err != nil {
		return "", "", "", err
	}
	if wurs, err = encodeAnswers(a.WURS); err != nil {
		return "", "", "", err
	}
	return asrs, imp, wurs, nil
}
