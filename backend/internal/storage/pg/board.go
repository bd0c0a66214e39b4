package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	internal_errors "github.com/nadeuri-dev/nadeuri/backend/internal/errors"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
	sharedpg "github.com/nadeuri-dev/nadeuri/shared/storage/pg"
)

const boardColumns = `
	b.id, b.title, b.content, b.category, b.image_url, b.status,
	b.created_at, b.updated_at, b.deleted_at,
	m.id, m.nickname, m.created_at`

const boardFrom = `
	FROM boards AS b
	JOIN members AS m ON m.id = b.member_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBoard(row rowScanner) (*domain.Board, error) {
	var (
		b         domain.Board
		status    string
		deletedAt sql.NullTime
	)
	err := row.Scan(
		&b.Id, &b.Title, &b.Content, &b.Category, &b.ImageUrl, &status,
		&b.CreatedAt, &b.UpdatedAt, &deletedAt,
		&b.Member.Id, &b.Member.Nickname, &b.Member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Status, err = parseStatus(status)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		b.DeletedAt = &t
	}
	return &b, nil
}

func parseStatus(s string) (domain.BoardStatus, error) {
	switch s {
	case domain.BoardActive.String():
		return domain.BoardActive, nil
	case domain.BoardDeleted.String():
		return domain.BoardDeleted, nil
	default:
		return 0, fmt.Errorf("unknown board status %q", s)
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// GetBoard returns the board regardless of its status, deleted boards included.
func (s *Storage) GetBoard(ctx context.Context, id domain.BoardId) (*domain.Board, error) {
	row := s.db.QueryRowContext(ctx, "SELECT"+boardColumns+boardFrom+" WHERE b.id = $1", id)
	board, err := scanBoard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound
		}
		return nil, fmt.Errorf("get board %d: %w", id, err)
	}
	return board, nil
}

// SaveBoard inserts a board without id, or overwrites the stored row otherwise.
// Only active rows are overwritten, a row deleted since it was read yields
// internal_errors.NotFound. Id and timestamps are written back into board.
func (s *Storage) SaveBoard(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	if board.Id == 0 {
		return s.insertBoard(ctx, board)
	}
	return s.updateBoard(ctx, board)
}

func (s *Storage) insertBoard(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO boards (member_id, title, content, category, image_url, status, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		board.Member.Id, board.Title, board.Content, string(board.Category), board.ImageUrl,
		board.Status.String(), nullTime(board.DeletedAt),
	).Scan(&board.Id, &board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert board: %w", err)
	}
	return board, nil
}

func (s *Storage) updateBoard(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	err := s.db.QueryRowContext(ctx, `
		UPDATE boards SET
			member_id = $1, title = $2, content = $3, category = $4, image_url = $5,
			status = $6, deleted_at = $7, updated_at = NOW()
		WHERE id = $8 AND status = 'ACTIVE'
		RETURNING created_at, updated_at`,
		board.Member.Id, board.Title, board.Content, string(board.Category), board.ImageUrl,
		board.Status.String(), nullTime(board.DeletedAt), board.Id,
	).Scan(&board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound
		}
		return nil, fmt.Errorf("update board %d: %w", board.Id, err)
	}
	return board, nil
}

// PageBoards returns one page of active boards ordered by id and the number
// of active boards overall.
func (s *Storage) PageBoards(ctx context.Context, p domain.PageRequest) ([]domain.Board, int64, error) {
	return s.pageQuery(ctx, "", nil, p)
}

// SearchBoards is PageBoards restricted to boards whose title or author
// nickname contains keyword, ignoring case.
func (s *Storage) SearchBoards(ctx context.Context, keyword string, p domain.PageRequest) ([]domain.Board, int64, error) {
	return s.pageQuery(ctx, " AND (b.title ILIKE $1 OR m.nickname ILIKE $1)", []any{likePattern(keyword)}, p)
}

func (s *Storage) pageQuery(ctx context.Context, filter string, args []any, p domain.PageRequest) ([]domain.Board, int64, error) {
	where := " WHERE b.status = 'ACTIVE'" + filter
	n := len(args)
	listQuery := "SELECT" + boardColumns + boardFrom + where +
		fmt.Sprintf(" ORDER BY b.id ASC LIMIT $%d OFFSET $%d", n+1, n+2)
	listArgs := append(append([]any{}, args...), p.Limit(), p.Offset())

	var (
		boards []domain.Board
		total  int64
	)
	err := sharedpg.WithReadOnlyTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*)"+boardFrom+where, args...).Scan(&total); err != nil {
			return fmt.Errorf("count boards: %w", err)
		}
		var err error
		boards, err = queryBoards(ctx, tx, listQuery, listArgs...)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return boards, total, nil
}

func queryBoards(ctx context.Context, q sharedpg.Querier, query string, args ...any) ([]domain.Board, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	boards := make([]domain.Board, 0)
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boards: %w", err)
	}
	return boards, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern matches keyword literally anywhere in the value.
func likePattern(keyword string) string {
	return "%" + likeEscaper.Replace(keyword) + "%"
}
