package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	internal_errors "github.com/nadeuri-dev/nadeuri/backend/internal/errors"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
)

func (s *Storage) GetMember(ctx context.Context, id domain.MemberId) (*domain.Member, error) {
	var m domain.Member
	err := s.db.QueryRowContext(ctx,
		"SELECT id, nickname, created_at FROM members WHERE id = $1", id,
	).Scan(&m.Id, &m.Nickname, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound
		}
		return nil, fmt.Errorf("get member %d: %w", id, err)
	}
	return &m, nil
}

// SaveMember inserts a member and fills in its id and creation time.
// Members are managed elsewhere in production, this exists for seeding.
func (s *Storage) SaveMember(ctx context.Context, nickname domain.Nickname) (*domain.Member, error) {
	m := domain.Member{Nickname: nickname}
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO members (nickname) VALUES ($1) RETURNING id, created_at", nickname,
	).Scan(&m.Id, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save member: %w", err)
	}
	return &m, nil
}
