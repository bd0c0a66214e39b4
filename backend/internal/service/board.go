package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	internal_errors "github.com/nadeuri-dev/nadeuri/backend/internal/errors"
	"github.com/nadeuri-dev/nadeuri/shared/api"
	"github.com/nadeuri-dev/nadeuri/shared/domain"
	shared_errors "github.com/nadeuri-dev/nadeuri/shared/errors"
	"github.com/nadeuri-dev/nadeuri/shared/logger"
)

// to mock service in tests
type BoardService interface {
	Register(ctx context.Context, data domain.BoardCreationData, image *domain.PendingFile) error
	Read(ctx context.Context, id domain.BoardId) (*api.BoardResponse, error)
	Page(ctx context.Context, p domain.PageRequest) (*api.BoardPageResponse, error)
	PageSearch(ctx context.Context, keyword string, p domain.PageRequest) (*api.BoardPageResponse, error)
	Update(ctx context.Context, id domain.BoardId, data domain.BoardUpdateData, image *domain.PendingFile) (*domain.Board, error)
	Delete(ctx context.Context, id domain.BoardId) (*domain.Board, error)
}

type BoardStorage interface {
	// GetBoard returns deleted boards too, internal_errors.NotFound when missing.
	GetBoard(ctx context.Context, id domain.BoardId) (*domain.Board, error)
	// SaveBoard overwrites only active rows, internal_errors.NotFound otherwise.
	SaveBoard(ctx context.Context, board *domain.Board) (*domain.Board, error)
	PageBoards(ctx context.Context, p domain.PageRequest) ([]domain.Board, int64, error)
	SearchBoards(ctx context.Context, keyword string, p domain.PageRequest) ([]domain.Board, int64, error)
}

type MemberStorage interface {
	GetMember(ctx context.Context, id domain.MemberId) (*domain.Member, error)
}

type ImageStorage interface {
	Upload(ctx context.Context, file *domain.PendingFile) (domain.ImageUrl, error)
	Delete(ctx context.Context, url domain.ImageUrl) error
	// DefaultImageUrl is where the store serves the image of boards without one.
	DefaultImageUrl() domain.ImageUrl
}

type BoardConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type Board struct {
	boards  BoardStorage
	members MemberStorage
	images  ImageStorage
	cfg     BoardConfig
	now     func() time.Time
	log     *slog.Logger
}

func NewBoard(boards BoardStorage, members MemberStorage, images ImageStorage, cfg BoardConfig) *Board {
	return &Board{
		boards:  boards,
		members: members,
		images:  images,
		cfg:     cfg,
		now:     time.Now,
		log:     logger.Component("board_service"),
	}
}

func (b *Board) Register(ctx context.Context, data domain.BoardCreationData, image *domain.PendingFile) error {
	member, err := b.retrieveMember(ctx, data.MemberId)
	if err != nil {
		return b.fail(internal_errors.BoardNotRegistered, err, "member_id", data.MemberId)
	}

	imageUrl, uploaded, err := b.resolveImage(ctx, image)
	if err != nil {
		return b.fail(internal_errors.BoardNotRegistered, err, "member_id", data.MemberId)
	}

	board, err := domain.NewBoard(member, data.Title, data.Content, data.Category, imageUrl)
	if err == nil {
		_, err = b.boards.SaveBoard(ctx, board)
	}
	if err != nil {
		if uploaded {
			b.discardImage(ctx, imageUrl)
		}
		return b.fail(internal_errors.BoardNotRegistered, err, "member_id", data.MemberId)
	}

	b.log.Info("board registered", "board_id", board.Id, "member_id", member.Id)
	b.log.Debug("registered board", "board", board)
	return nil
}

func (b *Board) Read(ctx context.Context, id domain.BoardId) (*api.BoardResponse, error) {
	board, err := b.retrieveBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := api.NewBoardResponse(board)
	return &resp, nil
}

func (b *Board) Page(ctx context.Context, p domain.PageRequest) (*api.BoardPageResponse, error) {
	p = b.normalizePage(p)
	boards, total, err := b.boards.PageBoards(ctx, p)
	if err != nil {
		return nil, b.fail(internal_errors.BoardNotFound, err, "page", p.Page, "size", p.Size)
	}
	resp := api.NewBoardPageResponse(boards, total, p)
	return &resp, nil
}

func (b *Board) PageSearch(ctx context.Context, keyword string, p domain.PageRequest) (*api.BoardPageResponse, error) {
	p = b.normalizePage(p)
	boards, total, err := b.boards.SearchBoards(ctx, strings.TrimSpace(keyword), p)
	if err != nil {
		return nil, b.fail(internal_errors.BoardNotFound, err, "keyword", keyword, "page", p.Page, "size", p.Size)
	}
	resp := api.NewBoardPageResponse(boards, total, p)
	return &resp, nil
}

// Update replaces every mutable field. Without an image the board falls back
// to the default image, the previous one is not kept.
func (b *Board) Update(ctx context.Context, id domain.BoardId, data domain.BoardUpdateData, image *domain.PendingFile) (*domain.Board, error) {
	member, err := b.retrieveMember(ctx, data.MemberId)
	if err != nil {
		return nil, b.fail(internal_errors.BoardNotModified, err, "board_id", id)
	}
	board, err := b.retrieveBoard(ctx, id)
	if err != nil {
		return nil, b.fail(internal_errors.BoardNotModified, err, "board_id", id)
	}
	previousImage := board.ImageUrl

	imageUrl, uploaded, err := b.resolveImage(ctx, image)
	if err != nil {
		return nil, b.fail(internal_errors.BoardNotModified, err, "board_id", id)
	}

	err = board.Update(member, data.Title, data.Content, data.Category, imageUrl)
	var saved *domain.Board
	if err == nil {
		saved, err = b.saveExisting(ctx, board)
	}
	if err != nil {
		if uploaded {
			b.discardImage(ctx, imageUrl)
		}
		return nil, b.fail(internal_errors.BoardNotModified, err, "board_id", id)
	}

	if previousImage != saved.ImageUrl {
		b.discardImage(ctx, previousImage)
	}
	b.log.Info("board updated", "board_id", saved.Id, "member_id", member.Id)
	return saved, nil
}

// Delete stamps the deletion time, the row itself stays in storage.
func (b *Board) Delete(ctx context.Context, id domain.BoardId) (*domain.Board, error) {
	board, err := b.retrieveBoard(ctx, id)
	if err != nil {
		return nil, b.fail(internal_errors.BoardNotRemoved, err, "board_id", id)
	}

	board.RecordDeletion(b.now())
	saved, err := b.saveExisting(ctx, board)
	if err != nil {
		return nil, b.fail(internal_errors.BoardNotRemoved, err, "board_id", id)
	}

	b.log.Info("board deleted", "board_id", saved.Id)
	return saved, nil
}

func (b *Board) retrieveMember(ctx context.Context, id domain.MemberId) (*domain.Member, error) {
	member, err := b.members.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, internal_errors.NotFound) {
			return nil, internal_errors.MemberNotFound
		}
		return nil, fmt.Errorf("get member %d: %w", id, err)
	}
	return member, nil
}

// retrieveBoard treats a soft-deleted board as missing.
func (b *Board) retrieveBoard(ctx context.Context, id domain.BoardId) (*domain.Board, error) {
	board, err := b.boards.GetBoard(ctx, id)
	if err != nil {
		if errors.Is(err, internal_errors.NotFound) {
			return nil, internal_errors.BoardNotFound
		}
		return nil, fmt.Errorf("get board %d: %w", id, err)
	}
	if board.IsDeleted() {
		return nil, internal_errors.BoardNotFound
	}
	return board, nil
}

// resolveImage uploads a non-empty image, otherwise it picks the default one.
func (b *Board) resolveImage(ctx context.Context, image *domain.PendingFile) (url domain.ImageUrl, uploaded bool, err error) {
	if image.Empty() {
		return b.images.DefaultImageUrl(), false, nil
	}
	url, err = b.images.Upload(ctx, image)
	if err != nil {
		return "", false, fmt.Errorf("upload image: %w", err)
	}
	return url, true, nil
}

func (b *Board) discardImage(ctx context.Context, url domain.ImageUrl) {
	if url == b.images.DefaultImageUrl() {
		return
	}
	if err := b.images.Delete(ctx, url); err != nil {
		b.log.Warn("failed to delete image", "url", url, "error", err)
	}
}

// saveExisting writes back a board read by retrieveBoard. The row may have
// been deleted in between, storage then refuses the write.
func (b *Board) saveExisting(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	saved, err := b.boards.SaveBoard(ctx, board)
	if err != nil {
		if errors.Is(err, internal_errors.NotFound) {
			return nil, internal_errors.BoardNotFound
		}
		return nil, fmt.Errorf("save board %d: %w", board.Id, err)
	}
	return saved, nil
}

func (b *Board) normalizePage(p domain.PageRequest) domain.PageRequest {
	p.Page = max(1, p.Page)
	if p.Size <= 0 {
		p.Size = b.cfg.DefaultPageSize
	}
	if b.cfg.MaxPageSize > 0 && p.Size > b.cfg.MaxPageSize {
		p.Size = b.cfg.MaxPageSize
	}
	return p
}

// fail keeps the precise not-found errors and collapses anything else into
// the operation error, logging the original cause.
func (b *Board) fail(opErr *shared_errors.ErrorWithStatusCode, err error, attrs ...any) error {
	if errors.Is(err, internal_errors.MemberNotFound) || errors.Is(err, internal_errors.BoardNotFound) {
		return err
	}
	b.log.Error(opErr.Message, append(attrs, "error", err)...)
	return opErr.WithCause(err)
}
