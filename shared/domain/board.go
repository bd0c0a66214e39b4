package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidBoard = errors.New("invalid board")

type BoardStatus int

const (
	BoardActive BoardStatus = iota
	BoardDeleted
)

func (s BoardStatus) String() string {
	switch s {
	case BoardActive:
		return "ACTIVE"
	case BoardDeleted:
		return "DELETED"
	default:
		return fmt.Sprintf("BoardStatus(%d)", int(s))
	}
}

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	MemberId MemberId
	Title    BoardTitle
	Content  BoardContent
	Category Category
}

// Update replaces every mutable field, so it carries the same data as creation.
type BoardUpdateData = BoardCreationData

type Board struct {
	Id        BoardId
	Member    Member
	Title     BoardTitle
	Content   BoardContent
	Category  Category
	ImageUrl  ImageUrl
	CreatedAt time.Time
	UpdatedAt time.Time
	Status    BoardStatus
	DeletedAt *time.Time // set iff Status == BoardDeleted
}

// NewBoard builds an active board that is not persisted yet.
// Id and timestamps are assigned by storage.
func NewBoard(member *Member, title BoardTitle, content BoardContent, category Category, imageUrl ImageUrl) (*Board, error) {
	if err := validateBoardFields(member, title, category, imageUrl); err != nil {
		return nil, err
	}
	return &Board{
		Member:   *member,
		Title:    title,
		Content:  content,
		Category: category,
		ImageUrl: imageUrl,
		Status:   BoardActive,
	}, nil
}

// Update replaces member, title, content, category and image all at once.
// On error the board is left untouched.
func (b *Board) Update(member *Member, title BoardTitle, content BoardContent, category Category, imageUrl ImageUrl) error {
	if err := validateBoardFields(member, title, category, imageUrl); err != nil {
		return err
	}
	b.Member = *member
	b.Title = title
	b.Content = content
	b.Category = category
	b.ImageUrl = imageUrl
	return nil
}

func (b *Board) RecordDeletion(at time.Time) {
	b.Status = BoardDeleted
	b.DeletedAt = &at
}

func (b *Board) IsDeleted() bool {
	return b.Status == BoardDeleted
}

func validateBoardFields(member *Member, title BoardTitle, category Category, imageUrl ImageUrl) error {
	if member == nil {
		return fmt.Errorf("%w: member is required", ErrInvalidBoard)
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is blank", ErrInvalidBoard)
	}
	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidBoard, category)
	}
	if imageUrl == "" {
		return fmt.Errorf("%w: image url is empty", ErrInvalidBoard)
	}
	return nil
}
