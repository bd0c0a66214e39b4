package api

import (
	"time"

	"github.com/nadeuri-dev/nadeuri/shared/domain"
)

// Request DTOs

// CreateBoardRequest is the JSON "request" part of a multipart board submission.
type CreateBoardRequest struct {
	MemberId     domain.MemberId `json:"memberId" validate:"required"`
	BoardTitle   string          `json:"boardTitle" validate:"required,notblank,max=200"`
	BoardContent string          `json:"boardContent" validate:"max=10000"`
	Category     string          `json:"category" validate:"required,category"`
}

// UpdateBoardRequest replaces the whole board, partial updates are not supported.
type UpdateBoardRequest = CreateBoardRequest

// Response DTOs

// BoardResponse is a read-only projection of domain.Board.
type BoardResponse struct {
	Id        domain.BoardId  `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Category  domain.Category `json:"category"`
	ImageUrl  string          `json:"imageUrl"`
	MemberId  domain.MemberId `json:"memberId"`
	Nickname  string          `json:"nickname,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type BoardPageResponse struct {
	Content       []BoardResponse `json:"content"`
	Page          int             `json:"page"`
	Size          int             `json:"size"`
	TotalElements int64           `json:"totalElements"`
	TotalPages    int             `json:"totalPages"`
}

func NewBoardResponse(b *domain.Board) BoardResponse {
	return BoardResponse{
		Id:        b.Id,
		Title:     b.Title,
		Content:   b.Content,
		Category:  b.Category,
		ImageUrl:  b.ImageUrl,
		MemberId:  b.Member.Id,
		Nickname:  b.Member.Nickname,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBoardPageResponse(boards []domain.Board, total int64, p domain.PageRequest) BoardPageResponse {
	content := make([]BoardResponse, len(boards))
	for i := range boards {
		content[i] = NewBoardResponse(&boards[i])
	}
	return BoardPageResponse{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    p.TotalPages(total),
	}
}
