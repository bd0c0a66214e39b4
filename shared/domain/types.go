package domain

type (
	MemberId = int64
	Nickname = string

	BoardId      = int64
	BoardTitle   = string
	BoardContent = string
	ImageUrl     = string
)
