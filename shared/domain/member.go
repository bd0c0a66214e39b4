package domain

import "time"

// Member is owned by the member subsystem. Boards only hold a reference to it.
type Member struct {
	Id        MemberId
	Nickname  Nickname
	CreatedAt time.Time
}
