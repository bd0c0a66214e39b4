package domain

import (
	"fmt"
	"time"
)

// for debug
func (b *Board) String() string {
	deleted := "nil"
	if b.DeletedAt != nil {
		deleted = b.DeletedAt.Format(time.StampMilli)
	}
	return fmt.Sprintf("[id:%d, member:%d, title:%s, category:%s, image:%s, status:%s, created:%s, deleted:%s]",
		b.Id, b.Member.Id, b.Title, b.Category, b.ImageUrl, b.Status, b.CreatedAt.Format(time.StampMilli), deleted)
}
