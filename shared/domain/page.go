package domain

type PageRequest struct {
	Page int // 1-based
	Size int
}

func (p PageRequest) Offset() int {
	return (max(1, p.Page) - 1) * p.Size
}

func (p PageRequest) Limit() int {
	return p.Size
}

// TotalPages returns how many pages of p.Size are needed for total elements.
func (p PageRequest) TotalPages(total int64) int {
	if p.Size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
