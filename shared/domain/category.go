package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryFree   Category = "FREE"
	CategoryTravel Category = "TRAVEL"
	CategoryFood   Category = "FOOD"
	CategoryQnA    Category = "QNA"
)

var Categories = []Category{CategoryFree, CategoryTravel, CategoryFood, CategoryQnA}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts any letter case, "free" and "FREE" are the same category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidBoard, s)
	}
	return c, nil
}
