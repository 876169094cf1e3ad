package common

import (
	"fmt"
	"strings"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}

// Pagination addresses a zero-based page of Limit records.
type Pagination struct {
	Page  uint
	Limit uint
}

// NewPaginationFromOneBased treats page 0 and page 1 as the first page.
func NewPaginationFromOneBased(page uint, limit uint) Pagination {
	if page > 0 {
		page--
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Offset() uint {
	return p.Page * p.Limit
}
