package review

import (
	"errors"
	"strings"
)

const (
	MaxContentLength = 1000
	MaxImages        = 9
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrContentTooLong = errors.New("review content too long")
	ErrTooManyImages  = errors.New("too many review images")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Content struct {
	text string
}

func NewContent(s string) (Content, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: t}, nil
}

func (c Content) String() string { return c.text }
func (c Content) IsEmpty() bool  { return c.text == "" }
