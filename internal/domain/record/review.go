package record

import (
	"fmt"
	"strconv"
	"time"
)

// Review is a canonical product review.
type Review struct {
	id        int
	userID    int
	productID int
	rating    float64
	message   string
	createdAt time.Time
}

// NewReview creates a canonical review record.
func NewReview(id, userID, productID int, rating float64, message string, createdAt time.Time) (Review, error) {
	if id <= 0 {
		return Review{}, fmt.Errorf("review record requires a positive id, got %d", id)
	}
	return Review{
		id:        id,
		userID:    userID,
		productID: productID,
		rating:    rating,
		message:   message,
		createdAt: createdAt,
	}, nil
}

// ID returns the review identifier.
func (r *Review) ID() int { return r.id }

// UserID returns the id of the review author.
func (r *Review) UserID() int { return r.userID }

// ProductID returns the id of the reviewed product.
func (r *Review) ProductID() int { return r.productID }

// Rating returns the numeric rating.
func (r *Review) Rating() float64 { return r.rating }

// Message returns the review text.
func (r *Review) Message() string { return r.message }

// CreatedAt returns the review creation time. Zero when upstream omitted it.
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// RatingString returns the decimal-string rendering of the rating used for
// exact query matching (4.5 renders as "4.5", 4 as "4").
func (r *Review) RatingString() string {
	return strconv.FormatFloat(r.rating, 'f', -1, 64)
}
