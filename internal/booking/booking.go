package booking

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type Booking struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Note          string    `json:"note"`
	Status        Status    `json:"status"`
	SuggestedDate *string   `json:"suggestedDate,omitempty"`
	SuggestedTime *string   `json:"suggestedTime,omitempty"`
	ConfirmedDate *string   `json:"confirmedDate,omitempty"`
	ConfirmedTime *string   `json:"confirmedTime,omitempty"`
	QuotedPrice   string    `json:"quotedPrice"`
	CreatedAt     time.Time `json:"createdAt"`
}
