package models

import "time"

// InquiryRequest is the contact form payload posted by the landing page.
type InquiryRequest struct {
	Name       string        `json:"name" binding:"required"`
	Email      string        `json:"email" binding:"required"`
	Phone      string        `json:"phone"`
	Message    string        `json:"message" binding:"required"`
	EventType  string        `json:"eventType"`
	EventDate  string        `json:"eventDate"`
	GuestCount *int          `json:"guestCount"`
	Calculator *QuoteRequest `json:"calculator"`
}

// Inquiry is a stored contact request, optionally carrying the quote the customer saw.
type Inquiry struct {
	ID         string       `bson:"_id" json:"id"`
	Name       string       `bson:"name" json:"name"`
	Email      string       `bson:"email" json:"email"`
	Phone      string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Message    string       `bson:"message" json:"message"`
	EventType  string       `bson:"event_type,omitempty" json:"eventType,omitempty"`
	EventDate  string       `bson:"event_date,omitempty" json:"eventDate,omitempty"`
	GuestCount int          `bson:"guest_count,omitempty" json:"guestCount,omitempty"`
	Quote      *QuoteResult `bson:"quote,omitempty" json:"quote,omitempty"`
	CreatedAt  time.Time    `bson:"created_at" json:"createdAt"`
}
