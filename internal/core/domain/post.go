package domain

import (
	"errors"
	"time"
)

// Listing type of a post.
const (
	ListingRent     = "rent"
	ListingBuy      = "buy"
	ListingVacation = "vacation"
)

// Property kinds.
const (
	PropertyApartment = "apartment"
	PropertyHouse     = "house"
	PropertyCondo     = "condo"
	PropertyLand      = "land"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a property listing. OwnerID references the authoring user and is
// fixed at creation time; it is never reassigned.
type Post struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Bedroom   int       `json:"bedroom"`
	Bathroom  int       `json:"bathroom"`
	Type      string    `json:"type"`
	Property  string    `json:"property"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostDetail holds the long-form attributes of a listing, stored as a
// separate document keyed by PostID.
type PostDetail struct {
	PostID      string `json:"post_id"`
	Description string `json:"description"`
	Utilities   string `json:"utilities,omitempty"`
	Pet         string `json:"pet,omitempty"`
	Income      string `json:"income,omitempty"`
	SizeSqm     int    `json:"size_sqm,omitempty"`
	School      int    `json:"school,omitempty"`
	Bus         int    `json:"bus,omitempty"`
	Restaurant  int    `json:"restaurant,omitempty"`
}

// SavedPost is the edge between a user and a post they bookmarked.
// (user_id, post_id) is unique.
type SavedPost struct {
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
