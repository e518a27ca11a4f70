package handler

import "time"

type postDetailRequest struct {
	Description string `json:"description" validate:"required"`
	Utilities   string `json:"utilities"   validate:"omitempty,oneof=included excluded shared"`
	Pet         string `json:"pet"         validate:"omitempty,oneof=allowed not_allowed case_by_case"`
	Income      string `json:"income"      validate:"omitempty,oneof=yes no"`
	SizeSqm     int    `json:"size_sqm"    validate:"omitempty,gt=0"`
	School      int    `json:"school"      validate:"omitempty,gte=0"`
	Bus         int    `json:"bus"         validate:"omitempty,gte=0"`
	Restaurant  int    `json:"restaurant"  validate:"omitempty,gte=0"`
}

type createPostRequest struct {
	Title     string            `json:"title"     validate:"required"`
	Price     int64             `json:"price"     validate:"required,gt=0"`
	Address   string            `json:"address"   validate:"required"`
	City      string            `json:"city"      validate:"required"`
	Bedroom   int               `json:"bedroom"   validate:"required,gt=0"`
	Bathroom  int               `json:"bathroom"  validate:"required,gt=0"`
	Type      string            `json:"type"      validate:"required,oneof=rent buy vacation"`
	Property  string            `json:"property"  validate:"required,oneof=apartment house condo land"`
	Latitude  float64           `json:"latitude"  validate:"required"`
	Longitude float64           `json:"longitude" validate:"required"`
	Images    []string          `json:"images"    validate:"required,min=1"`
	Detail    postDetailRequest `json:"detail"    validate:"required"`
}

// updatePostRequest is a partial update; nil fields are left unchanged.
type updatePostRequest struct {
	Title     *string                  `json:"title"`
	Price     *int64                   `json:"price"     validate:"omitempty,gt=0"`
	Address   *string                  `json:"address"`
	City      *string                  `json:"city"`
	Bedroom   *int                     `json:"bedroom"   validate:"omitempty,gt=0"`
	Bathroom  *int                     `json:"bathroom"  validate:"omitempty,gt=0"`
	Type      *string                  `json:"type"      validate:"omitempty,oneof=rent buy vacation"`
	Property  *string                  `json:"property"  validate:"omitempty,oneof=apartment house condo land"`
	Latitude  *float64                 `json:"latitude"`
	Longitude *float64                 `json:"longitude"`
	Images    *[]string                `json:"images"    validate:"omitempty,min=1"`
	Detail    *updatePostDetailRequest `json:"detail"`
}

type updatePostDetailRequest struct {
	Description *string `json:"description"`
	Utilities   *string `json:"utilities"  validate:"omitempty,oneof=included excluded shared"`
	Pet         *string `json:"pet"        validate:"omitempty,oneof=allowed not_allowed case_by_case"`
	Income      *string `json:"income"     validate:"omitempty,oneof=yes no"`
	SizeSqm     *int    `json:"size_sqm"   validate:"omitempty,gt=0"`
	School      *int    `json:"school"     validate:"omitempty,gte=0"`
	Bus         *int    `json:"bus"        validate:"omitempty,gte=0"`
	Restaurant  *int    `json:"restaurant" validate:"omitempty,gte=0"`
}

type postResponse struct {
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

type postDetailResponse struct {
	Description string `json:"description"`
	Utilities   string `json:"utilities,omitempty"`
	Pet         string `json:"pet,omitempty"`
	Income      string `json:"income,omitempty"`
	SizeSqm     int    `json:"size_sqm,omitempty"`
	School      int    `json:"school,omitempty"`
	Bus         int    `json:"bus,omitempty"`
	Restaurant  int    `json:"restaurant,omitempty"`
}

// postWithDetailResponse is the full listing view. Detail is null when the
// detail document is missing.
type postWithDetailResponse struct {
	postResponse
	Detail *postDetailResponse `json:"detail"`
}
