package validator

// Request DTOs shared between handlers and services. Services reference
// them via type aliases so validation rules live in one place.

type RegisterRequest struct {
	PIN      string  `json:"pin" validate:"required,min=4,max=32"`
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	StudentID string `json:"studentId" validate:"required,max=32"`
	PIN       string `json:"pin" validate:"required,max=32"`
}

type UserUpdateRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=100"`
	// A new PIN; re-hashed before storage when present.
	Password *string `json:"password" validate:"omitempty,min=4,max=32"`
}

type ReportCreateRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=2000"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Category    *string `json:"category" validate:"omitempty,oneof=maintenance safety cleanliness other"`
}

type ReportUpdateRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	Category    *string  `json:"category" validate:"omitempty,oneof=maintenance safety cleanliness other"`
	Status      *string  `json:"status" validate:"omitempty,oneof=pending ongoing resolved"`
}
