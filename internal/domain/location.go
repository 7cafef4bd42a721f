package domain

// Location is an immutable value object describing where a person lives.
type Location struct {
	City    string `json:"city"    validate:"required,min=1,max=50"`
	State   string `json:"state"   validate:"required,min=1,max=50"`
	Country string `json:"country" validate:"required,min=1,max=50"`
}
