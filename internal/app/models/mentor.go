package models

// Mentor defines the mentor model based on the 'mentors' collection/table
type Mentor struct {
	ID        string `json:"id" example:"665f1c2e9b1d4a0012345678"` // Unique identifier, assigned by the store
	Name      string `json:"name" example:"Alice"`
	Expertise string `json:"expertise" example:"ML"`
}
