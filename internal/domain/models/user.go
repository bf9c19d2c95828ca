package models

// User is a registered account (driver or customer). The password hash never
// leaves the repository layer.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
