package models

// Van is a registered vehicle owned by a user. Referential integrity to the
// owner is by convention, not enforced here.
type Van struct {
	ID      int64  `json:"id"`
	Size    string `json:"size"`
	OwnerID int64  `json:"owner_id"`
}
