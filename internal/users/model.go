package users

import "time"

// User is the application profile behind an authenticated principal.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	PictureURL string    `json:"pictureUrl"`
	Industry   string    `json:"industry"`
	Experience int       `json:"experience"`
	Skills     []string  `json:"skills"`
	Bio        string    `json:"bio"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
