package resumes

import "time"

// Resume is the caller's single resume document, one row per user.
type Resume struct {
	UserID    string    `json:"-"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CacheKey is the rendered-resume cache entry invalidated on every save.
func CacheKey(userID string) string {
	return "resume:" + userID
}
