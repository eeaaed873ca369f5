package coverletters

import "time"

// StatusCompleted is the only status a cover letter ever carries: letters are
// written in a single completion call and persisted fully formed.
const StatusCompleted = "completed"

// CoverLetter is a generated letter owned by a user.
type CoverLetter struct {
	ID             string    `json:"id"`
	UserID         string    `json:"-"`
	Content        string    `json:"content"`
	JobDescription string    `json:"jobDescription"`
	CompanyName    string    `json:"companyName"`
	JobTitle       string    `json:"jobTitle"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}
