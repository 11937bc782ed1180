package models

import "time"

// Job is a single listing. Owner holds the posting user's identifying
// string as it was at creation time; it is never resynced if the user
// later renames themselves.
type Job struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Owner       string    `json:"owner" gorm:"size:255;index"`
	Title       string    `json:"title" gorm:"size:255"`
	Salary      string    `json:"salary" gorm:"size:100"`
	Location    string    `json:"location" gorm:"size:255"`
	Phone       string    `json:"phone" gorm:"size:50"`
	Description string    `json:"description"`
	AgeRange    string    `json:"age_range" gorm:"size:50"`
	Image       string    `json:"image" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobRequest is the JSON body for POST and PUT /api/jobs. Multipart
// submissions carry the same fields as form values plus an image file.
type JobRequest struct {
	Owner       string `json:"owner"`
	Username    string `json:"username"` // older clients send the owner here
	Title       string `json:"title"`
	Salary      string `json:"salary"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	AgeRange    string `json:"age_range"`
	Image       string `json:"image"`
}

// OwnerName returns whichever owner field the client filled in.
func (r *JobRequest) OwnerName() string {
	if r.Owner != "" {
		return r.Owner
	}
	return r.Username
}
