package models

import (
	"time"
)

type User struct {
	ID           int       `gorm:"primary_key" json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Video struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Title     string    `json:"title"`
	Publisher string    `json:"publisher"`
	Genre     string    `json:"genre"`
	AgeRating string    `json:"ageRating"`
	BlobURL   string    `json:"blobUrl"`
	CreatorID *int      `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID          int       `gorm:"primary_key" json:"id"`
	VideoID     int       `json:"videoId"`
	UserID      int       `json:"userId"`
	CommentText string    `json:"commentText"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Rating struct {
	ID        int       `gorm:"primary_key" json:"id"`
	VideoID   int       `json:"videoId"`
	UserID    int       `json:"userId"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingSummary is the aggregate row returned for a video's ratings.
// AvgRating is nil when the video has no ratings.
type RatingSummary struct {
	AvgRating    *float64 `json:"AvgRating"`
	TotalRatings int      `json:"TotalRatings"`
}
