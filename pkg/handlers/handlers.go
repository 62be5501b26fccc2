package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"videoshare/pkg/logger"
	"videoshare/pkg/models"
	"videoshare/pkg/storage"
)

// API holds the two collaborators every handler needs: a database session
// and an object store. Both are injected so tests can swap in doubles.
type API struct {
	DB    *gorm.DB
	Store storage.ObjectStore
}

func New(db *gorm.DB, store storage.ObjectStore) *API {
	return &API{DB: db, Store: store}
}

// Register wires every route onto the router.
func (a *API) Register(r *gin.Engine) {
	r.POST("/creator/upload", a.Upload)
	r.GET("/videos/latest", a.LatestVideos)
	r.POST("/videos/:id/comments", a.PostComment)
	r.GET("/videos/:id/comments", a.ListComments)
	r.POST("/videos/:id/rate", a.RateVideo)
	r.GET("/videos/:id/ratings", a.VideoRatings)
	r.POST("/users/signup", a.Signup)
	r.POST("/users/login", a.Login)
	r.GET("/users", a.ListUsers)
}

type commentRequest struct {
	UserID      int    `json:"userId"`
	CommentText string `json:"commentText"`
}

type ratingRequest struct {
	UserID int `json:"userId"`
	Stars  int `json:"stars"`
}

type signupRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}

type loginRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Upload stores the file in the object store, then inserts the video row
// pointing at the returned URL. The two writes are not transactional: if
// the insert fails the object is left behind.
func (a *API) Upload(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		c.String(http.StatusBadRequest, "No video uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		c.String(http.StatusInternalServerError, "Upload failed: %s", err.Error())
		return
	}
	defer src.Close()

	name := storage.ObjectName(file.Filename, time.Now())
	url, err := a.Store.Put(name, src)
	if err != nil {
		logger.Warning("upload: object store write failed: ", err)
		c.String(http.StatusInternalServerError, "Upload failed: %s", err.Error())
		return
	}

	video := models.Video{
		Title:     c.PostForm("title"),
		Publisher: c.PostForm("publisher"),
		Genre:     c.PostForm("genre"),
		AgeRating: c.PostForm("ageRating"),
		BlobURL:   url,
	}
	if raw := c.PostForm("creatorId"); raw != "" {
		creatorID, err := strconv.Atoi(raw)
		if err != nil {
			c.String(http.StatusInternalServerError, "Upload failed: %s", err.Error())
			return
		}
		video.CreatorID = &creatorID
	}

	if err := a.DB.Create(&video).Error; err != nil {
		logger.Warning("upload: metadata insert failed: ", err)
		c.String(http.StatusInternalServerError, "Upload failed: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video uploaded successfully", "url": url})
}

// LatestVideos returns the 10 most recently created videos, newest first.
func (a *API) LatestVideos(c *gin.Context) {
	videos := []models.Video{}
	if err := a.DB.Order("created_at desc").Limit(10).Find(&videos).Error; err != nil {
		c.String(http.StatusInternalServerError, "Fetch failed: %s", err.Error())
		return
	}
	c.JSON(http.StatusOK, videos)
}

// PostComment inserts a comment for the video in the path. Neither the
// video nor the user is checked for existence.
func (a *API) PostComment(c *gin.Context) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to add comment: %s", err.Error())
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	comment := models.Comment{
		VideoID:     videoID,
		UserID:      req.UserID,
		CommentText: req.CommentText,
	}
	if err := a.DB.Create(&comment).Error; err != nil {
		logger.Warning("comment insert failed: ", err)
		c.String(http.StatusInternalServerError, "Failed to add comment: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment added"})
}

// ListComments returns every comment on the video, newest first. The
// result is unbounded.
func (a *API) ListComments(c *gin.Context) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch comments: %s", err.Error())
		return
	}

	comments := []models.Comment{}
	if err := a.DB.Where("video_id = ?", videoID).Order("created_at desc").Find(&comments).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch comments: %s", err.Error())
		return
	}
	c.JSON(http.StatusOK, comments)
}

// RateVideo inserts a rating after checking the stars range. Repeat
// ratings from the same user are allowed.
func (a *API) RateVideo(c *gin.Context) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to rate video: %s", err.Error())
		return
	}

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Stars < 1 || req.Stars > 5 {
		c.String(http.StatusBadRequest, "Stars must be between 1 and 5")
		return
	}

	rating := models.Rating{
		VideoID: videoID,
		UserID:  req.UserID,
		Stars:   req.Stars,
	}
	if err := a.DB.Create(&rating).Error; err != nil {
		logger.Warning("rating insert failed: ", err)
		c.String(http.StatusInternalServerError, "Failed to rate video: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted"})
}

// VideoRatings returns the average star value and total count for the
// video. With no ratings the average is null and the count 0.
func (a *API) VideoRatings(c *gin.Context) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch ratings: %s", err.Error())
		return
	}

	var summary models.RatingSummary
	err = a.DB.Table("ratings").
		Where("video_id = ?", videoID).
		Select("AVG(CAST(stars AS FLOAT)) AS avg_rating, COUNT(*) AS total_ratings").
		Scan(&summary).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch ratings: %s", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Signup inserts the user row as given. Duplicate emails are left to the
// database to reject, if it does.
func (a *API) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
		Role:         req.Role,
	}
	if err := a.DB.Create(&user).Error; err != nil {
		logger.Warning("signup insert failed: ", err)
		c.String(http.StatusInternalServerError, "Signup failed: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login matches the email case-insensitively and the password hash by
// exact equality. The response carries the full matched row, password
// hash included.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := strings.TrimSpace(req.Email)
	passwordHash := strings.TrimSpace(req.PasswordHash)

	var user models.User
	err := a.DB.Where("LOWER(email) = LOWER(?) AND password_hash = ?", email, passwordHash).
		First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Login failed: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

// ListUsers returns every user row, password hashes included.
func (a *API) ListUsers(c *gin.Context) {
	users := []models.User{}
	if err := a.DB.Find(&users).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch users: %s", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}
