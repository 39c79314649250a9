package main

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sandipmavi/Backend-yt/internal/auth"
	"github.com/sandipmavi/Backend-yt/internal/database"
	"github.com/sandipmavi/Backend-yt/internal/metrics"
	"github.com/sandipmavi/Backend-yt/pkg/models"
)

// Signup endpoint. Multipart form: channelName, email, phone, password and
// the channel logo file under "logoUrl".
func (api *API) signup(c *gin.Context) {
	channelName := c.PostForm("channelName")
	email := c.PostForm("email")
	phone := c.PostForm("phone")
	password := c.PostForm("password")

	if channelName == "" || email == "" || phone == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide channelName, email, phone and password"})
		return
	}

	logo, err := c.FormFile("logoUrl")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload a channel logo"})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		api.log.ErrorWithErr("Failed to hash password", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	tempPath, cleanup, err := api.saveTempUpload(c, logo)
	if err != nil {
		api.log.ErrorWithErr("Failed to save uploaded logo", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}
	defer cleanup()

	asset, err := api.storage.UploadFile(c.Request.Context(), tempPath, logo.Filename, "logos")
	if err != nil {
		api.log.ErrorWithErr("Failed to upload logo", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	user := &models.User{
		ChannelName: channelName,
		Email:       email,
		Phone:       phone,
		Password:    hash,
		LogoURL:     asset.URL,
		LogoID:      asset.ID,
	}

	// A failure here orphans the uploaded logo; accepted, not rolled back.
	if err := api.repo.CreateUser(c.Request.Context(), user); err != nil {
		api.log.ErrorWithErr("Failed to create user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user"})
		return
	}

	metrics.UserSignupsTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"user":    user,
		"message": "User created successfully",
	})
}

// Login endpoint
func (api *API) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	user, err := api.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, database.ErrNotFound) {
		metrics.RecordLogin("not_found")
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to look up user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		metrics.RecordLogin("bad_password")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := api.tokens.Issue(user.ID.Hex(), user.Email, user.Phone, user.ChannelName, user.LogoID)
	if err != nil {
		api.log.ErrorWithErr("Failed to issue token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	metrics.RecordLogin("success")

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"token":   token,
		"message": "Login successful",
	})
}

// saveTempUpload writes a multipart upload to a temp file and returns its
// path together with a cleanup func.
func (api *API) saveTempUpload(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	tempPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		return "", nil, err
	}
	return tempPath, func() { os.Remove(tempPath) }, nil
}
