package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sandipmavi/Backend-yt/internal/database"
	"github.com/sandipmavi/Backend-yt/internal/metrics"
	"github.com/sandipmavi/Backend-yt/internal/middleware"
	"github.com/sandipmavi/Backend-yt/internal/tracing"
	"github.com/sandipmavi/Backend-yt/pkg/models"
)

// currentUserID resolves the authenticated caller's id from the request
// context. The guard middleware has already validated the token.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	claims, ok := middleware.Identity(c)
	if !ok {
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return id, true
}

// Whoami endpoint: confirms authentication and echoes the caller's id
func (api *API) whoami(c *gin.Context) {
	claims, _ := middleware.Identity(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "User authenticated",
		"user":    claims.UserID,
	})
}

// Upload video endpoint. Multipart form: title, description, category, tags
// plus the video file under "videoUrl" and the thumbnail under "thumbnailUrl".
func (api *API) uploadVideo(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	tags := c.PostForm("tags")

	if title == "" || description == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide title, description and category"})
		return
	}

	videoFile, err := c.FormFile("videoUrl")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload video and thumbnail"})
		return
	}
	thumbFile, err := c.FormFile("thumbnailUrl")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload video and thumbnail"})
		return
	}

	ownerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	span, ctx := tracing.StartSpan(c.Request.Context(), "video.upload")
	defer tracing.FinishSpan(span)

	videoPath, videoCleanup, err := api.saveTempUpload(c, videoFile)
	if err != nil {
		api.log.ErrorWithErr("Failed to save uploaded video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading video"})
		return
	}
	defer videoCleanup()

	thumbPath, thumbCleanup, err := api.saveTempUpload(c, thumbFile)
	if err != nil {
		api.log.ErrorWithErr("Failed to save uploaded thumbnail", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading video"})
		return
	}
	defer thumbCleanup()

	videoAsset, err := api.storage.UploadFile(ctx, videoPath, videoFile.Filename, "videos")
	if err != nil {
		tracing.LogError(span, err)
		api.log.ErrorWithErr("Failed to upload video asset", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading video"})
		return
	}

	thumbAsset, err := api.storage.UploadFile(ctx, thumbPath, thumbFile.Filename, "thumbnails")
	if err != nil {
		tracing.LogError(span, err)
		api.log.ErrorWithErr("Failed to upload thumbnail asset", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading video"})
		return
	}

	video := &models.Video{
		Title:        title,
		Description:  description,
		Category:     category,
		Tags:         models.ParseTags(tags),
		UserID:       ownerID,
		VideoURL:     videoAsset.URL,
		VideoID:      videoAsset.ID,
		ThumbnailURL: thumbAsset.URL,
		ThumbnailID:  thumbAsset.ID,
	}

	if err := api.repo.CreateVideo(ctx, video); err != nil {
		tracing.LogError(span, err)
		api.log.ErrorWithErr("Failed to create video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading video"})
		return
	}

	metrics.RecordVideoUpload(videoFile.Size)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Video uploaded successfully",
		"video":   video,
	})
}

// Update video endpoint. Owner only. Fields not supplied keep their current
// values; tags fully replace the list when supplied.
func (api *API) updateVideo(c *gin.Context) {
	videoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}

	video, err := api.repo.GetVideo(c.Request.Context(), videoID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to load video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating video"})
		return
	}

	ownerID, ok := currentUserID(c)
	if !ok || video.UserID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to update this video"})
		return
	}

	// Replacing the thumbnail destroys the old asset first; if the new
	// upload then fails the thumbnail is lost. Accepted, not rolled back.
	if thumbFile, err := c.FormFile("thumbnailUrl"); err == nil {
		if err := api.storage.Destroy(c.Request.Context(), video.ThumbnailID); err != nil {
			api.log.ErrorWithErr("Failed to destroy old thumbnail", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating video"})
			return
		}

		thumbPath, cleanup, err := api.saveTempUpload(c, thumbFile)
		if err != nil {
			api.log.ErrorWithErr("Failed to save uploaded thumbnail", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating video"})
			return
		}
		defer cleanup()

		thumbAsset, err := api.storage.UploadFile(c.Request.Context(), thumbPath, thumbFile.Filename, "thumbnails")
		if err != nil {
			api.log.ErrorWithErr("Failed to upload new thumbnail", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating video"})
			return
		}

		video.ThumbnailURL = thumbAsset.URL
		video.ThumbnailID = thumbAsset.ID
	}

	if title := c.PostForm("title"); title != "" {
		video.Title = title
	}
	if description := c.PostForm("description"); description != "" {
		video.Description = description
	}
	if category := c.PostForm("category"); category != "" {
		video.Category = category
	}
	if tags := c.PostForm("tags"); tags != "" {
		video.Tags = models.ParseTags(tags)
	}

	if err := api.repo.UpdateVideo(c.Request.Context(), video); err != nil {
		api.log.ErrorWithErr("Failed to update video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Video updated successfully",
		"video":   video,
	})
}

// Delete video endpoint. Owner only. Destroys both remote assets, then the
// document.
func (api *API) deleteVideo(c *gin.Context) {
	videoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}

	video, err := api.repo.GetVideo(c.Request.Context(), videoID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to load video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting video"})
		return
	}

	ownerID, ok := currentUserID(c)
	if !ok || video.UserID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this video"})
		return
	}

	span, ctx := tracing.StartSpan(c.Request.Context(), "video.delete")
	defer tracing.FinishSpan(span)

	if err := api.storage.Destroy(ctx, video.VideoID); err != nil {
		tracing.LogError(span, err)
		api.log.ErrorWithErr("Failed to destroy video asset", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting video"})
		return
	}
	if err := api.storage.Destroy(ctx, video.ThumbnailID); err != nil {
		tracing.LogError(span, err)
		api.log.ErrorWithErr("Failed to destroy thumbnail asset", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting video"})
		return
	}

	if err := api.repo.DeleteVideo(ctx, videoID); err != nil {
		tracing.LogError(span, err)
		api.log.ErrorWithErr("Failed to delete video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}

// List all videos endpoint
func (api *API) listVideos(c *gin.Context) {
	videos, err := api.repo.ListVideos(c.Request.Context())
	if err != nil {
		api.log.ErrorWithErr("Failed to list videos", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":  videos,
		"message": "Videos fetched successfully",
	})
}

// List the caller's own videos endpoint
func (api *API) listMyVideos(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	videos, err := api.repo.ListVideosByUser(c.Request.Context(), ownerID)
	if err != nil {
		api.log.ErrorWithErr("Failed to list own videos", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":  videos,
		"message": "Videos fetched successfully",
	})
}

// List videos by category endpoint
func (api *API) listVideosByCategory(c *gin.Context) {
	videos, err := api.repo.ListVideosByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		api.log.ErrorWithErr("Failed to list videos by category", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":  videos,
		"message": "Videos fetched successfully",
	})
}

// List videos by tag endpoint
func (api *API) listVideosByTag(c *gin.Context) {
	videos, err := api.repo.ListVideosByTag(c.Request.Context(), c.Param("tag"))
	if err != nil {
		api.log.ErrorWithErr("Failed to list videos by tag", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":  videos,
		"message": "Videos fetched successfully",
	})
}

// Get video endpoint. Records the caller in the viewed-by set and returns
// the updated document; re-viewing is idempotent.
func (api *API) getVideo(c *gin.Context) {
	videoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}

	viewerID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	video, newView, err := api.repo.RecordView(c.Request.Context(), videoID, viewerID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to fetch video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	// Only first-time viewers move the counter; re-views are idempotent.
	if newView {
		metrics.VideoViewsTotal.Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"video":   video,
		"message": "Video fetched successfully",
	})
}

// Like video endpoint
func (api *API) likeVideo(c *gin.Context) {
	api.react(c, "like")
}

// Dislike video endpoint
func (api *API) dislikeVideo(c *gin.Context) {
	api.react(c, "dislike")
}

func (api *API) react(c *gin.Context, kind string) {
	var req struct {
		VideoID string `json:"videoId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide videoId"})
		return
	}

	videoID, err := primitive.ObjectIDFromHex(req.VideoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	if kind == "like" {
		err = api.repo.LikeVideo(c.Request.Context(), videoID, userID)
	} else {
		err = api.repo.DislikeVideo(c.Request.Context(), videoID, userID)
	}
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to record reaction", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	metrics.RecordReaction(kind)

	if kind == "like" {
		c.JSON(http.StatusOK, gin.H{"message": "Liked the video"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Disliked the video"})
}
