package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sandipmavi/Backend-yt/internal/database"
	"github.com/sandipmavi/Backend-yt/internal/metrics"
	"github.com/sandipmavi/Backend-yt/pkg/models"
)

// Create comment endpoint
func (api *API) createComment(c *gin.Context) {
	var req struct {
		VideoID     string `json:"videoId"`
		CommentText string `json:"commentText"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.VideoID == "" || req.CommentText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide video ID and comment text"})
		return
	}

	videoID, err := primitive.ObjectIDFromHex(req.VideoID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	// The parent video must exist before the comment is created.
	if _, err := api.repo.GetVideo(c.Request.Context(), videoID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
			return
		}
		api.log.ErrorWithErr("Failed to load video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment"})
		return
	}

	comment := &models.Comment{
		VideoID:     videoID,
		UserID:      authorID,
		CommentText: req.CommentText,
	}

	if err := api.repo.CreateComment(c.Request.Context(), comment); err != nil {
		api.log.ErrorWithErr("Failed to create comment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment"})
		return
	}

	// The comment and the video's list are two separate writes; a crash
	// between them leaves a dangling reference. Accepted gap.
	if err := api.repo.PushComment(c.Request.Context(), videoID, comment.ID); err != nil {
		api.log.ErrorWithErr("Failed to attach comment to video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating comment"})
		return
	}

	metrics.CommentsCreatedTotal.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// Delete comment endpoint. Author only.
func (api *API) deleteComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}

	comment, err := api.repo.GetComment(c.Request.Context(), commentID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to load comment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		return
	}

	authorID, ok := currentUserID(c)
	if !ok || comment.UserID != authorID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to delete this comment"})
		return
	}

	// Detach from the parent first. A missing parent is not fatal; the
	// comment itself must still go.
	if err := api.repo.PullComment(c.Request.Context(), comment.VideoID, commentID); err != nil && !errors.Is(err, database.ErrNotFound) {
		api.log.ErrorWithErr("Failed to detach comment from video", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		return
	}

	if err := api.repo.DeleteComment(c.Request.Context(), commentID); err != nil && !errors.Is(err, database.ErrNotFound) {
		api.log.ErrorWithErr("Failed to delete comment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// Update comment endpoint. Author only.
func (api *API) updateComment(c *gin.Context) {
	var req struct {
		NewCommentText string `json:"newCommentText"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.NewCommentText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide new comment text"})
		return
	}

	commentID, err := primitive.ObjectIDFromHex(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}

	comment, err := api.repo.GetComment(c.Request.Context(), commentID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to load comment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating comment"})
		return
	}

	authorID, ok := currentUserID(c)
	if !ok || comment.UserID != authorID {
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not authorized to edit this comment"})
		return
	}

	updated, err := api.repo.UpdateCommentText(c.Request.Context(), commentID, req.NewCommentText)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
		return
	}
	if err != nil {
		api.log.ErrorWithErr("Failed to update comment", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Comment updated successfully",
		"updatedComment": updated,
	})
}

// List all comments endpoint
func (api *API) listComments(c *gin.Context) {
	comments, err := api.repo.ListComments(c.Request.Context())
	if err != nil {
		api.log.ErrorWithErr("Failed to list comments", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Comments fetched successfully",
		"comments": comments,
	})
}

// List a video's comments endpoint, joined with author display fields
func (api *API) listCommentsByVideo(c *gin.Context) {
	videoID, err := primitive.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Video not found"})
		return
	}

	comments, err := api.repo.ListCommentsByVideo(c.Request.Context(), videoID)
	if err != nil {
		api.log.ErrorWithErr("Failed to list video comments", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
