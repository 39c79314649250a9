package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sandipmavi/Backend-yt/internal/database"
	"github.com/sandipmavi/Backend-yt/pkg/models"
)

func TestCreateCommentMissingFields(t *testing.T) {
	api, router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing comment text", `{"videoId":"651fa0c2b7a4f0c9d8e5a222"}`},
		{"missing video id", `{"commentText":"nice one"}`},
		{"not json", `videoId=abc`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := authedRequest(t, api, "POST", "/api/v1/comment/", strings.NewReader(tc.body), "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "comment text")
		})
	}
}

func TestCreateCommentInvalidVideoID(t *testing.T) {
	api, router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := authedRequest(t, api, "POST", "/api/v1/comment/", strings.NewReader(`{"videoId":"nope","commentText":"hi"}`), "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}

func TestUpdateCommentRequiresNewText(t *testing.T) {
	api, router := newTestRouter(t)

	for _, body := range []string{`{}`, `{"newCommentText":""}`, ``} {
		w := httptest.NewRecorder()
		req := authedRequest(t, api, "PUT", "/api/v1/comment/update/651fa0c2b7a4f0c9d8e5a333", strings.NewReader(body), "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "new comment text")
	}
}

func TestUpdateCommentInvalidID(t *testing.T) {
	api, router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := authedRequest(t, api, "PUT", "/api/v1/comment/update/not-an-object-id", strings.NewReader(`{"newCommentText":"edited"}`), "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Comment not found")
}

func TestDeleteCommentInvalidID(t *testing.T) {
	api, router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := authedRequest(t, api, "DELETE", "/api/v1/comment/not-an-object-id", nil, "")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCommentsByVideoInvalidID(t *testing.T) {
	_, router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/comment/not-an-object-id", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Video not found")
}

func TestUpdateCommentNonAuthorForbidden(t *testing.T) {
	api, mockRepo, router := newMockRouter(t)

	commentID := primitive.NewObjectID()
	comment := &models.Comment{ID: commentID, UserID: primitive.NewObjectID(), CommentText: "someone else's"}
	mockRepo.On("GetComment", mock.Anything, commentID).Return(comment, nil)

	w := httptest.NewRecorder()
	req := authedRequest(t, api, "PUT", "/api/v1/comment/update/"+commentID.Hex(), strings.NewReader(`{"newCommentText":"hijacked"}`), "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not authorized")
	mockRepo.AssertNotCalled(t, "UpdateCommentText", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCommentNonAuthorForbidden(t *testing.T) {
	api, mockRepo, router := newMockRouter(t)

	commentID := primitive.NewObjectID()
	comment := &models.Comment{ID: commentID, UserID: primitive.NewObjectID()}
	mockRepo.On("GetComment", mock.Anything, commentID).Return(comment, nil)

	w := httptest.NewRecorder()
	req := authedRequest(t, api, "DELETE", "/api/v1/comment/"+commentID.Hex(), nil, "")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockRepo.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
}

func TestDeleteCommentSurvivesMissingParentVideo(t *testing.T) {
	api, mockRepo, router := newMockRouter(t)

	authorID, err := primitive.ObjectIDFromHex("651fa0c2b7a4f0c9d8e5a111")
	assert.NoError(t, err)

	commentID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()
	comment := &models.Comment{ID: commentID, VideoID: videoID, UserID: authorID}
	mockRepo.On("GetComment", mock.Anything, commentID).Return(comment, nil)
	// The parent video is already gone; the comment must still be deleted.
	mockRepo.On("PullComment", mock.Anything, videoID, commentID).Return(database.ErrNotFound)
	mockRepo.On("DeleteComment", mock.Anything, commentID).Return(nil)

	w := httptest.NewRecorder()
	req := authedRequest(t, api, "DELETE", "/api/v1/comment/"+commentID.Hex(), nil, "")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateCommentOnMissingVideo(t *testing.T) {
	api, mockRepo, router := newMockRouter(t)

	videoID := primitive.NewObjectID()
	mockRepo.On("GetVideo", mock.Anything, videoID).Return(nil, database.ErrNotFound)

	w := httptest.NewRecorder()
	req := authedRequest(t, api, "POST", "/api/v1/comment/", strings.NewReader(`{"videoId":"`+videoID.Hex()+`","commentText":"hi"}`), "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
}
