package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/azimochilov/instagram-clone/domain"
)

// EngagementHandlers handles like HTTP requests
type EngagementHandlers struct {
	engagementSvc domain.EngagementService
}

// NewEngagementHandlers creates new engagement handlers
func NewEngagementHandlers(engagementSvc domain.EngagementService) *EngagementHandlers {
	return &EngagementHandlers{engagementSvc: engagementSvc}
}

// LikePost handles liking a post
func (h *EngagementHandlers) LikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	postID, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.engagementSvc.LikePost(c.Request.Context(), userID, postID); err != nil {
		switch err {
		case domain.ErrPostNotFound:
			respondError(c, http.StatusNotFound, "Post not found")
		case domain.ErrAlreadyLiked:
			respondError(c, http.StatusConflict, "Post is already liked")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to like post")
		}
		return
	}

	respond(c, http.StatusCreated, "Post liked", nil)
}

// UnlikePost handles removing a post like
func (h *EngagementHandlers) UnlikePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	postID, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.engagementSvc.UnlikePost(c.Request.Context(), userID, postID); err != nil {
		switch err {
		case domain.ErrPostNotFound:
			respondError(c, http.StatusNotFound, "Post not found")
		case domain.ErrNotLiked:
			respondError(c, http.StatusBadRequest, "Post is not liked")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to unlike post")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// PostLikes handles listing a post's likes
func (h *EngagementHandlers) PostLikes(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	likes, err := h.engagementSvc.PostLikes(c.Request.Context(), postID)
	if err != nil {
		if err == domain.ErrPostNotFound {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to list likes")
		return
	}

	respond(c, http.StatusOK, "Likes fetched", gin.H{
		"likes": likes,
		"count": len(likes),
	})
}

// LikeComment handles liking a comment
func (h *EngagementHandlers) LikeComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	commentID, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if err := h.engagementSvc.LikeComment(c.Request.Context(), userID, commentID); err != nil {
		switch err {
		case domain.ErrCommentNotFound:
			respondError(c, http.StatusNotFound, "Comment not found")
		case domain.ErrAlreadyLiked:
			respondError(c, http.StatusConflict, "Comment is already liked")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to like comment")
		}
		return
	}

	respond(c, http.StatusCreated, "Comment liked", nil)
}

// UnlikeComment handles removing a comment like
func (h *EngagementHandlers) UnlikeComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	commentID, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if err := h.engagementSvc.UnlikeComment(c.Request.Context(), userID, commentID); err != nil {
		switch err {
		case domain.ErrCommentNotFound:
			respondError(c, http.StatusNotFound, "Comment not found")
		case domain.ErrNotLiked:
			respondError(c, http.StatusBadRequest, "Comment is not liked")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to unlike comment")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// CommentLikes handles listing a comment's likes
func (h *EngagementHandlers) CommentLikes(c *gin.Context) {
	commentID, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	likes, err := h.engagementSvc.CommentLikes(c.Request.Context(), commentID)
	if err != nil {
		if err == domain.ErrCommentNotFound {
			respondError(c, http.StatusNotFound, "Comment not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to list likes")
		return
	}

	respond(c, http.StatusOK, "Likes fetched", gin.H{
		"likes": likes,
		"count": len(likes),
	})
}
