package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/azimochilov/instagram-clone/domain"
)

// PostHandlers handles content HTTP requests
type PostHandlers struct {
	postSvc domain.PostService
}

// NewPostHandlers creates new post handlers
func NewPostHandlers(postSvc domain.PostService) *PostHandlers {
	return &PostHandlers{postSvc: postSvc}
}

// PostRequest represents a post create or update request
type PostRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
}

// CommentRequest represents a comment creation request
type CommentRequest struct {
	Body     string `json:"body" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// Create handles post creation
func (h *PostHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postSvc.CreatePost(c.Request.Context(), userID, req.ImageURL, req.Caption)
	if err != nil {
		if err == domain.ErrCaptionTooLong {
			respondError(c, http.StatusBadRequest, "Caption is too long")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	respond(c, http.StatusCreated, "Post created", post)
}

// List handles the paginated feed
func (h *PostHandlers) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	posts, total, err := h.postSvc.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	respond(c, http.StatusOK, "Posts fetched", gin.H{
		"posts": posts,
		"total": total,
		"page":  page,
	})
}

// Get handles single post lookup
func (h *PostHandlers) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrPostNotFound {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get post")
		return
	}

	respond(c, http.StatusOK, "Post fetched", post)
}

// Update handles post editing by its author
func (h *PostHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postSvc.UpdatePost(c.Request.Context(), userID, id, req.ImageURL, req.Caption)
	if err != nil {
		switch err {
		case domain.ErrPostNotFound:
			respondError(c, http.StatusNotFound, "Post not found")
		case domain.ErrNotAuthor:
			respondError(c, http.StatusForbidden, "Only the author can edit this post")
		case domain.ErrCaptionTooLong:
			respondError(c, http.StatusBadRequest, "Caption is too long")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	respond(c, http.StatusOK, "Post updated", post)
}

// Delete handles post removal by its author or an admin
func (h *PostHandlers) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	err := h.postSvc.DeletePost(c.Request.Context(), userID, currentUserRole(c), id)
	if err != nil {
		switch err {
		case domain.ErrPostNotFound:
			respondError(c, http.StatusNotFound, "Post not found")
		case domain.ErrNotAuthor:
			respondError(c, http.StatusForbidden, "Only the author can delete this post")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateComment handles comment creation on a post
func (h *PostHandlers) CreateComment(c *gin.Context) {
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

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.postSvc.CreateComment(c.Request.Context(), userID, postID, req.ParentID, req.Body)
	if err != nil {
		switch err {
		case domain.ErrPostNotFound:
			respondError(c, http.StatusNotFound, "Post not found")
		case domain.ErrCommentNotFound:
			respondError(c, http.StatusNotFound, "Parent comment not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create comment")
		}
		return
	}

	respond(c, http.StatusCreated, "Comment created", comment)
}

// ListComments handles listing a post's comments
func (h *PostHandlers) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	comments, err := h.postSvc.ListComments(c.Request.Context(), postID)
	if err != nil {
		if err == domain.ErrPostNotFound {
			respondError(c, http.StatusNotFound, "Post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to list comments")
		return
	}

	respond(c, http.StatusOK, "Comments fetched", comments)
}

// GetComment handles single comment lookup
func (h *PostHandlers) GetComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	comment, err := h.postSvc.GetComment(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrCommentNotFound {
			respondError(c, http.StatusNotFound, "Comment not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get comment")
		return
	}

	respond(c, http.StatusOK, "Comment fetched", comment)
}

// DeleteComment handles comment removal by its author or an admin
func (h *PostHandlers) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	err := h.postSvc.DeleteComment(c.Request.Context(), userID, currentUserRole(c), id)
	if err != nil {
		switch err {
		case domain.ErrCommentNotFound:
			respondError(c, http.StatusNotFound, "Comment not found")
		case domain.ErrNotAuthor:
			respondError(c, http.StatusForbidden, "Only the author can delete this comment")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete comment")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
