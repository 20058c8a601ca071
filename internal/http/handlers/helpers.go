package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/azimochilov/instagram-clone/domain"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
// The middleware stores it as a string for Casbin compatibility.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, err := strconv.ParseUint(raw.(string), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// currentUserRole reads the authenticated user role set by the auth middleware.
func currentUserRole(c *gin.Context) string {
	raw, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return raw.(string)
}

// respond renders the success envelope shared by every endpoint.
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// respondError renders the failure envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// tokenResponse renders an issued credential pair.
func tokenResponse(result *domain.AuthResult) gin.H {
	return gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"token_type":    "Bearer",
		"expires_in":    result.ExpiresIn,
		"user": gin.H{
			"id":          result.User.ID,
			"username":    result.User.Username,
			"email":       result.User.Email,
			"phone":       result.User.Phone,
			"role":        result.User.Role,
			"auth_status": result.User.AuthStatus,
		},
	}
}
