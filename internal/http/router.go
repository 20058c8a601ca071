package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/azimochilov/instagram-clone/internal/http/handlers"
	"github.com/azimochilov/instagram-clone/internal/http/middleware"
)

func BuildRouter(
	ach *handlers.AccountHandlers,
	ah *handlers.AuthHandlers,
	ph *handlers.PostHandlers,
	eh *handlers.EngagementHandlers,
	plh *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	users := r.Group("/users")
	users.POST("/signup", ach.Signup)
	users.POST("/login", ah.Login)
	users.POST("/login/refresh", ah.Refresh)
	users.POST("/forgot-password", ah.ForgotPassword)

	// Registration continues under the token pair minted at signup
	usersAuth := r.Group("/users").Use(jwtmw.WithJWT())
	usersAuth.POST("/verify", ach.Verify)
	usersAuth.GET("/verify/resend", ach.ResendCode)
	usersAuth.PUT("/profile", ach.CompleteProfile)
	usersAuth.PUT("/profile/photo", ach.SetPhoto)
	usersAuth.GET("/me", ach.Me)
	usersAuth.POST("/logout", ah.Logout)
	usersAuth.PUT("/reset-password", ah.ResetPassword)

	r.GET("/posts", ph.List)
	r.GET("/posts/:id", ph.Get)
	r.GET("/posts/:id/comments", ph.ListComments)
	r.GET("/posts/:id/likes", eh.PostLikes)
	r.GET("/comments/:id", ph.GetComment)
	r.GET("/comments/:id/likes", eh.CommentLikes)

	content := r.Group("/").Use(jwtmw.WithJWT())
	content.POST("/posts", ph.Create)
	content.PUT("/posts/:id", ph.Update)
	content.DELETE("/posts/:id", ph.Delete)
	content.POST("/posts/:id/comments", ph.CreateComment)
	content.DELETE("/comments/:id", ph.DeleteComment)
	content.POST("/posts/:id/likes", eh.LikePost)
	content.DELETE("/posts/:id/likes", eh.UnlikePost)
	content.POST("/comments/:id/likes", eh.LikeComment)
	content.DELETE("/comments/:id/likes", eh.UnlikeComment)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", plh.List)
	adm.POST("/policies", plh.Add)
	adm.DELETE("/policies", plh.Remove)
	adm.DELETE("/posts/:id", ph.Delete)
	adm.DELETE("/comments/:id", ph.DeleteComment)

	return r
}
