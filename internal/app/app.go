package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/azimochilov/instagram-clone/internal/config"
	httpx "github.com/azimochilov/instagram-clone/internal/http"
	"github.com/azimochilov/instagram-clone/internal/http/handlers"
	"github.com/azimochilov/instagram-clone/internal/http/middleware"
	"github.com/azimochilov/instagram-clone/internal/infrastructure/auth"
	"github.com/azimochilov/instagram-clone/internal/infrastructure/database"
	"github.com/azimochilov/instagram-clone/internal/infrastructure/notifications"
	"github.com/azimochilov/instagram-clone/internal/infrastructure/repositories"
	"github.com/azimochilov/instagram-clone/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	codeRepo := repositories.NewCodeRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.RefreshTTL)
	postRepo := repositories.NewPostRepository(gdb)
	commentRepo := repositories.NewCommentRepository(gdb)
	likeRepo := repositories.NewLikeRepository(gdb)

	// Services
	codeSvc := services.NewCodeService(codeRepo, notificationSvc, services.CodeConfig{
		Length: cfg.OTPLength,
		TTL:    cfg.OTPTTL,
	})
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, codeSvc, cfg.AccessTTL, cfg.RefreshTTL)
	accountSvc := services.NewAccountService(userRepo, codeSvc, passwordSvc, authSvc)
	postSvc := services.NewPostService(postRepo, commentRepo)
	engagementSvc := services.NewEngagementService(likeRepo, postRepo, commentRepo)

	// Handlers
	accountH := handlers.NewAccountHandlers(accountSvc)
	authH := handlers.NewAuthHandlers(authSvc)
	postH := handlers.NewPostHandlers(postSvc)
	engagementH := handlers.NewEngagementHandlers(engagementSvc)
	polH := handlers.NewPolicyHandlers(services.NewCasbinEnforcerWrapper(cas.E))

	// Middleware
	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(accountH, authH, postH, engagementH, polH, jwtMW, casbinMW)

	policies, err := cas.E.GetPolicy()
	if err != nil {
		logrus.WithError(err).Warn("casbin: failed to read policies, skipping seed")
	} else if len(policies) == 0 {
		if _, err := cas.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)"); err != nil {
			logrus.WithError(err).Warn("casbin: failed to seed default policies")
		} else if err := cas.E.SavePolicy(); err != nil {
			logrus.WithError(err).Warn("casbin: failed to persist seeded policies")
		} else {
			logrus.Info("casbin: seeded default policies")
		}
	}

	addr := ":" + cfg.Port
	logrus.WithField("addr", addr).Info("listening")
	return http.ListenAndServe(addr, r)
}
