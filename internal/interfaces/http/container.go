package http

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/webloom-dev/webloom/internal/application/access"
	authUsecases "github.com/webloom-dev/webloom/internal/application/auth/usecases"
	creditsUsecases "github.com/webloom-dev/webloom/internal/application/credits/usecases"
	pageUsecases "github.com/webloom-dev/webloom/internal/application/page/usecases"
	paymentUsecases "github.com/webloom-dev/webloom/internal/application/payment/usecases"
	sectionUsecases "github.com/webloom-dev/webloom/internal/application/section/usecases"
	siteUsecases "github.com/webloom-dev/webloom/internal/application/site/usecases"
	"github.com/webloom-dev/webloom/internal/infrastructure/auth"
	"github.com/webloom-dev/webloom/internal/infrastructure/billing"
	"github.com/webloom-dev/webloom/internal/infrastructure/config"
	"github.com/webloom-dev/webloom/internal/infrastructure/email"
	"github.com/webloom-dev/webloom/internal/infrastructure/ratelimit"
	"github.com/webloom-dev/webloom/internal/infrastructure/repository"
	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/services/content"
)

// Container wires repositories, use cases, and handlers from shared
// infrastructure. Construction order follows the dependency direction:
// repositories, then use cases, then handlers.
type Container struct {
	AuthHandler    *handlers.AuthHandler
	SiteHandler    *handlers.SiteHandler
	PageHandler    *handlers.PageHandler
	SectionHandler *handlers.SectionHandler
	CreditsHandler *handlers.CreditsHandler
	PaymentHandler *handlers.PaymentHandler

	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    ratelimit.RateLimiter
}

func NewContainer(gdb *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	userRepo := repository.NewUserRepository(gdb)
	siteRepo := repository.NewSiteRepository(gdb)
	pageRepo := repository.NewPageRepository(gdb)
	sectionRepo := repository.NewSectionRepository(gdb)
	paymentRepo := repository.NewPaymentRepository(gdb)
	creditsRepo := repository.NewCreditLedgerRepository(gdb)

	txManager := db.NewTransactionManager(gdb)
	resolver := access.NewResolver(siteRepo, pageRepo, sectionRepo)
	contentService := content.NewService()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes, cfg.Auth.RefreshExpDays)
	sessionStore := auth.NewSessionStore(redisClient, cfg.Auth.RefreshExpDays)
	limiter := ratelimit.NewRedisRateLimiter(redisClient)

	billingClient := billing.NewHTTPClient(&cfg.Billing, log)
	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUser,
		Password:     cfg.Email.SMTPPassword,
		FromAddress:  cfg.Email.FromAddress,
		FromName:     cfg.Email.FromName,
		ResetBaseURL: cfg.Email.ResetBaseURL,
	})

	authHandler := handlers.NewAuthHandler(
		authUsecases.NewRegisterUseCase(userRepo, creditsRepo, hasher, jwtService, sessionStore, txManager, emailService, cfg.Quota, log),
		authUsecases.NewLoginUseCase(userRepo, hasher, jwtService, sessionStore, log),
		authUsecases.NewLogoutUseCase(sessionStore, log),
		authUsecases.NewRefreshTokenUseCase(jwtService, sessionStore, log),
		authUsecases.NewForgotPasswordUseCase(userRepo, emailService, cfg.Auth.ResetExpiresMinutes, log),
		authUsecases.NewResetPasswordUseCase(userRepo, hasher, emailService, log),
		authUsecases.NewGetProfileUseCase(userRepo, log),
		log,
	)

	siteHandler := handlers.NewSiteHandler(
		siteUsecases.NewCreateSiteUseCase(siteRepo, pageRepo, userRepo, txManager, log),
		siteUsecases.NewGetSiteUseCase(resolver, log),
		siteUsecases.NewListSitesUseCase(siteRepo, log),
		siteUsecases.NewUpdateSiteUseCase(resolver, siteRepo, log),
		siteUsecases.NewDeleteSiteUseCase(resolver, siteRepo, pageRepo, sectionRepo, txManager, log),
		siteUsecases.NewPublishSiteUseCase(resolver, siteRepo, pageRepo, log),
		siteUsecases.NewDuplicateSiteUseCase(resolver, siteRepo, pageRepo, sectionRepo, userRepo, txManager, log),
		siteUsecases.NewTransferOwnershipUseCase(resolver, siteRepo, userRepo, txManager, log),
		siteUsecases.NewSiteStatsUseCase(resolver, pageRepo, sectionRepo, log),
		log,
	)

	pageHandler := handlers.NewPageHandler(
		pageUsecases.NewCreatePageUseCase(resolver, pageRepo, userRepo, log),
		pageUsecases.NewGetPageUseCase(resolver, log),
		pageUsecases.NewListPagesUseCase(resolver, pageRepo, log),
		pageUsecases.NewUpdatePageUseCase(resolver, pageRepo, log),
		pageUsecases.NewDeletePageUseCase(resolver, pageRepo, sectionRepo, txManager, log),
		pageUsecases.NewDuplicatePageUseCase(resolver, pageRepo, sectionRepo, userRepo, txManager, log),
		pageUsecases.NewReorderPagesUseCase(resolver, pageRepo, txManager, log),
		pageUsecases.NewSetHomepageUseCase(resolver, pageRepo, txManager, log),
		log,
	)

	sectionHandler := handlers.NewSectionHandler(
		sectionUsecases.NewCreateSectionUseCase(resolver, sectionRepo, userRepo, log),
		sectionUsecases.NewGetSectionUseCase(resolver, contentService, log),
		sectionUsecases.NewListSectionsUseCase(resolver, sectionRepo, log),
		sectionUsecases.NewUpdateSectionUseCase(resolver, sectionRepo, contentService, log),
		sectionUsecases.NewDeleteSectionUseCase(resolver, sectionRepo, txManager, log),
		sectionUsecases.NewReorderSectionsUseCase(resolver, sectionRepo, txManager, log),
		log,
	)

	creditsHandler := handlers.NewCreditsHandler(
		creditsUsecases.NewGetBalanceUseCase(creditsRepo, log),
		creditsUsecases.NewConsumeCreditsUseCase(creditsRepo, txManager, log),
		creditsUsecases.NewGrantCreditsUseCase(creditsRepo, userRepo, log),
		creditsUsecases.NewUpdateResetFrequencyUseCase(creditsRepo, userRepo, log),
		log,
	)

	createIntentUC := paymentUsecases.NewCreateIntentUseCase(paymentRepo, userRepo, billingClient, cfg.Billing, log)
	paymentHandler := handlers.NewPaymentHandler(
		createIntentUC,
		paymentUsecases.NewConfirmIntentUseCase(paymentRepo, creditsRepo, billingClient, txManager, log),
		paymentUsecases.NewCancelIntentUseCase(paymentRepo, billingClient, log),
		paymentUsecases.NewRefundPaymentUseCase(paymentRepo, billingClient, log),
		paymentUsecases.NewPurchaseCreditsUseCase(createIntentUC, log),
		paymentUsecases.NewGetPaymentUseCase(paymentRepo, log),
		paymentUsecases.NewListHistoryUseCase(paymentRepo, log),
		paymentUsecases.NewCreateSubscriptionUseCase(userRepo, billingClient, log),
		paymentUsecases.NewCancelSubscriptionUseCase(userRepo, billingClient, log),
		paymentUsecases.NewApplyCouponUseCase(userRepo, billingClient, log),
		paymentUsecases.NewListInvoicesUseCase(userRepo, billingClient, log),
		paymentUsecases.NewPaymentMethodsUseCase(userRepo, billingClient, log),
		log,
	)

	return &Container{
		AuthHandler:    authHandler,
		SiteHandler:    siteHandler,
		PageHandler:    pageHandler,
		SectionHandler: sectionHandler,
		CreditsHandler: creditsHandler,
		PaymentHandler: paymentHandler,
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, userRepo, log),
		RateLimiter:    limiter,
	}
}
