package api

import (
	"net/http"

	authHandler "marketplace-server/internal/auth/handler"
	payoutHandler "marketplace-server/internal/payouts/handler"
	referralHandler "marketplace-server/internal/referral/handler"
	rewardHandler "marketplace-server/internal/rewards/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	referralHandler *referralHandler.Handler
	rewardHandler   *rewardHandler.Handler
	payoutHandler   *payoutHandler.Handler
}

func New(router *gin.RouterGroup, auth authHandler.Handler, referral *referralHandler.Handler,
	reward *rewardHandler.Handler, payout *payoutHandler.Handler) API {
	return API{
		router:          router,
		authHandler:     auth,
		referralHandler: referral,
		rewardHandler:   reward,
		payoutHandler:   payout,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/signup", a.authHandler.HandleSignup)
		authGroup.POST("/login", a.authHandler.HandleLogin)
	}

	// Public referral surface: the visitor usually has no session yet, but a
	// bearer token is honored when present so attributions carry the user.
	referralGroup := apiGroup.Group("/referral", a.authHandler.HandleOptionalJWTMiddleware)
	referralGroup.POST("/visits", a.referralHandler.HandleTrackVisit)
	referralGroup.GET("/attribution", a.referralHandler.HandleGetAttribution)

	// Purchase ingestion accepts guest checkouts too.
	apiGroup.POST("/orders", a.authHandler.HandleOptionalJWTMiddleware, a.rewardHandler.HandleCreateOrder)

	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/user", a.authHandler.GetUserInfo)

		protectedGroup.POST("/referral/links", a.referralHandler.HandleCreateLink)
		protectedGroup.GET("/referral/links", a.referralHandler.HandleListLinks)
		protectedGroup.GET("/referral/links/:linkID/stats", a.referralHandler.HandleGetLinkStats)
		protectedGroup.DELETE("/referral/links/:linkID", a.referralHandler.HandleDeactivateLink)

		protectedGroup.POST("/orders/:orderID/purchase", a.rewardHandler.HandleProcessPurchase)

		protectedGroup.GET("/rewards", a.rewardHandler.HandleListRewards)
		protectedGroup.GET("/balance", a.payoutHandler.HandleGetBalance)

		protectedGroup.POST("/payouts", a.payoutHandler.HandleRequestPayout)
		protectedGroup.GET("/payouts", a.payoutHandler.HandleListMyPayouts)
		protectedGroup.GET("/payouts/:payoutID", a.payoutHandler.HandleGetPayout)

		// Operator and superadmin surface; the processors enforce roles.
		protectedGroup.GET("/admin/programs", a.referralHandler.HandleListPrograms)
		protectedGroup.POST("/admin/programs", a.referralHandler.HandleCreateProgram)
		protectedGroup.PATCH("/admin/programs/:programID", a.referralHandler.HandleUpdateProgram)

		protectedGroup.GET("/admin/orders/:orderID", a.rewardHandler.HandleGetOrder)
		protectedGroup.PATCH("/admin/orders/:orderID/status", a.rewardHandler.HandleOrderStatusChange)
		protectedGroup.PATCH("/admin/rewards/:rewardID/status", a.rewardHandler.HandleUpdateRewardStatus)

		protectedGroup.GET("/admin/payouts", a.payoutHandler.HandleListAllPayouts)
		protectedGroup.POST("/admin/payouts/:payoutID/approve", a.payoutHandler.HandleApprovePayout)
		protectedGroup.POST("/admin/payouts/:payoutID/reject", a.payoutHandler.HandleRejectPayout)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
