package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"manomangal/api"
	"manomangal/config"
	"manomangal/internal/auth"
	"manomangal/internal/domain"
	"manomangal/internal/middleware"
	"manomangal/internal/notify"
	"manomangal/internal/service/booking"
	"manomangal/internal/service/dashboard"
	"manomangal/internal/service/inquiry"
	"manomangal/internal/service/menu"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth      *auth.Service
	Tokens    *auth.TokenManager
	Booking   booking.BookingUseCase
	Inquiry   inquiry.InquiryUseCase
	Menu      menu.MenuUseCase
	Dashboard dashboard.DashboardUseCase
	Formatter *notify.Formatter
}

// NewRouter assembles the full route surface. The dashboard group is the
// only one behind the owner gate; everything else is public or requires
// just an authenticated session.
func NewRouter(svcs Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS())

	authRequired := middleware.Auth(svcs.Tokens)

	api.NewPagesHandler().Register(router)
	api.NewGalleryHandler().Register(router)
	api.NewMenuHandler(svcs.Menu).Register(router)
	api.NewContactHandler(svcs.Inquiry).Register(router)
	api.NewAuthHandler(svcs.Auth).Register(router)
	api.NewBookingHandler(svcs.Booking).Register(router, authRequired)
	api.NewDashboardHandler(svcs.Dashboard).Register(router, authRequired, middleware.RequireRole(domain.RoleOwner))
	api.NewNotificationHandler(svcs.Formatter).Register(router)

	return router
}

// Run serves HTTP until the context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, router *gin.Engine) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
