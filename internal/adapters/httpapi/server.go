package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Server is the HTTP adapter.
type Server struct {
	handler *Handler
	checks  map[string]HealthCheck
	router  *httprouter.Router
}

// NewServer creates a Server and registers every route on a fresh router.
func NewServer(handler *Handler, checks map[string]HealthCheck) *Server {
	s := &Server{
		handler: handler,
		checks:  checks,
		router:  httprouter.New(),
	}
	s.addRoutes()
	return s
}

func (s *Server) addRoutes() {
	h := s.handler
	r := s.router

	r.GET("/healthz", s.healthz)
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	r.GET("/events/:eventID/participants/:participantID/details", h.getParticipantDetails)
	r.POST("/events/:eventID/participants/:participantID/vouchers/redeem", h.redeemVouchers)
	r.POST("/events/:eventID/participants/:participantID/vouchers/edit", h.editVouchers)
	r.GET("/events/:eventID/participants/:participantID/vouchers/history", h.voucherHistory)

	r.GET("/events/:eventID/allocations", h.listAllocations)
	r.GET("/events/:eventID/allocations/export", h.exportAllocations)
	r.POST("/events/:eventID/allocations/bulk-check-in", h.bulkCheckIn)
	r.POST("/allocations/:id/check-in", h.checkInAllocation)
	r.DELETE("/allocations/:id", h.deleteAllocation)
	r.GET("/allocations/pending", h.pendingAllocations)

	r.GET("/public/events/:eventID", h.publicEvent)
	r.POST("/public/events/:eventID/registration/validate", h.validateRegistrationStep)
	r.POST("/public/events/:eventID/registration/next", h.nextRegistrationStep)
	r.POST("/public/events/:eventID/registration/submit", h.submitRegistration)

	r.GET("/setups/badge-templates", h.listBadgeTemplates)
	r.POST("/setups/badge-templates", h.createBadgeTemplate)
	r.PUT("/setups/badge-templates/:id", h.updateBadgeTemplate)
	r.DELETE("/setups/badge-templates/:id", h.deleteBadgeTemplate)
	r.GET("/events/:eventID/certificates", h.listCertificates)
	r.POST("/events/:eventID/certificates", h.createCertificate)
	r.PUT("/events/:eventID/certificates/:certificateID", h.updateCertificate)
	r.DELETE("/events/:eventID/certificates/:certificateID", h.deleteCertificate)
	r.GET("/events/:eventID/badges", h.listEventBadges)
	r.POST("/events/:eventID/badges", h.createEventBadge)
	r.PUT("/events/:eventID/badges/:badgeID", h.updateEventBadge)
	r.DELETE("/events/:eventID/badges/:badgeID", h.deleteEventBadge)
	r.GET("/setups/travel-requirements", h.listTravelRequirements)
	r.PUT("/setups/travel-requirements/:country", h.upsertTravelRequirement)
	r.GET("/setups/vendor-hotels", h.searchVendorHotels)
	r.POST("/setups/vendor-hotels", h.createVendorHotel)
	r.PUT("/setups/vendor-hotels/:id", h.updateVendorHotel)
	r.DELETE("/setups/vendor-hotels/:id", h.deleteVendorHotel)

	r.GET("/chat/rooms", h.listChatRooms)
	r.GET("/chat/rooms/:roomID/messages", h.pollRoom)
	r.POST("/chat/rooms/:roomID/messages", h.sendRoomMessage)
	r.GET("/chat/direct/:email", h.directThread)
	r.POST("/chat/direct/:email", h.sendDirectMessage)
	r.GET("/chat/conversations", h.listConversations)
}

// Handler returns the router wrapped with the scope and access log
// middleware.
func (s *Server) Handler() http.Handler {
	return withScope(s.handler.defaultLocale, withAccessLog(s.router))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			slog.Warn("health check failed", "dependency", name, "error", err)
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}
	writeJSON(w, status, map[string]any{"status": http.StatusText(status), "checks": results})
}

// ListenAndServe serves on addr until ctx is cancelled, then drains in-flight
// requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	slog.Info("http server stopped")
	return nil
}
