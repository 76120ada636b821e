package handlers

import (
	"context"
	"fmt"
	"net/http"

	"concierge/db"
	"concierge/models"
	"concierge/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Store is the slice of the persistence adapter the handlers use. Tests
// swap in an in-memory implementation.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) error
	FindAll(ctx context.Context, collection string, out any) error
}

type Handler struct {
	store    Store
	notifier *services.Notifier
}

func New(store Store, notifier *services.Notifier) *Handler {
	return &Handler{store: store, notifier: notifier}
}

// Register mounts every route under the /api prefix.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/", h.Root)

		api.POST("/contact", h.CreateContactInquiry)
		api.GET("/contact", h.ListContactInquiries)

		api.POST("/service-request", h.CreateServiceRequest)
		api.GET("/service-requests", h.ListServiceRequests)

		api.GET("/membership-tiers", h.GetMembershipTiers)
		api.GET("/nutrimeal-plans", h.GetNutriMealPlans)
	}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Nicholas Concierge API"})
}

func (h *Handler) CreateContactInquiry(c *gin.Context) {
	var req models.ContactInquiryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inquiry := models.NewContactInquiry(req)
	if err := h.store.Insert(c.Request.Context(), db.ContactInquiries, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to save contact inquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inquiry"})
		return
	}

	go h.notifier.SubmissionReceived("contact inquiry", inquiry.ID,
		fmt.Sprintf("From: %s <%s>\nService: %s\n\n%s",
			inquiry.Name, inquiry.Email, inquiry.ServiceType, inquiry.Message))

	c.JSON(http.StatusOK, inquiry)
}

func (h *Handler) ListContactInquiries(c *gin.Context) {
	var inquiries []models.ContactInquiry
	if err := h.store.FindAll(c.Request.Context(), db.ContactInquiries, &inquiries); err != nil {
		log.Error().Err(err).Msg("failed to list contact inquiries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if inquiries == nil {
		inquiries = []models.ContactInquiry{}
	}

	c.JSON(http.StatusOK, inquiries)
}

func (h *Handler) CreateServiceRequest(c *gin.Context) {
	var req models.ServiceRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := models.NewServiceRequest(req)
	if err := h.store.Insert(c.Request.Context(), db.ServiceRequests, request); err != nil {
		log.Error().Err(err).Msg("failed to save service request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save request"})
		return
	}

	go h.notifier.SubmissionReceived("service request", request.ID,
		fmt.Sprintf("From: %s <%s>\nCategory: %s\nPreferred: %s %s\nUrgency: %s\n\n%s",
			request.ClientName, request.ClientEmail, request.ServiceCategory,
			request.PreferredDate, request.PreferredTime, request.Urgency,
			request.ServiceDetails))

	c.JSON(http.StatusOK, request)
}

func (h *Handler) ListServiceRequests(c *gin.Context) {
	var requests []models.ServiceRequest
	if err := h.store.FindAll(c.Request.Context(), db.ServiceRequests, &requests); err != nil {
		log.Error().Err(err).Msg("failed to list service requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if requests == nil {
		requests = []models.ServiceRequest{}
	}

	c.JSON(http.StatusOK, requests)
}

func (h *Handler) GetMembershipTiers(c *gin.Context) {
	c.JSON(http.StatusOK, services.MembershipTiers())
}

func (h *Handler) GetNutriMealPlans(c *gin.Context) {
	c.JSON(http.StatusOK, services.NutriMealPlans())
}
