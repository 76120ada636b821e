package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactInquiry struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Phone       *string   `json:"phone" bson:"phone"`
	ServiceType string    `json:"service_type" bson:"service_type"`
	Message     string    `json:"message" bson:"message"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	Status      string    `json:"status" bson:"status"`
}

type ContactInquiryCreate struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Phone       *string `json:"phone"`
	ServiceType string  `json:"service_type" binding:"required"`
	Message     string  `json:"message" binding:"required"`
}

// NewContactInquiry builds the stored entity from a creation payload,
// assigning id, created_at and the initial status. These fields are set
// exactly once; there is no update path.
func NewContactInquiry(in ContactInquiryCreate) ContactInquiry {
	return ContactInquiry{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		ServiceType: in.ServiceType,
		Message:     in.Message,
		CreatedAt:   time.Now().UTC(),
		Status:      "pending",
	}
}

type ServiceRequest struct {
	ID              string    `json:"id" bson:"id"`
	ClientName      string    `json:"client_name" bson:"client_name"`
	ClientEmail     string    `json:"client_email" bson:"client_email"`
	ClientPhone     *string   `json:"client_phone" bson:"client_phone"`
	ServiceCategory string    `json:"service_category" bson:"service_category"`
	ServiceDetails  string    `json:"service_details" bson:"service_details"`
	PreferredDate   string    `json:"preferred_date" bson:"preferred_date"`
	PreferredTime   string    `json:"preferred_time" bson:"preferred_time"`
	Urgency         string    `json:"urgency" bson:"urgency"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	Status          string    `json:"status" bson:"status"`
}

type ServiceRequestCreate struct {
	ClientName      string  `json:"client_name" binding:"required"`
	ClientEmail     string  `json:"client_email" binding:"required"`
	ClientPhone     *string `json:"client_phone"`
	ServiceCategory string  `json:"service_category" binding:"required"`
	ServiceDetails  string  `json:"service_details" binding:"required"`
	// preferred_date and preferred_time are free-form strings; no date
	// parsing happens anywhere in the service.
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
	Urgency       string `json:"urgency"`
}

func NewServiceRequest(in ServiceRequestCreate) ServiceRequest {
	urgency := in.Urgency
	if urgency == "" {
		urgency = "normal"
	}

	return ServiceRequest{
		ID:              uuid.NewString(),
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		ServiceCategory: in.ServiceCategory,
		ServiceDetails:  in.ServiceDetails,
		PreferredDate:   in.PreferredDate,
		PreferredTime:   in.PreferredTime,
		Urgency:         urgency,
		CreatedAt:       time.Now().UTC(),
		Status:          "pending",
	}
}

// MembershipTier is static catalog data, never persisted.
type MembershipTier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        int      `json:"price"`
	Currency     string   `json:"currency"`
	BillingCycle string   `json:"billing_cycle"`
	Features     []string `json:"features"`
	IsPopular    bool     `json:"is_popular"`
}

// NutritionalInfo keeps calories numeric and the macros as display strings,
// matching the wire shape of the nutritional_info object.
type NutritionalInfo struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// NutriMealPlan is static catalog data, never persisted.
type NutriMealPlan struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	PricePerDay     int             `json:"price_per_day"`
	Ingredients     []string        `json:"ingredients"`
	NutritionalInfo NutritionalInfo `json:"nutritional_info"`
}
