// Package transport defines the request and record shapes of customer
// submissions. Request types use pointers for required fields so that a
// missing or null value is distinguishable from an empty string.
package transport

import "time"

// StatusPending is the initial status of sell, swap and repair records.
const StatusPending = "pending"

// Contact form

type ContactFormCreate struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"required"`
	Message *string `json:"message" validate:"required"`
}

type ContactForm struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Sell / trade-in request

type SellRequestCreate struct {
	DeviceType     *string `json:"device_type" validate:"required"`
	Model          *string `json:"model" validate:"required"`
	Storage        *string `json:"storage" validate:"required"`
	Condition      *string `json:"condition" validate:"required"`
	BatteryHealth  *string `json:"battery_health"`
	Name           *string `json:"name" validate:"required"`
	Email          *string `json:"email" validate:"required,email"`
	Phone          *string `json:"phone" validate:"required"`
	AdditionalInfo *string `json:"additional_info"`
}

type SellRequest struct {
	ID             string    `json:"id"`
	DeviceType     string    `json:"device_type"`
	Model          string    `json:"model"`
	Storage        string    `json:"storage"`
	Condition      string    `json:"condition"`
	BatteryHealth  *string   `json:"battery_health"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	AdditionalInfo *string   `json:"additional_info"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Swap request

type SwapRequestCreate struct {
	CurrentDeviceType *string `json:"current_device_type" validate:"required"`
	CurrentModel      *string `json:"current_model" validate:"required"`
	CurrentCondition  *string `json:"current_condition" validate:"required"`
	DesiredDevice     *string `json:"desired_device" validate:"required"`
	Name              *string `json:"name" validate:"required"`
	Email             *string `json:"email" validate:"required,email"`
	Phone             *string `json:"phone" validate:"required"`
	AdditionalInfo    *string `json:"additional_info"`
}

type SwapRequest struct {
	ID                string    `json:"id"`
	CurrentDeviceType string    `json:"current_device_type"`
	CurrentModel      string    `json:"current_model"`
	CurrentCondition  string    `json:"current_condition"`
	DesiredDevice     string    `json:"desired_device"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	AdditionalInfo    *string   `json:"additional_info"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// Repair booking

type RepairBookingCreate struct {
	DeviceType       *string `json:"device_type" validate:"required"`
	DeviceModel      *string `json:"device_model" validate:"required"`
	Issue            *string `json:"issue" validate:"required"`
	IssueDescription *string `json:"issue_description"`
	PreferredDate    *string `json:"preferred_date" validate:"required"`
	Name             *string `json:"name" validate:"required"`
	Phone            *string `json:"phone" validate:"required"`
	Email            *string `json:"email" validate:"omitempty,email"`
}

type RepairBooking struct {
	ID               string    `json:"id"`
	DeviceType       string    `json:"device_type"`
	DeviceModel      string    `json:"device_model"`
	Issue            string    `json:"issue"`
	IssueDescription *string   `json:"issue_description"`
	PreferredDate    string    `json:"preferred_date"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Email            *string   `json:"email"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Price quote request

type PriceQuoteRequestCreate struct {
	ProductName     *string `json:"product_name" validate:"required"`
	ProductCategory *string `json:"product_category" validate:"required"`
	Name            *string `json:"name" validate:"required"`
	Phone           *string `json:"phone" validate:"required"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Message         *string `json:"message"`
}

type PriceQuoteRequest struct {
	ID              string    `json:"id"`
	ProductName     string    `json:"product_name"`
	ProductCategory string    `json:"product_category"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email"`
	Message         *string   `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}
