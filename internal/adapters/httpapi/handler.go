package httpapi

import (
	"time"

	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

// UseCases groups the application services the BFF routes to.
type UseCases struct {
	Details      input.ParticipantDetailsUseCase
	Vouchers     input.VoucherUseCase
	Allocations  input.AllocationUseCase
	Registration input.RegistrationUseCase
	Badges       input.BadgeTemplateUseCase
	Certificates input.CertificateUseCase
	Travel       input.TravelRequirementUseCase
	Vendors      input.VendorHotelUseCase
	Chat         input.ChatUseCase
}

// Handler handles BFF requests using use cases.
type Handler struct {
	uc            UseCases
	translator    output.T
	defaultLocale string
	location      *time.Location
}

// NewHandler creates a Handler. location is used to date CSV exports.
func NewHandler(uc UseCases, translator output.T, defaultLocale string, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		uc:            uc,
		translator:    translator,
		defaultLocale: defaultLocale,
		location:      location,
	}
}
