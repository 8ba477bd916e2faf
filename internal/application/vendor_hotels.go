package application

import (
	"context"
	"fmt"
	"strings"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.VendorHotelUseCase = (*VendorHotelService)(nil)

type VendorHotelService struct {
	gateway output.VendorGateway
}

func NewVendorHotelService(gateway output.VendorGateway) *VendorHotelService {
	return &VendorHotelService{gateway: gateway}
}

// Search filters vendor hotels by name or location and returns one page.
func (s *VendorHotelService) Search(ctx context.Context, query string, page, pageSize int) (*input.VendorPage, error) {
	all, err := s.gateway.ListVendorAccommodations(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	matched := make([]entities.VendorAccommodation, 0, len(all))
	for _, v := range all {
		if query == "" || containsFold(v.VendorName, query) || containsFold(v.Location, query) {
			matched = append(matched, v)
		}
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	pageSize = min(pageSize, maxPageSize)
	items, current, totalPages := Paginate(matched, page, pageSize)
	return &input.VendorPage{
		Items:      items,
		Total:      len(matched),
		Page:       current,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func validateVendor(v entities.VendorAccommodation) error {
	switch {
	case strings.TrimSpace(v.VendorName) == "":
		return fmt.Errorf("vendor name is required: %w", domain.ErrValidation)
	case strings.TrimSpace(v.Location) == "":
		return fmt.Errorf("vendor location is required: %w", domain.ErrValidation)
	case v.Capacity < 0 || v.SingleRooms < 0 || v.DoubleRooms < 0:
		return fmt.Errorf("room counts cannot be negative: %w", domain.ErrValidation)
	}
	return nil
}

func (s *VendorHotelService) Create(ctx context.Context, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	if err := validateVendor(v); err != nil {
		return nil, err
	}
	return s.gateway.CreateVendorAccommodation(ctx, v)
}

func (s *VendorHotelService) Update(ctx context.Context, id int, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	if err := validateVendor(v); err != nil {
		return nil, err
	}
	return s.gateway.UpdateVendorAccommodation(ctx, id, v)
}

func (s *VendorHotelService) Delete(ctx context.Context, id int) error {
	return s.gateway.DeleteVendorAccommodation(ctx, id)
}
