package input

import (
	"context"
	"io"

	"eventdesk/internal/domain/entities"
)

// FacetAll disables a facet filter.
const FacetAll = "all"

type AllocationFilter struct {
	Search    string `json:"search,omitempty"`
	Occupancy string `json:"occupancy,omitempty"`
	Room      string `json:"room,omitempty"`
	Event     string `json:"event,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Status    string `json:"status,omitempty"`
}

type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the single-column sort of the allocation list.
type SortState struct {
	Column    string        `json:"column,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

// Toggle returns the state after the user clicks column's header:
// none -> asc -> desc -> none, and asc when switching columns.
func (s SortState) Toggle(column string) SortState {
	if s.Column != column || s.Direction == SortNone {
		return SortState{Column: column, Direction: SortAsc}
	}
	if s.Direction == SortAsc {
		return SortState{Column: column, Direction: SortDesc}
	}
	return SortState{}
}

type AllocationQuery struct {
	Filter   AllocationFilter
	Sort     SortState
	Page     int
	PageSize int
}

// AccommodationInfo is the display summary derived from an allocation.
type AccommodationInfo struct {
	Type      string `json:"type"`
	Room      string `json:"room"`
	Occupancy string `json:"occupancy"`
	Shared    string `json:"shared"`
}

type AllocationRow struct {
	entities.AccommodationAllocation
	Info AccommodationInfo `json:"info"`
	Days int               `json:"days"`
}

type AllocationPage struct {
	Items      []AllocationRow `json:"items"`
	Total      int             `json:"total"`
	Filtered   int             `json:"filtered"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

type BulkResult struct {
	Requested int    `json:"requested"`
	Eligible  int    `json:"eligible"`
	Succeeded int    `json:"succeeded"`
	Failed    []int  `json:"failed"`
	Notice    Notice `json:"notice"`
}

type AllocationUseCase interface {
	List(ctx context.Context, eventID int, q AllocationQuery) (*AllocationPage, error)
	Export(ctx context.Context, eventID int, q AllocationQuery, w io.Writer) error
	CheckIn(ctx context.Context, allocationID int) error
	Delete(ctx context.Context, allocationID int) error
	BulkCheckIn(ctx context.Context, eventID int, allocationIDs []int) (*BulkResult, error)
	PendingCount(ctx context.Context) (int, error)
}
