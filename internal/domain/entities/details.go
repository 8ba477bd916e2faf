package entities

import "time"

// ParticipantDetails merges everything the details panel shows for one
// participant of one event. Slots that failed to load are left empty and
// listed in Failed.
type ParticipantDetails struct {
	Participant    *Participant              `json:"participant"`
	Event          *Event                    `json:"event"`
	Vouchers       []VoucherAllocation       `json:"vouchers"`
	VoucherSummary *VoucherSummary           `json:"voucher_summary"`
	Accommodation  []AccommodationAllocation `json:"accommodation"`
	Transport      []TransportBooking        `json:"transport"`
	Flights        []FlightItinerary         `json:"flights"`
	Checklist      *ChecklistProgress        `json:"checklist"`
	Failed         []string                  `json:"failed,omitempty"`
	FetchedAt      time.Time                 `json:"fetched_at"`
	FromCache      bool                      `json:"from_cache"`
}

// AssignedVouchers sums the quantities of the drink voucher allocations.
func (d ParticipantDetails) AssignedVouchers() int {
	total := 0
	for _, v := range d.Vouchers {
		total += v.Quantity
	}
	return total
}
