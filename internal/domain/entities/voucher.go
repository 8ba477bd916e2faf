package entities

import (
	"strings"
	"time"

	"eventdesk/internal/domain"
)

// VoucherAllocation is an allocation row of type drink_voucher.
type VoucherAllocation struct {
	ID             int    `json:"id"`
	AllocationType string `json:"allocation_type"`
	Quantity       int    `json:"quantity"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status,omitempty"`
	EventID        int    `json:"event_id"`
	ParticipantID  int    `json:"participant_id"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// IsDrinkVoucher reports whether the allocation counts towards the drink
// balance. Item allocations are stored with the same type but tagged in notes.
func (a VoucherAllocation) IsDrinkVoucher() bool {
	return a.AllocationType == domain.AllocationDrinkVoucher &&
		!strings.Contains(a.Notes, domain.ItemsNotesMarker)
}

// DrinkVouchers keeps the allocations for which IsDrinkVoucher holds.
func DrinkVouchers(in []VoucherAllocation) []VoucherAllocation {
	out := make([]VoucherAllocation, 0, len(in))
	for _, a := range in {
		if a.IsDrinkVoucher() {
			out = append(out, a)
		}
	}
	return out
}

// AllocationSummary holds the server-computed voucher counters.
// RemainingDrinks goes negative when a participant is over-redeemed.
type AllocationSummary struct {
	TotalDrinks     int `json:"total_drinks"`
	RedeemedDrinks  int `json:"redeemed_drinks"`
	RemainingDrinks int `json:"remaining_drinks"`
}

// VoucherSummary is the payload of /participants/{id}/qr.
type VoucherSummary struct {
	QRToken           string            `json:"qr_token"`
	QRDataURL         string            `json:"qr_data_url,omitempty"`
	AllocationSummary AllocationSummary `json:"allocation_summary"`
}

func (s VoucherSummary) IsOverRedeemed() bool {
	return s.AllocationSummary.RemainingDrinks < 0
}

// OverRedeemedBy returns how many vouchers were redeemed past the balance.
func (s VoucherSummary) OverRedeemedBy() int {
	if !s.IsOverRedeemed() {
		return 0
	}
	return -s.AllocationSummary.RemainingDrinks
}

// VoucherMutation is one row of the local redeem/reassign audit ledger.
type VoucherMutation struct {
	ID            int64     `json:"id"`
	TenantID      string    `json:"tenant_id"`
	ParticipantID int       `json:"participant_id"`
	EventID       int       `json:"event_id"`
	AllocationID  int       `json:"allocation_id"`
	Action        string    `json:"action"`
	Quantity      int       `json:"quantity"`
	Actor         string    `json:"actor,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
