package domain

// Accommodation allocation statuses.
const (
	StatusBooked     = "booked"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// Allocation types returned by the allocations endpoints.
const (
	AllocationDrinkVoucher = "drink_voucher"

	// Notes prefix used by the backend for item allocations stored as vouchers.
	ItemsNotesMarker = "ITEMS:"
)

// Voucher ledger actions.
const (
	VoucherActionRedeem   = "redeem"
	VoucherActionReassign = "reassign"
	VoucherActionNone     = "none"
)

// Accommodation types chosen during registration.
const (
	AccommodationStaying     = "Staying at accommodation"
	AccommodationTravelDaily = "Travelling daily"
)

// Operational centres accepted by the registration form.
var OperationalCentres = []string{"OCA", "OCB", "OCBA", "OCG", "OCP", "WACA"}

// Meal options offered to daily travellers.
var DailyMealOptions = []string{"Breakfast", "Lunch", "Dinner"}
