package entities

// Room is a guesthouse room attached to an allocation.
type Room struct {
	ID               int    `json:"id"`
	RoomNumber       string `json:"room_number"`
	Capacity         int    `json:"capacity"`
	CurrentOccupants int    `json:"current_occupants"`
	Guesthouse       string `json:"guesthouse,omitempty"`
}

// VendorRef is the vendor hotel embedded in an allocation.
type VendorRef struct {
	ID                int    `json:"id"`
	VendorName        string `json:"vendor_name"`
	Location          string `json:"location,omitempty"`
	AccommodationType string `json:"accommodation_type,omitempty"`
	Capacity          int    `json:"capacity"`
	CurrentOccupants  int    `json:"current_occupants"`
}

type AccommodationAllocation struct {
	ID                    int        `json:"id"`
	ParticipantID         int        `json:"participant_id"`
	GuestName             string     `json:"guest_name"`
	GuestEmail            string     `json:"guest_email,omitempty"`
	EventID               int        `json:"event_id"`
	EventTitle            string     `json:"event_title,omitempty"`
	CheckInDate           string     `json:"check_in_date"`
	CheckOutDate          string     `json:"check_out_date"`
	Status                string     `json:"status"`
	AccommodationType     string     `json:"accommodation_type,omitempty"`
	RoomType              string     `json:"room_type,omitempty"`
	NumberOfRoomOccupants int        `json:"number_of_room_occupants,omitempty"`
	ParticipantGender     string     `json:"participant_gender,omitempty"`
	BoardType             string     `json:"board_type,omitempty"`
	Room                  *Room      `json:"room,omitempty"`
	VendorAccommodation   *VendorRef `json:"vendor_accommodation,omitempty"`
}

// VendorAccommodation is a vendor hotel managed in tenant setups.
type VendorAccommodation struct {
	ID                int    `json:"id,omitempty"`
	VendorName        string `json:"vendor_name"`
	Location          string `json:"location"`
	AccommodationType string `json:"accommodation_type,omitempty"`
	Capacity          int    `json:"capacity"`
	CurrentOccupants  int    `json:"current_occupants"`
	SingleRooms       int    `json:"single_rooms"`
	DoubleRooms       int    `json:"double_rooms"`
	ContactPerson     string `json:"contact_person,omitempty"`
	ContactEmail      string `json:"contact_email,omitempty"`
	ContactPhone      string `json:"contact_phone,omitempty"`
	Description       string `json:"description,omitempty"`
}
