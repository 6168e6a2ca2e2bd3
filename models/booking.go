package models

// Booking is appended once on commit and never edited or deleted. RoomName
// and NightlyRate are snapshots taken from the room at selection/commit time,
// so later room edits (or a room deletion) never alter an existing booking.
// RoomID may therefore dangle; consumers fall back to the snapshot fields.
type Booking struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	RoomID      string  `json:"roomId"`
	RoomName    string  `json:"roomName"`
	NightlyRate float64 `json:"nightlyRate"`
	RoomCount   int     `json:"roomCount"`
	Guests      int     `json:"guests"`
	Checkin     string  `json:"checkin"`
	Checkout    string  `json:"checkout"`
	Nights      int     `json:"nights"`
	CreatedAt   string  `json:"createdAt"`
}

// Cart is the single in-progress booking draft. It is overwritten on every
// form change and replaced wholesale on commit, with TxnID carried across
// that replacement. The zero value means "no selections yet".
type Cart struct {
	Booking
	TxnID string `json:"txnId,omitempty"`
}

func (c Cart) IsEmpty() bool {
	return c == Cart{}
}
