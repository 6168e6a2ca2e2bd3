package models

// CartSummary is the cart projected for display. Nights and Total are
// recomputed from the cart on every read; the nightly rate itself stays the
// snapshot taken when the room was selected.
type CartSummary struct {
	Empty        bool    `json:"empty"`
	Name         string  `json:"name,omitempty"`
	Checkin      string  `json:"checkin,omitempty"`
	Checkout     string  `json:"checkout,omitempty"`
	RoomName     string  `json:"roomName,omitempty"`
	RoomCount    int     `json:"roomCount,omitempty"`
	Guests       int     `json:"guests,omitempty"`
	Nights       int     `json:"nights,omitempty"`
	NightlyRate  float64 `json:"nightlyRate"`
	Total        float64 `json:"total"`
	RateDisplay  string  `json:"rateDisplay,omitempty"`
	TotalDisplay string  `json:"totalDisplay,omitempty"`
	TxnID        string  `json:"txnId,omitempty"`
}

// Bill mirrors the printable bill: cart details plus the transaction id,
// which reads "Pending" until the guest supplies one.
type Bill struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Checkin      string  `json:"checkin"`
	Checkout     string  `json:"checkout"`
	Nights       int     `json:"nights"`
	RoomName     string  `json:"roomName"`
	NightlyRate  float64 `json:"nightlyRate"`
	Total        float64 `json:"total"`
	RateDisplay  string  `json:"rateDisplay"`
	TotalDisplay string  `json:"totalDisplay"`
	TxnID        string  `json:"txnId"`
}
