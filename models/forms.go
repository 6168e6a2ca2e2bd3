package models

// BookingForm is a snapshot of the booking form. Pointer fields distinguish
// "not in this snapshot" (keep the cart's prior value) from "present but
// empty", which is what makes the shallow merge in the cart service work.
type BookingForm struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	RoomID    *string `json:"roomId"`
	RoomCount *int    `json:"roomCount"`
	Guests    *int    `json:"guests"`
	Checkin   *string `json:"checkin"`
	Checkout  *string `json:"checkout"`
}

// TxnForm carries the payment transaction id the guest types in.
type TxnForm struct {
	TxnID string `json:"txnId"`
}

// TariffRequestForm is the phone number a visitor wants the tariff sent to.
type TariffRequestForm struct {
	Phone string `json:"phone" binding:"required"`
}

// ContactForm is acknowledged but not stored anywhere.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
