package models

type Room struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Beds        int     `json:"beds"`
	MaxGuests   int     `json:"maxGuests"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
