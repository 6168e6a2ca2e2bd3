package models

type Amenity struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
