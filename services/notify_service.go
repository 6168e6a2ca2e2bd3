package services

import (
	"fmt"
	"net/url"
	"strings"

	"cottage-backend/models"
	"cottage-backend/utils"

	"go.uber.org/zap"
)

// NotifyService composes messaging deep-links. Dispatch is fire-and-forget:
// the service returns the URL for the caller to open, with no delivery
// confirmation and no retry.
type NotifyService struct {
	host       string
	ownerPhone string
	log        *zap.Logger
}

func NewNotifyService(host, ownerPhone string, log *zap.Logger) *NotifyService {
	return &NotifyService{host: host, ownerPhone: ownerPhone, log: log}
}

// DeepLink builds https://<host>/<phone>?text=<encoded message> from ordered
// message lines.
func (s *NotifyService) DeepLink(phone string, lines []string) string {
	message := url.QueryEscape(strings.Join(lines, "\n"))
	return fmt.Sprintf("https://%s/%s?text=%s", s.host, phone, message)
}

// OwnerBookingAlert is the booking notification sent to the configured owner
// number. The owner number is trusted configuration and is not re-validated.
func (s *NotifyService) OwnerBookingAlert(booking models.Booking) string {
	lines := []string{
		"New Kanthalloor Cottage Booking",
		fmt.Sprintf("Guest: %s", booking.Name),
		fmt.Sprintf("Phone: %s", booking.Phone),
		fmt.Sprintf("Dates: %s → %s (%d nights)", booking.Checkin, booking.Checkout, booking.Nights),
		fmt.Sprintf("Room: %s × %d", booking.RoomName, booking.RoomCount),
		fmt.Sprintf("Guests: %d", booking.Guests),
	}
	link := s.DeepLink(s.ownerPhone, lines)
	s.log.Info("owner booking alert composed", zap.String("booking", booking.ID))
	return link
}

// TariffRequest builds the tariff message for a visitor-supplied number.
// Numbers shorter than 10 digits are rejected before any link is built.
func (s *NotifyService) TariffRequest(rawPhone string, pricing []models.PricingTier, amenities []models.Amenity) (string, error) {
	phone := utils.DigitsOnly(rawPhone)
	if len(phone) < 10 {
		return "", &ValidationError{Message: "Enter a valid phone number"}
	}

	lines := []string{"Kanthalloor Cottage Tariff"}
	for _, tier := range pricing {
		lines = append(lines, fmt.Sprintf("• %s: %s (Includes: %s)",
			tier.Label, tier.Rate, strings.Join(tier.Includes, ", ")))
	}
	lines = append(lines, "", "Amenities:")
	for _, amenity := range amenities {
		lines = append(lines, fmt.Sprintf("- %s", amenity.Label))
	}

	return s.DeepLink(phone, lines), nil
}
