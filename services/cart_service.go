package services

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"cottage-backend/models"
	"cottage-backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Nights is the whole-day difference between checkout and checkin. Anything
// that is not a positive span (unparseable dates, checkout on or before
// checkin) collapses to 1 night; the booking flow stays permissive.
func Nights(checkin, checkout string) int {
	start, err := time.Parse(dateLayout, strings.TrimSpace(checkin))
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(checkout))
	if err != nil {
		return 1
	}
	nights := int(end.Sub(start).Hours() / 24)
	if nights <= 0 {
		return 1
	}
	return nights
}

// CartService assembles the pending booking from form snapshots and commits
// it. The cart is persisted on every change.
type CartService struct {
	mu      sync.Mutex
	store   Store
	catalog *CatalogService
	notify  *NotifyService
	log     *zap.Logger
	cart    models.Cart
}

func NewCartService(store Store, catalog *CatalogService, notify *NotifyService, log *zap.Logger) *CartService {
	s := &CartService{store: store, catalog: catalog, notify: notify, log: log}

	raw, err := store.Get(keyCart)
	if err != nil || raw == nil {
		if err != nil {
			log.Warn("cart read failed, starting empty", zap.Error(err))
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.cart); err != nil {
		log.Warn("corrupt cart blob, starting empty", zap.Error(err))
		s.cart = models.Cart{}
	}
	return s
}

func (s *CartService) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

func (s *CartService) persistCart() error {
	raw, err := json.Marshal(s.cart)
	if err != nil {
		return err
	}
	return s.store.Set(keyCart, raw)
}

// SyncFromForm shallow-merges a form snapshot into the cart: fields absent
// from the snapshot keep their prior values. A present roomId re-resolves
// the room's name and rate from the catalog, falling back to the cached
// snapshot values when the room no longer exists.
func (s *CartService) SyncFromForm(form models.BookingForm) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if form.Name != nil {
		s.cart.Name = *form.Name
	}
	if form.Phone != nil {
		s.cart.Phone = *form.Phone
	}
	if form.Email != nil {
		s.cart.Email = *form.Email
	}
	if form.Checkin != nil {
		s.cart.Checkin = *form.Checkin
	}
	if form.Checkout != nil {
		s.cart.Checkout = *form.Checkout
	}
	if form.RoomCount != nil {
		s.cart.RoomCount = atLeastOne(*form.RoomCount)
	}
	if form.Guests != nil {
		s.cart.Guests = atLeastOne(*form.Guests)
	}
	if form.RoomID != nil {
		s.cart.RoomID = *form.RoomID
		if room, ok := s.catalog.FindRoom(*form.RoomID); ok {
			s.cart.RoomName = room.Name
			s.cart.NightlyRate = room.Price
		}
	}

	return s.cart, s.persistCart()
}

// SelectRoom merges a room's snapshot fields into the cart. An unknown id is
// a silent no-op, reported through the bool only.
func (s *CartService) SelectRoom(id string) (models.Cart, bool, error) {
	room, ok := s.catalog.FindRoom(id)
	if !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.cart, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RoomID = room.ID
	s.cart.RoomName = room.Name
	s.cart.NightlyRate = room.Price
	return s.cart, true, s.persistCart()
}

// SetTxnID stores the payment transaction id the guest typed in.
func (s *CartService) SetTxnID(txnID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.TxnID = strings.TrimSpace(txnID)
	return s.cart, s.persistCart()
}

// Commit finalizes the booking built from the submitted form. On success the
// booking is appended to the bookings collection, the cart is replaced with
// the booking's fields (carrying the previous txn id across the
// replacement), and the owner deep-link is returned for dispatch.
func (s *CartService) Commit(form models.BookingForm) (models.Booking, string, error) {
	booking := models.Booking{
		Name:      strings.TrimSpace(deref(form.Name)),
		Phone:     strings.TrimSpace(deref(form.Phone)),
		Email:     strings.TrimSpace(deref(form.Email)),
		RoomID:    deref(form.RoomID),
		Checkin:   strings.TrimSpace(deref(form.Checkin)),
		Checkout:  strings.TrimSpace(deref(form.Checkout)),
		RoomCount: atLeastOne(derefInt(form.RoomCount)),
		Guests:    atLeastOne(derefInt(form.Guests)),
	}

	if room, ok := s.catalog.FindRoom(booking.RoomID); ok {
		booking.RoomName = room.Name
		booking.NightlyRate = room.Price
	} else {
		booking.RoomName = "Custom room"
	}

	nights := Nights(booking.Checkin, booking.Checkout)
	// nights never computes ≤ 0; the guard below is only reachable through
	// missing dates and is kept as a backstop.
	if booking.Checkin == "" || booking.Checkout == "" || nights <= 0 {
		return models.Booking{}, "", &ValidationError{
			Message: "Please pick valid check-in and check-out dates.",
		}
	}
	booking.Nights = nights
	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.catalog.AppendBooking(booking); err != nil {
		return models.Booking{}, "", err
	}

	s.mu.Lock()
	existingTxn := s.cart.TxnID
	s.cart = models.Cart{Booking: booking, TxnID: existingTxn}
	err := s.persistCart()
	s.mu.Unlock()
	if err != nil {
		return models.Booking{}, "", err
	}

	link := s.notify.OwnerBookingAlert(booking)
	s.log.Info("booking committed",
		zap.String("id", booking.ID),
		zap.String("room", booking.RoomName),
		zap.Int("nights", booking.Nights))
	return booking, link, nil
}

// Clear empties the cart. Committed bookings are unaffected.
func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = models.Cart{}
	return s.persistCart()
}

// Summary projects the cart for display, recomputing nights and total from
// the snapshot rate.
func (s *CartService) Summary() models.CartSummary {
	s.mu.Lock()
	cart := s.cart
	s.mu.Unlock()

	if cart.IsEmpty() {
		return models.CartSummary{Empty: true}
	}

	nights := Nights(cart.Checkin, cart.Checkout)
	total := cart.NightlyRate * float64(nights) * float64(atLeastOne(cart.RoomCount))
	return models.CartSummary{
		Name:         cart.Name,
		Checkin:      cart.Checkin,
		Checkout:     cart.Checkout,
		RoomName:     cart.RoomName,
		RoomCount:    atLeastOne(cart.RoomCount),
		Guests:       cart.Guests,
		Nights:       nights,
		NightlyRate:  cart.NightlyRate,
		Total:        total,
		RateDisplay:  utils.FormatINR(cart.NightlyRate),
		TotalDisplay: utils.FormatINR(total),
		TxnID:        cart.TxnID,
	}
}

// Bill renders the printable bill; it needs at least a guest name on the
// cart.
func (s *CartService) Bill() (models.Bill, error) {
	s.mu.Lock()
	cart := s.cart
	s.mu.Unlock()

	if cart.Name == "" {
		return models.Bill{}, &ValidationError{
			Message: "Add booking details to generate the bill.",
		}
	}

	nights := Nights(cart.Checkin, cart.Checkout)
	total := cart.NightlyRate * float64(nights) * float64(atLeastOne(cart.RoomCount))
	txn := cart.TxnID
	if txn == "" {
		txn = "Pending"
	}
	roomName := cart.RoomName
	if roomName == "" {
		roomName = "Pending selection"
	}
	return models.Bill{
		Name:         cart.Name,
		Phone:        cart.Phone,
		Checkin:      cart.Checkin,
		Checkout:     cart.Checkout,
		Nights:       nights,
		RoomName:     roomName,
		NightlyRate:  cart.NightlyRate,
		Total:        total,
		RateDisplay:  utils.FormatINR(cart.NightlyRate),
		TotalDisplay: utils.FormatINR(total),
		TxnID:        txn,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
