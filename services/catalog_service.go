package services

import (
	"encoding/json"
	"strings"
	"sync"

	"cottage-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DataVersion tags the persisted schema. Bump it when the gallery defaults
// change; see migrationSteps for what a bump actually touches.
const DataVersion = "2025-11-gallery"

const (
	keyRooms       = "kc_rooms"
	keyAmenities   = "kc_amenities"
	keyGallery     = "kc_gallery"
	keyPricing     = "kc_pricing"
	keyBookings    = "kc_bookings"
	keyCart        = "kc_cart"
	keyDataVersion = "kc_data_version"
)

// migrationStep is one versioned migration. Each step declares exactly which
// collections it touches so the policy stays auditable. Known limitation:
// the only step regenerates the gallery, so new default data for other
// collections needs a new step, not a version bump alone.
type migrationStep struct {
	version     string
	collections []string
	apply       func(s *CatalogService)
}

var migrationSteps = []migrationStep{
	{
		version:     DataVersion,
		collections: []string{keyGallery},
		apply: func(s *CatalogService) {
			s.gallery = defaultGallery()
		},
	},
}

// CatalogService owns the in-memory catalog collections and writes the
// affected collection through to the store on every mutation. Collections
// are written independently; there is no cross-collection transaction.
type CatalogService struct {
	mu    sync.Mutex
	store Store
	log   *zap.Logger

	rooms     []models.Room
	amenities []models.Amenity
	gallery   []models.GalleryItem
	pricing   []models.PricingTier
	bookings  []models.Booking
}

// NewCatalogService loads the catalog from the store, seeding defaults on
// first run and applying versioned migrations when the stored tag is stale.
func NewCatalogService(store Store, log *zap.Logger) (*CatalogService, error) {
	s := &CatalogService{store: store, log: log}

	existing, err := store.Get(keyRooms)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		s.applyDefaults()
		if err := s.persistAll(); err != nil {
			return nil, err
		}
		log.Info("catalog seeded with defaults", zap.String("version", DataVersion))
		return s, nil
	}

	s.loadFromStore()
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CatalogService) loadFromStore() {
	s.rooms = readCollection[models.Room](s.store, keyRooms, s.log)
	s.amenities = readCollection[models.Amenity](s.store, keyAmenities, s.log)
	s.gallery = readCollection[models.GalleryItem](s.store, keyGallery, s.log)
	s.pricing = readCollection[models.PricingTier](s.store, keyPricing, s.log)
	s.bookings = readCollection[models.Booking](s.store, keyBookings, s.log)
}

func (s *CatalogService) migrate() error {
	stored := s.storedVersion()
	if stored == DataVersion {
		return nil
	}

	for _, step := range migrationSteps {
		step.apply(s)
		for _, key := range step.collections {
			if err := s.persistCollection(key); err != nil {
				return err
			}
		}
		s.log.Info("migration step applied",
			zap.String("version", step.version),
			zap.Strings("collections", step.collections))
	}
	return s.setVersion(DataVersion)
}

func (s *CatalogService) storedVersion() string {
	raw, err := s.store.Get(keyDataVersion)
	if err != nil || raw == nil {
		return ""
	}
	var version string
	if err := json.Unmarshal(raw, &version); err != nil {
		return ""
	}
	return version
}

func (s *CatalogService) setVersion(version string) error {
	raw, err := json.Marshal(version)
	if err != nil {
		return err
	}
	return s.store.Set(keyDataVersion, raw)
}

// readCollection defensively defaults to an empty collection when the blob
// is missing or corrupt; storage problems never propagate to callers.
func readCollection[T any](store Store, key string, log *zap.Logger) []T {
	raw, err := store.Get(key)
	if err != nil || raw == nil {
		if err != nil {
			log.Warn("store read failed, defaulting collection", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn("corrupt collection blob, defaulting to empty", zap.String("key", key), zap.Error(err))
		return nil
	}
	return items
}

func (s *CatalogService) persistCollection(key string) error {
	var value any
	switch key {
	case keyRooms:
		value = emptyIfNil(s.rooms)
	case keyAmenities:
		value = emptyIfNil(s.amenities)
	case keyGallery:
		value = emptyIfNil(s.gallery)
	case keyPricing:
		value = emptyIfNil(s.pricing)
	case keyBookings:
		value = emptyIfNil(s.bookings)
	default:
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(key, raw)
}

// emptyIfNil keeps blobs as [] rather than null for nil slices.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (s *CatalogService) persistAll() error {
	for _, key := range []string{keyRooms, keyAmenities, keyGallery, keyPricing, keyBookings} {
		if err := s.persistCollection(key); err != nil {
			return err
		}
	}
	return s.setVersion(DataVersion)
}

// ---------------- Defaults ----------------

func (s *CatalogService) applyDefaults() {
	s.rooms = []models.Room{
		{
			ID:          uuid.NewString(),
			Name:        "Mist View Cottage",
			Beds:        2,
			MaxGuests:   4,
			Price:       4800,
			Description: "Panoramic valley views with private sit-out.",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Forest Pod",
			Beds:        1,
			MaxGuests:   2,
			Price:       3200,
			Description: "Cozy pod stay tucked under shola canopy.",
		},
	}

	s.amenities = []models.Amenity{
		{ID: uuid.NewString(), Label: "Organic breakfast"},
		{ID: uuid.NewString(), Label: "Bonfire & music"},
		{ID: uuid.NewString(), Label: "Guided plantation walk"},
		{ID: uuid.NewString(), Label: "High-speed Wi-Fi"},
	}

	s.gallery = defaultGallery()

	s.pricing = []models.PricingTier{
		{
			ID:       uuid.NewString(),
			Label:    "Weekday Tariff",
			Rate:     "₹4,800 / night",
			Includes: []string{"Breakfast", "Guided walk", "Welcome drink"},
		},
		{
			ID:       uuid.NewString(),
			Label:    "Weekend Tariff",
			Rate:     "₹5,600 / night",
			Includes: []string{"Breakfast & dinner", "Bonfire setup"},
		},
	}

	s.bookings = nil
}

func defaultGallery() []models.GalleryItem {
	return []models.GalleryItem{
		{
			ID:      uuid.NewString(),
			URL:     "assets/gallery/kanthalloor-village.jpg",
			Caption: "Mist rolling over Kanthalloor valley",
		},
		{
			ID:      uuid.NewString(),
			URL:     "assets/gallery/tea-ridge.jpg",
			Caption: "Tea ridges en route to Kanthalloor",
		},
		{
			ID:      uuid.NewString(),
			URL:     "assets/gallery/apple-orchard.jpg",
			Caption: "Apple orchard walk in Kanthalloor",
		},
		{
			ID:      uuid.NewString(),
			URL:     "assets/gallery/waterfall.jpg",
			Caption: "Shola-side cascade near Kanthalloor",
		},
	}
}

// ---------------- Rooms ----------------

func (s *CatalogService) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// FindRoom resolves a room id; the second return value distinguishes a
// deleted/unknown room so callers can fall back to snapshot fields.
func (s *CatalogService) FindRoom(id string) (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}

// UpsertRoom inserts when the id is empty, otherwise replaces the matching
// room wholesale. An unknown non-empty id is kept and appended.
func (s *CatalogService) UpsertRoom(room models.Room) (models.Room, error) {
	room.Name = strings.TrimSpace(room.Name)
	room.Description = strings.TrimSpace(room.Description)
	if room.Name == "" {
		return models.Room{}, &ValidationError{Message: "Room name is required."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if room.ID == "" {
		room.ID = uuid.NewString()
		s.rooms = append(s.rooms, room)
	} else {
		replaced := false
		for i := range s.rooms {
			if s.rooms[i].ID == room.ID {
				s.rooms[i] = room
				replaced = true
				break
			}
		}
		if !replaced {
			s.rooms = append(s.rooms, room)
		}
	}
	return room, s.persistCollection(keyRooms)
}

func (s *CatalogService) DeleteRoom(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rooms[:0]
	removed := false
	for _, room := range s.rooms {
		if room.ID == id {
			removed = true
			continue
		}
		kept = append(kept, room)
	}
	s.rooms = kept
	if !removed {
		return false, nil
	}
	return true, s.persistCollection(keyRooms)
}

// ---------------- Amenities ----------------

func (s *CatalogService) Amenities() []models.Amenity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Amenity, len(s.amenities))
	copy(out, s.amenities)
	return out
}

func (s *CatalogService) UpsertAmenity(amenity models.Amenity) (models.Amenity, error) {
	amenity.Label = strings.TrimSpace(amenity.Label)
	if amenity.Label == "" {
		return models.Amenity{}, &ValidationError{Message: "Amenity label is required."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if amenity.ID == "" {
		amenity.ID = uuid.NewString()
		s.amenities = append(s.amenities, amenity)
	} else {
		replaced := false
		for i := range s.amenities {
			if s.amenities[i].ID == amenity.ID {
				s.amenities[i] = amenity
				replaced = true
				break
			}
		}
		if !replaced {
			s.amenities = append(s.amenities, amenity)
		}
	}
	return amenity, s.persistCollection(keyAmenities)
}

func (s *CatalogService) DeleteAmenity(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.amenities[:0]
	removed := false
	for _, amenity := range s.amenities {
		if amenity.ID == id {
			removed = true
			continue
		}
		kept = append(kept, amenity)
	}
	s.amenities = kept
	if !removed {
		return false, nil
	}
	return true, s.persistCollection(keyAmenities)
}

// ---------------- Gallery ----------------

func (s *CatalogService) Gallery() []models.GalleryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.GalleryItem, len(s.gallery))
	copy(out, s.gallery)
	return out
}

func (s *CatalogService) UpsertGalleryItem(item models.GalleryItem) (models.GalleryItem, error) {
	item.URL = strings.TrimSpace(item.URL)
	item.Caption = strings.TrimSpace(item.Caption)
	if item.URL == "" {
		return models.GalleryItem{}, &ValidationError{Message: "Image URL is required."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
		s.gallery = append(s.gallery, item)
	} else {
		replaced := false
		for i := range s.gallery {
			if s.gallery[i].ID == item.ID {
				s.gallery[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			s.gallery = append(s.gallery, item)
		}
	}
	return item, s.persistCollection(keyGallery)
}

func (s *CatalogService) DeleteGalleryItem(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.gallery[:0]
	removed := false
	for _, item := range s.gallery {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.gallery = kept
	if !removed {
		return false, nil
	}
	return true, s.persistCollection(keyGallery)
}

// ---------------- Pricing ----------------

func (s *CatalogService) Pricing() []models.PricingTier {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PricingTier, len(s.pricing))
	copy(out, s.pricing)
	return out
}

func (s *CatalogService) UpsertPricingTier(tier models.PricingTier) (models.PricingTier, error) {
	tier.Label = strings.TrimSpace(tier.Label)
	tier.Rate = strings.TrimSpace(tier.Rate)
	if tier.Label == "" {
		return models.PricingTier{}, &ValidationError{Message: "Tariff label is required."}
	}
	includes := make([]string, 0, len(tier.Includes))
	for _, line := range tier.Includes {
		line = strings.TrimSpace(line)
		if line != "" {
			includes = append(includes, line)
		}
	}
	tier.Includes = includes

	s.mu.Lock()
	defer s.mu.Unlock()
	if tier.ID == "" {
		tier.ID = uuid.NewString()
		s.pricing = append(s.pricing, tier)
	} else {
		replaced := false
		for i := range s.pricing {
			if s.pricing[i].ID == tier.ID {
				s.pricing[i] = tier
				replaced = true
				break
			}
		}
		if !replaced {
			s.pricing = append(s.pricing, tier)
		}
	}
	return tier, s.persistCollection(keyPricing)
}

func (s *CatalogService) DeletePricingTier(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.pricing[:0]
	removed := false
	for _, tier := range s.pricing {
		if tier.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tier)
	}
	s.pricing = kept
	if !removed {
		return false, nil
	}
	return true, s.persistCollection(keyPricing)
}

// ---------------- Bookings ----------------

func (s *CatalogService) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// AppendBooking records a committed booking. Bookings are append-only.
func (s *CatalogService) AppendBooking(booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, booking)
	return s.persistCollection(keyBookings)
}
