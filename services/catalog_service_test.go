package services

import (
	"encoding/json"
	"testing"

	"cottage-backend/models"

	"go.uber.org/zap"
)

func newTestCatalog(t *testing.T) (*CatalogService, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	catalog, err := NewCatalogService(store, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCatalogService: %v", err)
	}
	return catalog, store
}

func TestSeedOnFirstRun(t *testing.T) {
	catalog, store := newTestCatalog(t)

	if got := len(catalog.Rooms()); got != 2 {
		t.Fatalf("rooms = %d, want 2", got)
	}
	if got := len(catalog.Amenities()); got != 4 {
		t.Errorf("amenities = %d, want 4", got)
	}
	if got := len(catalog.Gallery()); got != 4 {
		t.Errorf("gallery = %d, want 4", got)
	}
	if got := len(catalog.Pricing()); got != 2 {
		t.Errorf("pricing = %d, want 2", got)
	}
	if got := len(catalog.Bookings()); got != 0 {
		t.Errorf("bookings = %d, want 0", got)
	}

	raw, err := store.Get(keyDataVersion)
	if err != nil || raw == nil {
		t.Fatalf("version tag not written (err=%v)", err)
	}
	var version string
	if err := json.Unmarshal(raw, &version); err != nil {
		t.Fatalf("version tag not valid JSON: %v", err)
	}
	if version != DataVersion {
		t.Errorf("version = %q, want %q", version, DataVersion)
	}

	rooms := catalog.Rooms()
	if rooms[0].Name != "Mist View Cottage" || rooms[0].Price != 4800 {
		t.Errorf("unexpected first seed room: %+v", rooms[0])
	}
}

func TestMigrationRegeneratesOnlyGallery(t *testing.T) {
	store := NewMemoryStore()

	storedRooms := []models.Room{{ID: "r1", Name: "Old Cabin", Price: 1000, Beds: 1, MaxGuests: 2}}
	storedGallery := []models.GalleryItem{{ID: "g1", URL: "old.jpg", Caption: "old shot"}}
	storedPricing := []models.PricingTier{{ID: "p1", Label: "Old Tariff", Rate: "₹1,000 / night"}}
	storedBookings := []models.Booking{{ID: "b1", Name: "Asha", Nights: 1}}
	for key, value := range map[string]any{
		keyRooms:    storedRooms,
		keyGallery:  storedGallery,
		keyPricing:  storedPricing,
		keyBookings: storedBookings,
	} {
		raw, _ := json.Marshal(value)
		if err := store.Set(key, raw); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	oldTag, _ := json.Marshal("2024-legacy")
	if err := store.Set(keyDataVersion, oldTag); err != nil {
		t.Fatalf("seed version: %v", err)
	}

	catalog, err := NewCatalogService(store, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCatalogService: %v", err)
	}

	if got := len(catalog.Gallery()); got != 4 {
		t.Fatalf("gallery = %d, want 4 regenerated defaults", got)
	}
	for _, item := range catalog.Gallery() {
		if item.ID == "g1" {
			t.Error("stale gallery item survived the migration")
		}
	}

	rooms := catalog.Rooms()
	if len(rooms) != 1 || rooms[0].Name != "Old Cabin" {
		t.Errorf("rooms changed by migration: %+v", rooms)
	}
	if got := catalog.Pricing(); len(got) != 1 || got[0].Label != "Old Tariff" {
		t.Errorf("pricing changed by migration: %+v", got)
	}
	if got := catalog.Bookings(); len(got) != 1 || got[0].ID != "b1" {
		t.Errorf("bookings changed by migration: %+v", got)
	}

	raw, _ := store.Get(keyDataVersion)
	var version string
	if err := json.Unmarshal(raw, &version); err != nil || version != DataVersion {
		t.Errorf("version tag = %q (err=%v), want %q", version, err, DataVersion)
	}
}

func TestMigrationSkippedWhenVersionCurrent(t *testing.T) {
	catalog, store := newTestCatalog(t)

	custom, err := catalog.UpsertGalleryItem(models.GalleryItem{URL: "custom.jpg", Caption: "mine"})
	if err != nil {
		t.Fatalf("UpsertGalleryItem: %v", err)
	}

	reloaded, err := NewCatalogService(store, zap.NewNop())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	found := false
	for _, item := range reloaded.Gallery() {
		if item.ID == custom.ID {
			found = true
		}
	}
	if !found {
		t.Error("custom gallery item lost on reload with a current version tag")
	}
}

func TestUpsertRoom(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	before := len(catalog.Rooms())

	created, err := catalog.UpsertRoom(models.Room{Name: "  Tree House  ", Beds: 1, MaxGuests: 2, Price: 2500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created room has no id")
	}
	if created.Name != "Tree House" {
		t.Errorf("name not trimmed: %q", created.Name)
	}
	if got := len(catalog.Rooms()); got != before+1 {
		t.Fatalf("rooms = %d, want %d", got, before+1)
	}

	created.Price = 2700
	replaced, err := catalog.UpsertRoom(created)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if replaced.ID != created.ID {
		t.Errorf("replace changed id: %q -> %q", created.ID, replaced.ID)
	}
	if got := len(catalog.Rooms()); got != before+1 {
		t.Errorf("replace changed collection length: %d", got)
	}
	room, ok := catalog.FindRoom(created.ID)
	if !ok || room.Price != 2700 {
		t.Errorf("replacement not applied: %+v ok=%v", room, ok)
	}

	if _, err := catalog.UpsertRoom(models.Room{Name: "   "}); err == nil || !IsValidation(err) {
		t.Errorf("blank name accepted, err=%v", err)
	}
}

func TestDeleteRoom(t *testing.T) {
	catalog, _ := newTestCatalog(t)
	rooms := catalog.Rooms()

	removed, err := catalog.DeleteRoom("no-such-id")
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if removed {
		t.Error("delete of unknown id reported removal")
	}
	if got := len(catalog.Rooms()); got != len(rooms) {
		t.Errorf("no-op delete changed length: %d", got)
	}

	removed, err = catalog.DeleteRoom(rooms[0].ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !removed {
		t.Fatal("delete of existing id reported no-op")
	}
	if _, ok := catalog.FindRoom(rooms[0].ID); ok {
		t.Error("room still resolvable after delete")
	}
}

func TestCorruptBlobDefaultsToEmpty(t *testing.T) {
	store := NewMemoryStore()
	rooms, _ := json.Marshal([]models.Room{{ID: "r1", Name: "Cabin"}})
	if err := store.Set(keyRooms, rooms); err != nil {
		t.Fatalf("seed rooms: %v", err)
	}
	if err := store.Set(keyAmenities, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt amenities: %v", err)
	}
	tag, _ := json.Marshal(DataVersion)
	if err := store.Set(keyDataVersion, tag); err != nil {
		t.Fatalf("seed version: %v", err)
	}

	catalog, err := NewCatalogService(store, zap.NewNop())
	if err != nil {
		t.Fatalf("NewCatalogService: %v", err)
	}
	if got := len(catalog.Amenities()); got != 0 {
		t.Errorf("corrupt amenities = %d entries, want 0", got)
	}
	if got := len(catalog.Rooms()); got != 1 {
		t.Errorf("rooms = %d, want 1", got)
	}
}

func TestUpsertPricingTierDropsBlankIncludes(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	tier, err := catalog.UpsertPricingTier(models.PricingTier{
		Label:    "Festival Tariff",
		Rate:     "₹6,000 / night",
		Includes: []string{" Breakfast ", "", "  ", "Bonfire"},
	})
	if err != nil {
		t.Fatalf("UpsertPricingTier: %v", err)
	}
	want := []string{"Breakfast", "Bonfire"}
	if len(tier.Includes) != len(want) {
		t.Fatalf("includes = %v, want %v", tier.Includes, want)
	}
	for i := range want {
		if tier.Includes[i] != want[i] {
			t.Errorf("includes[%d] = %q, want %q", i, tier.Includes[i], want[i])
		}
	}
}
