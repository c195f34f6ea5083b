package scheduling

import (
	"context"
	"sync"
	"time"

	bookingRepo "bookwell/database/repository/booking"
	providerRepo "bookwell/database/repository/provider"
	reservationRepo "bookwell/database/repository/reservation"
	serviceRepo "bookwell/database/repository/service"
	"bookwell/models"

	"github.com/google/uuid"
)

// In-memory collaborators mirroring the mongo repositories' semantics.

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{providers: make(map[string]*models.Provider)}
}

func (r *fakeProviderRepo) GetByID(_ context.Context, providerID string) (*models.Provider, error) {
	p, ok := r.providers[providerID]
	if !ok {
		return nil, providerRepo.ErrProviderNotFound
	}
	return p, nil
}

func (r *fakeProviderRepo) GetSchedule(ctx context.Context, providerID string) (models.WeeklySchedule, error) {
	p, err := r.GetByID(ctx, providerID)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	return p.Schedule, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) add(b models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = models.BookingStatusConfirmed
	}
	r.bookings[b.ID] = &b
}

func (r *fakeBookingRepo) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func overlapsRow(rowStart, rowEnd, start, end int) bool {
	return rowStart < end && rowEnd > start
}

func (r *fakeBookingRepo) FindActiveOverlapping(_ context.Context, providerID, date string, start, end int, excludeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID != providerID || b.Date != date || b.Status == models.BookingStatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if overlapsRow(b.Start, b.End, start, end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindActiveOverlappingForCustomer(_ context.Context, customerID, date string, start, end int, excludeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID || b.Date != date || b.Status == models.BookingStatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if overlapsRow(b.Start, b.End, start, end) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetForProviderDate(_ context.Context, providerID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Status != models.BookingStatusCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.add(*booking)
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) EnsureIndexes(context.Context) error { return nil }

// fakeReservationStore serializes InsertIfAvailable with a mutex, standing
// in for the mongo transaction.
type fakeReservationStore struct {
	mu           sync.Mutex
	reservations map[string]*models.SlotReservation
	bookings     *fakeBookingRepo
}

func newFakeReservationStore(bookings *fakeBookingRepo) *fakeReservationStore {
	return &fakeReservationStore{
		reservations: make(map[string]*models.SlotReservation),
		bookings:     bookings,
	}
}

func (s *fakeReservationStore) InsertIfAvailable(ctx context.Context, reservation *models.SlotReservation, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflicts, err := s.bookings.FindActiveOverlapping(ctx, reservation.ProviderID, reservation.Date, reservation.Start, reservation.End, "")
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return reservationRepo.ErrSlotTaken
	}
	for _, existing := range s.reservations {
		if existing.ProviderID != reservation.ProviderID || existing.Date != reservation.Date {
			continue
		}
		if existing.Live(now) && overlapsRow(existing.Start, existing.End, reservation.Start, reservation.End) {
			return reservationRepo.ErrSlotTaken
		}
	}

	copied := *reservation
	s.reservations[reservation.ID] = &copied
	return nil
}

func (s *fakeReservationStore) GetByID(_ context.Context, reservationID string) (*models.SlotReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *fakeReservationStore) UpdateStatus(_ context.Context, reservationID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[reservationID]
	if !ok || r.Status != models.ReservationStatusReserved {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

func (s *fakeReservationStore) FindLiveOverlapping(_ context.Context, providerID, date string, start, end int, excludeID string, now time.Time) ([]models.SlotReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.SlotReservation
	for _, r := range s.reservations {
		if r.ProviderID != providerID || r.Date != date {
			continue
		}
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if r.Live(now) && overlapsRow(r.Start, r.End, start, end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeReservationStore) ExpireDue(_ context.Context, now time.Time) ([]models.SlotReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []models.SlotReservation
	for _, r := range s.reservations {
		if r.Status == models.ReservationStatusReserved && !now.Before(r.ReservedUntil) {
			r.Status = models.ReservationStatusExpired
			due = append(due, *r)
		}
	}
	return due, nil
}

func (s *fakeReservationStore) EnsureIndexes(context.Context) error { return nil }

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) GetByID(_ context.Context, serviceID string) (*models.Service, error) {
	s, ok := r.services[serviceID]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeSlotCache struct {
	mu            sync.Mutex
	data          map[string][]models.Slot
	invalidations []string
}

func newFakeSlotCache() *fakeSlotCache {
	return &fakeSlotCache{data: make(map[string][]models.Slot)}
}

func (c *fakeSlotCache) GetDaySlots(_ context.Context, providerID, date string, durationMinutes int) ([]models.Slot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots, ok := c.data[slotKey(providerID, date, durationMinutes)]
	return slots, ok, nil
}

func (c *fakeSlotCache) SetDaySlots(_ context.Context, providerID, date string, durationMinutes int, slots []models.Slot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[slotKey(providerID, date, durationMinutes)] = slots
	return nil
}

func (c *fakeSlotCache) Invalidate(_ context.Context, providerID, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.data {
		delete(c.data, key)
	}
	c.invalidations = append(c.invalidations, providerID+":"+date)
	return nil
}

// intPtr is a test helper for optional break bounds.
func intPtr(v int) *int { return &v }

func bookingFixture(id, providerID, customerID string, start, end int) models.Booking {
	return models.Booking{
		ID:              id,
		ProviderID:      providerID,
		CustomerID:      customerID,
		Date:            "2026-09-07",
		Start:           start,
		End:             end,
		DurationMinutes: end - start,
		Status:          models.BookingStatusConfirmed,
	}
}

type testHarness struct {
	engine       *DefaultSchedulingEngine
	providers    *fakeProviderRepo
	bookings     *fakeBookingRepo
	reservations *fakeReservationStore
	services     *fakeServiceRepo
	cache        *fakeSlotCache
}

// testNow is a fixed Monday morning; weekdayProvider works Mon-Sat
// 09:00-18:00 with a 13:00-14:00 break and is closed Sunday.
var testNow = time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)

func weekdayProvider(id string) *models.Provider {
	day := func() *models.DaySchedule {
		return &models.DaySchedule{
			IsWorkingDay: true,
			WorkStart:    540,
			WorkEnd:      1080,
			BreakStart:   intPtr(780),
			BreakEnd:     intPtr(840),
		}
	}
	var schedule models.WeeklySchedule
	for weekday := time.Monday; weekday <= time.Saturday; weekday++ {
		schedule[int(weekday)] = day()
	}
	return &models.Provider{ID: id, Name: "Test Provider", Timezone: "UTC", Schedule: schedule}
}

func newTestHarness() *testHarness {
	providers := newFakeProviderRepo()
	bookings := newFakeBookingRepo()
	reservations := newFakeReservationStore(bookings)
	services := newFakeServiceRepo()
	cache := newFakeSlotCache()

	providers.providers["prov-1"] = weekdayProvider("prov-1")

	return &testHarness{
		engine: &DefaultSchedulingEngine{
			ProviderRepo: providers,
			BookingRepo:  bookings,
			Reservations: reservations,
			ServiceRepo:  services,
			Cache:        cache,
			Clock:        func() time.Time { return testNow },
		},
		providers:    providers,
		bookings:     bookings,
		reservations: reservations,
		services:     services,
		cache:        cache,
	}
}
