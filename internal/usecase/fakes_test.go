package usecase

import (
	"context"
	"sync"
	"time"

	"lab-booking/internal/data/entity"
	"lab-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests. They mirror the SQL
// semantics closely enough for the service layer: soft-deleted rows are
// invisible to FindByID, and Claim is an atomic compare-and-set.

type fakeLaboratoryRepo struct {
	mu   sync.Mutex
	labs map[uuid.UUID]*entity.Laboratory
}

func newFakeLaboratoryRepo() *fakeLaboratoryRepo {
	return &fakeLaboratoryRepo{labs: make(map[uuid.UUID]*entity.Laboratory)}
}

func (f *fakeLaboratoryRepo) Create(_ context.Context, lab *entity.Laboratory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labs[lab.ID] = lab
	return nil
}

func (f *fakeLaboratoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Laboratory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lab, ok := f.labs[id]
	if !ok || !lab.Enabled {
		return nil, nil
	}
	return lab, nil
}

func (f *fakeLaboratoryRepo) FindAll(_ context.Context, ownerID *uuid.UUID, visible *bool) ([]*entity.Laboratory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Laboratory
	for _, lab := range f.labs {
		if !lab.Enabled {
			continue
		}
		if ownerID != nil && lab.OwnerID != *ownerID {
			continue
		}
		if visible != nil && lab.Visible != *visible {
			continue
		}
		out = append(out, lab)
	}
	return out, nil
}

func (f *fakeLaboratoryRepo) FindVisible(_ context.Context) ([]*entity.Laboratory, error) {
	visible := true
	return f.FindAll(context.Background(), nil, &visible)
}

func (f *fakeLaboratoryRepo) Update(_ context.Context, lab *entity.Laboratory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.labs[lab.ID] = lab
	return nil
}

func (f *fakeLaboratoryRepo) Disable(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lab, ok := f.labs[id]; ok {
		lab.Enabled = false
	}
	return nil
}

type fakeEquipmentRepo struct {
	mu         sync.Mutex
	equipments map[uuid.UUID]*entity.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{equipments: make(map[uuid.UUID]*entity.Equipment)}
}

func (f *fakeEquipmentRepo) Create(_ context.Context, eq *entity.Equipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.equipments[eq.ID] = eq
	return nil
}

func (f *fakeEquipmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	eq, ok := f.equipments[id]
	if !ok || !eq.Enabled {
		return nil, nil
	}
	return eq, nil
}

func (f *fakeEquipmentRepo) FindByLaboratoryID(_ context.Context, laboratoryID uuid.UUID) ([]*entity.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Equipment
	for _, eq := range f.equipments {
		if eq.Enabled && eq.LaboratoryID == laboratoryID {
			out = append(out, eq)
		}
	}
	return out, nil
}

func (f *fakeEquipmentRepo) Update(_ context.Context, eq *entity.Equipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.equipments[eq.ID] = eq
	return nil
}

func (f *fakeEquipmentRepo) Disable(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if eq, ok := f.equipments[id]; ok {
		eq.Enabled = false
	}
	return nil
}

func (f *fakeEquipmentRepo) DisableByLaboratoryID(_ context.Context, laboratoryID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, eq := range f.equipments {
		if eq.LaboratoryID == laboratoryID {
			eq.Enabled = false
		}
	}
	return nil
}

type fakeTimeFrameRepo struct {
	mu         sync.Mutex
	timeframes map[uuid.UUID]*entity.TimeFrame
	bookings   *fakeBookingRepo

	// When set, CreateWithBookings fails without persisting anything.
	createErr error
}

func newFakeTimeFrameRepo(bookings *fakeBookingRepo) *fakeTimeFrameRepo {
	return &fakeTimeFrameRepo{
		timeframes: make(map[uuid.UUID]*entity.TimeFrame),
		bookings:   bookings,
	}
}

func (f *fakeTimeFrameRepo) CreateWithBookings(_ context.Context, tf *entity.TimeFrame, bookings []*entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.timeframes[tf.ID] = tf
	for _, b := range bookings {
		f.bookings.add(b)
	}
	return nil
}

func (f *fakeTimeFrameRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TimeFrame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tf, ok := f.timeframes[id]
	if !ok || !tf.Enabled {
		return nil, nil
	}
	return tf, nil
}

func (f *fakeTimeFrameRepo) FindByEquipmentID(_ context.Context, equipmentID uuid.UUID) ([]*entity.TimeFrame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.TimeFrame
	for _, tf := range f.timeframes {
		if tf.Enabled && tf.EquipmentID == equipmentID {
			out = append(out, tf)
		}
	}
	return out, nil
}

func (f *fakeTimeFrameRepo) Disable(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tf, ok := f.timeframes[id]; ok {
		tf.Enabled = false
	}
	return nil
}

func (f *fakeTimeFrameRepo) DisableByEquipmentID(_ context.Context, equipmentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tf := range f.timeframes {
		if tf.EquipmentID == equipmentID {
			tf.Enabled = false
		}
	}
	return nil
}

func (f *fakeTimeFrameRepo) DisableExpired(_ context.Context, at time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	day := dateOnly(at)
	for _, tf := range f.timeframes {
		if !tf.Enabled {
			continue
		}
		endDay := dateOnly(tf.EndDate)
		expired := endDay.Before(day) ||
			(endDay.Equal(day) && minutesOfDay(tf.EndHour) <= minutesOfDay(at))
		if expired {
			tf.Enabled = false
			count++
		}
	}
	return count, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking

	// equipment -> laboratory, for the per-lab availability scan
	equipmentLab map[uuid.UUID]uuid.UUID
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:     make(map[uuid.UUID]*entity.Booking),
		equipmentLab: make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeBookingRepo) add(b *entity.Booking) {
	f.bookings[b.ID] = b
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBookingRepo) FindByAccessKey(_ context.Context, accessKey uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.AccessKey == accessKey {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) matches(b *entity.Booking, filter repository.BookingFilter) bool {
	if filter.EquipmentID != nil && b.EquipmentID != *filter.EquipmentID {
		return false
	}
	if filter.From != nil && b.StartDate.Before(*filter.From) {
		return false
	}
	if filter.To != nil && !b.StartDate.Before(*filter.To) {
		return false
	}
	return true
}

func (f *fakeBookingRepo) FindAvailable(_ context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Available && f.matches(b, filter) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountAvailable(ctx context.Context, filter repository.BookingFilter) (int64, error) {
	out, _ := f.FindAvailable(ctx, filter)
	return int64(len(out)), nil
}

func (f *fakeBookingRepo) FindByReservedBy(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.ReservedBy != nil && *b.ReservedBy == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByReservedBy(ctx context.Context, userID uuid.UUID) (int64, error) {
	out, _ := f.FindByReservedBy(ctx, userID, 0, 0)
	return int64(len(out)), nil
}

func (f *fakeBookingRepo) FindPublicReserved(_ context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Public && !b.Available && b.ReservedBy != nil && f.matches(b, filter) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Claim(_ context.Context, id, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok || !b.Available || b.ReservedBy != nil {
		return false, nil
	}
	b.ReservedBy = &userID
	b.Available = false
	return true, nil
}

func (f *fakeBookingRepo) CountFutureReservations(_ context.Context, equipmentID, userID uuid.UUID, at time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.EquipmentID == equipmentID && b.ReservedBy != nil && *b.ReservedBy == userID && b.EndDate.After(at) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) ExistsAvailableForEquipment(_ context.Context, equipmentID uuid.UUID, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.EquipmentID == equipmentID && b.Available && b.EndDate.After(at) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) ExistsAvailableForLaboratory(_ context.Context, laboratoryID uuid.UUID, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if f.equipmentLab[b.EquipmentID] == laboratoryID && b.Available && b.EndDate.After(at) {
			return true, nil
		}
	}
	return false, nil
}

type fakeSessionRepo struct{}

func (fakeSessionRepo) FindValidSession(context.Context, string) (*entity.Session, error) {
	return nil, nil
}

// newTestRepo bundles freshly wired fakes into a repository.Repository.
func newTestRepo() (*repository.Repository, *fakeBookingRepo, *fakeTimeFrameRepo, *fakeEquipmentRepo, *fakeLaboratoryRepo) {
	bookings := newFakeBookingRepo()
	timeframes := newFakeTimeFrameRepo(bookings)
	equipments := newFakeEquipmentRepo()
	labs := newFakeLaboratoryRepo()

	repo := &repository.Repository{
		Session:    fakeSessionRepo{},
		Laboratory: labs,
		Equipment:  equipments,
		TimeFrame:  timeframes,
		Booking:    bookings,
	}
	return repo, bookings, timeframes, equipments, labs
}

func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}
