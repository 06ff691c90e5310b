package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lab-booking/internal/data/entity"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/dto/request"
	"lab-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{
			PasswordLength: 15,
			SweepSchedule:  "@hourly",
		},
	}
}

func seedLabAndEquipment(t *testing.T, labs *fakeLaboratoryRepo, equipments *fakeEquipmentRepo, ownerID uuid.UUID) *entity.Equipment {
	t.Helper()

	lab := &entity.Laboratory{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "physics lab",
		Enabled: true,
		Visible: true,
		OwnerID: ownerID,
	}
	if err := labs.Create(context.Background(), lab); err != nil {
		t.Fatalf("seed laboratory: %v", err)
	}

	eq := &entity.Equipment{
		Base:            entity.Base{ID: uuid.New()},
		LaboratoryID:    lab.ID,
		Name:            "oscilloscope",
		Enabled:         true,
		BookingsPerUser: 3,
		OwnerID:         ownerID,
	}
	if err := equipments.Create(context.Background(), eq); err != nil {
		t.Fatalf("seed equipment: %v", err)
	}

	return eq
}

func TestCreateTimeFrameGeneratesBookings(t *testing.T) {
	repo, bookings, _, equipments, labs := newTestRepo()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTimeFrameService(repo, testConfig(), fixedClock(now), zap.NewNop())

	ownerID := uuid.New()
	eq := seedLabAndEquipment(t, labs, equipments, ownerID)

	out, err := svc.CreateTimeFrame(context.Background(), ownerID, &request.CreateTimeFrameRequest{
		EquipmentID:  eq.ID.String(),
		StartDate:    "2026-03-02",
		EndDate:      "2026-03-04",
		StartHour:    "09:00",
		EndHour:      "11:00",
		SlotDuration: 30,
		Public:       true,
	})
	if err != nil {
		t.Fatalf("CreateTimeFrame failed: %v", err)
	}

	// 3 days x 4 slots.
	if out.GeneratedSlots != 12 {
		t.Fatalf("generated %d slots, want 12", out.GeneratedSlots)
	}

	stored, err := bookings.FindAvailable(context.Background(), repository.BookingFilter{EquipmentID: &eq.ID})
	if err != nil {
		t.Fatalf("FindAvailable failed: %v", err)
	}
	if len(stored) != 12 {
		t.Fatalf("persisted %d bookings, want 12", len(stored))
	}

	keys := make(map[uuid.UUID]bool)
	for _, b := range stored {
		if !b.Available || b.ReservedBy != nil {
			t.Error("generated booking is not open")
		}
		if !b.Public {
			t.Error("generated booking lost the public flag")
		}
		if b.OwnerID != ownerID {
			t.Error("generated booking has wrong owner")
		}
		if len(b.Password) != 15 {
			t.Errorf("password length = %d, want 15", len(b.Password))
		}
		if keys[b.AccessKey] {
			t.Errorf("duplicate access key %s", b.AccessKey)
		}
		keys[b.AccessKey] = true
	}
}

func TestCreateTimeFrameInvalidWindow(t *testing.T) {
	repo, _, timeframes, equipments, labs := newTestRepo()
	svc := NewTimeFrameService(repo, testConfig(), fixedClock(time.Now()), zap.NewNop())

	ownerID := uuid.New()
	eq := seedLabAndEquipment(t, labs, equipments, ownerID)

	_, err := svc.CreateTimeFrame(context.Background(), ownerID, &request.CreateTimeFrameRequest{
		EquipmentID:  eq.ID.String(),
		StartDate:    "2026-03-04",
		EndDate:      "2026-03-02",
		StartHour:    "09:00",
		EndHour:      "11:00",
		SlotDuration: 30,
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(timeframes.timeframes) != 0 {
		t.Error("invalid request persisted a timeframe")
	}
}

func TestCreateTimeFrameUnknownEquipment(t *testing.T) {
	repo, _, _, _, _ := newTestRepo()
	svc := NewTimeFrameService(repo, testConfig(), fixedClock(time.Now()), zap.NewNop())

	_, err := svc.CreateTimeFrame(context.Background(), uuid.New(), &request.CreateTimeFrameRequest{
		EquipmentID:  uuid.New().String(),
		StartDate:    "2026-03-02",
		EndDate:      "2026-03-02",
		StartHour:    "09:00",
		EndHour:      "11:00",
		SlotDuration: 30,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateTimeFrameDisabledLaboratory(t *testing.T) {
	repo, _, _, equipments, labs := newTestRepo()
	svc := NewTimeFrameService(repo, testConfig(), fixedClock(time.Now()), zap.NewNop())

	ownerID := uuid.New()
	eq := seedLabAndEquipment(t, labs, equipments, ownerID)
	labs.Disable(context.Background(), eq.LaboratoryID)

	_, err := svc.CreateTimeFrame(context.Background(), ownerID, &request.CreateTimeFrameRequest{
		EquipmentID:  eq.ID.String(),
		StartDate:    "2026-03-02",
		EndDate:      "2026-03-02",
		StartHour:    "09:00",
		EndHour:      "11:00",
		SlotDuration: 30,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for disabled laboratory, got %v", err)
	}
}

func TestCreateTimeFrameStorageFailure(t *testing.T) {
	repo, bookings, timeframes, equipments, labs := newTestRepo()
	svc := NewTimeFrameService(repo, testConfig(), fixedClock(time.Now()), zap.NewNop())

	ownerID := uuid.New()
	eq := seedLabAndEquipment(t, labs, equipments, ownerID)
	timeframes.createErr = errors.New("connection reset")

	_, err := svc.CreateTimeFrame(context.Background(), ownerID, &request.CreateTimeFrameRequest{
		EquipmentID:  eq.ID.String(),
		StartDate:    "2026-03-02",
		EndDate:      "2026-03-02",
		StartHour:    "09:00",
		EndHour:      "11:00",
		SlotDuration: 30,
	})
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	// Nothing may land when the transaction fails.
	if len(timeframes.timeframes) != 0 {
		t.Error("failed generation persisted a timeframe")
	}
	if n, _ := bookings.CountAvailable(context.Background(), repository.BookingFilter{}); n != 0 {
		t.Errorf("failed generation persisted %d bookings", n)
	}
}

func TestDisableExpiredTimeFrames(t *testing.T) {
	repo, _, timeframes, _, _ := newTestRepo()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewMaintenanceService(repo, fixedClock(now), zap.NewNop())

	expired := &entity.TimeFrame{
		Base:        entity.Base{ID: uuid.New()},
		EquipmentID: uuid.New(),
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		StartHour:   hour(9, 0),
		EndHour:     hour(17, 0),
		Enabled:     true,
	}
	timeframes.timeframes[expired.ID] = expired

	// Ends today but later than now; must survive the sweep.
	current := &entity.TimeFrame{
		Base:        entity.Base{ID: uuid.New()},
		EquipmentID: uuid.New(),
		StartDate:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartHour:   hour(9, 0),
		EndHour:     hour(17, 0),
		Enabled:     true,
	}
	timeframes.timeframes[current.ID] = current

	count, err := svc.DisableExpiredTimeFrames(context.Background())
	if err != nil {
		t.Fatalf("DisableExpiredTimeFrames failed: %v", err)
	}

	if count != 1 {
		t.Fatalf("disabled %d timeframes, want 1", count)
	}
	if expired.Enabled {
		t.Error("expired timeframe still enabled")
	}
	if !current.Enabled {
		t.Error("current timeframe was disabled")
	}
}
