package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lab-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestDisableLaboratoryCascades(t *testing.T) {
	repo, _, timeframes, equipments, labs := newTestRepo()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	labSvc := NewLaboratoryService(repo, fixedClock(now), zap.NewNop())
	tfSvc := NewTimeFrameService(repo, testConfig(), fixedClock(now), zap.NewNop())

	ownerID := uuid.New()
	eq := seedLabAndEquipment(t, labs, equipments, ownerID)

	out, err := tfSvc.CreateTimeFrame(context.Background(), ownerID, &request.CreateTimeFrameRequest{
		EquipmentID:  eq.ID.String(),
		StartDate:    "2026-03-02",
		EndDate:      "2026-03-02",
		StartHour:    "09:00",
		EndHour:      "11:00",
		SlotDuration: 60,
	})
	if err != nil {
		t.Fatalf("CreateTimeFrame failed: %v", err)
	}

	if err := labSvc.DisableLaboratory(context.Background(), eq.LaboratoryID.String(), ownerID); err != nil {
		t.Fatalf("DisableLaboratory failed: %v", err)
	}

	if lab, _ := labs.FindByID(context.Background(), eq.LaboratoryID); lab != nil {
		t.Error("disabled laboratory still visible")
	}
	if got, _ := equipments.FindByID(context.Background(), eq.ID); got != nil {
		t.Error("equipment of disabled laboratory still visible")
	}
	if tf, _ := timeframes.FindByID(context.Background(), uuid.MustParse(out.ID)); tf != nil {
		t.Error("timeframe of disabled laboratory still visible")
	}
}

func TestDisableLaboratoryOwnerOnly(t *testing.T) {
	repo, _, _, equipments, labs := newTestRepo()
	svc := NewLaboratoryService(repo, fixedClock(time.Now()), zap.NewNop())

	ownerID := uuid.New()
	eq := seedLabAndEquipment(t, labs, equipments, ownerID)

	err := svc.DisableLaboratory(context.Background(), eq.LaboratoryID.String(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
}

func TestGetPublicLaboratoriesAvailability(t *testing.T) {
	repo, bookings, _, equipments, labs := newTestRepo()
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	svc := NewLaboratoryService(repo, fixedClock(now), zap.NewNop())

	ownerID := uuid.New()
	eq := seedLabAndEquipment(t, labs, equipments, ownerID)
	bookings.equipmentLab[eq.ID] = eq.LaboratoryID

	// No open slots yet.
	out, err := svc.GetPublicLaboratories(context.Background())
	if err != nil {
		t.Fatalf("GetPublicLaboratories failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 public laboratory, got %d", len(out))
	}
	if out[0].AvailableNow == nil || *out[0].AvailableNow {
		t.Error("laboratory without open slots reported available")
	}

	bookings.add(newTestBooking(eq.ID, now.Add(time.Hour), now.Add(2*time.Hour), true, ""))

	out, err = svc.GetPublicLaboratories(context.Background())
	if err != nil {
		t.Fatalf("GetPublicLaboratories failed: %v", err)
	}
	if out[0].AvailableNow == nil || !*out[0].AvailableNow {
		t.Error("laboratory with an open future slot reported unavailable")
	}
}
