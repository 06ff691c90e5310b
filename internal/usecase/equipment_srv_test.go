package usecase

import (
	"context"
	"errors"
	"testing"

	"lab-booking/internal/data/entity"
	"lab-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCreateEquipmentDefaultsCap(t *testing.T) {
	repo, _, _, _, labs := newTestRepo()
	svc := NewEquipmentService(repo, zap.NewNop())

	ownerID := uuid.New()
	lab := &entity.Laboratory{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "chem lab",
		Enabled: true,
		OwnerID: ownerID,
	}
	labs.Create(context.Background(), lab)

	eq, err := svc.CreateEquipment(context.Background(), ownerID, &request.CreateEquipmentRequest{
		LaboratoryID: lab.ID.String(),
		Name:         "centrifuge",
	})
	if err != nil {
		t.Fatalf("CreateEquipment failed: %v", err)
	}

	if eq.BookingsPerUser != defaultBookingsPerUser {
		t.Errorf("bookings_per_user = %d, want default %d", eq.BookingsPerUser, defaultBookingsPerUser)
	}
}

func TestCreateEquipmentRequiresEnabledLab(t *testing.T) {
	repo, _, _, _, labs := newTestRepo()
	svc := NewEquipmentService(repo, zap.NewNop())

	ownerID := uuid.New()
	lab := &entity.Laboratory{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "retired lab",
		Enabled: false,
		OwnerID: ownerID,
	}
	labs.Create(context.Background(), lab)

	_, err := svc.CreateEquipment(context.Background(), ownerID, &request.CreateEquipmentRequest{
		LaboratoryID: lab.ID.String(),
		Name:         "centrifuge",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for disabled lab, got %v", err)
	}
}

func TestUpdateEquipmentOwnerOnly(t *testing.T) {
	repo, _, _, equipments, labs := newTestRepo()
	svc := NewEquipmentService(repo, zap.NewNop())

	eq := seedLabAndEquipment(t, labs, equipments, uuid.New())

	_, err := svc.UpdateEquipment(context.Background(), eq.ID.String(), uuid.New(), &request.UpdateEquipmentRequest{
		Name: "renamed",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
}
