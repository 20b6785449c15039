// Package roster is the session layer of the army builder. Each call loads
// the roster, applies one domain operation and saves it back.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=mockroster -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	domain "github.com/KirkDiggler/army-builder/internal/domain/roster"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
	"github.com/KirkDiggler/army-builder/internal/repositories/rosters"
	"github.com/KirkDiggler/army-builder/internal/uuid"
)

// Repository is an alias for the roster repository interface
type Repository = rosters.Repository

// Service defines the roster service interface
type Service interface {
	// CreateRoster starts an empty roster
	CreateRoster(ctx context.Context, input *CreateRosterInput) (*domain.Roster, error)

	// GetRoster retrieves a roster by ID
	GetRoster(ctx context.Context, rosterID string) (*domain.Roster, error)

	// DeleteRoster removes a roster
	DeleteRoster(ctx context.Context, rosterID string) error

	// ListOwnerRosters lists the live rosters of an owner
	ListOwnerRosters(ctx context.Context, ownerID string) ([]*domain.Roster, error)

	// AddUnits appends quantity slots of a unit
	AddUnits(ctx context.Context, rosterID, unitKey string, quantity int) ([]*domain.Slot, error)

	// RemoveSlot deletes the slot at index
	RemoveSlot(ctx context.Context, rosterID string, index int) (*domain.Slot, error)

	// SetSlotEquipment replaces the equipment of the slot at index
	SetSlotEquipment(ctx context.Context, rosterID string, index int, selection []string) (*SetEquipmentResult, error)

	// Summary returns slot rows and army totals
	Summary(ctx context.Context, rosterID string) (*domain.Summary, error)

	// UnitOptions lists the units that can still be added with their equipment
	UnitOptions(ctx context.Context, rosterID string) ([]domain.UnitOption, error)
}

// CreateRosterInput contains data for creating a roster
type CreateRosterInput struct {
	OwnerID string
	Name    string // Optional
}

// SetEquipmentResult reports what a selection change did to a slot
type SetEquipmentResult struct {
	Slot    *domain.Slot
	Totals  domain.Totals
	Dropped []string
	Army    domain.ArmyTotals
}

type service struct {
	repository    Repository
	manager       *domain.Manager
	uuidGenerator uuid.Generator

	// mu serializes load/mutate/save
	mu sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository      // Required
	Manager       *domain.Manager // Required
	UUIDGenerator uuid.Generator  // Optional, will use default if nil
}

// NewService creates a new roster service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Manager == nil {
		panic("manager is required")
	}

	svc := &service{
		repository: cfg.Repository,
		manager:    cfg.Manager,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateRoster starts an empty roster
func (s *service) CreateRoster(ctx context.Context, input *CreateRosterInput) (*domain.Roster, error) {
	if input == nil {
		return nil, armyerr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.OwnerID) == "" {
		return nil, armyerr.InvalidArgument("owner ID is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "Warband"
	}

	r := &domain.Roster{
		ID:      s.uuidGenerator.New(),
		OwnerID: input.OwnerID,
		Name:    name,
		Slots:   []*domain.Slot{},
	}

	if err := s.repository.Create(ctx, r); err != nil {
		return nil, armyerr.Wrap(err, "failed to create roster")
	}

	return r, nil
}

// GetRoster retrieves a roster by ID
func (s *service) GetRoster(ctx context.Context, rosterID string) (*domain.Roster, error) {
	if rosterID == "" {
		return nil, armyerr.InvalidArgument("roster ID is required")
	}

	r, err := s.repository.Get(ctx, rosterID)
	if err != nil {
		return nil, armyerr.Wrapf(err, "failed to get roster %s", rosterID)
	}

	return r, nil
}

// DeleteRoster removes a roster
func (s *service) DeleteRoster(ctx context.Context, rosterID string) error {
	if rosterID == "" {
		return armyerr.InvalidArgument("roster ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repository.Delete(ctx, rosterID); err != nil {
		return armyerr.Wrapf(err, "failed to delete roster %s", rosterID)
	}

	return nil
}

// ListOwnerRosters lists the live rosters of an owner
func (s *service) ListOwnerRosters(ctx context.Context, ownerID string) ([]*domain.Roster, error) {
	if ownerID == "" {
		return nil, armyerr.InvalidArgument("owner ID is required")
	}

	list, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, armyerr.Wrapf(err, "failed to list rosters of %s", ownerID)
	}

	return list, nil
}

// AddUnits appends quantity slots of a unit. The roster is unchanged when
// the unit is unknown or the quantity does not fit.
func (s *service) AddUnits(ctx context.Context, rosterID, unitKey string, quantity int) ([]*domain.Slot, error) {
	var added []*domain.Slot

	err := s.update(ctx, rosterID, func(r *domain.Roster) error {
		var err error
		added, err = s.manager.AddSlots(r, unitKey, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// RemoveSlot deletes the slot at index
func (s *service) RemoveSlot(ctx context.Context, rosterID string, index int) (*domain.Slot, error) {
	var removed *domain.Slot

	err := s.update(ctx, rosterID, func(r *domain.Roster) error {
		var err error
		removed, err = s.manager.RemoveSlot(r, index)
		return err
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// SetSlotEquipment replaces the equipment of the slot at index. Keys the
// unit cannot take are dropped and reported back.
func (s *service) SetSlotEquipment(ctx context.Context, rosterID string, index int, selection []string) (*SetEquipmentResult, error) {
	result := &SetEquipmentResult{}

	err := s.update(ctx, rosterID, func(r *domain.Roster) error {
		totals, dropped, err := s.manager.SetSlotEquipment(r, index, selection)
		if err != nil {
			return err
		}

		result.Slot = r.Slot(index)
		result.Totals = totals
		result.Dropped = dropped
		result.Army = s.manager.TotalArmy(r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Dropped) > 0 {
		log.Printf("Dropped ineligible equipment %v for %s in roster %s",
			result.Dropped, result.Slot.UnitKey, rosterID)
	}

	return result, nil
}

// Summary returns slot rows and army totals
func (s *service) Summary(ctx context.Context, rosterID string) (*domain.Summary, error) {
	r, err := s.GetRoster(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	return s.manager.Summarize(r), nil
}

// UnitOptions lists every unit with remaining capacity and eligible
// equipment. Units at their cap are marked hidden.
func (s *service) UnitOptions(ctx context.Context, rosterID string) ([]domain.UnitOption, error) {
	r, err := s.GetRoster(ctx, rosterID)
	if err != nil {
		return nil, err
	}

	return s.manager.Options(r), nil
}

// update runs fn against the stored roster and saves the result. Nothing
// is saved when fn fails.
func (s *service) update(ctx context.Context, rosterID string, fn func(r *domain.Roster) error) error {
	if rosterID == "" {
		return armyerr.InvalidArgument("roster ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.repository.Get(ctx, rosterID)
	if err != nil {
		return armyerr.Wrapf(err, "failed to get roster %s", rosterID)
	}

	if err := fn(r); err != nil {
		return err
	}

	if err := s.repository.Update(ctx, r); err != nil {
		return armyerr.Wrapf(err, "failed to save roster %s", rosterID)
	}

	army := s.manager.TotalArmy(r)
	if army.OverCap {
		log.Printf("Roster %s is over the glory limit: %d/%d", rosterID, army.Glory, army.GloryLimit)
	}

	return nil
}
