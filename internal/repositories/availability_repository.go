package repositories

import (
	"errors"

	"gorm.io/gorm"

	"insurai_backend/internal/models"
)

var (
	ErrSlotNotFound      = errors.New("availability slot not found")
	ErrSlotNotAvailable  = errors.New("slot not available")
	ErrInvalidSlotUpdate = errors.New("invalid slot update")
)

type AvailabilityRepository interface {
	// Slot operations
	CreateSlot(slot *models.AgentAvailability) error
	FindByID(id uint) (*models.AgentAvailability, error)
	FindByAgent(agentID string) ([]models.AgentAvailability, error)
	FindByAgentAndStatus(agentID string, status models.SlotStatus) ([]models.AgentAvailability, error)
	FindByStatus(status models.SlotStatus) ([]models.AgentAvailability, error)
	Update(slot *models.AgentAvailability) error

	// Booking transition
	Book(slotID uint, clientID string) (*models.AgentAvailability, error)
}

type AvailabilityRepositoryImpl struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &AvailabilityRepositoryImpl{db: db}
}

// CreateSlot persists the slot together with its breaks in one transaction.
func (r *AvailabilityRepositoryImpl) CreateSlot(slot *models.AgentAvailability) error {
	return r.db.Create(slot).Error
}

func (r *AvailabilityRepositoryImpl) FindByID(id uint) (*models.AgentAvailability, error) {
	var slot models.AgentAvailability
	err := r.db.Preload("Breaks", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *AvailabilityRepositoryImpl) FindByAgent(agentID string) ([]models.AgentAvailability, error) {
	var slots []models.AgentAvailability
	err := r.db.Preload("Breaks", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("agent_id = ?", agentID).Order("id ASC").Find(&slots).Error
	return slots, err
}

func (r *AvailabilityRepositoryImpl) FindByAgentAndStatus(agentID string, status models.SlotStatus) ([]models.AgentAvailability, error) {
	var slots []models.AgentAvailability
	err := r.db.Preload("Breaks", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("agent_id = ? AND status = ?", agentID, status).Order("id ASC").Find(&slots).Error
	return slots, err
}

func (r *AvailabilityRepositoryImpl) FindByStatus(status models.SlotStatus) ([]models.AgentAvailability, error) {
	var slots []models.AgentAvailability
	err := r.db.Preload("Breaks", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("status = ?", status).Order("id ASC").Find(&slots).Error
	return slots, err
}

// Update replaces the mutable fields (status, booked_by). Immutable fields
// (agent, date, interval, breaks) are left untouched.
func (r *AvailabilityRepositoryImpl) Update(slot *models.AgentAvailability) error {
	if slot.ID == 0 {
		return ErrInvalidSlotUpdate
	}

	result := r.db.Model(&models.AgentAvailability{}).
		Where("id = ?", slot.ID).
		Updates(map[string]interface{}{
			"status":    slot.Status,
			"booked_by": slot.BookedBy,
			"notes":     slot.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// Book applies the Available -> Booked transition as a single conditional
// update. The WHERE clause on status makes the check-then-set atomic: under
// concurrent attempts exactly one caller flips the row, everyone else sees
// RowsAffected == 0 and gets ErrSlotNotAvailable (or ErrSlotNotFound if the
// id never existed). Status and booked_by change in the same statement, so
// the Booked <=> bookedBy-set invariant can never be observed broken.
func (r *AvailabilityRepositoryImpl) Book(slotID uint, clientID string) (*models.AgentAvailability, error) {
	result := r.db.Model(&models.AgentAvailability{}).
		Where("id = ? AND status = ?", slotID, models.SlotStatusAvailable).
		Updates(map[string]interface{}{
			"status":    models.SlotStatusBooked,
			"booked_by": clientID,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Lost the race or the slot never existed; look once to tell which.
		var slot models.AgentAvailability
		if err := r.db.First(&slot, slotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSlotNotFound
			}
			return nil, err
		}
		return nil, ErrSlotNotAvailable
	}

	return r.FindByID(slotID)
}
