package services

import (
	"time"

	"insurai_backend/internal/appErrors"
	"insurai_backend/internal/logger"
	"insurai_backend/internal/models"
	"insurai_backend/internal/repositories"
	"insurai_backend/internal/services/dto"
)

type AvailabilityService interface {
	CreateAvailability(agentID string, req *dto.CreateAvailabilityRequest) (*models.AgentAvailability, error)
	GetAgentAvailability(agentID string) ([]models.AgentAvailability, error)
	GetAvailableSlots() ([]models.AgentAvailability, error)
	UpdateAvailability(agentID string, slotID uint, req *dto.UpdateAvailabilityRequest) (*models.AgentAvailability, error)
	BookSlot(slotID uint, clientID string) (*models.AgentAvailability, error)
	GetOnlineAgents() ([]dto.OnlineAgent, error)
	GetBookedRequestsByAgent(agentID string) ([]dto.BookedRequest, error)
}

type availabilityService struct {
	availabilityRepo    repositories.AvailabilityRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewAvailabilityService(
	availabilityRepo repositories.AvailabilityRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) AvailabilityService {
	return &availabilityService{
		availabilityRepo:    availabilityRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// CreateAvailability opens a new slot. The request's status field is
// ignored: every slot starts Available with no booker, whatever the client
// sent.
func (s *availabilityService) CreateAvailability(agentID string, req *dto.CreateAvailabilityRequest) (*models.AgentAvailability, error) {
	start, err := parseHHMM(req.StartTime)
	if err != nil {
		return nil, appErrors.NewBadRequestError("startTime must be HH:MM")
	}
	end, err := parseHHMM(req.EndTime)
	if err != nil {
		return nil, appErrors.NewBadRequestError("endTime must be HH:MM")
	}
	if !start.Before(end) {
		return nil, appErrors.NewBadRequestError("startTime must be before endTime")
	}

	breaks := make([]models.AvailabilityBreak, 0, len(req.Breaks))
	for _, b := range req.Breaks {
		bs, err := parseHHMM(b.BreakStart)
		if err != nil {
			return nil, appErrors.NewBadRequestError("breakStart must be HH:MM")
		}
		be, err := parseHHMM(b.BreakEnd)
		if err != nil {
			return nil, appErrors.NewBadRequestError("breakEnd must be HH:MM")
		}
		if !bs.Before(be) {
			return nil, appErrors.NewBadRequestError("breakStart must be before breakEnd")
		}
		if bs.Before(start) || be.After(end) {
			return nil, appErrors.NewBadRequestError("break must lie within the slot interval")
		}
		breaks = append(breaks, models.AvailabilityBreak{
			BreakStart: b.BreakStart,
			BreakEnd:   b.BreakEnd,
		})
	}

	slot := &models.AgentAvailability{
		AgentID:   agentID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Recurring: req.Recurring,
		Notes:     req.Notes,
		Status:    models.SlotStatusAvailable,
		BookedBy:  nil,
		Breaks:    breaks,
	}

	if err := s.availabilityRepo.CreateSlot(slot); err != nil {
		return nil, appErrors.StorageError(err)
	}
	return slot, nil
}

func (s *availabilityService) GetAgentAvailability(agentID string) ([]models.AgentAvailability, error) {
	slots, err := s.availabilityRepo.FindByAgent(agentID)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return slots, nil
}

func (s *availabilityService) GetAvailableSlots() ([]models.AgentAvailability, error) {
	slots, err := s.availabilityRepo.FindByStatus(models.SlotStatusAvailable)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}
	return slots, nil
}

// UpdateAvailability lets the owning agent edit notes or reopen a slot.
// Reopening clears the booker in the same write; the Booked status is never
// set here, bookings only happen through BookSlot.
func (s *availabilityService) UpdateAvailability(agentID string, slotID uint, req *dto.UpdateAvailabilityRequest) (*models.AgentAvailability, error) {
	slot, err := s.availabilityRepo.FindByID(slotID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSlotNotFound) {
			return nil, appErrors.ErrSlotNotFound
		}
		return nil, appErrors.StorageError(err)
	}
	if slot.AgentID != agentID {
		return nil, appErrors.ErrForbidden
	}

	if req.Status != "" {
		if models.SlotStatus(req.Status) == models.SlotStatusBooked {
			return nil, appErrors.NewBadRequestError("slots are booked through the booking endpoint")
		}
		slot.Status = models.SlotStatusAvailable
		slot.BookedBy = nil
	}
	if req.Notes != "" {
		slot.Notes = req.Notes
	}

	if err := s.availabilityRepo.Update(slot); err != nil {
		if appErrors.Is(err, repositories.ErrSlotNotFound) {
			return nil, appErrors.ErrSlotNotFound
		}
		return nil, appErrors.StorageError(err)
	}

	return s.getSlot(slotID)
}

// BookSlot claims the slot for clientID. The write either wins the race or
// reports why it lost: 404 when the slot never existed, 409 when someone got
// there first. Notification delivery never unwinds a committed booking: a
// failure there is logged and swallowed.
func (s *availabilityService) BookSlot(slotID uint, clientID string) (*models.AgentAvailability, error) {
	slot, err := s.availabilityRepo.Book(slotID, clientID)
	if err != nil {
		switch {
		case appErrors.Is(err, repositories.ErrSlotNotFound):
			return nil, appErrors.ErrSlotNotFound
		case appErrors.Is(err, repositories.ErrSlotNotAvailable):
			return nil, appErrors.ErrSlotNotAvailable
		default:
			return nil, appErrors.StorageError(err)
		}
	}

	clientName := clientID
	if client, err := s.userRepo.FindByID(clientID); err == nil {
		clientName = client.FullName()
	}
	agentName := slot.AgentID
	if agent, err := s.userRepo.FindByID(slot.AgentID); err == nil {
		agentName = agent.FullName()
	}

	if err := s.notificationService.NotifyBookingConfirmed(slot, clientID, clientName, agentName); err != nil {
		logger.Warn("booking confirmed but notification failed",
			"slot_id", slot.ID, "client_id", clientID, "error", err)
	}

	return slot, nil
}

// GetOnlineAgents projects every agent with at least one open slot. An agent
// id with no matching user row still shows up, with the raw id as its name.
func (s *availabilityService) GetOnlineAgents() ([]dto.OnlineAgent, error) {
	slots, err := s.availabilityRepo.FindByStatus(models.SlotStatusAvailable)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}

	agents := make([]dto.OnlineAgent, 0)
	index := make(map[string]int)
	for _, slot := range slots {
		i, seen := index[slot.AgentID]
		if !seen {
			agent := dto.OnlineAgent{AgentID: slot.AgentID, AgentName: slot.AgentID}
			if user, err := s.userRepo.FindByID(slot.AgentID); err == nil {
				agent.AgentName = user.FullName()
				agent.Email = user.Email
			}
			agents = append(agents, agent)
			i = len(agents) - 1
			index[slot.AgentID] = i
		}
		agents[i].Slots = append(agents[i].Slots, slot)
	}

	return agents, nil
}

// GetBookedRequestsByAgent lists the agent's booked slots with the booking
// client's identity. Unresolvable clients degrade to placeholders instead of
// failing the whole listing.
func (s *availabilityService) GetBookedRequestsByAgent(agentID string) ([]dto.BookedRequest, error) {
	slots, err := s.availabilityRepo.FindByAgentAndStatus(agentID, models.SlotStatusBooked)
	if err != nil {
		return nil, appErrors.StorageError(err)
	}

	requests := make([]dto.BookedRequest, 0, len(slots))
	for _, slot := range slots {
		request := dto.BookedRequest{
			SlotID:      slot.ID,
			Date:        slot.Date,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			ClientName:  "Unknown",
			ClientEmail: "N/A",
			Notes:       slot.Notes,
		}
		if slot.BookedBy != nil {
			request.ClientID = *slot.BookedBy
			if client, err := s.userRepo.FindByID(*slot.BookedBy); err == nil {
				request.ClientName = client.FullName()
				request.ClientEmail = client.Email
			}
		}
		requests = append(requests, request)
	}

	return requests, nil
}

func (s *availabilityService) getSlot(slotID uint) (*models.AgentAvailability, error) {
	slot, err := s.availabilityRepo.FindByID(slotID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrSlotNotFound) {
			return nil, appErrors.ErrSlotNotFound
		}
		return nil, appErrors.StorageError(err)
	}
	return slot, nil
}

func parseHHMM(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}
