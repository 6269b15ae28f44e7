package service

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// RoommateService implements roommate CRUD.
type RoommateService struct {
	roommates ports.RoommateRepository
}

func NewRoommateService(roommates ports.RoommateRepository) *RoommateService {
	return &RoommateService{roommates: roommates}
}

func (s *RoommateService) ListForUser(ctx context.Context, userID int) ([]*domain.Roommate, error) {
	return s.roommates.ListByUser(ctx, userID)
}

func (s *RoommateService) Create(ctx context.Context, input ports.CreateRoommateInput) (*domain.Roommate, error) {
	return s.roommates.Create(ctx, &domain.Roommate{
		UserID: input.UserID,
		Name:   input.Name,
		Email:  input.Email,
		Avatar: input.Avatar,
	})
}

func (s *RoommateService) Update(ctx context.Context, userID, id int, patch ports.RoommatePatch) (*domain.Roommate, error) {
	return s.roommates.Update(ctx, userID, id, patch)
}

func (s *RoommateService) Delete(ctx context.Context, userID, id int) error {
	return s.roommates.Delete(ctx, userID, id)
}
