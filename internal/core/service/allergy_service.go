package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// AllergyService implements allergy CRUD. Creating a severe allergy appends
// an allergy_alert activity to the owner's feed.
type AllergyService struct {
	allergies  ports.AllergyRepository
	activities ports.ActivityRepository
	logger     zerolog.Logger
}

func NewAllergyService(allergies ports.AllergyRepository, activities ports.ActivityRepository, logger zerolog.Logger) *AllergyService {
	return &AllergyService{allergies: allergies, activities: activities, logger: logger}
}

func (s *AllergyService) ListForUser(ctx context.Context, userID int) ([]*domain.Allergy, error) {
	return s.allergies.ListByUser(ctx, userID)
}

func (s *AllergyService) Create(ctx context.Context, input ports.CreateAllergyInput) (*domain.Allergy, error) {
	allergy := &domain.Allergy{
		UserID:    input.UserID,
		Name:      input.Name,
		Severity:  input.Severity,
		RiskLevel: input.RiskLevel,
	}

	created, err := s.allergies.Create(ctx, allergy)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", input.UserID).Msg("failed to create allergy")
		return nil, err
	}

	if created.Severity == domain.SeveritySevere {
		if _, err := s.activities.Create(ctx, &domain.Activity{
			UserID:      created.UserID,
			Type:        domain.ActivityAllergyAlert,
			Title:       "Severe Allergy Added",
			Description: fmt.Sprintf("%s • %s risk", created.Name, created.RiskLevel),
			Icon:        "fas fa-exclamation-triangle",
			Color:       "destructive",
			Tags:        []string{created.Severity},
		}); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (s *AllergyService) Update(ctx context.Context, userID, id int, patch ports.AllergyPatch) (*domain.Allergy, error) {
	return s.allergies.Update(ctx, userID, id, patch)
}

func (s *AllergyService) Delete(ctx context.Context, userID, id int) error {
	return s.allergies.Delete(ctx, userID, id)
}
