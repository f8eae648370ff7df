package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/repository"
)

// Update carries the profile fields a user may edit about themselves.
// Nil fields are left untouched, so a partial payload never clears data the
// caller did not mention. Identifier, email, rating, review count and join
// date are never editable.
type Update struct {
	Name          *string
	Location      *string
	ProfilePhoto  *string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
	IsPublic      *bool
}

type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, update Update) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != "" {
		user.Name = *update.Name
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.ProfilePhoto != nil {
		user.ProfilePhoto = *update.ProfilePhoto
	}
	if update.SkillsOffered != nil {
		user.SkillsOffered = update.SkillsOffered
	}
	if update.SkillsWanted != nil {
		user.SkillsWanted = update.SkillsWanted
	}
	if update.Availability != nil {
		user.Availability = update.Availability
	}
	if update.IsPublic != nil {
		user.IsPublic = *update.IsPublic
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
