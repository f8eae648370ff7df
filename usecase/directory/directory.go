package directory

import (
	"context"

	"go.uber.org/zap"

	"github.com/skillswap/backend/domain"
	"github.com/skillswap/backend/repository"
)

// Filter narrows the directory listing. Viewer, when set, is excluded from
// the results. Availability "all" (or empty) disables the tag filter.
type Filter struct {
	Viewer       string
	Search       string
	Availability string
	Page         int
	PerPage      int
}

// Page is one page of directory results together with paging metadata.
type Page struct {
	Users      []domain.User `json:"users"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
}

type UseCase struct {
	users    repository.UserRepository
	reviews  repository.ReviewRepository
	pageSize int
	logger   *zap.Logger
}

func New(users repository.UserRepository, reviews repository.ReviewRepository, pageSize int, logger *zap.Logger) *UseCase {
	if pageSize <= 0 {
		pageSize = 4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		reviews:  reviews,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List returns the public, non-admin members matching the filter.
func (uc *UseCase) List(ctx context.Context, filter Filter) (*Page, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.User, 0, len(users))
	for _, user := range users {
		if user.ID == filter.Viewer || !user.IsPublic || user.IsAdmin {
			continue
		}
		if !user.MatchesSearch(filter.Search) {
			continue
		}
		if filter.Availability != "" && filter.Availability != "all" && !user.AvailableDuring(filter.Availability) {
			continue
		}
		matched = append(matched, user)
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = uc.pageSize
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return &Page{
		Users:      matched[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// GetUser returns a single directory entry. Private profiles are only
// visible to themselves.
func (uc *UseCase) GetUser(ctx context.Context, viewerID, userID string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsPublic && viewerID != user.ID {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// GetUserReviews returns the reviews written about a user.
func (uc *UseCase) GetUserReviews(ctx context.Context, userID string) ([]domain.Review, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return uc.reviews.ListByTarget(ctx, userID)
}
