package schedule

import (
	"context"

	"github.com/lanavaja/barberia-api/internal/audit"
	"github.com/lanavaja/barberia-api/internal/cache"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	sched "github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

type UpdateShopSettingsInput struct {
	WorkingHours sched.WeeklySchedule
	BlockedDates sched.DateSet

	Actor domain.Actor
}

// UpdateShopSettings upserts the single shop-wide settings row: display
// hours plus the closure dates that override every barber's schedule.
type UpdateShopSettings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewUpdateShopSettings(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.SlotCache,
) *UpdateShopSettings {
	return &UpdateShopSettings{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateShopSettings) Execute(
	ctx context.Context,
	in UpdateShopSettingsInput,
) (*models.ShopSettings, error) {

	if in.Actor.Role != domain.RoleAdmin {
		return nil, httperr.ErrAuth("forbidden")
	}

	if err := in.WorkingHours.Validate(); err != nil {
		return nil, httperr.ErrRule("invalid_schedule")
	}

	if in.WorkingHours == nil {
		in.WorkingHours = sched.WeeklySchedule{}
	}
	if in.BlockedDates == nil {
		in.BlockedDates = sched.DateSet{}
	}

	s := &models.ShopSettings{
		ID:           models.ShopSettingsID,
		WorkingHours: in.WorkingHours,
		BlockedDates: in.BlockedDates,
	}

	if err := uc.repo.UpsertShopSettings(ctx, s); err != nil {
		return nil, err
	}

	// Closure dates changed for every barber, so no cached listing is
	// trustworthy anymore.
	uc.cache.InvalidateAll(ctx)

	uc.audit.Dispatch(audit.Event{
		ActorID: &in.Actor.UserID,
		Action:  "shop_settings_updated",
		Entity:  "shop_settings",
	})

	return s, nil
}

// GetShopSettings exposes the singleton row (hours for display, closures
// for the booking flow).
type GetShopSettings struct {
	repo domain.Repository
}

func NewGetShopSettings(repo domain.Repository) *GetShopSettings {
	return &GetShopSettings{repo: repo}
}

func (uc *GetShopSettings) Execute(ctx context.Context) (*models.ShopSettings, error) {
	return uc.repo.GetShopSettings(ctx)
}
