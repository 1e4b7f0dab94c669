package contracts

import (
	"context"

	"github.com/XavierBriggs/Herald/pkg/models"
)

// ScheduleAdapter defines the interface for pulling fixtures and TV schedules from a sports data provider
type ScheduleAdapter interface {
	// FetchTVSchedule retrieves the broadcast announcements for one sport and day
	FetchTVSchedule(ctx context.Context, opts *models.FetchScheduleOptions) ([]models.BroadcastRecord, error)

	// FetchFixtures retrieves the scheduled fixtures for one sport and day
	FetchFixtures(ctx context.Context, opts *models.FetchScheduleOptions) ([]models.Fixture, error)

	// SourceName identifies the provider on persisted rows (provenance)
	SourceName() string
}
