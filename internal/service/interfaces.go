package service

import (
	"context"

	"member-history-backend/internal/cycle"
	"member-history-backend/internal/models"
	"member-history-backend/internal/timeline"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MemberAPIClient defines the calls made to the upstream member API
type MemberAPIClient interface {
	SearchMembers(ctx context.Context, name string) ([]models.Member, error)
	GetHistory(ctx context.Context, memberID int) (*models.History, error)
	GetStatus(ctx context.Context, memberID int) (*models.MemberStatus, error)
	GetCycleConfig(ctx context.Context) (*cycle.Config, error)
}

// CycleConfigSource provides the active cycle configuration
type CycleConfigSource interface {
	Config(ctx context.Context) cycle.Config
	IsDefault() bool
}

// HistoryServiceInterface defines the interface for the member history service
type HistoryServiceInterface interface {
	SearchMembers(ctx context.Context, name string) (*MemberSearchResponse, error)
	GetTimeline(ctx context.Context, memberID int) (*TimelineResponse, error)
	GetCounters(ctx context.Context, memberID int) (*timeline.CounterSummary, error)
}

// CycleServiceInterface defines the interface for cycle calendar queries
type CycleServiceInterface interface {
	GetConfig(ctx context.Context) *CycleConfigResponse
	Locate(ctx context.Context, date models.Date) (*cycle.Position, error)
	Range(ctx context.Context, n int, end models.Date) (*cycle.Range, error)
}

// SessionServiceInterface defines the interface for per-session view state
type SessionServiceInterface interface {
	Create() *ViewState
	Get(sessionID string) (*ViewState, error)
	Search(ctx context.Context, sessionID, name string) (*ViewState, error)
	Select(ctx context.Context, sessionID string, memberID int) (*ViewState, error)
	Forget(sessionID string)
}
