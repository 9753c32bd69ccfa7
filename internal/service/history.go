package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"member-history-backend/internal/cycle"
	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/logger"
	"member-history-backend/internal/models"
	"member-history-backend/internal/timeline"
)

// HistoryService builds member timelines from member API data
type HistoryService struct {
	client    MemberAPIClient
	configs   CycleConfigSource
	validator *validator.Validate
}

// NewHistoryService creates a new history service
func NewHistoryService(client MemberAPIClient, configs CycleConfigSource, validator *validator.Validate) *HistoryService {
	return &HistoryService{
		client:    client,
		configs:   configs,
		validator: validator,
	}
}

// MemberSearchRequest represents a member search
type MemberSearchRequest struct {
	Name string `validate:"required,min=2,max=100"`
}

// MemberSearchResponse represents the result of a member search
type MemberSearchResponse struct {
	Members []models.Member `json:"members"`
	Total   int             `json:"total"`
	Query   string          `json:"query"`
}

// TimelineRequest identifies the member whose timeline is requested
type TimelineRequest struct {
	MemberID int `validate:"required,min=1"`
}

// TimelineResponse is the fully built timeline of a member
type TimelineResponse struct {
	MemberID    int                     `json:"member_id"`
	CycleConfig cycle.Config            `json:"cycle_config"`
	Cycles      []timeline.CycleBucket  `json:"cycles"`
	Counters    timeline.CounterSummary `json:"counters"`
	Leaves      []models.Leave          `json:"leaves"`
	Holidays    []models.Holiday        `json:"holidays"`
	Stats       timeline.Stats          `json:"stats"`
	Status      *models.MemberStatus    `json:"status,omitempty"`
	StatusError string                  `json:"status_error,omitempty"`
}

// SearchMembers looks up members by name.
func (s *HistoryService) SearchMembers(ctx context.Context, name string) (*MemberSearchResponse, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Struct(MemberSearchRequest{Name: name}); err != nil {
		return nil, apperrors.NewValidationError("name", "must be between 2 and 100 characters")
	}

	members, err := s.client.SearchMembers(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	return &MemberSearchResponse{
		Members: members,
		Total:   len(members),
		Query:   name,
	}, nil
}

// GetTimeline fetches a member's history and status concurrently and builds
// the timeline. A status failure is reported in the response; a history
// failure aborts.
func (s *HistoryService) GetTimeline(ctx context.Context, memberID int) (*TimelineResponse, error) {
	if err := s.validateMemberID(memberID); err != nil {
		return nil, err
	}
	ctx = logger.ContextWithMemberID(ctx, memberID)
	log := logger.WithContext(ctx)

	var (
		history   *models.History
		status    *models.MemberStatus
		statusErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := s.client.GetHistory(gctx, memberID)
		if err != nil {
			return err
		}
		if h == nil {
			return apperrors.ErrMemberHistoryMissing
		}
		history = h
		return nil
	})
	g.Go(func() error {
		st, err := s.client.GetStatus(gctx, memberID)
		if err != nil {
			statusErr = err
			return nil
		}
		status = st
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load member history: %w", err)
	}

	cfg := s.configs.Config(ctx)
	events := history.Events
	if len(history.Leaves) > 0 && !timeline.HasLeaveBoundaries(events) {
		events = append(append([]models.Event{}, events...), timeline.LeaveBoundaries(history.Leaves)...)
	}

	cycles, stats := timeline.BuildWithStats(events, history.Leaves, history.Holidays, cfg)
	if stats.Malformed > 0 || stats.PreEpoch > 0 {
		log.Debugf("Dropped %d malformed and %d pre-epoch events", stats.Malformed, stats.PreEpoch)
	}

	resp := &TimelineResponse{
		MemberID:    memberID,
		CycleConfig: cfg,
		Cycles:      cycles,
		Counters:    timeline.Summarize(newestFirst(history.Events)),
		Leaves:      nonNilLeaves(history.Leaves),
		Holidays:    nonNilHolidays(history.Holidays),
		Stats:       stats,
		Status:      status,
	}
	if statusErr != nil {
		log.WithError(statusErr).Warnf("Member status unavailable")
		resp.StatusError = statusErr.Error()
	}
	return resp, nil
}

// GetCounters returns the member's current counter totals.
func (s *HistoryService) GetCounters(ctx context.Context, memberID int) (*timeline.CounterSummary, error) {
	if err := s.validateMemberID(memberID); err != nil {
		return nil, err
	}
	history, err := s.client.GetHistory(logger.ContextWithMemberID(ctx, memberID), memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member history: %w", err)
	}
	if history == nil {
		return nil, apperrors.ErrMemberHistoryMissing
	}
	summary := timeline.Summarize(newestFirst(history.Events))
	return &summary, nil
}

func (s *HistoryService) validateMemberID(memberID int) error {
	if err := s.validator.Struct(TimelineRequest{MemberID: memberID}); err != nil {
		return apperrors.NewValidationError("member_id", "must be a positive integer")
	}
	return nil
}

// newestFirst returns events sorted by date descending. Upstream already
// sends them in that order; ties keep their upstream order.
func newestFirst(events []models.Event) []models.Event {
	sorted := append([]models.Event{}, events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func nonNilLeaves(leaves []models.Leave) []models.Leave {
	if leaves == nil {
		return []models.Leave{}
	}
	return leaves
}

func nonNilHolidays(holidays []models.Holiday) []models.Holiday {
	if holidays == nil {
		return []models.Holiday{}
	}
	return holidays
}
