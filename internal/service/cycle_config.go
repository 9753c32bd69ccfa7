package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"

	"member-history-backend/internal/cycle"
	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/logger"
	"member-history-backend/internal/models"
)

// CycleConfigProvider fetches the cycle configuration from the member API
// once and serves it for the life of the process. Any failure leaves the
// fallback configuration in place.
type CycleConfigProvider struct {
	client    MemberAPIClient
	fallback  cycle.Config
	validator *validator.Validate

	once      sync.Once
	cfg       cycle.Config
	isDefault atomic.Bool
}

// NewCycleConfigProvider creates a new cycle config provider
func NewCycleConfigProvider(client MemberAPIClient, fallback cycle.Config, validator *validator.Validate) *CycleConfigProvider {
	return &CycleConfigProvider{
		client:    client,
		fallback:  fallback,
		validator: validator,
	}
}

// Config returns the active configuration, fetching it on first use.
func (p *CycleConfigProvider) Config(ctx context.Context) cycle.Config {
	p.once.Do(func() { p.load(ctx) })
	return p.cfg
}

// IsDefault reports whether the fallback configuration is in use. Before the
// first Config call it is false.
func (p *CycleConfigProvider) IsDefault() bool {
	return p.isDefault.Load()
}

func (p *CycleConfigProvider) load(ctx context.Context) {
	log := logger.WithContext(ctx)

	fetched, err := p.client.GetCycleConfig(ctx)
	if err == nil {
		err = p.check(fetched)
	}
	if err != nil {
		log.WithError(err).Warnf("Using default cycle configuration (%d weeks from %s)",
			p.fallback.WeeksPerCycle, p.fallback.WeekADate)
		p.cfg = p.fallback
		p.isDefault.Store(true)
		return
	}

	if !fetched.AnchorIsMonday() {
		log.Warnf("Week A date %s is a %s, weeks will not align with calendar weeks",
			fetched.WeekADate, fetched.WeekADate.Weekday())
	}
	log.Infof("Loaded cycle configuration: %d weeks per cycle from %s", fetched.WeeksPerCycle, fetched.WeekADate)
	p.cfg = *fetched
}

func (p *CycleConfigProvider) check(cfg *cycle.Config) error {
	if cfg == nil {
		return apperrors.NewConfigurationError("empty cycle configuration")
	}
	if err := p.validator.Struct(cfg); err != nil {
		return apperrors.NewConfigurationError("invalid cycle configuration: " + err.Error())
	}
	return cfg.Validate()
}

// CycleConfigResponse is the active cycle configuration as served to clients
type CycleConfigResponse struct {
	WeeksPerCycle int         `json:"weeks_per_cycle"`
	WeekADate     models.Date `json:"week_a_date"`
	WeekLetters   []string    `json:"week_letters"`
	IsDefault     bool        `json:"is_default"`
}

// CycleService answers cycle calendar queries against the active configuration
type CycleService struct {
	configs CycleConfigSource
	now     func() time.Time
}

// NewCycleService creates a new cycle service
func NewCycleService(configs CycleConfigSource) *CycleService {
	return &CycleService{configs: configs, now: time.Now}
}

// GetConfig returns the active configuration.
func (s *CycleService) GetConfig(ctx context.Context) *CycleConfigResponse {
	cfg := s.configs.Config(ctx)
	letters := make([]string, cfg.WeeksPerCycle)
	for i := range letters {
		letters[i] = cycle.WeekLetter(i)
	}
	return &CycleConfigResponse{
		WeeksPerCycle: cfg.WeeksPerCycle,
		WeekADate:     cfg.WeekADate,
		WeekLetters:   letters,
		IsDefault:     s.configs.IsDefault(),
	}
}

// Locate returns the cycle position of date.
func (s *CycleService) Locate(ctx context.Context, date models.Date) (*cycle.Position, error) {
	if date.IsZero() {
		return nil, apperrors.NewValidationError("date", "is required")
	}
	pos, ok := cycle.Locate(date, s.configs.Config(ctx))
	if !ok {
		return nil, apperrors.ErrDateBeforeEpoch
	}
	return &pos, nil
}

// Range returns the span of the last n cycles up to end. A zero end means today.
func (s *CycleService) Range(ctx context.Context, n int, end models.Date) (*cycle.Range, error) {
	if n < 1 {
		return nil, apperrors.NewValidationError("n", "must be at least 1")
	}
	if end.IsZero() {
		end = models.DateOf(s.now())
	}
	r, err := cycle.DateRange(n, end, s.configs.Config(ctx))
	if err != nil {
		return nil, err
	}
	return &r, nil
}
