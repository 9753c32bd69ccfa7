package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"member-history-backend/internal/config"
	"member-history-backend/internal/cycle"
	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/logger"
	"member-history-backend/internal/models"
)

// MemberAPIService provides methods to interact with the member API
type MemberAPIService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewMemberAPIService creates a new member API service
func NewMemberAPIService(cfg *config.Config) *MemberAPIService {
	return &MemberAPIService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.MemberAPITimeout()},
	}
}

type memberSearchAPIResponse struct {
	Members []models.Member `json:"members"`
}

// SearchMembers returns members whose name matches name.
func (s *MemberAPIService) SearchMembers(ctx context.Context, name string) ([]models.Member, error) {
	q := url.Values{}
	q.Set("name", name)

	var resp memberSearchAPIResponse
	if err := s.getJSON(ctx, "member search", "/api/members/search", q, &resp); err != nil {
		return nil, err
	}
	if resp.Members == nil {
		resp.Members = []models.Member{}
	}
	return resp.Members, nil
}

// GetHistory returns the events, leaves and holidays of a member.
func (s *MemberAPIService) GetHistory(ctx context.Context, memberID int) (*models.History, error) {
	var history models.History
	path := "/api/member/" + strconv.Itoa(memberID) + "/history"
	if err := s.getJSON(ctx, "member history", path, nil, &history); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}

	history.ResolveShiftTypes()
	return &history, nil
}

// GetStatus returns the current standing of a member.
func (s *MemberAPIService) GetStatus(ctx context.Context, memberID int) (*models.MemberStatus, error) {
	var status models.MemberStatus
	path := "/api/member/" + strconv.Itoa(memberID) + "/status"
	if err := s.getJSON(ctx, "member status", path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetCycleConfig returns the cycle calendar configured upstream.
func (s *MemberAPIService) GetCycleConfig(ctx context.Context) (*cycle.Config, error) {
	var cfg cycle.Config
	if err := s.getJSON(ctx, "cycle config", "/api/config/cycles", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *MemberAPIService) baseURL() (*url.URL, error) {
	if s.cfg.MemberAPIURL == "" {
		return nil, apperrors.ErrMemberAPINotConfigured
	}

	// Normalize base member API URL
	base := s.cfg.MemberAPIURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	baseURL, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf("invalid member API URL '%s': %v", base, err))
	}
	return baseURL, nil
}

// getJSON performs a GET request against the member API and decodes JSON into out.
// A 404 maps to NotFoundError, any other failure to FetchError.
func (s *MemberAPIService) getJSON(ctx context.Context, resource, path string, query url.Values, out interface{}) error {
	baseURL, err := s.baseURL()
	if err != nil {
		return err
	}
	fullURL := baseURL.String() + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	logger.WithContext(ctx).Debugf("Invoking member API GET %s", fullURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return apperrors.NewFetchError(resource, 0, fmt.Errorf("failed to create HTTP request: %w", err))
	}
	if s.cfg.MemberAPIToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.MemberAPIToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperrors.NewFetchError(resource, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError(resource)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewFetchError(resource, resp.StatusCode, fmt.Errorf("member API request failed: body=%s", string(body)))
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return apperrors.NewFetchError(resource, resp.StatusCode, fmt.Errorf("failed to decode member API response: %w", err))
	}
	return nil
}
