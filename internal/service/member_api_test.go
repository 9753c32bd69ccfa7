package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-history-backend/internal/config"
	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/models"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func baseMemberAPICfg() *config.Config {
	return &config.Config{
		MemberAPIURL:        "members.example.org",
		MemberAPIToken:      "token-123",
		MemberAPITimeoutSec: 5,
	}
}

func newMemberAPIWithTransport(cfg *config.Config, rt roundTripFunc) *MemberAPIService {
	s := NewMemberAPIService(cfg)
	s.httpClient = &http.Client{Transport: rt}
	return s
}

func TestMemberAPI_GetHistory_Success(t *testing.T) {
	cfg := baseMemberAPICfg()

	rt := func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer "+cfg.MemberAPIToken, req.Header.Get("Authorization"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Equal(t, "https", req.URL.Scheme)
		assert.Equal(t, "members.example.org", req.URL.Host)
		assert.Equal(t, "/api/member/42/history", req.URL.Path)

		return jsonResponse(200, `{
			"events": [
				{"id": 1, "type": "purchase", "date": "2025-02-10 17:45:00", "reference": "POS/0001"},
				{"id": 2, "type": "shift", "date": "2025-02-12", "state": "done", "shift_type": "Volant",
				 "counter": {"type": "ftop", "point_qty": 1, "ftop_total": 3, "standard_total": 0}},
				{"id": 3, "type": "shift", "date": false, "state": "absent", "shift_type": "standard"}
			],
			"leaves": [{"id": 9, "start_date": "2025-03-01", "stop_date": false, "leave_type": "Congé"}],
			"holidays": [{"id": 1, "name": "Closure", "date_begin": "2025-08-04", "date_end": "2025-08-10", "make_up_type": "0_make_up"}]
		}`), nil
	}

	s := newMemberAPIWithTransport(cfg, rt)
	history, err := s.GetHistory(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, history.Events, 3)
	assert.Equal(t, "2025-02-10", history.Events[0].Date.String())
	assert.Equal(t, models.ShiftTypeFTOP, history.Events[1].ShiftType)
	require.NotNil(t, history.Events[1].Counter)
	assert.Equal(t, 3, *history.Events[1].Counter.FTOPTotal)
	assert.True(t, history.Events[2].IsMalformed())

	require.Len(t, history.Leaves, 1)
	assert.True(t, history.Leaves[0].IsOpenEnded())
	require.Len(t, history.Holidays, 1)
	assert.Equal(t, "0_make_up", history.Holidays[0].MakeUpType)
	assert.Equal(t, "2025-08-10", history.Holidays[0].EndDate.String())
}

func TestMemberAPI_SearchMembers(t *testing.T) {
	rt := func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/members/search", req.URL.Path)
		assert.Equal(t, "dupont", req.URL.Query().Get("name"))
		return jsonResponse(200, `{"members":[{"id":7,"name":"Jean Dupont","phone":false}]}`), nil
	}

	s := newMemberAPIWithTransport(baseMemberAPICfg(), rt)
	members, err := s.SearchMembers(context.Background(), "dupont")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Jean Dupont", members[0].Name)
}

func TestMemberAPI_SearchMembers_EmptyPayload(t *testing.T) {
	rt := func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{}`), nil
	}

	s := newMemberAPIWithTransport(baseMemberAPICfg(), rt)
	members, err := s.SearchMembers(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestMemberAPI_GetStatus(t *testing.T) {
	rt := func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/member/42/status", req.URL.Path)
		return jsonResponse(200, `{"cooperative_state":"alert","shift_type":"ftop","customer":true}`), nil
	}

	s := newMemberAPIWithTransport(baseMemberAPICfg(), rt)
	status, err := s.GetStatus(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.LooseString("alert"), status.CooperativeState)
	assert.Equal(t, models.ShiftTypeFTOP, status.ResolvedShiftType())
}

func TestMemberAPI_GetCycleConfig(t *testing.T) {
	rt := func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/config/cycles", req.URL.Path)
		return jsonResponse(200, `{"weeks_per_cycle":4,"week_a_date":"2025-01-13"}`), nil
	}

	s := newMemberAPIWithTransport(baseMemberAPICfg(), rt)
	cfg, err := s.GetCycleConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.WeeksPerCycle)
	assert.Equal(t, "2025-01-13", cfg.WeekADate.String())
}

func TestMemberAPI_Errors(t *testing.T) {
	t.Run("404 is not found", func(t *testing.T) {
		s := newMemberAPIWithTransport(baseMemberAPICfg(), func(req *http.Request) (*http.Response, error) {
			return jsonResponse(404, `{"error":"no such member"}`), nil
		})
		_, err := s.GetHistory(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
		assert.False(t, apperrors.IsFetch(err))
	})

	t.Run("5xx is fetch failure", func(t *testing.T) {
		s := newMemberAPIWithTransport(baseMemberAPICfg(), func(req *http.Request) (*http.Response, error) {
			return jsonResponse(500, `{"error":"odoo down"}`), nil
		})
		_, err := s.GetHistory(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsFetch(err))
		assert.Contains(t, err.Error(), "status=500")
		assert.Contains(t, err.Error(), "odoo down")
	})

	t.Run("transport error is fetch failure", func(t *testing.T) {
		s := newMemberAPIWithTransport(baseMemberAPICfg(), func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})
		_, err := s.GetStatus(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsFetch(err))
	})

	t.Run("bad json is fetch failure", func(t *testing.T) {
		s := newMemberAPIWithTransport(baseMemberAPICfg(), func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"events": [`), nil
		})
		_, err := s.GetHistory(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsFetch(err))
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("missing base url", func(t *testing.T) {
		cfg := baseMemberAPICfg()
		cfg.MemberAPIURL = ""
		s := newMemberAPIWithTransport(cfg, func(req *http.Request) (*http.Response, error) {
			t.Fatal("no request expected")
			return nil, nil
		})
		_, err := s.GetHistory(context.Background(), 1)
		assert.ErrorIs(t, err, apperrors.ErrMemberAPINotConfigured)
	})
}

func TestMemberAPI_NoTokenNoAuthHeader(t *testing.T) {
	cfg := baseMemberAPICfg()
	cfg.MemberAPIToken = ""
	cfg.MemberAPIURL = "http://localhost:8069/"

	s := newMemberAPIWithTransport(cfg, func(req *http.Request) (*http.Response, error) {
		assert.Empty(t, req.Header.Get("Authorization"))
		assert.Equal(t, "http", req.URL.Scheme)
		assert.Equal(t, "/api/member/5/status", req.URL.Path)
		return jsonResponse(200, `{}`), nil
	})
	_, err := s.GetStatus(context.Background(), 5)
	require.NoError(t, err)
}
