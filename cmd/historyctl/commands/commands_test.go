package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "member-history-backend/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runAgainst(t, "", args...)
}

func runAgainst(t *testing.T, memberAPIURL string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("MEMBER_API_URL", memberAPIURL)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLocate(t *testing.T) {
	out, err := run(t, "locate", "2025-02-10", "--format", "json")
	require.NoError(t, err)

	var pos map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &pos))
	assert.Equal(t, float64(2), pos["cycle_number"])
	assert.Equal(t, "A", pos["week_letter"])

	out, err = run(t, "locate", "2025-03-26")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-26 is in cycle 3, week C")
}

func TestLocate_CustomCalendar(t *testing.T) {
	out, err := run(t, "locate", "2025-01-20", "--weeks", "2", "--anchor", "2025-01-06")
	require.NoError(t, err)
	assert.Contains(t, out, "cycle 2, week A")
}

func TestLocate_Errors(t *testing.T) {
	_, err := run(t, "locate", "2024-06-01")
	assert.ErrorIs(t, err, apperrors.ErrDateBeforeEpoch)

	_, err = run(t, "locate", "not-a-date")
	assert.Error(t, err)

	_, err = run(t, "locate", "2025-02-10", "--weeks", "30")
	assert.ErrorIs(t, err, apperrors.ErrInvalidWeeksPerCycle)
}

func TestRange(t *testing.T) {
	out, err := run(t, "range", "13", "--end", "2025-11-24")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-13 to 2025-11-24 (cycles 1 to 12)\n", out)

	_, err = run(t, "range", "0", "--end", "2025-11-24")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCycleCount)
}

func TestBuild(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := run(t, "build", "--file", "testdata/history.json")
		require.NoError(t, err)

		assert.Contains(t, out, "Counters: FTOP +0 (neutral), standard -1 (attention_needed)")
		assert.Contains(t, out, "Cycle 2  2025-02-10 to 2025-03-09")
		assert.Contains(t, out, "shift_missed_on_leave")
		assert.Contains(t, out, "POS/0001")
		assert.Contains(t, out, "Skipped 1 malformed and 0 pre-epoch events")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "build", "--file", "testdata/history.json", "-o", "yaml", "--member-id", "42")
		require.NoError(t, err)

		assert.Contains(t, out, "member_id: 42")
		assert.Contains(t, out, "cycle_number: 2")
		assert.Contains(t, out, "key: shift_missed_on_leave")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "build", "--file", "testdata/nope.json")
		assert.Error(t, err)
	})
}

func TestMember_InvalidID(t *testing.T) {
	_, err := run(t, "member", "abc")
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "range", "1", "--end", "2025-02-10", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func memberAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/member/42/history", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events":[{"id":1,"type":"purchase","date":"2025-02-10","reference":"POS/0042"}],"leaves":[],"holidays":[]}`))
	})
	mux.HandleFunc("/api/member/42/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/api/config/cycles", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"weeks_per_cycle":6,"week_a_date":"2025-01-13"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMember_CalendarFlags(t *testing.T) {
	srv := memberAPIServer(t)

	weeksPerCycle := func(out string) float64 {
		var resp struct {
			CycleConfig struct {
				WeeksPerCycle float64 `json:"weeks_per_cycle"`
			} `json:"cycle_config"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		return resp.CycleConfig.WeeksPerCycle
	}

	out, err := runAgainst(t, srv.URL, "member", "42", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, float64(6), weeksPerCycle(out))

	out, err = runAgainst(t, srv.URL, "member", "42", "-o", "json", "--weeks", "2")
	require.NoError(t, err)
	assert.Equal(t, float64(2), weeksPerCycle(out))
	assert.Contains(t, out, "POS/0042")
}
