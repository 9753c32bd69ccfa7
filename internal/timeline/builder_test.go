package timeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-history-backend/internal/cycle"
	"member-history-backend/internal/models"
)

func d(s string) models.Date {
	return models.MustParseDate(s)
}

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: 1, Type: models.EventTypePurchase, Date: d("2025-02-10")},
		{ID: 2, Type: models.EventTypeShift, Date: d("2025-02-12"), State: models.ShiftStateDone, ShiftType: models.ShiftTypeStandard},
		{ID: 3, Type: models.EventTypeShift, Date: d("2025-03-05"), State: models.ShiftStateAbsent, ShiftType: models.ShiftTypeStandard},
		{ID: 4, Type: models.EventTypeCounter, Date: d("2025-01-14"), PointQty: intPtr(1)},
		{ID: 5, Type: models.EventTypePurchase, Date: d("2025-02-12")},
		{ID: 6, Type: models.EventTypePurchase, Date: d("2024-12-30")},
		{ID: 7, Type: models.EventTypePurchase},
		{ID: 8, Date: d("2025-02-11")},
	}
}

func TestContainingInterval(t *testing.T) {
	leaves := []models.Leave{
		{ID: 1, StartDate: d("2025-03-01"), StopDate: d("2025-03-10")},
		{ID: 2, StartDate: d("2025-03-08"), StopDate: d("2025-03-20")},
		{ID: 3, StartDate: d("2025-06-01")},
	}

	tests := []struct {
		name    string
		date    string
		found   bool
		leaveID int
	}{
		{"before any", "2025-02-28", false, 0},
		{"start bound inclusive", "2025-03-01", true, 1},
		{"end bound inclusive", "2025-03-10", true, 1},
		{"overlap takes first", "2025-03-09", true, 1},
		{"second leave only", "2025-03-11", true, 2},
		{"gap", "2025-04-01", false, 0},
		{"open ended", "2030-01-01", true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leave, ok := ContainingInterval(d(tt.date), leaves)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.leaveID, leave.ID)
		})
	}
}

func TestBuildStructure(t *testing.T) {
	cycles, stats := BuildWithStats(sampleEvents(), nil, nil, cycle.DefaultConfig())

	assert.Equal(t, Stats{Placed: 5, Malformed: 2, PreEpoch: 1}, stats)

	require.Len(t, cycles, 2)
	assert.Equal(t, 2, cycles[0].CycleNumber)
	assert.Equal(t, 1, cycles[1].CycleNumber)

	// cycle 2: week A (02-10..02-16) and week D (03-03..03-09), newest first
	c2 := cycles[0]
	assert.Equal(t, "2025-02-10", c2.StartDate.String())
	assert.Equal(t, "2025-03-09", c2.EndDate.String())
	require.Len(t, c2.Weeks, 2)
	assert.Equal(t, "D", c2.Weeks[0].WeekLetter)
	assert.Equal(t, "A", c2.Weeks[1].WeekLetter)

	weekA := c2.Weeks[1]
	require.Len(t, weekA.Events, 3)
	// ties keep input order: shift 2 before purchase 5
	assert.Equal(t, []int{2, 5, 1}, []int{weekA.Events[0].ID, weekA.Events[1].ID, weekA.Events[2].ID})

	require.Len(t, cycles[1].Weeks, 1)
	assert.Equal(t, "A", cycles[1].Weeks[0].WeekLetter)
	assert.Equal(t, CategoryCounterPositive, cycles[1].Weeks[0].Events[0].Category.Key)
}

func TestBuildFirstDayOfCycleTwo(t *testing.T) {
	events := []models.Event{{Type: models.EventTypePurchase, Date: d("2025-02-10")}}
	cycles := Build(events, nil, nil, cycle.DefaultConfig())

	require.Len(t, cycles, 1)
	assert.Equal(t, 2, cycles[0].CycleNumber)
	assert.Equal(t, "A", cycles[0].Weeks[0].WeekLetter)
}

func TestBuildLeaveCoveredAbsence(t *testing.T) {
	leaves := []models.Leave{{ID: 9, StartDate: d("2025-03-01"), StopDate: d("2025-03-10"), LeaveType: "Congé"}}
	events := []models.Event{
		{Type: models.EventTypeShift, Date: d("2025-03-05"), State: models.ShiftStateAbsent, ShiftType: models.ShiftTypeStandard},
	}

	cycles := Build(events, leaves, nil, cycle.DefaultConfig())
	require.Len(t, cycles, 1)
	ev := cycles[0].Weeks[0].Events[0]

	assert.True(t, ev.InLeave)
	require.NotNil(t, ev.Leave)
	assert.Equal(t, 9, ev.Leave.ID)
	assert.Equal(t, CategoryShiftMissedOnLeave, ev.Category.Key)
	assert.True(t, ev.Category.Dimmed)
	assert.NotEqual(t, category(CategoryShiftMissed).ColorClass, ev.Category.ColorClass)
}

func TestBuildHolidayAndExchange(t *testing.T) {
	holidays := []models.Holiday{{ID: 1, Name: "Closure", StartDate: d("2025-02-17"), EndDate: d("2025-02-23"), MakeUpType: "1_make_up"}}
	events := []models.Event{
		{Type: models.EventTypeShift, Date: d("2025-02-18"), State: models.ShiftStateAbsent, ShiftType: models.ShiftTypeStandard},
		{Type: models.EventTypeShift, Date: d("2025-02-25"), State: models.ShiftStateReplaced, ShiftType: models.ShiftTypeStandard,
			ExchangeDetails: &models.ExchangeInfo{OldShiftName: "Mon", NewShiftName: "Thu"}},
	}

	cycles := Build(events, nil, holidays, cycle.DefaultConfig())
	require.Len(t, cycles, 1)
	require.Len(t, cycles[0].Weeks, 2)

	exchanged := cycles[0].Weeks[0].Events[0]
	assert.True(t, exchanged.IsExchange)
	assert.Equal(t, CategoryShiftExchanged, exchanged.Category.Key)

	missed := cycles[0].Weeks[1].Events[0]
	assert.True(t, missed.InHoliday)
	assert.Equal(t, "Closure", missed.Holiday.Name)
	require.Len(t, missed.Badges, 1)
	assert.Equal(t, BadgeHoliday, missed.Badges[0].Kind)
}

func TestBuildHolidayWithoutEndCoversOneDay(t *testing.T) {
	holidays := []models.Holiday{{ID: 2, Name: "Inventory", StartDate: d("2025-02-17")}}
	events := []models.Event{
		{ID: 2, Type: models.EventTypeShift, Date: d("2025-03-03"), State: models.ShiftStateAbsent, ShiftType: models.ShiftTypeStandard},
		{ID: 1, Type: models.EventTypeShift, Date: d("2025-02-17"), State: models.ShiftStateAbsent, ShiftType: models.ShiftTypeStandard},
	}

	cycles := Build(events, nil, holidays, cycle.DefaultConfig())
	require.Len(t, cycles, 1)

	byID := make(map[int]TimelineEvent)
	for _, week := range cycles[0].Weeks {
		for _, ev := range week.Events {
			byID[ev.ID] = ev
		}
	}
	assert.True(t, byID[1].InHoliday)
	assert.False(t, byID[2].InHoliday)
	assert.Empty(t, byID[2].Badges)
}

func TestBuildDeterministic(t *testing.T) {
	leaves := []models.Leave{{ID: 1, StartDate: d("2025-03-01"), StopDate: d("2025-03-10")}}
	first := Build(sampleEvents(), leaves, nil, cycle.DefaultConfig())
	second := Build(sampleEvents(), leaves, nil, cycle.DefaultConfig())
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestBuildEmpty(t *testing.T) {
	cycles := Build(nil, nil, nil, cycle.DefaultConfig())
	assert.NotNil(t, cycles)
	assert.Empty(t, cycles)

	data, err := json.Marshal(cycles)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestTimelineEventJSON(t *testing.T) {
	te := Annotate(models.Event{ID: 3, Type: models.EventTypePurchase, Date: d("2025-02-10"), Reference: "POS/001"}, nil, nil)

	data, err := json.Marshal(te)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "purchase", decoded["type"])
	assert.Equal(t, "2025-02-10", decoded["date"])
	assert.Equal(t, "POS/001", decoded["reference"])
	assert.Equal(t, false, decoded["in_leave"])
	category := decoded["category"].(map[string]interface{})
	assert.Equal(t, "timeline.purchase", category["title_key"])
}

func TestLeaveBoundaries(t *testing.T) {
	leaves := []models.Leave{
		{ID: 1, StartDate: d("2025-03-01"), StopDate: d("2025-03-10"), LeaveType: "Congé"},
		{ID: 2, StartDate: d("2025-05-01")},
		{ID: 3},
	}

	markers := LeaveBoundaries(leaves)
	require.Len(t, markers, 3)

	assert.Equal(t, models.EventTypeLeaveStart, markers[0].Type)
	assert.Equal(t, "2025-03-01", markers[0].Date.String())
	assert.Equal(t, "2025-03-10", markers[0].LeaveEnd.String())
	assert.Equal(t, 1, markers[0].LeaveID)

	assert.Equal(t, models.EventTypeLeaveEnd, markers[1].Type)
	assert.Equal(t, "2025-03-10", markers[1].Date.String())
	assert.Equal(t, "2025-03-01", markers[1].LeaveStart.String())

	assert.Equal(t, models.EventTypeLeaveStart, markers[2].Type)
	assert.Nil(t, markers[2].LeaveEnd)

	assert.True(t, HasLeaveBoundaries(markers))
	assert.False(t, HasLeaveBoundaries(sampleEvents()))
}
