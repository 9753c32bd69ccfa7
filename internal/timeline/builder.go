package timeline

import (
	"sort"

	"member-history-backend/internal/cycle"
	"member-history-backend/internal/models"
)

// TimelineEvent is an event annotated for display.
type TimelineEvent struct {
	models.Event
	Category   Category        `json:"category"`
	InLeave    bool            `json:"in_leave"`
	InHoliday  bool            `json:"in_holiday"`
	Leave      *models.Leave   `json:"leave,omitempty"`
	Holiday    *models.Holiday `json:"holiday,omitempty"`
	IsExchange bool            `json:"is_exchange"`
	Badges     []Badge         `json:"badges,omitempty"`
}

// WeekBucket holds the events of one lettered week.
type WeekBucket struct {
	WeekLetter string          `json:"week_letter"`
	StartDate  models.Date     `json:"start_date"`
	EndDate    models.Date     `json:"end_date"`
	Events     []TimelineEvent `json:"events"`
}

// CycleBucket holds the non-empty weeks of one cycle.
type CycleBucket struct {
	CycleNumber int          `json:"cycle_number"`
	StartDate   models.Date  `json:"start_date"`
	EndDate     models.Date  `json:"end_date"`
	Weeks       []WeekBucket `json:"weeks"`
}

// Stats counts what Build did with its input.
type Stats struct {
	Placed    int `json:"placed"`
	Malformed int `json:"malformed"`
	PreEpoch  int `json:"pre_epoch"`
}

// Build groups events into cycle and week buckets, newest first. Events with
// no type or date, and events dated before the cycle anchor, are left out.
func Build(events []models.Event, leaves []models.Leave, holidays []models.Holiday, cfg cycle.Config) []CycleBucket {
	cycles, _ := BuildWithStats(events, leaves, holidays, cfg)
	return cycles
}

// BuildWithStats is Build that also reports how many events were dropped.
func BuildWithStats(events []models.Event, leaves []models.Leave, holidays []models.Holiday, cfg cycle.Config) ([]CycleBucket, Stats) {
	var stats Stats
	cycleIndex := make(map[int]*CycleBucket)
	weekIndex := make(map[int]map[int]*WeekBucket)

	for _, ev := range events {
		if ev.IsMalformed() {
			stats.Malformed++
			continue
		}
		pos, ok := cycle.Locate(ev.Date, cfg)
		if !ok {
			stats.PreEpoch++
			continue
		}

		cb, exists := cycleIndex[pos.CycleNumber]
		if !exists {
			cb = &CycleBucket{
				CycleNumber: pos.CycleNumber,
				StartDate:   pos.CycleStart,
				EndDate:     pos.CycleEnd,
			}
			cycleIndex[pos.CycleNumber] = cb
			weekIndex[pos.CycleNumber] = make(map[int]*WeekBucket)
		}
		wb, exists := weekIndex[pos.CycleNumber][pos.WeekIndex]
		if !exists {
			wb = &WeekBucket{
				WeekLetter: pos.WeekLetter,
				StartDate:  pos.WeekStart,
				EndDate:    pos.WeekEnd,
			}
			weekIndex[pos.CycleNumber][pos.WeekIndex] = wb
		}

		wb.Events = append(wb.Events, Annotate(ev, leaves, holidays))
		stats.Placed++
	}

	out := make([]CycleBucket, 0, len(cycleIndex))
	for number, cb := range cycleIndex {
		weeks := make([]WeekBucket, 0, len(weekIndex[number]))
		for _, wb := range weekIndex[number] {
			sort.SliceStable(wb.Events, func(i, j int) bool {
				return wb.Events[i].Date.After(wb.Events[j].Date)
			})
			weeks = append(weeks, *wb)
		}
		sort.Slice(weeks, func(i, j int) bool {
			return weeks[i].StartDate.After(weeks[j].StartDate)
		})
		cb.Weeks = weeks
		out = append(out, *cb)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CycleNumber > out[j].CycleNumber
	})

	return out, stats
}

// Annotate attaches leave and holiday context, category and badges to ev.
func Annotate(ev models.Event, leaves []models.Leave, holidays []models.Holiday) TimelineEvent {
	te := TimelineEvent{
		Event:      ev,
		IsExchange: ev.Type == models.EventTypeShift && ev.ExchangeDetails != nil,
	}
	if leave, ok := ContainingInterval(ev.Date, leaves); ok {
		te.InLeave = true
		te.Leave = &leave
	}
	if holiday, ok := ContainingInterval(ev.Date, holidays); ok {
		te.InHoliday = true
		te.Holiday = &holiday
	}

	ann := Annotations{InLeave: te.InLeave, InHoliday: te.InHoliday, Holiday: te.Holiday}
	te.Category = Classify(ev, ann)
	te.Badges = Badges(ev, ann)
	return te
}

// HasLeaveBoundaries reports whether events already carry leave markers.
func HasLeaveBoundaries(events []models.Event) bool {
	for _, ev := range events {
		if ev.Type == models.EventTypeLeaveStart || ev.Type == models.EventTypeLeaveEnd {
			return true
		}
	}
	return false
}

// LeaveBoundaries synthesises leave_start and leave_end markers for leaves.
// Open-ended leaves only get a start marker.
func LeaveBoundaries(leaves []models.Leave) []models.Event {
	events := make([]models.Event, 0, len(leaves)*2)
	for _, l := range leaves {
		if l.StartDate.IsZero() {
			continue
		}
		start, stop := l.StartDate, l.StopDate

		marker := models.Event{
			Type:       models.EventTypeLeaveStart,
			Date:       start,
			LeaveID:    l.ID,
			LeaveType:  l.LeaveType,
			LeaveStart: &start,
		}
		if !l.IsOpenEnded() {
			marker.LeaveEnd = &stop
		}
		events = append(events, marker)

		if l.IsOpenEnded() {
			continue
		}
		events = append(events, models.Event{
			Type:       models.EventTypeLeaveEnd,
			Date:       stop,
			LeaveID:    l.ID,
			LeaveType:  l.LeaveType,
			LeaveStart: &start,
			LeaveEnd:   &stop,
		})
	}
	return events
}
