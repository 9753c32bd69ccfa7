package timeline

import (
	"fmt"

	"member-history-backend/internal/models"
)

// Annotations is the derived context an event is classified with.
type Annotations struct {
	InLeave   bool
	InHoliday bool
	Holiday   *models.Holiday
}

type rule struct {
	name     string
	matches  func(ev models.Event, ann Annotations) bool
	category func(ev models.Event, ann Annotations) Category
}

func fixed(key string) func(models.Event, Annotations) Category {
	return func(models.Event, Annotations) Category { return category(key) }
}

func isShift(ev models.Event) bool {
	return ev.Type == models.EventTypeShift
}

func isPending(ev models.Event) bool {
	return ev.State == models.ShiftStateWaiting || ev.State == models.ShiftStateReplaced
}

func isCycleDeduction(ev models.Event) bool {
	return isShift(ev) &&
		ev.ShiftType == models.ShiftTypeFTOP &&
		ev.State == models.ShiftStateDone &&
		ev.Counter != nil && ev.Counter.PointQty == -1
}

// stateRules classify a shift by attendance state.
var stateRules = []rule{
	{
		name:     "shift_done",
		matches:  func(ev models.Event, _ Annotations) bool { return isShift(ev) && ev.State == models.ShiftStateDone },
		category: fixed(CategoryShiftAttended),
	},
	{
		name:    "shift_absent",
		matches: func(ev models.Event, _ Annotations) bool { return isShift(ev) && ev.State == models.ShiftStateAbsent },
		category: func(_ models.Event, ann Annotations) Category {
			if ann.InLeave {
				return category(CategoryShiftMissedOnLeave)
			}
			return category(CategoryShiftMissed)
		},
	},
	{
		name:     "shift_excused",
		matches:  func(ev models.Event, _ Annotations) bool { return isShift(ev) && ev.State == models.ShiftStateExcused },
		category: excused,
	},
	{
		name: "shift_exchanged",
		matches: func(ev models.Event, _ Annotations) bool {
			return isShift(ev) && isPending(ev) && ev.ExchangeDetails != nil
		},
		category: fixed(CategoryShiftExchanged),
	},
	{
		// Waiting or replaced without exchange details has nothing better to
		// show than an excused shift.
		name: "shift_pending",
		matches: func(ev models.Event, _ Annotations) bool {
			return isShift(ev) && isPending(ev) && ev.ExchangeDetails == nil
		},
		category: excused,
	},
}

func excused(_ models.Event, ann Annotations) Category {
	if ann.InLeave {
		return category(CategoryShiftExcusedOnLeave)
	}
	return category(CategoryShiftExcused)
}

// rules is evaluated top to bottom and the first match wins. The order is
// the tie-break between overlapping conditions.
var rules = append([]rule{
	{
		name:     "purchase",
		matches:  func(ev models.Event, _ Annotations) bool { return ev.Type == models.EventTypePurchase },
		category: fixed(CategoryPurchase),
	},
	{
		name:     "leave_start",
		matches:  func(ev models.Event, _ Annotations) bool { return ev.Type == models.EventTypeLeaveStart },
		category: fixed(CategoryLeaveStart),
	},
	{
		name:     "leave_end",
		matches:  func(ev models.Event, _ Annotations) bool { return ev.Type == models.EventTypeLeaveEnd },
		category: fixed(CategoryLeaveEnd),
	},
	{
		name:    "counter",
		matches: func(ev models.Event, _ Annotations) bool { return ev.Type == models.EventTypeCounter },
		category: func(ev models.Event, _ Annotations) Category {
			switch qty := pointQty(ev); {
			case qty > 0:
				return category(CategoryCounterPositive)
			case qty < 0:
				return category(CategoryCounterNegative)
			default:
				return category(CategoryCounterNeutral)
			}
		},
	},
	{
		name:     "cycle_deduction",
		matches:  func(ev models.Event, _ Annotations) bool { return isCycleDeduction(ev) },
		category: fixed(CategoryCycleDeduction),
	},
	{
		name: "ftop_shift",
		matches: func(ev models.Event, ann Annotations) bool {
			if !isShift(ev) || ev.ShiftType != models.ShiftTypeFTOP {
				return false
			}
			_, ok := firstMatch(stateRules, ev, ann)
			return ok
		},
		category: func(ev models.Event, ann Annotations) Category {
			c, _ := firstMatch(stateRules, ev, ann)
			if c.FTOPTitleKey != "" {
				c.TitleKey = c.FTOPTitleKey
			}
			return c
		},
	},
}, stateRules...)

func firstMatch(table []rule, ev models.Event, ann Annotations) (Category, bool) {
	for _, r := range table {
		if r.matches(ev, ann) {
			return r.category(ev, ann), true
		}
	}
	return Category{}, false
}

// Classify returns the display category of ev. Events no rule recognises
// fall into the unknown category titled with their raw type.
func Classify(ev models.Event, ann Annotations) Category {
	if c, ok := firstMatch(rules, ev, ann); ok {
		return c
	}
	c := category(CategoryUnknown)
	c.TitleKey = string(ev.Type)
	return c
}

// RuleName returns the name of the rule that classifies ev, or "unknown".
func RuleName(ev models.Event, ann Annotations) string {
	for _, r := range rules {
		if r.matches(ev, ann) {
			return r.name
		}
	}
	return CategoryUnknown
}

func pointQty(ev models.Event) int {
	if ev.PointQty != nil {
		return *ev.PointQty
	}
	return 0
}

// Badge is a small marker rendered next to an event.
type Badge struct {
	Kind     string `json:"kind"`
	Label    string `json:"label,omitempty"`
	TitleKey string `json:"title_key,omitempty"`
}

const (
	BadgeFTOP        = "ftop"
	BadgeUnknownType = "unknown_type"
	BadgeLate        = "late"
	BadgeCounter     = "counter"
	BadgeHoliday     = "holiday"
)

// Badges derives the markers shown alongside ev.
func Badges(ev models.Event, ann Annotations) []Badge {
	var badges []Badge

	if isShift(ev) {
		switch ev.ShiftType {
		case models.ShiftTypeFTOP:
			badges = append(badges, Badge{Kind: BadgeFTOP, Label: "FTOP", TitleKey: "timeline.ftopBadge"})
		case models.ShiftTypeUnknown, "":
			badges = append(badges, Badge{Kind: BadgeUnknownType, Label: "?", TitleKey: "timeline.unknownShiftType"})
		}
		if ev.IsLate {
			badges = append(badges, Badge{Kind: BadgeLate, TitleKey: "timeline.late"})
		}
		if ev.Counter != nil {
			badges = append(badges, counterBadge(ev.Counter.Type, ev.Counter.PointQty))
		}
		if ev.State == models.ShiftStateAbsent && ann.InHoliday && ann.Holiday != nil {
			badges = append(badges, Badge{
				Kind:     BadgeHoliday,
				Label:    ann.Holiday.MakeUpType,
				TitleKey: "timeline.holidayRelief",
			})
		}
	}

	if ev.Type == models.EventTypeCounter {
		badges = append(badges, counterBadge(ev.CounterType, pointQty(ev)))
	}

	return badges
}

func counterBadge(kind models.CounterType, qty int) Badge {
	label := fmt.Sprintf("%d", qty)
	if qty > 0 {
		label = "+" + label
	}
	titleKey := "counter.standard"
	if kind == models.CounterTypeFTOP {
		titleKey = "counter.ftop"
	}
	return Badge{Kind: BadgeCounter, Label: label, TitleKey: titleKey}
}
