package models

// CounterDelta is the counter movement attached to a shift registration.
type CounterDelta struct {
	Type          CounterType `json:"type" yaml:"type"`
	PointQty      int         `json:"point_qty" yaml:"point_qty"`
	FTOPTotal     *int        `json:"ftop_total,omitempty" yaml:"ftop_total,omitempty"`
	StandardTotal *int        `json:"standard_total,omitempty" yaml:"standard_total,omitempty"`
}

// ExchangeInfo describes a shift swap between two members.
type ExchangeInfo struct {
	OldShiftName string `json:"old_shift_name,omitempty" yaml:"old_shift_name,omitempty"`
	OldShiftDate Date   `json:"old_shift_date" yaml:"old_shift_date"`
	NewShiftName string `json:"new_shift_name,omitempty" yaml:"new_shift_name,omitempty"`
	NewShiftDate Date   `json:"new_shift_date" yaml:"new_shift_date"`
}

// Event is one dated item of a member history. Type selects which of the
// optional field groups are meaningful.
type Event struct {
	ID   int       `json:"id,omitempty" yaml:"id,omitempty"`
	Type EventType `json:"type" yaml:"type"`
	Date Date      `json:"date" yaml:"date"`
	Name string    `json:"name,omitempty" yaml:"name,omitempty"`

	// purchase
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`

	// shift
	State           ShiftState    `json:"state,omitempty" yaml:"state,omitempty"`
	ShiftType       ShiftType     `json:"shift_type,omitempty" yaml:"shift_type,omitempty"`
	ShiftName       string        `json:"shift_name,omitempty" yaml:"shift_name,omitempty"`
	IsLate          bool          `json:"is_late,omitempty" yaml:"is_late,omitempty"`
	Counter         *CounterDelta `json:"counter,omitempty" yaml:"counter,omitempty"`
	ExchangeDetails *ExchangeInfo `json:"exchange_details,omitempty" yaml:"exchange_details,omitempty"`

	// counter
	CounterType   CounterType `json:"counter_type,omitempty" yaml:"counter_type,omitempty"`
	PointQty      *int        `json:"point_qty,omitempty" yaml:"point_qty,omitempty"`
	FTOPTotal     *int        `json:"ftop_total,omitempty" yaml:"ftop_total,omitempty"`
	StandardTotal *int        `json:"standard_total,omitempty" yaml:"standard_total,omitempty"`

	// leave_start, leave_end
	LeaveID    int    `json:"leave_id,omitempty" yaml:"leave_id,omitempty"`
	LeaveType  string `json:"leave_type,omitempty" yaml:"leave_type,omitempty"`
	LeaveStart *Date  `json:"leave_start,omitempty" yaml:"leave_start,omitempty"`
	LeaveEnd   *Date  `json:"leave_end,omitempty" yaml:"leave_end,omitempty"`
}

// IsMalformed reports whether the event lacks a type or a usable date.
func (e Event) IsMalformed() bool {
	return e.Type == "" || e.Date.IsZero()
}

// Totals returns the counter totals carried by the event, if any. Shifts
// carry them inside their counter delta, counter events at top level.
func (e Event) Totals() (ftop, standard *int) {
	switch e.Type {
	case EventTypeShift:
		if e.Counter != nil {
			return e.Counter.FTOPTotal, e.Counter.StandardTotal
		}
	case EventTypeCounter:
		return e.FTOPTotal, e.StandardTotal
	}
	return nil, nil
}

// Leave is a period during which a member is exempt from shifts. A zero
// StopDate means the leave is open-ended.
type Leave struct {
	ID        int    `json:"id" yaml:"id"`
	StartDate Date   `json:"start_date" yaml:"start_date"`
	StopDate  Date   `json:"stop_date" yaml:"stop_date"`
	LeaveType string `json:"leave_type,omitempty" yaml:"leave_type,omitempty"`
}

// Bounds returns the leave interval; open is true when it has no end.
func (l Leave) Bounds() (start, end Date, open bool) {
	return l.StartDate, l.StopDate, l.StopDate.IsZero()
}

// IsOpenEnded reports whether the leave has no stop date.
func (l Leave) IsOpenEnded() bool {
	return l.StopDate.IsZero()
}

// Holiday is a cooperative-wide closure period.
type Holiday struct {
	ID          int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	StartDate   Date   `json:"date_begin" yaml:"date_begin"`
	EndDate     Date   `json:"date_end" yaml:"date_end"`
	HolidayType string `json:"holiday_type,omitempty" yaml:"holiday_type,omitempty"`
	MakeUpType  string `json:"make_up_type,omitempty" yaml:"make_up_type,omitempty"`
}

// Bounds returns the holiday interval. Holidays are never open-ended: a
// missing end date makes it a single-day holiday.
func (h Holiday) Bounds() (start, end Date, open bool) {
	end = h.EndDate
	if end.IsZero() {
		end = h.StartDate
	}
	return h.StartDate, end, false
}

// History is the full upstream payload for one member.
type History struct {
	Events   []Event   `json:"events" yaml:"events"`
	Leaves   []Leave   `json:"leaves" yaml:"leaves"`
	Holidays []Holiday `json:"holidays" yaml:"holidays"`
}

// ResolveShiftTypes replaces shift types outside the known set with the type
// derived from the raw upstream name.
func (h *History) ResolveShiftTypes() {
	for i := range h.Events {
		ev := &h.Events[i]
		if ev.Type == EventTypeShift && !ev.ShiftType.IsValid() {
			ev.ShiftType = ResolveShiftType(string(ev.ShiftType))
		}
	}
}
