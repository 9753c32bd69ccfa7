package timeline

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Category keys. Each must have an entry in categories.yaml.
const (
	CategoryPurchase            = "purchase"
	CategoryLeaveStart          = "leave_start"
	CategoryLeaveEnd            = "leave_end"
	CategoryCounterPositive     = "counter_positive"
	CategoryCounterNegative     = "counter_negative"
	CategoryCounterNeutral      = "counter_neutral"
	CategoryCycleDeduction      = "cycle_deduction"
	CategoryShiftAttended       = "shift_attended"
	CategoryShiftMissed         = "shift_missed"
	CategoryShiftMissedOnLeave  = "shift_missed_on_leave"
	CategoryShiftExcused        = "shift_excused"
	CategoryShiftExcusedOnLeave = "shift_excused_on_leave"
	CategoryShiftExchanged      = "shift_exchanged"
	CategoryUnknown             = "unknown"
)

var categoryKeys = []string{
	CategoryPurchase,
	CategoryLeaveStart,
	CategoryLeaveEnd,
	CategoryCounterPositive,
	CategoryCounterNegative,
	CategoryCounterNeutral,
	CategoryCycleDeduction,
	CategoryShiftAttended,
	CategoryShiftMissed,
	CategoryShiftMissedOnLeave,
	CategoryShiftExcused,
	CategoryShiftExcusedOnLeave,
	CategoryShiftExchanged,
	CategoryUnknown,
}

// Category is the display classification of a timeline event.
type Category struct {
	Key          string `json:"key" yaml:"-"`
	Icon         string `json:"icon" yaml:"icon"`
	ColorClass   string `json:"color_class" yaml:"color_class"`
	TitleKey     string `json:"title_key" yaml:"title_key"`
	FTOPTitleKey string `json:"-" yaml:"ftop_title_key"`
	Dimmed       bool   `json:"dimmed" yaml:"dimmed"`
}

//go:embed categories.yaml
var categoriesYAML []byte

var catalog = mustLoadCatalog(categoriesYAML)

func loadCatalog(data []byte) (map[string]Category, error) {
	var entries map[string]Category
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse category catalog: %w", err)
	}
	for _, key := range categoryKeys {
		c, ok := entries[key]
		if !ok {
			return nil, fmt.Errorf("category catalog is missing %q", key)
		}
		c.Key = key
		entries[key] = c
	}
	return entries, nil
}

func mustLoadCatalog(data []byte) map[string]Category {
	entries, err := loadCatalog(data)
	if err != nil {
		panic(err)
	}
	return entries
}

func category(key string) Category {
	return catalog[key]
}

// Categories lists every known display category ordered by key.
func Categories() []Category {
	out := make([]Category, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
