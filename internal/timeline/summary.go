package timeline

import "member-history-backend/internal/models"

// FTOPStatus qualifies the FTOP counter balance.
type FTOPStatus string

const (
	FTOPStatusPositive FTOPStatus = "positive"
	FTOPStatusNeutral  FTOPStatus = "neutral"
	FTOPStatusNegative FTOPStatus = "negative"
)

// StandardStatus qualifies the standard counter balance.
type StandardStatus string

const (
	StandardStatusUpToDate        StandardStatus = "up_to_date"
	StandardStatusAttentionNeeded StandardStatus = "attention_needed"
)

// CounterSummary is the member's current counter standing.
type CounterSummary struct {
	FTOPTotal      int            `json:"ftop_total"`
	StandardTotal  int            `json:"standard_total"`
	FTOPStatus     FTOPStatus     `json:"ftop_status"`
	StandardStatus StandardStatus `json:"standard_status"`
}

// Summarize reads the latest counter totals from events, which must be
// ordered newest first. Each total is taken from the first event carrying
// it; a total no event carries is 0.
func Summarize(events []models.Event) CounterSummary {
	var ftop, standard *int
	for _, ev := range events {
		f, s := ev.Totals()
		if ftop == nil && f != nil {
			ftop = f
		}
		if standard == nil && s != nil {
			standard = s
		}
		if ftop != nil && standard != nil {
			break
		}
	}

	summary := CounterSummary{}
	if ftop != nil {
		summary.FTOPTotal = *ftop
	}
	if standard != nil {
		summary.StandardTotal = *standard
	}
	summary.FTOPStatus = ftopStatus(summary.FTOPTotal)
	summary.StandardStatus = standardStatus(summary.StandardTotal)
	return summary
}

func ftopStatus(total int) FTOPStatus {
	switch {
	case total > 0:
		return FTOPStatusPositive
	case total < 0:
		return FTOPStatusNegative
	default:
		return FTOPStatusNeutral
	}
}

func standardStatus(total int) StandardStatus {
	if total == 0 {
		return StandardStatusUpToDate
	}
	return StandardStatusAttentionNeeded
}
