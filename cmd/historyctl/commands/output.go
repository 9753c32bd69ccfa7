package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"member-history-backend/internal/logger"
	"member-history-backend/internal/service"
	"member-history-backend/internal/timeline"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes v in the requested format. Text output is produced by the
// text callback.
func render(w io.Writer, format string, v interface{}, text func(p *printer)) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		if isTerminal(w) {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(v)
	case formatYAML:
		return writeYAML(w, v)
	case formatText, "":
		p := &printer{w: w}
		text(p)
		return p.err
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// writeYAML emits v as YAML keyed like its JSON form, keeping field order.
func writeYAML(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		n.Style &^= yaml.DoubleQuotedStyle
	}
	for _, child := range n.Content {
		blockStyle(child)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && logger.IsTerminal(f)
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(depth int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat("  ", depth)+format+"\n", args...)
}

func (p *printer) timeline(resp *service.TimelineResponse) {
	p.line(0, "Member %d: %d weeks per cycle from %s",
		resp.MemberID, resp.CycleConfig.WeeksPerCycle, resp.CycleConfig.WeekADate)
	p.line(0, "Counters: FTOP %+d (%s), standard %+d (%s)",
		resp.Counters.FTOPTotal, resp.Counters.FTOPStatus, resp.Counters.StandardTotal, resp.Counters.StandardStatus)
	if resp.Status != nil && resp.Status.CooperativeState != "" {
		p.line(0, "Status: %s", resp.Status.CooperativeState)
	}
	if resp.StatusError != "" {
		p.line(0, "Status unavailable: %s", resp.StatusError)
	}

	for _, c := range resp.Cycles {
		p.line(0, "")
		p.line(0, "Cycle %d  %s to %s", c.CycleNumber, c.StartDate, c.EndDate)
		for _, week := range c.Weeks {
			p.line(1, "Week %s  %s to %s", week.WeekLetter, week.StartDate, week.EndDate)
			for _, ev := range week.Events {
				p.line(2, "%s  %-22s %s%s", ev.Date, ev.Category.Key, eventLabel(ev), badgeLabels(ev.Badges))
			}
		}
	}

	if resp.Stats.Malformed > 0 || resp.Stats.PreEpoch > 0 {
		p.line(0, "")
		p.line(0, "Skipped %d malformed and %d pre-epoch events", resp.Stats.Malformed, resp.Stats.PreEpoch)
	}
}

func eventLabel(ev timeline.TimelineEvent) string {
	switch {
	case ev.ShiftName != "":
		return ev.ShiftName
	case ev.Name != "":
		return ev.Name
	case ev.Reference != "":
		return ev.Reference
	case ev.LeaveType != "":
		return ev.LeaveType
	default:
		return string(ev.Type)
	}
}

func badgeLabels(badges []timeline.Badge) string {
	if len(badges) == 0 {
		return ""
	}
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		label := b.Kind
		if b.Label != "" {
			label = b.Kind + ":" + b.Label
		}
		parts = append(parts, "["+label+"]")
	}
	return "  " + strings.Join(parts, " ")
}
