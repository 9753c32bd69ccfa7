package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"member-history-backend/internal/cycle"
	"member-history-backend/internal/service"
)

// fixedCalendar serves the calendar given on the command line.
type fixedCalendar cycle.Config

func (f fixedCalendar) Config(context.Context) cycle.Config { return cycle.Config(f) }

func (fixedCalendar) IsDefault() bool { return false }

func newMemberCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "member <id>",
		Short: "Fetch a member's history from the member API and print the timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("member id must be an integer: %w", err)
			}

			cc, err := opts.cycleConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*opts.cfg.MemberAPITimeout())
			defer cancel()

			v := validator.New()
			api := service.NewMemberAPIService(opts.cfg)
			var configs service.CycleConfigSource = service.NewCycleConfigProvider(api, cc, v)
			if opts.calendarOverridden() {
				configs = fixedCalendar(cc)
			}
			history := service.NewHistoryService(api, configs, v)

			resp, err := history.GetTimeline(ctx, memberID)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.format, resp, func(p *printer) {
				p.timeline(resp)
			})
		},
	}
}
