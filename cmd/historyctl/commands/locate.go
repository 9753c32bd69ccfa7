package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"member-history-backend/internal/cycle"
	apperrors "member-history-backend/internal/errors"
	"member-history-backend/internal/models"
)

func newLocateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate <date>",
		Short: "Print the cycle and week a date falls in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := opts.cycleConfig()
			if err != nil {
				return err
			}

			date, err := models.ParseDate(args[0])
			if err != nil {
				return err
			}

			pos, ok := cycle.Locate(date, cc)
			if !ok {
				return fmt.Errorf("%s: %w", date, apperrors.ErrDateBeforeEpoch)
			}

			return render(cmd.OutOrStdout(), opts.format, pos, func(p *printer) {
				p.line(0, "%s is in cycle %d, week %s", date, pos.CycleNumber, pos.WeekLetter)
				p.line(1, "cycle %d: %s to %s", pos.CycleNumber, pos.CycleStart, pos.CycleEnd)
				p.line(1, "week %s: %s to %s", pos.WeekLetter, pos.WeekStart, pos.WeekEnd)
			})
		},
	}
}
