package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"member-history-backend/internal/cycle"
	"member-history-backend/internal/models"
)

func newRangeCmd(opts *options) *cobra.Command {
	var end string

	cmd := &cobra.Command{
		Use:   "range <n>",
		Short: "Print the date range covered by the last n cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := opts.cycleConfig()
			if err != nil {
				return err
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n must be an integer: %w", err)
			}

			endDate := models.Today()
			if end != "" {
				if endDate, err = models.ParseDate(end); err != nil {
					return fmt.Errorf("--end: %w", err)
				}
			}

			r, err := cycle.DateRange(n, endDate, cc)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.format, r, func(p *printer) {
				p.line(0, "%s to %s (cycles %d to %d)", r.StartDate, r.EndDate, r.StartCycle, r.EndCycle)
			})
		},
	}

	cmd.Flags().StringVar(&end, "end", "", "end date, YYYY-MM-DD (default today)")
	return cmd
}
