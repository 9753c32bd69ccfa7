package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"member-history-backend/internal/cycle"
	"member-history-backend/internal/models"
	"member-history-backend/internal/service"
)

// fileSource serves a saved member API history payload in place of the
// live API.
type fileSource struct {
	history *models.History
	cycles  cycle.Config
}

func loadFileSource(path string, cc cycle.Config) (*fileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var history models.History
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to decode history file %s: %w", path, err)
	}
	history.ResolveShiftTypes()

	return &fileSource{history: &history, cycles: cc}, nil
}

func (s *fileSource) SearchMembers(ctx context.Context, name string) ([]models.Member, error) {
	return []models.Member{}, nil
}

func (s *fileSource) GetHistory(ctx context.Context, memberID int) (*models.History, error) {
	return s.history, nil
}

func (s *fileSource) GetStatus(ctx context.Context, memberID int) (*models.MemberStatus, error) {
	return nil, nil
}

func (s *fileSource) GetCycleConfig(ctx context.Context) (*cycle.Config, error) {
	cc := s.cycles
	return &cc, nil
}

func newBuildCmd(opts *options) *cobra.Command {
	var (
		file     string
		memberID int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a timeline from a saved member history file",
		Long: `Build a timeline from a JSON file holding a member API history payload
({"events": [...], "leaves": [...], "holidays": [...]}).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := opts.cycleConfig()
			if err != nil {
				return err
			}

			source, err := loadFileSource(file, cc)
			if err != nil {
				return err
			}

			v := validator.New()
			history := service.NewHistoryService(source, service.NewCycleConfigProvider(source, cc, v), v)
			resp, err := history.GetTimeline(cmd.Context(), memberID)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.format, resp, func(p *printer) {
				p.timeline(resp)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "history JSON file")
	cmd.Flags().IntVar(&memberID, "member-id", 1, "member ID reported in the output")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
