package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/trknhr/postflow/internal/config"
	"github.com/trknhr/postflow/internal/logger"
	"github.com/trknhr/postflow/internal/posts"
	"github.com/trknhr/postflow/internal/tui"
	"github.com/trknhr/postflow/internal/viewmodel"
)

func NewRootCmd(cfg config.Config) *cobra.Command {
	var noInitialGet bool

	cmd := &cobra.Command{
		Use:   "postflow",
		Short: "Launch the posts demo screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noInitialGet {
				cfg.UI.InitialGet = false
			}

			vm := viewmodel.NewPosts(posts.NewUseCase())
			model := tui.NewSessionModel(vm, cfg)

			tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
			if err != nil {
				logger.Error("failed to open tty: %v", err)
				return fmt.Errorf("failed to open tty: %w", err)
			}
			defer tty.Close()

			p := tea.NewProgram(model, tea.WithAltScreen(),
				tea.WithInput(tty),
				tea.WithOutput(os.Stderr),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noInitialGet, "no-initial-get", false, "do not fetch the post on startup")

	cmd.AddCommand(NewRequestCmd())

	return cmd
}

func Execute(cfg config.Config) error {
	cmd := NewRootCmd(cfg)
	return cmd.Execute()
}
