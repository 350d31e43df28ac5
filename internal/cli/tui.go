package cli

import (
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/tui"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for the full-screen view.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long: `Launch a full-screen view of the task list.

Keys:
  up/k, down/j    move the cursor
  enter/space/x   mark the selected task as done
  a               add a task (enter to confirm, esc to cancel)
  q               save and quit
  ctrl+c          quit without saving`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd, c)
		},
	}
}

func launchTUI(cmd *cobra.Command, c *app.Container) error {
	ctx := cmd.Context()

	loaded, err := c.LoadTasksUseCase().Execute(ctx, usecase.LoadTasksInput{})
	if err != nil {
		return err
	}

	m := tui.New(loaded.List, tui.Deps{
		AddTask:   c.AddTaskUseCase(),
		MarkDone:  c.MarkDoneUseCase(),
		SaveTasks: c.SaveTasksUseCase(),
	})
	return tui.Run(ctx, m, cmd.InOrStdin(), cmd.OutOrStdout())
}
