// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/console"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:   "todo",
		Short: "Interactive task list",
		Long: `todo keeps a small task list in TaskList.json in the current directory.

Running todo without a subcommand starts the interactive session:
choose 1 to add a task, 2 to mark a task as complete, 3 to save and end.
Use "todo tui" for a full-screen view of the same list.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			if file != "" {
				c.UseStorePath(file)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, c)
		},
	}

	root.PersistentFlags().StringVarP(&file, "file", "f", "", "Task file path (overrides store.path)")

	root.AddCommand(
		newTUICommand(c),
		newConfigCommand(c),
	)

	return root
}

// runSession loads the task list and runs the line-oriented session
// over the command's input and output streams.
func runSession(cmd *cobra.Command, c *app.Container) error {
	ctx := cmd.Context()

	loaded, err := c.LoadTasksUseCase().Execute(ctx, usecase.LoadTasksInput{})
	if err != nil {
		return err
	}

	session := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), loaded.List, console.Deps{
		AddTask:   c.AddTaskUseCase(),
		MarkDone:  c.MarkDoneUseCase(),
		SaveTasks: c.SaveTasksUseCase(),
		Logger:    c.Logger,
	}, console.Options{
		RetryInvalidID: c.AppConfig.Input.RetryInvalidID,
	})
	return session.Run(ctx)
}
