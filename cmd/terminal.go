package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"progresscountdown/internal/core/countdown"
	"progresscountdown/internal/ui/terminal"
)

func newTUICommand(rt *runtime) *cobra.Command {
	var radius int

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the countdown in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			timer := countdown.New(rt.settings.DurationSeconds, countdown.Options{})
			model := terminal.New(timer, terminal.Config{
				Style:  rt.settings.Style(),
				Radius: radius,
			})
			if rt.settings.StartOnLaunch {
				timer.Start()
			}

			program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}
			rt.logger.Debug("terminal ui exited", "state", timer.State(), "remaining", timer.Remaining())
			return nil
		},
	}
	cmd.Flags().IntVar(&radius, "radius", 6, "ring radius in terminal rows")
	return cmd
}

func newPreviewCommand(rt *runtime) *cobra.Command {
	var (
		radius   int
		inWindow bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the static design-time ring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style := rt.settings.Style()
			if inWindow {
				runPreviewWindow(style)
				return nil
			}
			frame := countdown.Preview(style)
			fmt.Fprintln(cmd.OutOrStdout(), terminal.RenderRing(frame.Fraction, frame.Remaining, style, radius))
			return nil
		},
	}
	cmd.Flags().IntVar(&radius, "radius", 6, "ring radius in terminal rows")
	cmd.Flags().BoolVar(&inWindow, "window", false, "open the preview in a desktop window")
	return cmd
}
