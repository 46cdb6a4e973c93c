package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/genricoloni/hyprarrange/internal/arranger"
	"github.com/genricoloni/hyprarrange/internal/layout"
	"github.com/genricoloni/hyprarrange/internal/script"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "hyprarrange",
		Short:        "Arrange monitors by dragging them on a scaled canvas",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/hyprarrange/hyprarrange.yaml)")

	root.AddCommand(
		newListCmd(&configPath),
		newExportCmd(&configPath),
		newApplyCmd(&configPath),
		newPreviewCmd(&configPath),
		newReplayCmd(&configPath),
		newVersionCmd(),
	)
	return root
}

func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the monitors reported by the display server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArranger(cmd, *configPath, func(ctx context.Context, a *arranger.Arranger) error {
				e, err := a.Load(ctx)
				if err != nil {
					return err
				}

				monitors := e.Monitors()
				for i, p := range layout.Placements(monitors) {
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s %dx%d at %d,%d scale %.2f\n",
						p.Name, p.Width, p.Height, p.X, p.Y, monitors[i].Scale)
				}
				return nil
			})
		},
	}
}

func newExportCmd(configPath *string) *cobra.Command {
	var asConfig, copyConfig bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the placement commands for the current layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArranger(cmd, *configPath, func(ctx context.Context, a *arranger.Arranger) error {
				e, err := a.Load(ctx)
				if err != nil {
					return err
				}
				return printExport(ctx, cmd, a, e, asConfig, copyConfig)
			})
		},
	}
	cmd.Flags().BoolVar(&asConfig, "clipboard", false, "print the monitor= config block instead of commands")
	cmd.Flags().BoolVar(&copyConfig, "copy", false, "also place the config block on the clipboard")
	return cmd
}

func newApplyCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Apply the current layout through hyprctl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArranger(cmd, *configPath, func(ctx context.Context, a *arranger.Arranger) error {
				e, err := a.Load(ctx)
				if err != nil {
					return err
				}
				if err := a.Apply(ctx, e); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d monitors\n", e.Registry().Len())
				return nil
			})
		},
	}
}

func newPreviewCmd(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the centered layout to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withArranger(cmd, *configPath, func(ctx context.Context, a *arranger.Arranger) error {
				e, err := a.Load(ctx)
				if err != nil {
					return err
				}
				path, err := a.Preview(e, out)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default from preview_path)")
	return cmd
}

func newReplayCmd(configPath *string) *cobra.Command {
	var apply, copyConfig bool
	var previewPath string

	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a scripted drag session and print the resulting layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := script.Load(args[0])
			if err != nil {
				return err
			}

			return withArranger(cmd, *configPath, func(ctx context.Context, a *arranger.Arranger) error {
				e, err := a.Load(ctx)
				if err != nil {
					return err
				}
				a.Replay(e, session)

				if previewPath != "" {
					if _, err := a.Preview(e, previewPath); err != nil {
						return err
					}
				}
				if err := printExport(ctx, cmd, a, e, false, copyConfig); err != nil {
					return err
				}
				if apply {
					return a.Apply(ctx, e)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&apply, "apply", false, "apply the resulting layout")
	cmd.Flags().BoolVar(&copyConfig, "copy", false, "place the resulting config block on the clipboard")
	cmd.Flags().StringVar(&previewPath, "preview", "", "render the resulting layout to this file")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hyprarrange %s\n", version)
		},
	}
}

func printExport(ctx context.Context, cmd *cobra.Command, a *arranger.Arranger, e *layout.Engine, asConfig, copyConfig bool) error {
	out := cmd.OutOrStdout()
	if copyConfig {
		if _, err := a.CopyConfig(ctx, e); err != nil {
			return err
		}
	}
	if asConfig {
		fmt.Fprint(out, e.ExportClipboardConfig())
		return nil
	}
	if cmds := e.ExportCommands(); len(cmds) > 0 {
		fmt.Fprintln(out, strings.Join(cmds, "\n"))
	}
	return nil
}
