package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yildizm/NanoLab/internal/app"
	"github.com/yildizm/NanoLab/internal/formatter"
	"github.com/yildizm/NanoLab/internal/nav"
	"github.com/yildizm/NanoLab/internal/settings"
	"github.com/yildizm/NanoLab/internal/sink"
	"github.com/yildizm/NanoLab/internal/ui"
	"github.com/yildizm/go-termfmt"
)

var summaryForms = []nav.PageID{nav.PageLED, nav.PageWater, nav.PageFan, nav.PageCamera, nav.PageSensor, nav.PageSchedule}

func newSummaryCommand() *cobra.Command {
	var assignments []string

	summaryCmd := &cobra.Command{
		Use:   "summary <form>",
		Short: "Evaluate a settings form without the control panel",
		Long: `Apply values to a settings form and print the resulting record.

Values outside a field's range are clamped, exactly as in the control panel.
The LED form also accepts color=<#rrggbb|name> and the schedule form
start=<YYYY-MM-DD>.`,
		Example: `  # Water pump: 90 s four times a day
  nanolab summary water --set duration=90 --set frequency=4

  # LED record as JSON
  nanolab summary led --set color=#336699 --output json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: pageIDStrings(summaryForms),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			id := nav.PageID(args[0])
			state := app.New(app.Options{Config: cfg})
			if err := state.Init(); err != nil {
				return err
			}
			form, ok := state.Form(id)
			if !ok {
				return fmt.Errorf("unknown form: %s (must be one of: %s)", args[0], strings.Join(pageIDStrings(summaryForms), ", "))
			}

			for _, a := range assignments {
				res, err := applySetting(cmd.Context(), state, id, a)
				if err != nil {
					return err
				}
				if res.Warning != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", res.Warning)
				}
			}

			return printSummary(cmd.Context(), cmd.OutOrStdout(), form, cfg.Output.Format, ui.ColorEnabled(cfg.Output.ColorMode))
		},
	}

	summaryCmd.Flags().StringArrayVarP(&assignments, "set", "s", nil, "field assignment key=value (repeatable)")

	return summaryCmd
}

// applySetting parses one key=value assignment and dispatches it
func applySetting(ctx context.Context, state *app.State, id nav.PageID, assignment string) (app.Result, error) {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok || key == "" {
		return app.Result{}, fmt.Errorf("invalid setting %q (want key=value)", assignment)
	}

	switch {
	case id == nav.PageLED && key == "color":
		return state.Dispatch(ctx, app.Command{Kind: app.CmdSetColor, Target: id, Text: value})
	case id == nav.PageSchedule && key == "start":
		return state.Dispatch(ctx, app.Command{Kind: app.CmdSetStart, Target: id, Text: value})
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return app.Result{}, fmt.Errorf("invalid value for %s: %q is not a number", key, value)
	}
	return state.Dispatch(ctx, app.Command{Kind: app.CmdSetValue, Target: id, Field: key, Value: n})
}

func printSummary(ctx context.Context, w io.Writer, form settings.Settings, format string, color bool) error {
	if format == "" || format == "text" {
		opts := termfmt.DefaultOptions()
		opts.Color = color
		fmt.Fprintf(w, "%s\n\n", form.Title())
		for _, field := range form.Fields() {
			fmt.Fprintf(w, "  %-12s %s %d %s\n", field.Label, termfmt.CreateConfidenceBar(field.Fraction(), opts), field.Value, field.Unit)
		}
		fmt.Fprintf(w, "\n%s\n\n", form.Summary())
	}

	f, err := formatter.New(format, color)
	if err != nil {
		return err
	}
	return sink.NewWriterSink(w, f).Emit(ctx, form.Save())
}

func pageIDStrings(ids []nav.PageID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
