package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/NanoLab/internal/app"
	"github.com/yildizm/NanoLab/internal/emoji"
)

func newPagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the control panel pages",
		Long:  "List every page identifier in registry order. Any of them can be passed to --start.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			state := app.New(app.Options{Config: cfg})
			if err := state.Init(); err != nil {
				return err
			}

			glyphs := emoji.New(cfg.Output.NoEmoji)
			registry := state.Navigator().Registry()
			out := cmd.OutOrStdout()
			for i := 0; i < registry.Len(); i++ {
				page := registry.Page(i)
				marker := ""
				if _, ok := state.Form(page.ID()); ok {
					marker = " (settings)"
				}
				fmt.Fprintf(out, "%2d. %s %-20s %s%s\n", i, glyphs.Get(string(page.ID())), page.ID(), page.Title(), marker)
			}
			return nil
		},
	}
}
