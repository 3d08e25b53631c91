package main

import (
	"fmt"

	"github.com/jonathan/resumed/internal/resume"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "init [filename]",
		Aliases: []string{"create"},
		Short:   "Create sample resume",
		Long:    "Writes a sample JSON Resume document (default resume.json), replacing any existing file.",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := filenameArg(args)

			if err := resume.Init(filename); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Done! Start editing %s now, and run the %s command when you are ready. 👍\n",
				highlight(filename), highlight("render"))
			return nil
		},
	}
}
