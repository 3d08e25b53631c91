package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resumed/internal/schemas"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate [filename]",
		Short: "Validate resume",
		Long:  "Validates a resume (default resume.json) against the JSON Resume schema and lists every violation.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}

			filename := filenameArg(args)

			schema := schemaPath
			if schema == "" {
				schema = a.cfg.SchemaPath
			}

			var err error
			if schema != "" {
				err = schemas.ValidateJSON(schema, filename)
			} else {
				err = schemas.ValidateFile(filename)
			}

			if err == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Your %s looks amazing! ✨\n", highlight(filename))
				return nil
			}

			var validationErr *schemas.ValidationError
			if !errors.As(err, &validationErr) {
				return err
			}

			stderr := cmd.ErrOrStderr()
			_, _ = fmt.Fprintf(stderr, "Uh-oh! The following errors were found in %s:\n\n", highlight(filename))
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(stderr, " %s at %s.\n", failure("❌ "+fe.Message), highlight(fe.Path))
			}

			return handled(validationErr)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Validate against this JSON Schema file instead of the bundled JSON Resume schema")

	return cmd
}
