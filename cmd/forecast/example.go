package main

import (
	"fmt"

	"github.com/finboard/forecast/internal/config"
	"github.com/finboard/forecast/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example snapshot document",
		Long:  "Write an example snapshot document to file, or to stdout when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := config.NewInputParser().CreateExampleSnapshot()
			if len(args) == 1 {
				if err := output.SaveSnapshot(snapshot, args[0]); err != nil {
					return fmt.Errorf("failed to write example: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example snapshot written: %s\n", args[0])
				return nil
			}
			data, err := yaml.Marshal(snapshot)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
