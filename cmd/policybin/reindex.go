package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/service"
)

func newReindexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Re-extract text for every stored document and save it to the metadata snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireCredential(); err != nil {
				return err
			}
			components, err := service.New(a.config, a.logger)
			if err != nil {
				return err
			}
			result, err := components.Reindexer.Run(cmd.Context())
			if err != nil {
				if errors.Is(err, reindex.ErrNoMetadata) {
					return fmt.Errorf("%v at %v", reindex.NoMetadataReason, components.Objects.URL(components.Metadata.Path()))
				}
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}
}
