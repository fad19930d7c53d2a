package main

import (
	"encoding/json"
	"fmt"

	"github.com/Triaksa-Space/anchorpoint-web/config"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/cms"
	"github.com/spf13/cobra"
)

func newCMSCommand(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cms",
		Short: "Inspect the content store",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list <entityType>",
		Short: "Print every record of an entity type as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			client, err := cms.NewClient(cms.Config{
				BaseURL:  cfg.CMS.BaseURL,
				APIKey:   cfg.CMS.APIKey,
				SiteID:   cfg.CMS.SiteID,
				Timeout:  cfg.CMS.Timeout,
				PageSize: cfg.CMS.PageSize,
			})
			if err != nil {
				return err
			}
			return listEntity(cmd, client, args[0])
		},
	})
	return cmd
}

func listEntity(cmd *cobra.Command, lister cms.Lister, entityType string) error {
	listing, err := lister.ListAll(cmd.Context(), entityType)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(listing); err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}
	return nil
}
