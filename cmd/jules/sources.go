package main

import (
	"github.com/hochfrequenz/jules-tools/internal/jules"
	"github.com/spf13/cobra"
)

var (
	sourcesPageSize  int
	sourcesPageToken string
	sourcesAll       bool
	sourcesMaxPages  int
)

func init() {
	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "Inspect registered repositories",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sources",
		Args:  cobra.NoArgs,
		RunE:  passthrough(runSourcesList),
	}
	listCmd.Flags().IntVar(&sourcesPageSize, "page-size", 100, "sources per page")
	listCmd.Flags().StringVar(&sourcesPageToken, "page-token", "", "continuation token from a previous page")
	listCmd.Flags().BoolVar(&sourcesAll, "all", false, "follow nextPageToken and print every source")
	listCmd.Flags().IntVar(&sourcesMaxPages, "max-pages", 10, "page limit for --all")

	sourcesCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sourcesCmd)
}

func runSourcesList(cmd *cobra.Command, client *jules.Client, args []string) (jules.Object, error) {
	ctx := cmd.Context()
	if !sourcesAll {
		return client.ListSources(ctx, sourcesPageSize, sourcesPageToken)
	}

	sources, err := client.ListAllSources(ctx, sourcesPageSize, sourcesMaxPages)
	if err != nil {
		return nil, err
	}
	return jules.Object{"sources": sources}, nil
}
