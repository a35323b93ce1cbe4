package main

import (
	"github.com/hochfrequenz/jules-tools/internal/jules"
	"github.com/spf13/cobra"
)

var (
	activitiesPageSize  int
	activitiesPageToken string
)

func init() {
	activitiesCmd := &cobra.Command{
		Use:   "activities",
		Short: "Inspect session activities",
	}

	listCmd := &cobra.Command{
		Use:   "list SESSION_ID",
		Short: "List activities for a session",
		Args:  cobra.ExactArgs(1),
		RunE: passthrough(func(cmd *cobra.Command, c *jules.Client, args []string) (jules.Object, error) {
			return c.ListActivities(cmd.Context(), args[0], activitiesPageSize, activitiesPageToken)
		}),
	}
	listCmd.Flags().IntVar(&activitiesPageSize, "page-size", 50, "activities per page")
	listCmd.Flags().StringVar(&activitiesPageToken, "page-token", "", "continuation token from a previous page")

	getCmd := &cobra.Command{
		Use:   "get SESSION_ID ACTIVITY_ID",
		Short: "Get a single activity for a session",
		Args:  cobra.ExactArgs(2),
		RunE: passthrough(func(cmd *cobra.Command, c *jules.Client, args []string) (jules.Object, error) {
			return c.GetActivity(cmd.Context(), args[0], args[1])
		}),
	}

	activitiesCmd.AddCommand(listCmd, getCmd)
	rootCmd.AddCommand(activitiesCmd)
}
