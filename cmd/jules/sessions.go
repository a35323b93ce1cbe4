package main

import (
	"github.com/hochfrequenz/jules-tools/internal/domain"
	"github.com/hochfrequenz/jules-tools/internal/jules"
	"github.com/spf13/cobra"
)

var (
	sessionsPageSize  int
	sessionsPageToken string

	createPrompt         string
	createSource         string
	createBranch         string
	createTitle          string
	createRequireApprove bool
	createAutomationMode string

	messageText string
)

func init() {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage sessions",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		Args:  cobra.NoArgs,
		RunE: passthrough(func(cmd *cobra.Command, c *jules.Client, args []string) (jules.Object, error) {
			return c.ListSessions(cmd.Context(), sessionsPageSize, sessionsPageToken)
		}),
	}
	listCmd.Flags().IntVar(&sessionsPageSize, "page-size", 50, "sessions per page")
	listCmd.Flags().StringVar(&sessionsPageToken, "page-token", "", "continuation token from a previous page")

	getCmd := &cobra.Command{
		Use:   "get SESSION_ID",
		Short: "Get a session by ID",
		Args:  cobra.ExactArgs(1),
		RunE: passthrough(func(cmd *cobra.Command, c *jules.Client, args []string) (jules.Object, error) {
			return c.GetSession(cmd.Context(), args[0])
		}),
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a session",
		Args:  cobra.NoArgs,
		RunE:  passthrough(runSessionsCreate),
	}
	createCmd.Flags().StringVar(&createPrompt, "prompt", "", "task for the agent")
	createCmd.Flags().StringVar(&createSource, "source", "", "source name, sources/{sourceId}")
	createCmd.Flags().StringVar(&createBranch, "starting-branch", "", "branch the session starts from")
	createCmd.Flags().StringVar(&createTitle, "title", "", "session title")
	createCmd.Flags().BoolVar(&createRequireApprove, "require-plan-approval", false, "wait for plan approval before executing")
	createCmd.Flags().StringVar(&createAutomationMode, "automation-mode", "", "e.g. AUTO_CREATE_PR")
	for _, name := range []string{"prompt", "source", "starting-branch"} {
		_ = createCmd.MarkFlagRequired(name)
	}

	deleteCmd := &cobra.Command{
		Use:   "delete SESSION_ID",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: passthrough(func(cmd *cobra.Command, c *jules.Client, args []string) (jules.Object, error) {
			return c.DeleteSession(cmd.Context(), args[0])
		}),
	}

	sendCmd := &cobra.Command{
		Use:   "send-message SESSION_ID",
		Short: "Send a message to a session",
		Args:  cobra.ExactArgs(1),
		RunE: passthrough(func(cmd *cobra.Command, c *jules.Client, args []string) (jules.Object, error) {
			return c.SendMessage(cmd.Context(), args[0], messageText)
		}),
	}
	sendCmd.Flags().StringVar(&messageText, "message", "", "message text")
	_ = sendCmd.MarkFlagRequired("message")

	approveCmd := &cobra.Command{
		Use:   "approve-plan SESSION_ID",
		Short: "Approve the plan of a session",
		Args:  cobra.ExactArgs(1),
		RunE: passthrough(func(cmd *cobra.Command, c *jules.Client, args []string) (jules.Object, error) {
			return c.ApprovePlan(cmd.Context(), args[0])
		}),
	}

	sessionsCmd.AddCommand(listCmd, getCmd, createCmd, deleteCmd, sendCmd, approveCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessionsCreate(cmd *cobra.Command, client *jules.Client, args []string) (jules.Object, error) {
	req := domain.NewCreateSessionRequest(createPrompt, createSource, createBranch)
	req.Title = createTitle
	req.RequirePlanApproval = createRequireApprove
	req.AutomationMode = createAutomationMode
	return client.CreateSession(cmd.Context(), req)
}
