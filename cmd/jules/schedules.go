package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hochfrequenz/jules-tools/internal/config"
	"github.com/hochfrequenz/jules-tools/internal/notify"
	"github.com/hochfrequenz/jules-tools/internal/output"
	"github.com/hochfrequenz/jules-tools/internal/schedules"
	"github.com/spf13/cobra"
)

var (
	schedRepo         string
	schedPageSize     int
	schedPages        int
	schedSourcePages  int
	schedNoColor      bool
	schedSlackWebhook string
)

func init() {
	schedulesCmd := &cobra.Command{
		Use:   "schedules",
		Short: "List sessions that look like recurring schedules",
		Long: `List potential recurring sessions for a repository.

Sessions of the repository are grouped by identical title and prompt, and
each group is reported with its size and most recent creation time. Groups
are a heuristic: unrelated sessions with the same text are grouped together.`,
		Args: cobra.NoArgs,
		RunE: runSchedules,
	}
	schedulesCmd.Flags().StringVar(&schedRepo, "repo", "OWNER/REPO", "repository full name (owner/repo); also $"+config.RepoEnv)
	schedulesCmd.Flags().IntVar(&schedPageSize, "page-size", 50, "sessions per page")
	schedulesCmd.Flags().IntVar(&schedPages, "pages", 40, "maximum session pages to fetch")
	schedulesCmd.Flags().IntVar(&schedSourcePages, "source-pages", 10, "maximum source pages to fetch")
	schedulesCmd.Flags().BoolVar(&schedNoColor, "no-color", false, "disable styling of the text report")
	schedulesCmd.Flags().StringVar(&schedSlackWebhook, "slack-webhook", "", "post the report to this Slack webhook")
	rootCmd.AddCommand(schedulesCmd)
}

// schedulesOptions merges flags over environment over config. Flags only win
// when they were set explicitly.
func schedulesOptions(cmd *cobra.Command, cfg *config.Config) (repo string, pageSize, pages, sourcePages int, err error) {
	flags := cmd.Flags()

	repo = cfg.Schedules.Repo
	if env := os.Getenv(config.RepoEnv); env != "" {
		repo = env
	}
	if flags.Changed("repo") {
		repo = schedRepo
	}

	pageSize, pages, sourcePages = cfg.Schedules.PageSize, cfg.Schedules.MaxPages, cfg.Schedules.MaxSourcePages
	if flags.Changed("page-size") {
		pageSize = schedPageSize
	}
	if flags.Changed("pages") {
		pages = schedPages
	}
	if flags.Changed("source-pages") {
		sourcePages = schedSourcePages
	}
	if pageSize <= 0 || pages <= 0 || sourcePages <= 0 {
		return "", 0, 0, 0, fmt.Errorf("page size and page limits must be positive")
	}
	return repo, pageSize, pages, sourcePages, nil
}

func runSchedules(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(outputFlag, output.FormatText)
	if err != nil {
		return err
	}

	cfg, client, err := newClient()
	if err != nil {
		return err
	}

	repo, pageSize, pages, sourcePages, err := schedulesOptions(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sources, err := client.ListAllSources(ctx, cfg.Schedules.SourcePageSize, sourcePages)
	if err != nil {
		return fmt.Errorf("listing sources: %w", err)
	}
	sourceID, err := schedules.ResolveSource(sources, repo)
	if err != nil {
		return err
	}
	logger.Debug("resolved source", "repo", repo, "source", sourceID)

	sessions, err := client.ListAllSessions(ctx, pageSize, pages)
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	report := schedules.BuildReport(repo, sourceID, sessions, cfg.Schedules.Declared, time.Now())

	out := cmd.OutOrStdout()
	if format == output.FormatText {
		err = report.Render(out, schedNoColor)
	} else {
		err = output.Write(out, format, report)
	}
	if err != nil {
		return err
	}

	webhook := cfg.Notifications.SlackWebhook
	if schedSlackWebhook != "" {
		webhook = schedSlackWebhook
	}
	n := notify.New(webhook)
	if err := n.Send(notify.Notification{
		Title:   "Potential Jules schedules for " + repo,
		Message: report.Text(),
		Type:    notify.NotifyInfo,
		Repo:    repo,
	}); err != nil {
		return fmt.Errorf("sending report: %w", err)
	}
	return nil
}
