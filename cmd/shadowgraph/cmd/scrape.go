package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	shadowgraph "github.com/shadowgraph/shadowgraph-go"
)

var (
	scrapeSeeds    []string
	scrapeKeywords []string
	scrapeMaxPages int
	scrapeAnywhere bool
	scheduleEvery  int
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run and manage the web scraping pipeline",
}

var scrapeRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scraping pipeline synchronously",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		outcome, err := client.ScrapeAggregate(cmd.Context(), shadowgraph.ScrapeRequest{
			SeedURLs:       scrapeSeeds,
			Keywords:       scrapeKeywords,
			MaxPages:       scrapeMaxPages,
			SameDomainOnly: !scrapeAnywhere,
		})
		if err != nil {
			return err
		}
		return printJSON(outcome)
	},
}

var scrapeQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Enqueue the scraping pipeline as a background job",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		job, err := client.EnqueueScrapeJob(cmd.Context(), shadowgraph.ScrapeRequest{
			SeedURLs:       scrapeSeeds,
			Keywords:       scrapeKeywords,
			MaxPages:       scrapeMaxPages,
			SameDomainOnly: !scrapeAnywhere,
		})
		if err != nil {
			return err
		}
		toasts.Success(fmt.Sprintf("Job %s queued.", job.JobID))
		return nil
	},
}

var scrapeJobsCmd = &cobra.Command{
	Use:   "jobs [job-id]",
	Short: "List scrape jobs, or show one by ID",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		if len(args) == 1 {
			job, err := client.GetScrapeJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(job)
		}
		jobs, err := client.ListScrapeJobs(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(jobs)
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage recurring crawler schedules",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a recurring scraping run",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		schedule, err := client.CreateCrawlerSchedule(cmd.Context(), shadowgraph.ScheduleRequest{
			SeedURLs:        scrapeSeeds,
			Keywords:        scrapeKeywords,
			IntervalMinutes: scheduleEvery,
			MaxPages:        scrapeMaxPages,
			SameDomainOnly:  !scrapeAnywhere,
		})
		if err != nil {
			return err
		}
		return printJSON(schedule)
	},
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List crawler schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		schedules, err := client.ListCrawlerSchedules(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(schedules)
	},
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "rm <schedule-id>",
	Short: "Delete a crawler schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.DeleteCrawlerSchedule(cmd.Context(), args[0]); err != nil {
			return err
		}
		toasts.Success("Schedule deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{scrapeRunCmd, scrapeQueueCmd, scheduleAddCmd} {
		c.Flags().StringSliceVar(&scrapeSeeds, "seed", nil, "seed URL (repeatable)")
		c.Flags().StringSliceVar(&scrapeKeywords, "keyword", nil, "keyword to count (repeatable)")
		c.Flags().IntVar(&scrapeMaxPages, "max-pages", 6, "page crawl budget")
		c.Flags().BoolVar(&scrapeAnywhere, "follow-external", false, "follow links off the seed domain")
	}
	scheduleAddCmd.Flags().IntVar(&scheduleEvery, "every", 60, "run interval in minutes")

	scheduleCmd.AddCommand(scheduleAddCmd, scheduleListCmd, scheduleRemoveCmd)
	scrapeCmd.AddCommand(scrapeRunCmd, scrapeQueueCmd, scrapeJobsCmd)
	rootCmd.AddCommand(scrapeCmd, scheduleCmd)
}
