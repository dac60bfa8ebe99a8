package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"roughcut/internal/services"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show queue depths and job states from a running \"roughcut serve\" instance",
	Long: `status fetches /status and /jobs from a roughcut serve instance's
status dashboard and renders them as tables, the same counts the
dashboard's HTML view shows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")

		client := &http.Client{Timeout: 5 * time.Second}

		var status services.Status
		if err := fetchJSON(client, host+"/status", &status); err != nil {
			return fmt.Errorf("fetch status from %s: %w", host, err)
		}
		var jobs services.JobDetails
		if err := fetchJSON(client, host+"/jobs", &jobs); err != nil {
			return fmt.Errorf("fetch jobs from %s: %w", host, err)
		}

		fmt.Println(renderTable(
			[]string{"Watched Projects", "Running", "Transcription Queue", "Rough Cut Queue"},
			[][]string{{
				fmt.Sprintf("%d", status.WatchedProjects),
				fmt.Sprintf("%v", status.Running),
				fmt.Sprintf("%d", status.QueueSizes.Transcription),
				fmt.Sprintf("%d", status.QueueSizes.RoughCut),
			}},
			[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
		))

		fmt.Println(renderTable(
			[]string{"Kind", "Pending", "Running", "Completed", "Failed"},
			[][]string{
				countsRow("transcription", status.Transcription),
				countsRow("rough cut", status.RoughCut),
			},
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
		))

		rows := make([][]string, 0, len(jobs.TranscriptionJobs))
		for _, j := range jobs.TranscriptionJobs {
			rows = append(rows, []string{j.VideoFile, string(j.Status), j.Error})
		}
		if len(rows) > 0 {
			fmt.Println(renderTable([]string{"Video", "Status", "Error"}, rows, nil))
		}

		return nil
	},
}

func countsRow(kind string, c services.CountsByStatus) []string {
	return []string{
		kind,
		fmt.Sprintf("%d", c.Pending),
		fmt.Sprintf("%d", c.Running),
		fmt.Sprintf("%d", c.Completed),
		fmt.Sprintf("%d", c.Failed),
	}
}

func fetchJSON(client *http.Client, url string, out interface{}) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func init() {
	statusCmd.Flags().String("host", "http://127.0.0.1:8787", "base URL of a running roughcut serve --http instance")
}
