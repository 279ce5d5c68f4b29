package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics for a student",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, err := resolveStudentID(cmd)
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		s, err := eng.Stats(cmd.Context(), student)
		if err != nil {
			return err
		}

		fmt.Println(styleHeader.Render("Study stats for " + s.StudentID))
		fmt.Printf("Window:          %s to %s\n",
			s.WindowStart.Local().Format("2006-01-02"),
			s.WindowEnd.Local().Format("2006-01-02"))
		fmt.Printf("Sessions:        %d completed / %d due / %d total\n",
			s.CompletedCount, s.DueCount, s.TotalCount)
		fmt.Printf("Completion rate: %.0f%%\n", s.CompletionRate*100)
		fmt.Printf("Current streak:  %d\n", s.CurrentStreak)
		fmt.Printf("Study time:      %d min actual vs %d min planned\n",
			s.ActualMinutes, s.PlannedMinutes)
		fmt.Printf("Duration drift:  %+.0f%% average, %+.0f%% recent\n",
			s.AvgVariance*100, s.RecentVariance*100)
		if s.MedianInterval > 0 {
			fmt.Printf("Median interval: %s\n", formatDuration(s.MedianInterval))
		}
		if s.GapSinceLastCompleted > 0 {
			fmt.Printf("Last completed:  %s ago\n", formatDuration(s.GapSinceLastCompleted))
		}
		return nil
	},
}

func formatDuration(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%dh", hours)
}
