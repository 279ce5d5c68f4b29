package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show the next scheduled sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, err := resolveStudentID(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := eng.Upcoming(cmd.Context(), student, limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No upcoming sessions.")
			return nil
		}
		printEventTable(events)
		return nil
	},
}

func init() {
	upcomingCmd.Flags().Int("limit", 10, "Max sessions to show")
}
