package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show applied calendar adaptations",
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

		records, err := eng.History(cmd.Context(), student, limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No adaptations applied yet.")
			return nil
		}

		fmt.Println(styleHeader.Render(fmt.Sprintf("%-5s  %-19s  %-15s  %-9s  %7s  %s",
			"Seq", "Timestamp", "Pace", "Urgency", "Changes", "Rationale")))
		fmt.Println(strings.Repeat("─", 110))
		for _, r := range records {
			rationale := r.Rationale
			if len(rationale) > 50 {
				rationale = rationale[:47] + "..."
			}
			fmt.Printf("%-5d  %-19s  %-15s  %-9s  %7d  %s\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Classification,
				r.Urgency,
				r.MutationCount,
				rationale,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Max records to show")
}
