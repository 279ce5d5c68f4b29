package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/catalog"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List available courses and their units",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.NewSeeded()
		verbose, _ := cmd.Flags().GetBool("units")

		for _, c := range cat.Courses() {
			total := 0
			for _, u := range c.Units {
				total += u.DurationMinutes
			}
			fmt.Printf("%s  %s\n", styleHeader.Render(c.ID), styleDim.Render(
				fmt.Sprintf("%s (%d units, %d min total)", c.Name, len(c.Units), total)))

			if !verbose {
				continue
			}
			for _, u := range c.Units {
				fmt.Printf("  %2d. %-28s  %3d min  difficulty %d\n",
					u.SequencePosition, u.Name, u.DurationMinutes, u.DifficultyTier)
			}
			fmt.Println(strings.Repeat("─", 60))
		}
		return nil
	},
}

func init() {
	coursesCmd.Flags().Bool("units", false, "Show each course's units")
}
