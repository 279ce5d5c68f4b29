package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/adaptive"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze study pace and suggest calendar adjustments",
	Long: `Classify the student's pace from recent completion history and propose
calendar mutations. Nothing changes unless --apply is passed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		student, err := resolveStudentID(cmd)
		if err != nil {
			return err
		}
		apply, _ := cmd.Flags().GetBool("apply")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sug, err := eng.Analyze(cmd.Context(), student)
		if err != nil {
			return err
		}

		printSuggestion(sug)

		if !apply {
			if len(sug.Mutations) > 0 {
				fmt.Println()
				fmt.Println(styleDim.Render("Run again with --apply to commit these changes."))
			}
			return nil
		}

		applied, err := eng.Apply(cmd.Context(), sug)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(styleOK.Render(fmt.Sprintf("Applied %d change(s).", applied)))
		return nil
	},
}

func printSuggestion(sug *adaptive.Suggestion) {
	class := string(sug.Classification)
	switch sug.Urgency {
	case adaptive.UrgencyUrgent:
		class = styleUrgent.Render(class)
	case adaptive.UrgencyAdvisory:
		class = styleWarn.Render(class)
	default:
		class = styleOK.Render(class)
	}

	fmt.Printf("Pace:      %s (%s)\n", class, sug.Urgency)
	fmt.Printf("Rationale: %s\n", sug.Rationale)
	if sug.InsufficientHistory {
		fmt.Println(styleDim.Render("Not enough completed sessions yet to adapt the calendar."))
	}
	if sug.ExtendsPastTarget {
		fmt.Println(styleWarn.Render("warning: catching up pushes the plan past the original target date"))
	}

	if len(sug.Mutations) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(styleHeader.Render(fmt.Sprintf("%-36s  %-13s  %s", "Event", "Change", "New value")))
	fmt.Println(strings.Repeat("─", 72))
	for _, m := range sug.Mutations {
		var val string
		switch m.Kind {
		case adaptive.MutationReschedule:
			val = m.NewScheduledAt.Local().Format("2006-01-02 15:04")
		case adaptive.MutationSetDuration:
			val = fmt.Sprintf("%d min", *m.NewPlannedMinutes)
		}
		fmt.Printf("%-36s  %-13s  %s\n", m.EventID, m.Kind, val)
	}
}

func init() {
	analyzeCmd.Flags().Bool("apply", false, "Commit the suggested changes")
}
