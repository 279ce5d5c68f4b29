package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/calendar"
	"github.com/studyloop/studyloop/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <course-id>",
	Short: "Generate a study calendar from onboarding constraints",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		payload, err := constraintsPayload(cmd, args)
		if err != nil {
			return err
		}

		sched, err := eng.GenerateFromPayload(cmd.Context(), payload)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d sessions at %d sessions/week.\n\n",
			len(sched.Events), sched.SessionsPerWeek)
		printEventTable(sched.Events)

		for _, w := range sched.Warnings {
			fmt.Println()
			fmt.Println(styleWarn.Render("warning: " + string(w)))
		}
		return nil
	},
}

// constraintsPayload builds the onboarding JSON from --file or from flags.
// Both routes go through schema validation.
func constraintsPayload(cmd *cobra.Command, args []string) (json.RawMessage, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read constraints file: %w", err)
		}
		return data, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("pass a course ID or --file")
	}
	student, err := resolveStudentID(cmd)
	if err != nil {
		return nil, err
	}

	hours, _ := cmd.Flags().GetFloat64("hours")
	weeks, _ := cmd.Flags().GetInt("weeks")
	hour, _ := cmd.Flags().GetInt("hour")
	dailyCap, _ := cmd.Flags().GetInt("daily-cap")
	days, _ := cmd.Flags().GetString("days")

	wire := map[string]any{
		"studentId":             student,
		"courseId":              args[0],
		"availableHoursPerWeek": hours,
		"targetCompletionWeeks": weeks,
		"preferredHour":         hour,
		"dailySessionCap":       dailyCap,
	}
	if days != "" {
		wire["preferredDays"] = strings.Split(days, ",")
	}
	return json.Marshal(wire)
}

// printEventTable renders events in scheduled order.
func printEventTable(events []store.Event) {
	fmt.Println(styleHeader.Render(fmt.Sprintf("%-36s  %-16s  %4s  %4s  %-4s  %s",
		"ID", "Scheduled", "Min", "Pos", "Diff", "Unit")))
	fmt.Println(strings.Repeat("─", 90))

	for _, e := range events {
		status := ""
		if e.Completed {
			status = " " + styleOK.Render("done")
		}
		fmt.Printf("%-36s  %-16s  %4d  %4d  %-4d  %s%s\n",
			e.ID,
			e.ScheduledAt.Local().Format("2006-01-02 15:04"),
			e.PlannedMinutes,
			e.UnitPosition,
			e.Difficulty,
			e.UnitID,
			status,
		)
	}
}

func init() {
	generateCmd.Flags().String("file", "", "Read onboarding constraints from a JSON file")
	generateCmd.Flags().Float64("hours", 5, "Available study hours per week")
	generateCmd.Flags().Int("weeks", 4, "Target completion in weeks")
	generateCmd.Flags().Int("hour", calendar.DefaultPreferredHour, "Preferred start hour (0-23)")
	generateCmd.Flags().Int("daily-cap", 0, "Max sessions per day (0 = default)")
	generateCmd.Flags().String("days", "", "Preferred days, comma-separated (e.g. monday,wednesday)")
}
