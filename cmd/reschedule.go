package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rescheduleCmd = &cobra.Command{
	Use:   "reschedule <event-id> <new-time>",
	Short: "Move a session, optionally shifting everything after it",
	Long: `Move a session to a new start time (RFC 3339 or "2006-01-02 15:04" local).
With --cascade, every later incomplete session shifts by the same amount.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid event ID %q: %w", args[0], err)
		}
		newStart, err := parseTimeArg(args[1])
		if err != nil {
			return err
		}
		cascade, _ := cmd.Flags().GetBool("cascade")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		moved, err := eng.Reschedule(cmd.Context(), eventID, newStart, cascade)
		if err != nil {
			return err
		}

		fmt.Printf("Moved %d session(s).\n\n", len(moved))
		printEventTable(moved)
		return nil
	},
}

func parseTimeArg(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or \"2006-01-02 15:04\"", s)
}

func init() {
	rescheduleCmd.Flags().Bool("cascade", false, "Shift all later incomplete sessions by the same delta")
}
