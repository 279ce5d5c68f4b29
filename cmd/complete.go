package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/store"
)

var completeCmd = &cobra.Command{
	Use:   "complete <event-id> <actual-minutes>",
	Short: "Mark a session complete with its actual duration",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eventID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid event ID %q: %w", args[0], err)
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid minutes %q: %w", args[1], err)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		event, err := eng.MarkComplete(cmd.Context(), eventID, minutes)
		var already *store.ErrAlreadyCompleted
		if errors.As(err, &already) {
			fmt.Println(styleDim.Render(fmt.Sprintf(
				"Session %s was already completed (%d min).", already.Event.ID, derefInt(already.Event.ActualMinutes))))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(styleOK.Render(fmt.Sprintf(
			"Completed %s: %d min actual vs %d planned.",
			event.UnitID, derefInt(event.ActualMinutes), event.PlannedMinutes)))
		return nil
	},
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
