package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <course-id>",
	Short: "Abandon a course and delete its calendar",
	Args:  cobra.ExactArgs(1),
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

		deleted, err := eng.Abandon(cmd.Context(), student, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d session(s) for course %s.\n", deleted, args[0])
		return nil
	},
}
