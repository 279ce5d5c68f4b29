package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/studyloop/studyloop/internal/adaptive"
	"github.com/studyloop/studyloop/internal/catalog"
	"github.com/studyloop/studyloop/internal/engine"
	"github.com/studyloop/studyloop/internal/llm"
	"github.com/studyloop/studyloop/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyloop",
	Short: "Adaptive learning calendar",
	Long:  "Studyloop generates personalized study calendars and adapts them to how the learner actually keeps pace.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYLOOP_DB env var)")
	rootCmd.PersistentFlags().String("student", "", "Student ID (or STUDYLOOP_STUDENT env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(rescheduleCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStudentID returns the student ID from --student or STUDYLOOP_STUDENT.
func resolveStudentID(cmd *cobra.Command) (string, error) {
	if s, _ := cmd.Flags().GetString("student"); s != "" {
		return s, nil
	}
	if s := os.Getenv("STUDYLOOP_STUDENT"); s != "" {
		return s, nil
	}
	return "", fmt.Errorf("no student ID: pass --student or set STUDYLOOP_STUDENT")
}

// openEngine opens the store and wires the full engine. The LLM phraser is
// optional: without an API key rationales fall back to templates.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	var phraser adaptive.Phraser
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err := llm.NewProvider(cmd.Context(), cfg, st.AuditRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		} else {
			phraser = &adaptive.LLMPhraser{Provider: provider}
		}
	}

	eng := engine.New(catalog.NewSeeded(), st, engine.DefaultConfig(), phraser)
	return eng, st, nil
}
