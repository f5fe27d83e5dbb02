package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jilatanaka/jilata/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "jilata",
	Short: "Aprende aymara desde la terminal",
	Long:  "Jilata — terminal companion for learning Aymara language and culture along the shore of Lake Titicaca.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JILATA_DB env var)")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(frogCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then JILATA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
