package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jilatanaka/jilata/internal/app"
	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/store"
)

// runApp opens the store, resolves the local learner, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, profile, err := openLearner(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Service:   progression.NewService(st),
		Store:     st,
		LearnerID: profile.ID,
		Profile:   profile,
	})
}

// openLearner opens the store and returns the single local profile,
// creating it on first launch.
func openLearner(cmd *cobra.Command) (*store.Store, progression.Profile, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, progression.Profile{}, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, progression.Profile{}, fmt.Errorf("open store: %w", err)
	}

	profile, err := st.LocalProfile(context.Background())
	if err != nil {
		st.Close()
		return nil, progression.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return st, profile, nil
}
