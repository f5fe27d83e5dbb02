package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jilatanaka/jilata/internal/progression"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, profile, err := openLearner(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progression.NewService(st)
		snap, err := svc.Load(context.Background(), profile.ID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		done := 0
		for _, c := range snap.Completions {
			if c.Completed {
				done++
			}
		}

		prof := snap.Profile
		fmt.Printf("%s\n", prof.Username)
		fmt.Printf("Nivel %d (%d XP, %d/%d hacia el siguiente)\n",
			prof.Level, prof.XP, progression.XPIntoLevel(prof.XP), progression.XPPerLevel)
		fmt.Printf("Vidas: %d de %d\n", prof.Lives, progression.MaxLives)
		fmt.Printf("Rana: %s\n", progression.StageName(prof.FrogStage))
		fmt.Printf("Sendero: %d de %d lecciones\n", done, len(snap.Lessons))
		return nil
	},
}
