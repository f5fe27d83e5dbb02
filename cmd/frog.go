package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jilatanaka/jilata/internal/progression"
)

var frogCmd = &cobra.Command{
	Use:   "frog",
	Short: "Visit the frog and print its growth stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, profile, err := openLearner(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progression.NewService(st)
		before := profile.FrogStage

		after, err := svc.VisitFrog(context.Background(), profile.ID, time.Now())
		if err != nil {
			return fmt.Errorf("visit frog: %w", err)
		}

		fmt.Printf("Etapa %d de %d: %s\n",
			after.FrogStage+1, progression.StageFinal+1, progression.StageName(after.FrogStage))
		switch {
		case after.FrogStage > before:
			fmt.Println("¡Tu rana creció hoy!")
		case after.FrogStage < before:
			fmt.Println("La rana volvió a ser huevo. Visítala cada día.")
		}
		return nil
	},
}
