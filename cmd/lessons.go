package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jilatanaka/jilata/internal/progression"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lesson trail with completion state",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, profile, err := openLearner(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progression.NewService(st)
		snap, err := svc.Load(context.Background(), profile.ID)
		if err != nil {
			return fmt.Errorf("load trail: %w", err)
		}

		completions := make(map[string]progression.CompletionRecord, len(snap.Completions))
		for _, c := range snap.Completions {
			completions[c.LessonID] = c
		}

		for _, lesson := range snap.Lessons {
			status := "bloqueada"
			if progression.IsUnlocked(lesson, snap.Lessons, snap.Completions) {
				status = "disponible"
			}
			if record, ok := completions[lesson.ID]; ok && record.Completed {
				status = fmt.Sprintf("completada (%d★)", record.Stars)
			}
			fmt.Printf("%2d. %-22s %-14s %s\n", lesson.OrderIndex, lesson.Title, lesson.Place, status)
		}
		return nil
	},
}
