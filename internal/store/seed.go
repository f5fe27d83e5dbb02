package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/quiz"
)

// seedLesson bundles a lesson with its authored question sequence.
type seedLesson struct {
	lesson    progression.Lesson
	questions []quiz.Question
}

// curriculum is the authored Aymara trail around Lake Titicaca, one lesson
// per place, in travel order from the border crossing at Desaguadero.
func curriculum() []seedLesson {
	return []seedLesson{
		{
			lesson: progression.Lesson{
				OrderIndex:  1,
				Title:       "Saludos",
				Description: "Saludos y despedidas básicas en Aymara",
				Icon:        "hand",
				Color:       "green",
				Place:       "Desaguadero",
				Lat:         -16.56652,
				Lon:         -69.03727,
				XPReward:    30,
			},
			questions: []quiz.Question{
				{
					Kind:    quiz.KindMultipleChoice,
					Prompt:  "¿Cómo se dice \"Hola\" en Aymara?",
					Options: []string{"Kamisaraki", "Jikisiñkama", "Waliki", "Aski urukipan"},
					Answer:  "Kamisaraki",
				},
				{
					Kind:    quiz.KindCompletion,
					Prompt:  "Completa la frase: \"______ urukipan\" (Buenos días)",
					Options: []string{"Aski", "Suma", "Wali", "Jach'a"},
					Answer:  "Aski",
				},
				{
					Kind:   quiz.KindTrueFalse,
					Prompt: "\"Jikisiñkama\" significa \"Hasta luego\".",
					Answer: "true",
				},
				{
					Kind:   quiz.KindMatching,
					Prompt: "Relaciona las palabras con su significado",
					Pairs: []quiz.Pair{
						{Left: "Kamisaraki", Right: "¿Cómo estás?"},
						{Left: "Waliki", Right: "Bien"},
						{Left: "Jikisiñkama", Right: "Hasta luego"},
					},
				},
			},
		},
		{
			lesson: progression.Lesson{
				OrderIndex:  2,
				Title:       "La Familia",
				Description: "Los miembros de la familia aymara",
				Icon:        "users",
				Color:       "blue",
				Place:       "Pomata",
				Lat:         -16.273655,
				Lon:         -69.293153,
				XPReward:    30,
			},
			questions: []quiz.Question{
				{
					Kind:    quiz.KindMultipleChoice,
					Prompt:  "¿Cómo se dice \"madre\" en Aymara?",
					Options: []string{"Tayka", "Awki", "Jilata", "Kullaka"},
					Answer:  "Tayka",
				},
				{
					Kind:    quiz.KindCompletion,
					Prompt:  "Completa la frase: \"Jupax nayan ______ jawa\" (Él es mi hermano)",
					Options: []string{"jilata", "tayka", "awki", "wawa"},
					Answer:  "jilata",
				},
				{
					Kind:   quiz.KindTrueFalse,
					Prompt: "\"Awki\" significa \"padre\".",
					Answer: "true",
				},
				{
					Kind:   quiz.KindMatching,
					Prompt: "Relaciona las palabras con su significado",
					Pairs: []quiz.Pair{
						{Left: "Jilata", Right: "Hermano"},
						{Left: "Kullaka", Right: "Hermana"},
						{Left: "Wawa", Right: "Bebé"},
					},
				},
			},
		},
		{
			lesson: progression.Lesson{
				OrderIndex:  3,
				Title:       "Cultura Viva",
				Description: "Fiestas y expresiones de la Anata Andina",
				Icon:        "party-popper",
				Color:       "purple",
				Place:       "Ilave",
				Lat:         -16.08763,
				Lon:         -69.63864,
				XPReward:    40,
			},
			questions: []quiz.Question{
				{
					Kind:    quiz.KindMultipleChoice,
					Prompt:  "¿Qué significa \"Anata\"?",
					Options: []string{"Fiesta", "Cosecha", "Lluvia", "Camino"},
					Answer:  "Fiesta",
				},
				{
					Kind:   quiz.KindTrueFalse,
					Prompt: "La Anata Andina se celebra entre febrero y marzo.",
					Answer: "true",
				},
				{
					Kind:    quiz.KindCompletion,
					Prompt:  "Completa la frase: \"______ markasan kusisiña\" (La alegría de nuestro pueblo)",
					Options: []string{"Jiwasa", "Anata", "Aski", "Wali"},
					Answer:  "Jiwasa",
				},
				{
					Kind:   quiz.KindMatching,
					Prompt: "Relaciona las palabras con su significado",
					Pairs: []quiz.Pair{
						{Left: "Anata", Right: "Fiesta"},
						{Left: "Jiwasa", Right: "Nosotros"},
						{Left: "Kusisiña", Right: "Alegría"},
					},
				},
			},
		},
		{
			lesson: progression.Lesson{
				OrderIndex:  4,
				Title:       "Números",
				Description: "Contar del uno al cinco en Aymara",
				Icon:        "calculator",
				Color:       "yellow",
				Place:       "Juli",
				Lat:         -16.21550,
				Lon:         -69.46046,
				XPReward:    40,
			},
			questions: []quiz.Question{
				{
					Kind:    quiz.KindMultipleChoice,
					Prompt:  "¿Cómo se dice \"uno\" en Aymara?",
					Options: []string{"Maya", "Paya", "Kimsa", "Pusi"},
					Answer:  "Maya",
				},
				{
					Kind:    quiz.KindCompletion,
					Prompt:  "Completa la serie: maya, paya, ______, pusi",
					Options: []string{"kimsa", "phisqa", "maya", "suxta"},
					Answer:  "kimsa",
				},
				{
					Kind:   quiz.KindTrueFalse,
					Prompt: "\"Phisqa\" significa \"cuatro\".",
					Answer: "false",
				},
				{
					Kind:   quiz.KindMatching,
					Prompt: "Relaciona los números con su valor",
					Pairs: []quiz.Pair{
						{Left: "Paya", Right: "2"},
						{Left: "Pusi", Right: "4"},
						{Left: "Phisqa", Right: "5"},
					},
				},
			},
		},
	}
}

// seed inserts the curriculum if the lessons table is empty.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lessons`).Scan(&count); err != nil {
		return fmt.Errorf("count lessons: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, entry := range curriculum() {
		l := entry.lesson
		lessonID := uuid.NewString()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO lessons (id, order_index, title, description, icon, color, place, lat, lon, xp_reward)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			lessonID, l.OrderIndex, l.Title, l.Description, l.Icon, l.Color,
			l.Place, l.Lat, l.Lon, l.XPReward)
		if err != nil {
			return fmt.Errorf("insert lesson %s: %w", l.Title, err)
		}

		for pos, q := range entry.questions {
			if err := insertQuestion(ctx, tx, lessonID, pos, q); err != nil {
				return fmt.Errorf("insert question %d of %s: %w", pos, l.Title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertQuestion(ctx context.Context, tx execer, lessonID string, position int, q quiz.Question) error {
	var options, pairs any
	if len(q.Options) > 0 {
		b, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("encode options: %w", err)
		}
		options = string(b)
	}
	if len(q.Pairs) > 0 {
		b, err := json.Marshal(q.Pairs)
		if err != nil {
			return fmt.Errorf("encode pairs: %w", err)
		}
		pairs = string(b)
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO questions (id, lesson_id, position, kind, prompt, options, answer, pairs)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), lessonID, position, string(q.Kind), q.Prompt, options, q.Answer, pairs)
	return err
}
