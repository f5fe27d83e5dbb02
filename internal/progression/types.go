package progression

import "time"

const (
	// MaxLives is the number of lives a fresh profile starts with.
	MaxLives = 5

	// XPPerLevel is the experience span of one level.
	XPPerLevel = 100
)

// Frog growth stages. A profile's stage never leaves this range.
const (
	StageEgg         = 0
	StageEmbryo      = 1
	StageTadpole2    = 2
	StageTadpole4    = 3
	StageAdult       = 4
	StageFinal       = StageAdult
	StageSeedDefault = StageEmbryo // first-ever visit starts mid-growth
)

// stageNames indexes Spanish display names by stage.
var stageNames = [...]string{
	"Huevo",
	"Embriones",
	"Renacuajo (2 patas)",
	"Renacuajo (4 patas)",
	"Rana Adulta",
}

// StageName returns the display name for a frog stage.
// Out-of-range stages render as the egg.
func StageName(stage int) string {
	if stage < StageEgg || stage > StageFinal {
		return stageNames[StageEgg]
	}
	return stageNames[stage]
}

// Profile is the learner's durable state.
type Profile struct {
	ID            string
	Username      string
	XP            int
	Level         int
	Lives         int
	FrogStage     int
	LastFrogVisit *time.Time // nil before the first frog visit
	CreatedAt     time.Time
}

// Lesson is immutable curriculum content. OrderIndex values are unique and
// strictly increasing; they need not be contiguous.
type Lesson struct {
	ID          string
	OrderIndex  int
	Title       string
	Description string
	Icon        string
	Color       string
	Place       string
	Lat         float64
	Lon         float64
	XPReward    int
}

// CompletionRecord is the durable fact that a learner finished a lesson.
// At most one record exists per (learner, lesson) pair.
type CompletionRecord struct {
	LessonID    string
	Completed   bool
	Stars       int // 0..3
	CompletedAt *time.Time
}

// LevelForXP derives the level from total experience.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPIntoLevel returns the experience accumulated within the current level.
func XPIntoLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % XPPerLevel
}
