package frog

import (
	"strings"
	"testing"

	"github.com/jilatanaka/jilata/internal/progression"
)

func TestArtClampsOutOfRangeStages(t *testing.T) {
	egg := Art(progression.StageEgg)

	if Art(-1) != egg {
		t.Error("negative stage did not render as egg")
	}
	if Art(progression.StageFinal+1) != egg {
		t.Error("stage past final did not render as egg")
	}
}

func TestArtDiffersPerStage(t *testing.T) {
	seen := make(map[string]int)
	for stage := progression.StageEgg; stage <= progression.StageFinal; stage++ {
		art := Art(stage)
		if prev, dup := seen[art]; dup {
			t.Errorf("stages %d and %d share the same art", prev, stage)
		}
		seen[art] = stage
	}
}

func TestSilhouetteHidesDetail(t *testing.T) {
	s := silhouette(progression.StageAdult)

	for _, r := range s {
		if r != '·' && r != ' ' && r != '\n' {
			t.Fatalf("silhouette leaked glyph %q", r)
		}
	}
	if !strings.Contains(s, "·") {
		t.Error("silhouette is empty")
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name   string
		screen FrogScreen
		want   string
	}{
		{
			name:   "reset",
			screen: FrogScreen{wasReset: true},
			want:   "huevo",
		},
		{
			name: "grew to adult",
			screen: FrogScreen{
				grown:   true,
				profile: progression.Profile{FrogStage: progression.StageFinal},
			},
			want: "adulta",
		},
		{
			name:   "grew mid trail",
			screen: FrogScreen{grown: true, profile: progression.Profile{FrogStage: 2}},
			want:   "creció",
		},
		{
			name:   "same day revisit",
			screen: FrogScreen{profile: progression.Profile{FrogStage: 2}},
			want:   "Vuelve mañana",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.screen.statusLine()
			if !strings.Contains(got, tt.want) {
				t.Errorf("statusLine() = %q, want it to mention %q", got, tt.want)
			}
		})
	}
}
