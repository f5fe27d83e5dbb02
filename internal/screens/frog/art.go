package frog

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/jilatanaka/jilata/internal/progression"
	"github.com/jilatanaka/jilata/internal/ui/theme"
)

const artEgg = `
      ····
    ·  ◯◯  ·
   ·  ◯◯◯◯  ·
   ·  ◯◯◯◯  ·
    ·  ◯◯  ·
      ····`

const artEmbryo = `
      ····
    ·  ◉◯  ·
   ·  ◯◉◯◯  ·
   ·  ◯◯◉◯  ·
    ·  ◉◯  ·
      ····`

const artTadpole2 = `
        ___
      ／ ● ＼
     |   ▽   |～～
      ＼___／
        ∨∨`

const artTadpole4 = `
        ___
      ／ ● ＼
   ⌒|   ▽   |⌒～
      ＼___／
       ∧  ∧`

const artAdult = `
       ＠...＠
      ( ●   ● )
     (    ▽    )
      (  ___  )
     ∕∕       ∖∖
    ⌒⌒         ⌒⌒`

var stageArt = [...]string{
	artEgg,
	artEmbryo,
	artTadpole2,
	artTadpole4,
	artAdult,
}

// stageColor picks the frog's tint: eggs read pale, tadpoles lake blue,
// the adult leaf green.
func stageColor(stage int) color.Color {
	switch {
	case stage <= progression.StageEmbryo:
		return theme.TextDim
	case stage < progression.StageAdult:
		return theme.Secondary
	default:
		return theme.Primary
	}
}

// Art returns the colored ASCII art for the given growth stage.
func Art(stage int) string {
	if stage < progression.StageEgg || stage > progression.StageFinal {
		stage = progression.StageEgg
	}
	return lipgloss.NewStyle().
		Foreground(stageColor(stage)).
		Render(stageArt[stage])
}
