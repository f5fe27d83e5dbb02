package screen

import "github.com/jilatanaka/jilata/internal/progression"

// ProfileChangedMsg is broadcast after a screen persists a profile change,
// so the header and any stacked screens can refresh what they show.
type ProfileChangedMsg struct {
	Profile progression.Profile
}
