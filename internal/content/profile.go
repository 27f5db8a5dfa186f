package content

import (
	"fmt"
	"strings"
)

// Stats are the counters shown in the profile header.
type Stats struct {
	Posts     int
	Followers int
	Following int
}

// Profile is the editable public and private information of a user.
type Profile struct {
	Name     string
	Username string
	Website  string
	Bio      string
	Email    string
	Phone    string
	Gender   string
	Image    string
	Stats    Stats
}

// DefaultProfile is shown for accounts without a known profile.
func DefaultProfile() Profile {
	return Profile{
		Name:     "John Doe",
		Username: "johndoe123",
		Website:  "www.johndoe.com",
		Bio:      "Photography enthusiast 📸\nExploring the world one click at a time",
		Email:    "john@example.com",
		Phone:    "+1 234 567 8900",
		Gender:   "Prefer not to say",
		Image:    "https://picsum.photos/200",
		Stats:    Stats{Posts: 50, Followers: 1200, Following: 500},
	}
}

// knownProfiles are keyed by lower-case identifier. None of them is in the
// default allow-list; see the package config doc for a config that signs in
// as them.
var knownProfiles = map[string]Profile{
	"anwar@gmail.com": {
		Name:     "Anwar",
		Username: "anwar_dev",
		Website:  "github.com/anwar",
		Bio:      "Software Developer 💻\nCoding enthusiast",
		Email:    "anwar@gmail.com",
		Phone:    "+1 234 567 8900",
		Gender:   "Prefer not to say",
		Image:    "https://picsum.photos/id/1/200",
		Stats:    Stats{Posts: 42, Followers: 1200, Following: 900},
	},
	"hashir@gmail.com": {
		Name:     "Hashir",
		Username: "hashir_photo",
		Website:  "instagram.com/hashir",
		Bio:      "Photography Enthusiast 📸\nCapturing moments",
		Email:    "hashir@gmail.com",
		Phone:    "+1 987 654 3210",
		Gender:   "Prefer not to say",
		Image:    "https://picsum.photos/id/2/200",
		Stats:    Stats{Posts: 65, Followers: 2500, Following: 1500},
	},
}

// ProfileFor returns the profile of identifier, or DefaultProfile.
func ProfileFor(identifier string) Profile {
	if p, ok := knownProfiles[strings.ToLower(strings.TrimSpace(identifier))]; ok {
		return p
	}
	return DefaultProfile()
}

// CompactCount formats follower-style counters: 500, 1.2K, 2.5K, 3M.
func CompactCount(n int) string {
	switch {
	case n >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000_000)) + "M"
	case n >= 1_000:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1_000)) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimZero(s string) string { return strings.TrimSuffix(s, ".0") }
