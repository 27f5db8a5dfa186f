// Package content generates the mock feed the app displays. Everything here
// is in memory and regenerated on each call.
package content

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// Image is one entry of the mock photo grid.
type Image struct {
	ID        string    `yaml:"id"`
	URI       string    `yaml:"uri"`
	Title     string    `yaml:"title"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Video is one entry of the mock video list.
type Video struct {
	ID        string    `yaml:"id"`
	Thumbnail string    `yaml:"thumbnail"`
	Title     string    `yaml:"title"`
	Duration  string    `yaml:"duration"`
	Views     int       `yaml:"views"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Images returns n images, newest first, one day apart starting at now.
func Images(n int, now time.Time) []Image {
	out := make([]Image, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, Image{
			ID:        strconv.Itoa(i),
			URI:       fmt.Sprintf("https://picsum.photos/id/%d/200/200", i+10),
			Title:     fmt.Sprintf("Image %d", i+1),
			Timestamp: now.Add(-time.Duration(i) * day),
		})
	}
	return out
}

// Videos returns n videos, newest first. Durations and view counts come from
// rng, so a seeded source gives a repeatable feed.
func Videos(n int, now time.Time, rng *rand.Rand) []Video {
	out := make([]Video, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, Video{
			ID:        strconv.Itoa(i),
			Thumbnail: fmt.Sprintf("https://img.youtube.com/vi/dQw4w9WgXcQ/%d.jpg", i%3+1),
			Title:     fmt.Sprintf("Video %d", i+1),
			Duration:  fmt.Sprintf("%d:%02d", rng.Intn(10), rng.Intn(60)),
			Views:     rng.Intn(10000),
			Timestamp: now.Add(-time.Duration(i) * day),
		})
	}
	return out
}

// Feed is the full mock content set handed to the UI.
type Feed struct {
	Images []Image `yaml:"images"`
	Videos []Video `yaml:"videos"`
}

// NewFeed generates a feed. A zero seed seeds from now.
func NewFeed(images, videos int, seed int64, now time.Time) Feed {
	if seed == 0 {
		seed = now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return Feed{Images: Images(images, now), Videos: Videos(videos, now, rng)}
}

// Notification is a placeholder activity item.
type Notification struct {
	Text string
	At   time.Time
}

// Notifications returns the fixed set of unread notifications.
func Notifications(now time.Time) []Notification {
	return []Notification{
		{Text: "hashir_photo liked your photo", At: now.Add(-5 * time.Minute)},
		{Text: "anwar_dev started following you", At: now.Add(-2 * time.Hour)},
		{Text: "Your video passed 1K views", At: now.Add(-day)},
	}
}
