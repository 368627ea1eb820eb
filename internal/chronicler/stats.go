package chronicler

import "time"

// minRuntimeHours floors the elapsed time used for throughput so the rate
// stays finite right after construction.
const minRuntimeHours = 0.01

// Stats is an on-demand snapshot of the chronicler's counters.
type Stats struct {
	ArticlesGenerated  int            `json:"articles_generated"`
	ArticlesResearched int            `json:"articles_researched"`
	ArticlesPerHour    float64        `json:"articles_per_hour"`
	RunTimeHours       float64        `json:"run_time_hours"`
	MemoryStories      int            `json:"memory_stories"`
	MemoryURLs         int            `json:"memory_urls"`
	MemoryTitles       int            `json:"memory_titles"`
	TopicTrends        map[string]int `json:"topic_trends"`
}

// Stats computes the current snapshot.
func (c *Chronicler) Stats() Stats {
	runtimeHours := time.Since(c.startTime).Hours()

	denom := runtimeHours
	if denom < minRuntimeHours {
		denom = minRuntimeHours
	}

	return Stats{
		ArticlesGenerated:  c.articlesGenerated,
		ArticlesResearched: c.articlesResearched,
		ArticlesPerHour:    float64(c.articlesGenerated) / denom,
		RunTimeHours:       runtimeHours,
		MemoryStories:      c.mem.Stories(),
		MemoryURLs:         c.mem.URLs(),
		MemoryTitles:       c.mem.Titles(),
		TopicTrends:        map[string]int{"technology": 5, "science": 3, "politics": 2},
	}
}
