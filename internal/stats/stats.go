package stats

import (
	"fmt"
	"sort"

	"github.com/pfrederiksen/euromillions-csv/internal/draw"
)

const (
	MaxMain = 50
	MaxStar = 12

	// SumBucket is the width of the main-number sum ranges
	SumBucket = 25
)

// Count is how often a number was drawn
type Count struct {
	Number  int     `json:"number"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Frequency holds per-number counts, most frequent first
type Frequency struct {
	Main  []Count `json:"main"`
	Stars []Count `json:"stars"`
}

// Gap is the number of draws since a number last appeared
type Gap struct {
	Number   int `json:"number"`
	DrawsAgo int `json:"draws_ago"`
}

// Overdue holds per-number gaps, longest first
type Overdue struct {
	Main  []Gap `json:"main"`
	Stars []Gap `json:"stars"`
}

// HotCold is the frequency over the most recent draws
type HotCold struct {
	Window    int       `json:"window"`
	Frequency Frequency `json:"frequency"`
	ColdMain  []int     `json:"cold_main"`
	ColdStars []int     `json:"cold_stars"`
}

// Patterns counts draws by the shape of their main numbers
type Patterns struct {
	ConsecutivePairs    int            `json:"consecutive_pairs"`
	ConsecutiveTriplets int            `json:"consecutive_triplets"`
	SameDecade          int            `json:"same_decade"`
	AllOdd              int            `json:"all_odd"`
	AllEven             int            `json:"all_even"`
	MajorityOdd         int            `json:"majority_odd"`
	MajorityEven        int            `json:"majority_even"`
	SumRanges           map[string]int `json:"sum_ranges"`
}

// Report bundles every analysis over one history
type Report struct {
	Draws     int       `json:"draws"`
	Frequency Frequency `json:"frequency"`
	Overdue   Overdue   `json:"overdue"`
	HotCold   HotCold   `json:"hot_cold"`
	Patterns  Patterns  `json:"patterns"`
}

// history is the numeric form of a list of draws
type history struct {
	main  [][]int
	stars [][]int
}

func parse(draws []draw.Draw) (*history, error) {
	h := &history{
		main:  make([][]int, 0, len(draws)),
		stars: make([][]int, 0, len(draws)),
	}
	for _, d := range draws {
		main, err := d.MainInts()
		if err != nil {
			return nil, fmt.Errorf("draw %s: %w", d.Date, err)
		}
		stars, err := d.BonusInts()
		if err != nil {
			return nil, fmt.Errorf("draw %s: %w", d.Date, err)
		}
		h.main = append(h.main, main)
		h.stars = append(h.stars, stars)
	}
	return h, nil
}

// Analyze runs every analysis. recent is the hot/cold window size; values
// below 1 or above the history length use the whole history.
func Analyze(draws []draw.Draw, recent int) (*Report, error) {
	h, err := parse(draws)
	if err != nil {
		return nil, err
	}

	return &Report{
		Draws:     len(draws),
		Frequency: h.frequency(),
		Overdue:   h.overdue(),
		HotCold:   h.hotCold(recent),
		Patterns:  h.patterns(),
	}, nil
}

func (h *history) frequency() Frequency {
	return Frequency{
		Main:  countNumbers(h.main, MaxMain),
		Stars: countNumbers(h.stars, MaxStar),
	}
}

func (h *history) overdue() Overdue {
	return Overdue{
		Main:  gaps(h.main, MaxMain),
		Stars: gaps(h.stars, MaxStar),
	}
}

func (h *history) hotCold(recent int) HotCold {
	n := len(h.main)
	if recent < 1 || recent > n {
		recent = n
	}
	window := &history{main: h.main[n-recent:], stars: h.stars[n-recent:]}
	freq := window.frequency()

	return HotCold{
		Window:    recent,
		Frequency: freq,
		ColdMain:  unseen(freq.Main),
		ColdStars: unseen(freq.Stars),
	}
}

func (h *history) patterns() Patterns {
	p := Patterns{SumRanges: make(map[string]int)}

	for _, nums := range h.main {
		sorted := append([]int(nil), nums...)
		sort.Ints(sorted)

		consecutive := 0
		for i := 0; i+1 < len(sorted); i++ {
			if sorted[i+1]-sorted[i] == 1 {
				consecutive++
			}
		}
		if consecutive >= 1 {
			p.ConsecutivePairs++
		}
		if consecutive >= 2 {
			p.ConsecutiveTriplets++
		}

		// Concentrated in three or fewer decades
		decades := make(map[int]bool, len(sorted))
		for _, n := range sorted {
			decades[n/10] = true
		}
		if len(decades) <= 3 {
			p.SameDecade++
		}

		odd, sum := 0, 0
		for _, n := range sorted {
			if n%2 == 1 {
				odd++
			}
			sum += n
		}
		switch {
		case odd == len(sorted):
			p.AllOdd++
		case odd == 0:
			p.AllEven++
		case odd*2 > len(sorted):
			p.MajorityOdd++
		default:
			p.MajorityEven++
		}

		low := (sum / SumBucket) * SumBucket
		p.SumRanges[fmt.Sprintf("%d-%d", low, low+SumBucket-1)]++
	}

	return p
}

// countNumbers counts 1..limit across all draws, most frequent first
func countNumbers(draws [][]int, limit int) []Count {
	counts := make([]int, limit+1)
	total := 0
	for _, nums := range draws {
		for _, n := range nums {
			if n < 1 || n > limit {
				continue
			}
			counts[n]++
			total++
		}
	}

	result := make([]Count, 0, limit)
	for n := 1; n <= limit; n++ {
		c := Count{Number: n, Count: counts[n]}
		if total > 0 {
			c.Percent = float64(counts[n]) / float64(total) * 100
		}
		result = append(result, c)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// gaps reports draws since the last appearance of 1..limit, longest first.
// A number never drawn has a gap equal to the number of draws.
func gaps(draws [][]int, limit int) []Gap {
	lastSeen := make([]int, limit+1)
	for i := range lastSeen {
		lastSeen[i] = -1
	}
	for idx, nums := range draws {
		for _, n := range nums {
			if n >= 1 && n <= limit {
				lastSeen[n] = idx
			}
		}
	}

	current := len(draws) - 1
	result := make([]Gap, 0, limit)
	for n := 1; n <= limit; n++ {
		result = append(result, Gap{Number: n, DrawsAgo: current - lastSeen[n]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DrawsAgo > result[j].DrawsAgo
	})
	return result
}

// unseen returns the numbers with a zero count, ascending
func unseen(counts []Count) []int {
	numbers := make([]int, 0)
	for _, c := range counts {
		if c.Count == 0 {
			numbers = append(numbers, c.Number)
		}
	}
	sort.Ints(numbers)
	return numbers
}
