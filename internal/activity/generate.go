package activity

import (
	"math/rand/v2"

	"github.com/julianstephens/heatcal/internal/calendar"
)

var sampleDescriptions = []string{
	"Morning run",
	"Read a chapter",
	"Code review",
	"Wrote notes",
	"Language practice",
	"Yoga session",
	"Fixed a bug",
	"Called family",
	"Cooked dinner",
	"Gym workout",
	"Meditation",
	"Sketching",
}

// Generate returns deterministic mock activity for every day in [start, end].
// About 40% of the days get between 1 and MaxCount entries. The same seed
// always yields the same data.
func Generate(start, end calendar.Date, seed uint64) Data {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := make(Data)
	for d := start; d <= end; d++ {
		if rng.IntN(5) >= 2 {
			continue
		}
		n := 1 + rng.IntN(MaxCount)
		key := d.Key()
		for range n {
			data.Add(key, sampleDescriptions[rng.IntN(len(sampleDescriptions))])
		}
	}
	return data
}
