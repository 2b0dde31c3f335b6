package activity

// MaxLevel is the highest heat level.
const MaxLevel = 4

// MaxCount is the count at which a day reaches full intensity.
const MaxCount = 15

// Level maps an activity count onto a heat level in 0..MaxLevel. Non-empty
// days split count/MaxCount (capped at 1) into quarters: 1-3, 4-7, 8-11 and
// 12 or more.
func Level(count int) int {
	if count <= 0 {
		return 0
	}
	return 1 + min(MaxLevel*count/MaxCount, MaxLevel-1)
}
