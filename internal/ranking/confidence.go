package ranking

import "strings"

// SearchConfidence maps a score distribution to a confidence in [0,1]. The
// top score alone picks the tier; the rest of the distribution only feeds
// the multi-strong bonus. A pure function so the tiers can be pinned down
// with synthetic score lists.
func SearchConfidence(scores []float64, rawQuery string) float64 {
	if len(scores) == 0 {
		return 0
	}

	top := scores[0]
	for _, s := range scores[1:] {
		if s > top {
			top = s
		}
	}

	var conf float64
	switch {
	case top >= 8:
		conf = 0.9
	case top >= 4:
		conf = 0.6 + 0.075*(top-4)
	case top >= 1:
		conf = 0.2 + 0.13*(top-1)
	default:
		conf = 0.2 * top
	}

	strong := 0
	for _, s := range scores {
		if s >= 3 {
			strong++
		}
	}
	if strong > 1 {
		conf += 0.1
	}

	if len(strings.Fields(rawQuery)) > 3 && top < 3 {
		conf *= 0.5
	}

	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}
	return conf
}
