package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	linearTickCount = 6
	standardDecades = 6
	fineDecades     = 8
)

func formatScientific(v float64) string {
	return fmt.Sprintf("%.0e", v)
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func tickLabel(v float64, n Notation) string {
	if n == NotationDecimal {
		return formatDecimal(v)
	}
	return formatScientific(v)
}

// linearTicks spreads a fixed number of evenly spaced ticks between the
// final and initial learning rate.
func linearTicks(lo, hi float64, n Notation) []chart.Tick {
	ticks := make([]chart.Tick, 0, linearTickCount)
	step := (hi - lo) / float64(linearTickCount-1)
	for i := 0; i < linearTickCount; i++ {
		v := lo + step*float64(i)
		ticks = append(ticks, chart.Tick{Value: v, Label: tickLabel(v, n)})
	}
	return ticks
}

// logTicks places major ticks on powers of ten covering [lo, hi]. The fine
// preset allows more major ticks and adds unlabeled minor ticks at 2..9
// within each decade. Log presets always label ticks in scientific notation.
func logTicks(lo, hi float64, scale Scale) []chart.Tick {
	first := int(math.Floor(math.Log10(lo)))
	last := int(math.Ceil(math.Log10(hi)))
	if last < first {
		first, last = last, first
	}

	maxMajor := standardDecades
	if scale == ScaleFine {
		maxMajor = fineDecades
	}
	decades := last - first + 1
	stride := 1
	if decades > maxMajor {
		stride = (decades + maxMajor - 1) / maxMajor
	}

	var ticks []chart.Tick
	for e := first; e <= last; e += stride {
		v := math.Pow(10, float64(e))
		ticks = append(ticks, chart.Tick{Value: v, Label: formatScientific(v)})
		if scale == ScaleFine && e < last {
			for m := 2; m <= 9; m++ {
				ticks = append(ticks, chart.Tick{Value: float64(m) * v})
			}
		}
	}
	return ticks
}

// xTicks places five evenly spaced integer ticks over [0, steps].
func xTicks(steps int) []chart.Tick {
	ticks := make([]chart.Tick, 0, 5)
	for i := 0; i < 5; i++ {
		v := float64(steps) * float64(i) / 4
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}
