package heatmap

import "fmt"
import "math"
import "time"

// Days are the row labels of the grid, in display order.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	// OpeningHour is the first hour column of the grid.
	OpeningHour = 6
	// HourCount is the number of hour columns.
	HourCount = 14
	// LegendSteps is the number of entries in the grid legend.
	LegendSteps = 5

	emptyOpacity = 0.1
	baseOpacity  = 0.2
	opacityRange = 0.8
)

// Record is one aggregated visit bucket.
type Record struct {
	Day   string `json:"day"`
	Hour  int    `json:"hour"`
	Count int    `json:"count"`
}

// Cell is a single grid position with its rendering weight.
type Cell struct {
	Day     string  `json:"day"`
	Hour    int     `json:"hour"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Opacity float64 `json:"opacity"`
}

// LegendStep ties a visit count to the opacity used for it.
type LegendStep struct {
	Count   int     `json:"count"`
	Opacity float64 `json:"opacity"`
}

// Grid is the full 7x14 heatmap model.
type Grid struct {
	Cells  [][]Cell     `json:"cells"`
	Max    int          `json:"max"`
	Legend []LegendStep `json:"legend"`
}

// DayName maps a weekday to its grid row label.
func DayName(day time.Weekday) string {
	return weekdayNames[day]
}

func opacity(count, max int) float64 {
	if count == 0 {
		return emptyOpacity
	}

	return baseOpacity + (float64(count)/float64(max))*opacityRange
}

// Build folds visit records into the fixed grid. Records outside the hour
// window or with an unknown day label are ignored. The maximum count used as
// the opacity denominator defaults to 1 when no records land in the grid.
func Build(records []Record) Grid {
	counts := make(map[string]map[int]int, len(Days))

	for _, day := range Days {
		counts[day] = make(map[int]int, HourCount)
	}

	max := 1

	for _, record := range records {
		hours, ok := counts[record.Day]

		if !ok || record.Hour < OpeningHour || record.Hour >= OpeningHour+HourCount || record.Count <= 0 {
			continue
		}

		hours[record.Hour] += record.Count

		if hours[record.Hour] > max {
			max = hours[record.Hour]
		}
	}

	grid := Grid{Max: max, Cells: make([][]Cell, 0, len(Days))}

	for _, day := range Days {
		row := make([]Cell, 0, HourCount)

		for hour := OpeningHour; hour < OpeningHour+HourCount; hour++ {
			count := counts[day][hour]
			cell := Cell{Day: day, Hour: hour, Label: fmt.Sprintf("%d:00", hour), Count: count, Opacity: opacity(count, max)}
			row = append(row, cell)
		}

		grid.Cells = append(grid.Cells, row)
	}

	for step := 0; step < LegendSteps; step++ {
		fraction := float64(step) / float64(LegendSteps-1)
		entry := LegendStep{Count: int(math.Round(fraction * float64(max))), Opacity: emptyOpacity}

		if step > 0 {
			entry.Opacity = baseOpacity + fraction*opacityRange
		}

		grid.Legend = append(grid.Legend, entry)
	}

	return grid
}
