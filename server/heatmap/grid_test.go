package heatmap

import "time"
import "testing"
import "github.com/franela/goblin"

func TestBuild(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Build", func() {
		g.It("renders every cell at minimum opacity for no records", func() {
			grid := Build(nil)

			g.Assert(grid.Max).Eql(1)
			g.Assert(len(grid.Cells)).Eql(7)

			for _, row := range grid.Cells {
				g.Assert(len(row)).Eql(14)

				for _, cell := range row {
					g.Assert(cell.Count).Eql(0)
					g.Assert(cell.Opacity).Eql(0.1)
				}
			}
		})

		g.It("scales a single busy cell to full opacity", func() {
			grid := Build([]Record{{Day: "Wed", Hour: 9, Count: 40}})

			g.Assert(grid.Max).Eql(40)

			for _, row := range grid.Cells {
				for _, cell := range row {
					if cell.Day == "Wed" && cell.Hour == 9 {
						g.Assert(cell.Label).Eql("9:00")
						g.Assert(cell.Count).Eql(40)
						g.Assert(cell.Opacity).Eql(1.0)
						continue
					}

					g.Assert(cell.Opacity).Eql(0.1)
				}
			}
		})

		g.It("ignores records outside the grid", func() {
			grid := Build([]Record{
				{Day: "Wed", Hour: 3, Count: 10},
				{Day: "Wed", Hour: 22, Count: 10},
				{Day: "Midweek", Hour: 9, Count: 10},
			})

			g.Assert(grid.Max).Eql(1)
		})

		g.It("sums records landing in the same cell", func() {
			grid := Build([]Record{
				{Day: "Mon", Hour: 18, Count: 3},
				{Day: "Mon", Hour: 18, Count: 5},
				{Day: "Tue", Hour: 7, Count: 4},
			})

			g.Assert(grid.Max).Eql(8)
			g.Assert(grid.Cells[0][12].Count).Eql(8)
			g.Assert(grid.Cells[1][1].Count).Eql(4)
			g.Assert(grid.Cells[1][1].Opacity).Eql(0.2 + 0.5*0.8)
		})

		g.It("produces a five step legend from empty to the busiest cell", func() {
			grid := Build([]Record{{Day: "Fri", Hour: 17, Count: 20}})

			g.Assert(len(grid.Legend)).Eql(5)
			g.Assert(grid.Legend[0].Count).Eql(0)
			g.Assert(grid.Legend[0].Opacity).Eql(0.1)
			g.Assert(grid.Legend[2].Count).Eql(10)
			g.Assert(grid.Legend[4].Count).Eql(20)
			g.Assert(grid.Legend[4].Opacity).Eql(1.0)
		})
	})
}

func TestDayName(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("DayName", func() {
		g.It("maps weekdays onto grid row labels", func() {
			g.Assert(DayName(time.Sunday)).Eql("Sun")
			g.Assert(DayName(time.Wednesday)).Eql("Wed")
		})
	})
}
