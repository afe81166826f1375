package report

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/inference-sim/dispatch-sim/sim"
)

// barWidth is the thickness of one Gantt band.
var barWidth = vg.Points(8)

// GanttPlot builds a chart with one horizontal band per process per run.
// Each run gets its own color; idle time is left blank.
func GanttPlot(results []*sim.Result) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no results to plot")
	}
	p := plot.New()
	p.Title.Text = "Dispatch timeline"
	p.X.Label.Text = "Tick"
	p.X.Min = 0

	var labels []string
	row := 0
	for ri, res := range results {
		// Rows are assigned top-down in process input order.
		rowOf := make(map[int64]int, len(res.Metrics.Processes))
		for _, pm := range res.Metrics.Processes {
			rowOf[pm.ID] = row
			labels = append(labels, fmt.Sprintf("%s P%d", res.Algorithm, pm.ID))
			row++
		}

		first := true
		for _, seg := range res.Timeline.Segments() {
			if seg.Owner.Idle {
				continue
			}
			y := float64(rowOf[seg.Owner.PID])
			line, err := plotter.NewLine(plotter.XYs{{X: float64(seg.Start), Y: y}, {X: float64(seg.End), Y: y}})
			if err != nil {
				return nil, fmt.Errorf("plotting %s segment %v: %w", res.Algorithm, seg, err)
			}
			line.LineStyle.Width = barWidth
			line.LineStyle.Color = plotutil.Color(ri)
			p.Add(line)
			if first {
				p.Legend.Add(title(res), line)
				first = false
			}
		}
	}
	p.NominalY(labels...)
	p.Legend.Top = true
	return p, nil
}

// PlotGantt renders GanttPlot to path. The file type follows the extension
// (.png, .svg, .pdf).
func PlotGantt(path string, results []*sim.Result) error {
	p, err := GanttPlot(results)
	if err != nil {
		return err
	}
	rows := 0
	for _, res := range results {
		rows += len(res.Metrics.Processes)
	}
	height := vg.Length(max(rows, 4)) * vg.Points(14)
	if err := p.Save(8*vg.Inch, height+vg.Inch, path); err != nil {
		return fmt.Errorf("saving timeline chart: %w", err)
	}
	logrus.Infof("Saved timeline chart to %s", path)
	return nil
}

// MetricsPlot builds a grouped bar chart of average response, waiting and
// turnaround time per run.
func MetricsPlot(results []*sim.Result) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("no results to plot")
	}
	p := plot.New()
	p.Title.Text = "Average times"
	p.Y.Label.Text = "Ticks"

	width := vg.Points(18)
	for i, res := range results {
		m := res.Metrics
		bars, err := plotter.NewBarChart(plotter.Values{m.AvgResponse, m.AvgWaiting, m.AvgTurnaround}, width)
		if err != nil {
			return nil, fmt.Errorf("plotting %s averages: %w", res.Algorithm, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(i-len(results)/2)
		p.Add(bars)
		p.Legend.Add(title(res), bars)
	}
	p.Legend.Top = true
	p.NominalX("Response", "Waiting", "Turnaround")
	return p, nil
}

// PlotMetrics renders MetricsPlot to path.
func PlotMetrics(path string, results []*sim.Result) error {
	p, err := MetricsPlot(results)
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving metrics chart: %w", err)
	}
	logrus.Infof("Saved metrics chart to %s", path)
	return nil
}
