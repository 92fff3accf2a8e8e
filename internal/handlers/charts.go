package handlers

import (
	"fmt"
	"net/http"

	"github.com/CEMAMI09/EVOQFORMS/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ChartsHandler struct {
	log *zap.Logger
}

func NewChartsHandler(log *zap.Logger) *ChartsHandler {
	return &ChartsHandler{log: log}
}

// ShowCharts renders the quiz statistics page: score distribution and
// submissions per day.
func (h *ChartsHandler) ShowCharts(c *gin.Context) {
	distribution, err := repository.ScoreDistribution(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load score distribution", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load chart data")
		return
	}

	daily, err := repository.DailySubmissionCounts(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to load daily submission counts", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load chart data")
		return
	}

	page := components.NewPage()
	page.PageTitle = "Quiz Statistics"
	page.AddCharts(
		generateScoreChart(distribution),
		generateDailyChart(daily),
	)

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(c.Writer); err != nil {
		h.log.Error("Failed to render charts page", zap.Error(err))
	}
}

func generateScoreChart(distribution []repository.ScoreBucket) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Score Distribution",
			Subtitle: "Certification quiz submissions per score",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Score"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Submissions"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	// One bucket per possible score so the axis always runs 0..10.
	counts := make(map[int]int, len(distribution))
	for _, bucket := range distribution {
		counts[bucket.Score] = bucket.Count
	}

	labels := make([]string, 0, 11)
	items := make([]opts.BarData, 0, 11)
	for score := 0; score <= 10; score++ {
		labels = append(labels, fmt.Sprintf("%d", score))
		items = append(items, opts.BarData{Value: counts[score]})
	}

	bar.SetXAxis(labels).AddSeries("Submissions", items)
	return bar
}

func generateDailyChart(daily []repository.DailyCount) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Submissions Over Time",
		}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	days := make([]string, 0, len(daily))
	items := make([]opts.LineData, 0, len(daily))
	for _, point := range daily {
		days = append(days, point.Day)
		items = append(items, opts.LineData{Value: point.Count})
	}

	line.SetXAxis(days).AddSeries("Submissions", items).
		SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
