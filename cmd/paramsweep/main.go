// Command paramsweep is a diagnostic sweep over the NTRUEncrypt parameter
// catalog: it runs key generation several times per parameter set,
// records how many draw-and-check attempts each run took, and renders a
// bar chart (two bars per parameter set: mean and max attempts) to an
// HTML report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"ntru-core/ntru/drbg"
	"ntru-core/ntru/keygen"
	"ntru-core/ntru/params"
)

type result struct {
	name     string
	attempts []int
	failures int
}

func (r result) mean() float64 {
	if len(r.attempts) == 0 {
		return 0
	}
	var sum int
	for _, a := range r.attempts {
		sum += a
	}
	return float64(sum) / float64(len(r.attempts))
}

func (r result) max() int {
	m := 0
	for _, a := range r.attempts {
		if a > m {
			m = a
		}
	}
	return m
}

func sweep(rec params.ParamSet, trials int) result {
	reg := drbg.NewRegistry()
	r := result{name: rec.Name}
	for i := 0; i < trials; i++ {
		h, err := reg.Instantiate([]byte(rec.Name))
		if err != nil {
			log.Printf("%s: instantiate: %v", rec.Name, err)
			r.failures++
			continue
		}
		_, _, attempts, err := keygen.KeyGenWithStats(reg, h, rec.ID)
		reg.Uninstantiate(h)
		if err != nil {
			log.Printf("%s: trial %d: %v", rec.Name, i, err)
			r.failures++
			continue
		}
		r.attempts = append(r.attempts, attempts)
	}
	return r
}

func newAttemptsChart(results []result) *charts.Bar {
	names := make([]string, len(results))
	means := make([]opts.BarData, len(results))
	maxes := make([]opts.BarData, len(results))
	for i, r := range results {
		names[i] = r.name
		means[i] = opts.BarData{Value: r.mean()}
		maxes[i] = opts.BarData{Value: r.max()}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "keygen attempts by parameter set"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "paramsweep", Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(names).
		AddSeries("mean attempts", means).
		AddSeries("max attempts", maxes).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	trials := flag.Int("trials", 20, "keygen trials per parameter set")
	outDir := flag.String("out", ".", "output directory for the HTML report")
	flag.Parse()

	fmt.Printf("catalog checksum: %x\n", params.Checksum())
	results := make([]result, 0, len(params.All()))
	for _, rec := range params.All() {
		r := sweep(rec, *trials)
		fmt.Printf("%-14s trials=%-4d mean_attempts=%.2f max_attempts=%-4d failures=%d\n",
			r.name, *trials, r.mean(), r.max(), r.failures)
		results = append(results, r)
	}

	page := components.NewPage()
	page.AddCharts(newAttemptsChart(results))

	htmlPath := filepath.Join(*outDir, "paramsweep.html")
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create report: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render report: %v", err)
	}
	fmt.Printf("wrote %s\n", htmlPath)
}
