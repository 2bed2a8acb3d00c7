package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/okast/isoperf/internal/analysis"
	"github.com/okast/isoperf/internal/config"
	"github.com/okast/isoperf/internal/digitize"
	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/export"
	"github.com/okast/isoperf/internal/record"
	"github.com/okast/isoperf/internal/report"
	"github.com/okast/isoperf/internal/store"
	"github.com/okast/isoperf/internal/tui"
	"github.com/okast/isoperf/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir   string
	outputDir string
	// Digitize options
	configFile   string
	canvasWidth  int
	canvasHeight int
	cutoffHz     float64
	sampleDt     float64
	baseline     float64
	cropRange    string
	// Design curve parameters
	sd1           float64
	periodMin     float64
	periodMax     float64
	curveSteps    int
	dampingLevels []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "isoperf",
		Short: "seismic isolation performance toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "analysis data directory")
	rootCmd.PersistentFlags().StringVar(&outputDir, "out", config.DefaultOutputDir, "plot artifact directory")

	digitizeCmd := &cobra.Command{
		Use:   "digitize [record]",
		Short: "characterize a hysteresis envelope from a force-displacement record",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDigitize,
	}
	digitizeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	digitizeCmd.Flags().IntVar(&canvasWidth, "width", config.DefaultCanvasWidth, "picker canvas width")
	digitizeCmd.Flags().IntVar(&canvasHeight, "height", config.DefaultCanvasHeight, "picker canvas height")
	digitizeCmd.Flags().Float64Var(&cutoffHz, "cutoff", 0, "low-pass cutoff for the force column, Hz (0 = off)")
	digitizeCmd.Flags().Float64Var(&sampleDt, "dt", 0.01, "sampling interval, s")
	digitizeCmd.Flags().Float64Var(&baseline, "baseline", 0, "force baseline offset, kN")
	digitizeCmd.Flags().StringVar(&cropRange, "crop", "", "sample range lo:hi to keep, e.g. isolate one loop")

	orbitCmd := &cobra.Command{
		Use:   "orbit [record-x] [record-y]",
		Short: "displacement-orbit comparison of two horizontal components",
		Args:  cobra.ExactArgs(2),
		RunE:  runOrbit,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [record...]",
		Short: "maximum-displacement statistics across records",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStats,
	}

	curveCmd := &cobra.Command{
		Use:   "curve",
		Short: "generate isolator design curves",
		RunE:  runCurve,
	}
	curveCmd.Flags().Float64Var(&sd1, "sd1", 0.25, "1s spectral displacement at 5% damping, m")
	curveCmd.Flags().Float64Var(&periodMin, "tmin", 1.5, "minimum effective period, s")
	curveCmd.Flags().Float64Var(&periodMax, "tmax", 4.0, "maximum effective period, s")
	curveCmd.Flags().IntVar(&curveSteps, "steps", 26, "points per curve")
	curveCmd.Flags().Float64SliceVar(&dampingLevels, "damping", []float64{5, 10, 20, 30}, "damping levels, %")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [record]",
		Short: "power spectrum of the force column",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().Float64Var(&sampleDt, "dt", 0.01, "sampling interval, s")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored envelope cycle",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored analyses",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export analysis metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(digitizeCmd, orbitCmd, statsCmd, curveCmd, spectrumCmd, plotCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDigitize(cmd *cobra.Command, args []string) error {
	recordPath := ""
	if len(args) == 1 {
		recordPath = args[0]
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load stage: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("load stage: %w", err)
		}
		if recordPath == "" {
			recordPath = cfg.Record
		}
		if !cmd.Flags().Changed("width") {
			canvasWidth = cfg.Digitize.CanvasWidth
		}
		if !cmd.Flags().Changed("height") {
			canvasHeight = cfg.Digitize.CanvasHeight
		}
		if !cmd.Flags().Changed("cutoff") {
			cutoffHz = cfg.Filter.CutoffHz
		}
		if !cmd.Flags().Changed("dt") && cfg.Filter.Dt > 0 {
			sampleDt = cfg.Filter.Dt
		}
		if !cmd.Flags().Changed("baseline") {
			baseline = cfg.Filter.Baseline
		}
		if !cmd.Flags().Changed("out") && cfg.OutputDir != "" {
			outputDir = cfg.OutputDir
		}
		if !cmd.Flags().Changed("data") && cfg.DataDir != "" {
			dataDir = cfg.DataDir
		}
	}
	if recordPath == "" {
		return fmt.Errorf("load stage: no record given (argument or config record key)")
	}

	series, err := record.Load(recordPath)
	if err != nil {
		return fmt.Errorf("load stage: %w", err)
	}
	if cropRange != "" {
		lo, hi, err := record.ParseCropRange(cropRange, len(series))
		if err != nil {
			return fmt.Errorf("load stage: %w", err)
		}
		series = series.Crop(lo, hi)
		if len(series) == 0 {
			return fmt.Errorf("load stage: crop %s leaves no samples", cropRange)
		}
	}
	if baseline != 0 {
		series = series.ApplyBaseline(baseline)
	}
	if cutoffHz > 0 {
		series = series.ApplyLowPass(cutoffHz, sampleDt)
	}

	picker := tui.NewPicker()
	picker.Width, picker.Height = canvasWidth, canvasHeight
	snaps := &report.SVGSnapshotter{Dir: outputDir}

	d := digitize.New(picker, snaps)
	result, err := d.Run(context.Background(), series)
	if err != nil {
		return fmt.Errorf("digitize stage: %w", err)
	}

	metrics, err := envelope.Characterize(result.Refined)
	if err != nil {
		return fmt.Errorf("geometry stage: %w", err)
	}

	comparison := filepath.Join(outputDir, "envelope_comparison.svg")
	if err := report.RenderComparison(series, result.Cycles(), comparison); err != nil {
		return fmt.Errorf("report stage: %w", err)
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return fmt.Errorf("report stage: %w", err)
	}
	runID, err := st.Save(recordPath, series, result.Refined, metrics)
	if err != nil {
		return fmt.Errorf("report stage: %w", err)
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("comparison: %s\n\n", comparison)
	return report.WriteMetrics(os.Stdout, metrics)
}

func runOrbit(cmd *cobra.Command, args []string) error {
	xRec, err := record.Load(args[0])
	if err != nil {
		return err
	}
	yRec, err := record.Load(args[1])
	if err != nil {
		return err
	}

	orbit, err := analysis.Orbit(xRec, yRec)
	if err != nil {
		return err
	}

	printOrbit(orbit)

	points := make([]struct{ X, Y float64 }, len(orbit.Points))
	for i, p := range orbit.Points {
		points[i] = struct{ X, Y float64 }{p.X, p.Y}
	}
	path := filepath.Join(outputDir, "orbit.svg")
	svg, err := export.OrbitSVG(points, 600, 600)
	if err != nil {
		return err
	}
	if err := export.WriteFile(path, svg); err != nil {
		return err
	}

	fmt.Printf("\npeak radial displacement: %.4f m (sample %d)\n", orbit.PeakRadius, orbit.PeakIndex)
	fmt.Printf("orbit plot: %s\n", path)
	return nil
}

// printOrbit draws an ascii scatter of the orbit path, denser character for
// later samples.
func printOrbit(orbit *analysis.OrbitResult) {
	width, height := 70, 20
	xMin, xMax := orbit.Points[0].X, orbit.Points[0].X
	yMin, yMax := orbit.Points[0].Y, orbit.Points[0].Y
	for _, p := range orbit.Points {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	xRange, yRange := xMax-xMin, yMax-yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}
	n := len(orbit.Points)
	for i, p := range orbit.Points {
		px := int(float64(width-1) * (p.X - xMin) / xRange)
		py := height - 1 - int(float64(height-1)*(p.Y-yMin)/yRange)
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		switch {
		case i < n/3:
			canvas[py][px] = '.'
		case i < 2*n/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	fmt.Printf("displacement orbit (x: %s, y: %s)\n\n", "east-west", "north-south")
	for _, row := range canvas {
		fmt.Println(string(row))
	}
	fmt.Println("\nlegend: . = early, o = middle, ● = late")
}

func runStats(cmd *cobra.Command, args []string) error {
	records := make([]record.Series, 0, len(args))
	for _, path := range args {
		rec, err := record.Load(path)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	res := analysis.PeakStats(args, records)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECORD\tPEAK DISPLACEMENT (m)")
	for _, p := range res.Peaks {
		fmt.Fprintf(w, "%s\t%.4f\n", p.Name, p.Peak)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nmean: %.4f m\n", res.Mean)
	fmt.Printf("std:  %.4f m\n", res.Std)
	return nil
}

func runCurve(cmd *cobra.Command, args []string) error {
	curves := analysis.DesignCurve(analysis.CurveParams{
		Sd1:           sd1,
		PeriodMin:     periodMin,
		PeriodMax:     periodMax,
		Steps:         curveSteps,
		DampingLevels: dampingLevels,
	})

	for _, xi := range dampingLevels {
		pts := curves[xi]
		data := make([]float64, len(pts))
		for i, p := range pts {
			data[i] = p.Displacement
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("displacement demand vs period, %.0f%% damping", xi)),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"damping_pct", "period_s", "displacement_m", "stiffness_kn_m_per_t"}); err != nil {
		return err
	}
	for _, xi := range dampingLevels {
		for _, p := range curves[xi] {
			row := []string{
				strconv.FormatFloat(xi, 'f', 1, 64),
				strconv.FormatFloat(p.Period, 'f', 3, 64),
				strconv.FormatFloat(p.Displacement, 'f', 4, 64),
				strconv.FormatFloat(p.Stiffness, 'f', 3, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	series, err := record.Load(args[0])
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(series)
	plotData, err := analysis.PlotBins(ps)
	if err != nil {
		return fmt.Errorf("%w: %s has %d samples", err, args[0], len(series))
	}

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("force power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq, power := analysis.DominantFrequency(ps, sampleDt, len(ps)*2)
	fmt.Printf("dominant frequency: %.3f hz (power %.2f)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	cycle, err := st.LoadCycle(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("record: %s\n\n", meta.Record)

	closed := cycle.Closed()
	disp := make([]float64, len(closed))
	force := make([]float64, len(closed))
	dMin, dMax, fMin, fMax := closed[0].Displacement, closed[0].Displacement, closed[0].Force, closed[0].Force
	for i, v := range closed {
		disp[i], force[i] = v.Displacement, v.Force
		if v.Displacement < dMin {
			dMin = v.Displacement
		}
		if v.Displacement > dMax {
			dMax = v.Displacement
		}
		if v.Force < fMin {
			fMin = v.Force
		}
		if v.Force > fMax {
			fMax = v.Force
		}
	}

	canvas := viz.NewCanvas(config.DefaultCanvasWidth, config.DefaultCanvasHeight)
	frame := viz.NewFrame(dMin, dMax, fMin, fMax, config.DefaultCanvasWidth, config.DefaultCanvasHeight)
	viz.PlotLoop(canvas, frame, disp, force, false)
	fmt.Println(canvas.String())

	return report.WriteMetrics(os.Stdout, meta.Metrics)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no analyses found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECORD\tTIME\tK_EFF (kN/m)\tDAMPING (%)")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.1f\n",
			run.ID,
			run.Record,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Metrics.EffectiveStiffness,
			run.Metrics.EquivalentDamping,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
