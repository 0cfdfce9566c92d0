package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/config"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/export"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/lattice"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/spin"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/storage"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/tui"
)

var (
	dataDir string
	// Lattice geometry
	nx        int
	ny        int
	hexRadius float64
	// Skyrmion parameters
	radius    float64
	helicity  float64
	vorticity int
	chirality int
	// Config file and preset
	configFile string
	preset     string
	// Output options
	outPath string
	scale   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skyrm",
		Short: "magnetic skyrmion spin texture on a triangular lattice",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".skyrm", "data directory")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "evaluate the spin field and store a snapshot",
		RunE:  renderField,
	}
	addParamFlags(renderCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored snapshots",
		RunE:  listRuns,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "export a snapshot as an SVG hexagon plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&outPath, "out", "", "output file (default <run_id>.svg)")
	svgCmd.Flags().Float64Var(&scale, "scale", 12, "pixels per lattice unit")

	profileCmd := &cobra.Command{
		Use:   "profile [run_id]",
		Short: "plot the out-of-plane profile through the core",
		Args:  cobra.ExactArgs(1),
		RunE:  plotProfile,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write snapshot data as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write snapshot data as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in skyrmion presets",
		RunE:  listPresets,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addParamFlags(tuiCmd)
	addParamFlags(rootCmd)

	rootCmd.AddCommand(renderCmd, listCmd, svgCmd, profileCmd, exportCSVCmd, exportJSONCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "lattice points per row")
	cmd.Flags().IntVar(&ny, "ny", config.DefaultNy, "lattice rows")
	cmd.Flags().Float64Var(&hexRadius, "hex-radius", config.DefaultHexRadius, "hexagon radius (lattice spacing / 2)")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "skyrmion radius")
	cmd.Flags().Float64Var(&helicity, "helicity", 0, "helicity in radians, [0, pi]")
	cmd.Flags().IntVar(&vorticity, "vorticity", config.DefaultVorticity, "vorticity, -1 or +1")
	cmd.Flags().IntVar(&chirality, "chirality", config.DefaultChirality, "chirality, -1 or +1")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("nx") {
		cfg.Lattice.Nx = nx
	}
	if cmd.Flags().Changed("ny") {
		cfg.Lattice.Ny = ny
	}
	if cmd.Flags().Changed("hex-radius") {
		cfg.Lattice.Radius = hexRadius
	}
	if cmd.Flags().Changed("radius") {
		cfg.Skyrmion.Radius = radius
	}
	if cmd.Flags().Changed("helicity") {
		cfg.Skyrmion.Helicity = helicity
	}
	if cmd.Flags().Changed("vorticity") {
		cfg.Skyrmion.Vorticity = vorticity
	}
	if cmd.Flags().Changed("chirality") {
		cfg.Skyrmion.Chirality = chirality
	}

	return cfg, nil
}

func latticeFromConfig(cfg *config.Config) (*lattice.Lattice, error) {
	return lattice.Generate(cfg.Lattice.Nx, cfg.Lattice.Ny, cfg.Lattice.Radius)
}

func renderField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	lat, err := latticeFromConfig(cfg)
	if err != nil {
		return err
	}

	cx, cy := lat.Center()
	params := cfg.Parameters(cx, cy)

	start := time.Now()
	field, err := spin.EvaluateField(lat, params)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(lat, params, field)
	if err != nil {
		return err
	}

	core := 0
	for _, pt := range lat.Points {
		if math.Hypot(pt.X-cx, pt.Y-cy) <= params.Radius {
			core++
		}
	}

	fmt.Printf("evaluated %d spins in %v\n", len(field), elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("lattice: %dx%d, hexagon radius %.2f\n", lat.Nx, lat.Ny, lat.Radius)
	fmt.Printf("skyrmion: radius %.2f, helicity %.3f, vorticity %+d, chirality %+d\n",
		params.Radius, params.Helicity, params.Vorticity, params.Chirality)
	fmt.Printf("core points: %d of %d\n", core, len(field))

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tLATTICE\tRADIUS\tHELICITY\tVORT\tCHIR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%.2f\t%.3f\t%+d\t%+d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nx, run.Ny,
			run.Radius,
			run.Helicity,
			run.Vorticity,
			run.Chirality,
		)
	}

	return w.Flush()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	lat, err := meta.Lattice()
	if err != nil {
		return err
	}

	field, err := st.LoadField(runID)
	if err != nil {
		return err
	}

	svg := export.FieldToSVG(lat, lat.Cells(), field, scale)
	if svg == "" {
		return fmt.Errorf("snapshot %s is inconsistent with its lattice", runID)
	}

	path := outPath
	if path == "" {
		path = runID + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d cells)\n", path, len(field))
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	lat, err := meta.Lattice()
	if err != nil {
		return err
	}

	field, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(field) != len(lat.Points) {
		return fmt.Errorf("snapshot %s is inconsistent with its lattice", runID)
	}

	// Row of lattice points closest to the skyrmion center: a horizontal cut
	// through the core.
	bestRow := 0
	bestDist := math.Inf(1)
	for j := 0; j < lat.Ny; j++ {
		idx, _ := lat.Index(0, j)
		if d := math.Abs(lat.Points[idx].Y - meta.CenterY); d < bestDist {
			bestDist = d
			bestRow = j
		}
	}

	data := make([]float64, 0, lat.Nx)
	for i := 0; i < lat.Nx; i++ {
		idx, _ := lat.Index(i, bestRow)
		data = append(data, field[idx].Z)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("row %d of %d (y = %.3f)\n\n", bestRow, lat.Ny, lat.Points[bestRow*lat.Nx].Y)

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption("Sz across the core"),
	)
	fmt.Println(graph)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	lat, err := meta.Lattice()
	if err != nil {
		return err
	}

	field, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(field) != len(lat.Points) {
		return fmt.Errorf("snapshot %s is inconsistent with its lattice", runID)
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"index", "x", "y", "sx", "sy", "sz"}); err != nil {
		return err
	}
	for idx, p := range lat.Points {
		v := field[idx]
		row := []string{
			strconv.Itoa(idx),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(v.X, 'f', 6, 64),
			strconv.FormatFloat(v.Y, 'f', 6, 64),
			strconv.FormatFloat(v.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	field, err := st.LoadField(runID)
	if err != nil {
		return err
	}
	if len(field) != meta.Points {
		return fmt.Errorf("snapshot %s is inconsistent with its lattice", runID)
	}

	out := struct {
		Meta  *storage.RunMetadata `json:"metadata"`
		Field []spin.Vector        `json:"field"`
	}{meta, field}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRADIUS\tHELICITY\tVORT\tCHIR")
	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.1f\t%.3f\t%+d\t%+d\n",
			name, p.Skyrmion.Radius, p.Skyrmion.Helicity, p.Skyrmion.Vorticity, p.Skyrmion.Chirality)
	}
	return w.Flush()
}
