// SPDX-License-Identifier: MIT

// Command stroemung runs a simulation offline.
//
// It starts from a preset, a JSON snapshot (-sim-file) or a NaSt2D output
// file (-nast2d) and advances it -steps ticks. On request it writes the
// final snapshot (-out), a chart of kinetic energy and pressure residual per
// tick (-plot), or a PNG of the final field (-image).
//
//	stroemung -preset obstacle -steps 500 -out final.json -plot history.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/interchange"
	"github.com/wickedchicken/stroemung/pressure"
	"github.com/wickedchicken/stroemung/render"
	"github.com/wickedchicken/stroemung/sim"
)

// config holds the parsed command line.
type config struct {
	xCells, yCells   int
	xWidth, yHeight  float64
	deltaT           float64
	gamma, tau       float64
	reynolds         float64
	gx, gy           float64
	sorEpsilon       float64
	sorMaxIterations int
	omega            float64
	redBlack         bool
	outlet           string
	preset           string
	steps, every     int
	simFile, nast2d  string
	out, plot        string
	image, colour    string

	// names of the flags given on the command line
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("stroemung", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&c.xCells, "x-cells", 100, "interior cells along x")
	fs.IntVar(&c.yCells, "y-cells", 20, "interior cells along y")
	fs.Float64Var(&c.xWidth, "x-cell-width", 0.1, "cell width")
	fs.Float64Var(&c.yHeight, "y-cell-height", 0.2, "cell height")
	fs.Float64Var(&c.deltaT, "delta-t", 0, "fixed time step; 0 picks a stable step every tick")
	fs.Float64Var(&c.gamma, "gamma", sim.DefaultGamma, "donor-cell blend")
	fs.Float64Var(&c.tau, "tau", sim.DefaultTau, "time-step safety factor")
	fs.Float64Var(&c.reynolds, "reynolds", sim.DefaultReynolds, "Reynolds number")
	fs.Float64Var(&c.gx, "gx", 0, "body force along x")
	fs.Float64Var(&c.gy, "gy", 0, "body force along y")
	fs.Float64Var(&c.sorEpsilon, "sor-epsilon", sim.DefaultEpsilon, "SOR residual tolerance")
	fs.IntVar(&c.sorMaxIterations, "sor-max-iterations", sim.DefaultMaxIterations, "SOR sweep cap")
	fs.Float64Var(&c.omega, "omega", sim.DefaultOmega, "SOR relaxation factor")
	fs.BoolVar(&c.redBlack, "red-black", false, "parallel red-black SOR ordering")
	fs.StringVar(&c.outlet, "outlet", pressure.OutletDirichlet.String(), "pressure on outflow cells: dirichlet or neumann")
	fs.StringVar(&c.preset, "preset", grid.PresetChannel, "scenario: "+strings.Join(grid.Presets(), ", "))
	fs.IntVar(&c.steps, "steps", 100, "ticks to run")
	fs.IntVar(&c.every, "every", 10, "log every n ticks; 0 logs only the summary")
	fs.StringVar(&c.simFile, "sim-file", "", "start from a JSON snapshot")
	fs.StringVar(&c.nast2d, "nast2d", "", "start from a NaSt2D .out file")
	fs.StringVar(&c.out, "out", "", "write the final snapshot as JSON")
	fs.StringVar(&c.plot, "plot", "", "write an energy/residual chart (png, svg or pdf)")
	fs.StringVar(&c.image, "image", "", "write the final field as a PNG, one pixel per cell")
	fs.StringVar(&c.colour, "colour", render.Speed.String(), "field shown by -image: speed or pressure")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	c.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { c.set[f.Name] = true })
	if c.simFile != "" && c.nast2d != "" {
		return config{}, errors.New("-sim-file and -nast2d are exclusive")
	}
	if c.colour != render.Speed.String() && c.colour != render.Pressure.String() {
		return config{}, fmt.Errorf("unknown -colour %q", c.colour)
	}
	if c.steps < 0 {
		return config{}, fmt.Errorf("-steps must be >= 0, got %d", c.steps)
	}

	return c, nil
}

// options returns the numerical options. Reynolds number and gravity are
// physics and travel with a snapshot, so load handles them separately.
func (c config) options() ([]sim.Option, error) {
	opts := []sim.Option{
		sim.WithGamma(c.gamma),
		sim.WithTau(c.tau),
		sim.WithFixedTimeStep(c.deltaT),
		sim.WithEpsilon(c.sorEpsilon),
		sim.WithMaxIterations(c.sorMaxIterations),
		sim.WithOmega(c.omega),
	}
	if c.redBlack {
		opts = append(opts, sim.WithOrdering(pressure.RedBlack))
	}
	switch c.outlet {
	case pressure.OutletDirichlet.String():
		opts = append(opts, sim.WithOutlet(pressure.OutletDirichlet))
	case pressure.OutletNeumann.String():
		opts = append(opts, sim.WithOutlet(pressure.OutletNeumann))
	default:
		return nil, fmt.Errorf("unknown -outlet %q", c.outlet)
	}

	return opts, nil
}

// load builds the initial State from a file or a preset.
func (c config) load() (*sim.State, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	var (
		snap sim.Snapshot
		read func(io.Reader, float64, float64) (sim.Snapshot, error)
		path string
	)
	switch {
	case c.simFile != "":
		read, path = interchange.Decode, c.simFile
	case c.nast2d != "":
		read, path = interchange.ReadNaSt2D, c.nast2d
	default:
		geom, err := grid.NewGeometry(c.xCells, c.yCells, c.xWidth, c.yHeight)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sim.WithReynolds(c.reynolds), sim.WithGravity(c.gx, c.gy))
		return sim.BuildScenario(c.preset, geom, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if snap, err = read(f, c.xWidth, c.yHeight); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	// the file's physics win unless a flag was given explicitly
	if c.set["reynolds"] {
		snap.Meta.Reynolds = c.reynolds
	}
	if c.set["gx"] {
		snap.Meta.GX = c.gx
	}
	if c.set["gy"] {
		snap.Meta.GY = c.gy
	}

	return sim.Import(snap, opts...)
}

func run(args []string, stderr io.Writer) error {
	logger := log.New(stderr, "stroemung: ", 0)
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	st, err := c.load()
	if err != nil {
		return err
	}
	logger.Printf("%v, Re=%g, %v SOR", st.Geometry(), st.Params().Reynolds, st.Params().Ordering)

	var hist history
	for n := 0; n < c.steps; n++ {
		rep, err := st.Tick()
		if err != nil {
			return fmt.Errorf("after %d steps: %w", st.Steps(), err)
		}
		if err = rep.Err(); err != nil {
			logger.Printf("warning: %v", err)
		}
		ke := st.KineticEnergy()
		hist.add(rep, ke)
		if c.every > 0 && rep.Step%c.every == 0 {
			logger.Printf("step %d t=%.4f dt=%.4g sweeps=%d residual=%.3g energy=%.6g",
				rep.Step, rep.Time, rep.DelT, rep.Iterations, rep.Residual, ke)
		}
	}
	logger.Printf("done: %d steps, t=%.4f, energy=%.6g, max speed=%.4g, divergence=%.3g, %d fluid regions, %d unconverged",
		st.Steps(), st.Time(), st.KineticEnergy(), st.MaxSpeed(), st.Divergence(), len(st.FluidRegions()), hist.unconverged)

	if c.out != "" {
		if err = writeSnapshot(c.out, st.Export()); err != nil {
			return err
		}
		logger.Printf("wrote %s", c.out)
	}
	if c.plot != "" {
		if err = hist.save(c.plot); err != nil {
			return err
		}
		logger.Printf("wrote %s", c.plot)
	}
	if c.image != "" {
		mode := render.Speed
		if c.colour == render.Pressure.String() {
			mode = render.Pressure
		}
		if err = writeImage(c.image, st, mode); err != nil {
			return err
		}
		logger.Printf("wrote %s", c.image)
	}

	return nil
}

func writeSnapshot(path string, snap sim.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = interchange.Encode(f, snap); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeImage(path string, st *sim.State, mode render.Mode) error {
	img := render.NewImage(st.Geometry())
	if _, _, err := render.Draw(img, st, mode); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("stroemung: %v", err)
	}
}
