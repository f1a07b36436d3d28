package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sort"
	"strings"
	"time"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/itlt/infall/dilation"
	"github.com/itlt/infall/io"
	"github.com/itlt/infall/plot"
	"github.com/itlt/infall/trajectory"
	"github.com/itlt/infall/view"
)

const (
	viewTick = 16 * time.Millisecond
)

// FileGroup holds the optional log and profile files of a run.
type FileGroup struct {
	log, prof *os.File
}

// NewFileGroup opens the given log and profile files. Empty names are
// skipped.
func NewFileGroup(logFile, profFile string) (*FileGroup, error) {
	fg := &FileGroup{}

	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil { return nil, err }
		fg.log = f
		log.SetOutput(f)
	}

	if profFile != "" {
		f, err := os.Create(profFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		fg.prof = f
		if err := pprof.StartCPUProfile(f); err != nil {
			fg.Close()
			return nil, err
		}
	}

	return fg, nil
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(os.Stderr)
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var (
		simulate, curve, replot, viewFile string
		exampleConfig string
		stride int
		mute bool
	)
	vars := map[string]*string {
		"Simulate": &simulate,
		"Curve": &curve,
		"Replot": &replot,
		"View": &viewFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&simulate, "Simulate", "",
		"Configuration file for [Simulation] mode.",
	)
	flag.StringVar(
		&curve, "Curve", "",
		"Configuration file for [Curve] mode.",
	)
	flag.StringVar(
		&replot, "Replot", "",
		"Curve table written by [Curve] mode to plot again.",
	)
	flag.StringVar(
		&viewFile, "View", "",
		"Configuration file for a [Simulation] to play back in the terminal.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Simulation' " +
			"and 'Curve'.",
	)
	flag.IntVar(
		&stride, "ViewStride", 5,
		"Recorded steps advanced per frame in View mode.",
	)
	flag.BoolVar(&mute, "Mute", false, "Disables sound in View mode.")

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Simulate":
		con, err := io.ReadSimulationConfig(simulate)
		if err != nil { log.Fatal(err.Error()) }
		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}
		simulateMain(con)

	case "Curve":
		con, err := io.ReadCurveConfig(curve)
		if err != nil { log.Fatal(err.Error()) }
		if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		}
		curveMain(con)

	case "Replot":
		replotMain(replot)

	case "View":
		con, err := io.ReadSimulationConfig(viewFile)
		if err != nil { log.Fatal(err.Error()) }
		viewMain(con, stride, mute)

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulation":
			fmt.Println(io.ExampleSimulationFile)
		case "Curve":
			fmt.Println(io.ExampleCurveFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Simulation' and 'Curve'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		sort.Strings(setNames)
		return "", fmt.Errorf(
			"The following flags were set: %s, but itlt " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func simulateMain(con *io.SimulationConfig) {
	fg, err := NewFileGroup(con.LogFile, con.ProfileFile)
	if err != nil { log.Fatal(err.Error()) }
	defer fg.Close()

	log.Printf(
		"Running %d %s steps of size %g from x = %g.",
		con.Steps, con.Method, con.TimeStep, con.StartDistance,
	)
	s := trajectory.Run(con)

	if t, ok := s.CrashTime(); ok {
		log.Printf("Standard particle reached the center at t = %.4g.", t)
	} else {
		log.Printf("Standard particle still falling, x = %.6g.", s.FinalStandard)
	}
	if t, ok := s.FreezeTime(); ok {
		log.Printf("ITLT particle froze at the boundary at t = %.4g.", t)
	} else {
		log.Printf("ITLT particle still falling, x = %.6g.", s.FinalITLT)
	}

	fname := con.Output + ".txt"
	err = io.WriteTableFile(fname, trajectory.SeriesHeader, s.Columns()...)
	if err != nil { log.Fatal(err.Error()) }
	log.Println("Trajectory written to", fname)

	if con.CSV {
		fname = con.Output + ".csv"
		err = io.WriteCSVFile(fname, trajectory.SeriesHeader, s.Columns()...)
		if err != nil { log.Fatal(err.Error()) }
		log.Println("Trajectory written to", fname)
	}

	if con.Plot {
		plot.Trajectory(s, con.Output + ".png")
		plt.Execute()
		log.Println("Figure written to", con.Output + ".png")
	}
}

func curveMain(con *io.CurveConfig) {
	fg, err := NewFileGroup(con.LogFile, con.ProfileFile)
	if err != nil { log.Fatal(err.Error()) }
	defer fg.Close()

	c := dilation.SampleCurve(con)
	log.Printf(
		"Sampled %d distance factors in %d bands.",
		len(c), len(con.BandPoints),
	)

	fname := con.Output + ".txt"
	err = io.WriteTableFile(fname, dilation.CurveHeader, c.Columns()...)
	if err != nil { log.Fatal(err.Error()) }
	log.Println("Curve written to", fname)

	if con.CSV {
		fname = con.Output + ".csv"
		err = io.WriteCSVFile(fname, dilation.CurveHeader, c.Columns()...)
		if err != nil { log.Fatal(err.Error()) }
		log.Println("Curve written to", fname)
	}

	if con.Plot {
		plot.Curve(c, con.Output + ".png")
		plt.Execute()
		log.Println("Figure written to", con.Output + ".png")
	}
}

func replotMain(fname string) {
	cols, err := io.ReadTable(fname, len(dilation.CurveHeader))
	if err != nil { log.Fatal(err.Error()) }
	c, err := dilation.FromColumns(cols)
	if err != nil { log.Fatal(err.Error()) }

	out := strings.TrimSuffix(fname, ".txt") + ".png"
	plot.Curve(c, out)
	plt.Execute()
	log.Println("Figure written to", out)
}

func viewMain(con *io.SimulationConfig, stride int, mute bool) {
	s := trajectory.Run(con)

	var sound view.Sounder
	if !mute {
		cue, err := view.NewCue()
		if err != nil {
			// Non-fatal, playback works without sound.
			log.Printf("Audio initialization failed: %v", err)
		}
		defer cue.Close()
		sound = cue
	}

	if err := view.Play(s, stride, viewTick, sound); err != nil {
		log.Fatal(err.Error())
	}
}
