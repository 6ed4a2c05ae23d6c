package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/samuelfneumann/gridenv/agent/policy"
	"github.com/samuelfneumann/gridenv/environment/envconfig"
	"github.com/samuelfneumann/gridenv/experiment"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
	"github.com/samuelfneumann/gridenv/render"
	"github.com/samuelfneumann/gridenv/utils/progressbar"
	"gonum.org/v1/gonum/stat"
)

const (
	configEnv = "GRIDENV_CONFIG"
	seedEnv   = "GRIDENV_SEED"

	returnsFile = "returns.bin"
	lengthsFile = "lengths.bin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[GRIDENV] [INFO] .env file not loaded: %v", err)
	}

	configFile := flag.String("config", os.Getenv(configEnv),
		"JSON environment configuration, defaults to the 8x8 gridworld")
	seed := flag.Uint64("seed", defaultSeed(), "seed of the random policy")
	episodes := flag.Int("episodes", 10, "number of episodes to run")
	steps := flag.Uint("steps", 10_000, "maximum total number of steps")
	show := flag.Bool("render", true, "print the gridworld to the console")
	colour := flag.Bool("colour", true, "colour the console rendering")
	pngFile := flag.String("png", "", "save an image of the gridworld and "+
		"its greedy policy to this file")
	dataDir := flag.String("data", "", "directory to save episode returns "+
		"and lengths to")
	oneHot := flag.Bool("onehot", false, "give the policy one-hot encoded "+
		"observations")
	progress := flag.Bool("progress", false, "display a progress bar over "+
		"episodes")
	flag.Parse()

	conf := envconfig.Default()
	if *configFile != "" {
		var err error
		if conf, err = envconfig.Load(*configFile); err != nil {
			log.Fatalf("[GRIDENV] [ERROR] %v", err)
		}
	}

	g, _, err := conf.Create()
	if err != nil {
		log.Fatalf("[GRIDENV] [ERROR] %v", err)
	}
	if *show {
		if err := render.Console(os.Stdout, g, *colour); err != nil {
			log.Fatalf("[GRIDENV] [ERROR] %v", err)
		}
	}
	fmt.Printf("Minimum steps to goal: %d\n", g.MinimumSteps())

	if *pngFile != "" {
		if err := savePNG(*pngFile, conf); err != nil {
			log.Fatalf("[GRIDENV] [ERROR] %v", err)
		}
		log.Printf("[GRIDENV] [INFO] saved image to %s", *pngFile)
	}

	returns := trackers.NewReturn(filepath.Join(*dataDir, returnsFile))
	lengths := trackers.NewEpisodeLength(filepath.Join(*dataDir, lengthsFile))

	expConf := experiment.Config{
		MaxSteps: *steps,
		EnvConf:  conf,
		OneHot:   *oneHot,
	}
	exp, err := expConf.CreateExp(*seed, returns, lengths)
	if err != nil {
		log.Fatalf("[GRIDENV] [ERROR] %v", err)
	}

	var bar *progressbar.ProgressBar
	if *progress && *episodes > 0 {
		bar = progressbar.New(os.Stderr, 40, *episodes)
	}

	for i := 0; i < *episodes; i++ {
		done, err := exp.RunEpisode()
		if err != nil {
			log.Fatalf("[GRIDENV] [ERROR] episode %d: %v", i, err)
		}
		if bar != nil {
			bar.Increment()
			if err := bar.Display(); err != nil {
				log.Fatalf("[GRIDENV] [ERROR] %v", err)
			}
		}
		if done {
			log.Print(stepLimitWarning(*steps, i+1))
			break
		}
	}

	if bar != nil {
		if err := bar.Close(); err != nil {
			log.Fatalf("[GRIDENV] [ERROR] %v", err)
		}
	}

	episodeReturns := returns.Returns()
	if len(episodeReturns) == 0 {
		fmt.Println("No episodes finished")
	} else {
		fmt.Printf("Episodes finished: %d\n", len(episodeReturns))
		fmt.Printf("Mean return: %.2f\n", stat.Mean(episodeReturns, nil))
		fmt.Printf("Mean length: %.2f\n", meanLength(lengths.Lengths()))
	}

	if *dataDir != "" {
		if err := os.MkdirAll(*dataDir, 0o755); err != nil {
			log.Fatalf("[GRIDENV] [ERROR] could not create data directory: %v",
				err)
		}
		if err := exp.Save(); err != nil {
			log.Fatalf("[GRIDENV] [ERROR] %v", err)
		}
		log.Printf("[GRIDENV] [INFO] saved data to %s", *dataDir)
	}
}

// savePNG draws the gridworld of conf and the greedy policy towards its
// goal to filename
func savePNG(filename string, conf envconfig.Config) error {
	g, _, err := conf.Create()
	if err != nil {
		return err
	}

	table, err := policy.NewGreedyTable(g.Rows(), g.Cols(), g.GoalPosition())
	if err != nil {
		return err
	}

	im, err := render.NewImage(g.Cols(), g.Rows(), 64)
	if err != nil {
		return err
	}
	if err := im.PlotGridWorld(g); err != nil {
		return err
	}
	if err := im.PlotPolicy(table.Action); err != nil {
		return err
	}
	return im.SavePNG(filename)
}

func defaultSeed() uint64 {
	value, ok := os.LookupEnv(seedEnv)
	if !ok {
		return 1
	}

	seed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Printf("[GRIDENV] [WARN] ignoring invalid %s %q: %v", seedEnv,
			value, err)
		return 1
	}
	return seed
}

// stepLimitWarning describes the step limit being reached once
// episodes episodes have run
func stepLimitWarning(limit uint, episodes int) string {
	return fmt.Sprintf("[GRIDENV] [WARN] step limit %d reached after %d "+
		"episodes", limit, episodes)
}

func meanLength(lengths []int) float64 {
	x := make([]float64, len(lengths))
	for i, l := range lengths {
		x[i] = float64(l)
	}
	return stat.Mean(x, nil)
}
