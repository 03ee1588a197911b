package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionsim/mcprice/pricer"
)

// runOptions holds the CLI flags for the run command.
type runOptions struct {
	spot       float64 // underlying price
	strike     float64 // strike price
	maturity   float64 // time to maturity in years
	rate       float64 // risk-free rate
	volatility float64 // annualized volatility
	paths      int64   // total simulated paths
	workers    int     // parallel workers
	seed       int64   // run seed; entropy-seeded unless set
	configPath string  // optional YAML run file
	logLevel   string  // log verbosity level
	compare    bool    // also print the closed-form price
}

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mcprice",
	Short: "Monte Carlo pricer for European call options",
}

// newRunCmd builds the run subcommand, binding its flags to opts.
func newRunCmd(opts *runOptions) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Estimate a European call price by Monte Carlo simulation",
		Run: func(cmd *cobra.Command, args []string) {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				logrus.Fatalf("Invalid log level: %s", opts.logLevel)
			}
			logrus.SetLevel(level)

			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				logrus.Fatalf("Invalid run configuration: %v", err)
			}
			if err := runPricing(cfg, opts.compare, cmd.OutOrStdout()); err != nil {
				logrus.Fatalf("Pricing run failed: %v", err)
			}
		},
	}

	runCmd.Flags().Float64Var(&opts.spot, "spot", 100, "Spot price of the underlying")
	runCmd.Flags().Float64Var(&opts.strike, "strike", 100, "Strike price")
	runCmd.Flags().Float64Var(&opts.maturity, "maturity", 1, "Time to maturity in years")
	runCmd.Flags().Float64Var(&opts.rate, "rate", 0.05, "Continuously compounded risk-free rate")
	runCmd.Flags().Float64Var(&opts.volatility, "volatility", 0.2, "Annualized volatility")
	runCmd.Flags().Int64Var(&opts.paths, "paths", 100_000_000, "Total number of simulated paths")
	runCmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of parallel workers")
	runCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Run seed for reproducible prices (default: entropy)")
	runCmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML run file")
	runCmd.Flags().StringVar(&opts.logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&opts.compare, "compare", false, "Also print the Black-Scholes closed-form price")
	return runCmd
}

// buildConfig merges flag defaults, the optional run file and explicitly
// set flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command, opts *runOptions) (pricer.Config, error) {
	cfg := pricer.Config{
		Params: pricer.Params{
			Spot:       opts.spot,
			Strike:     opts.strike,
			Maturity:   opts.maturity,
			Rate:       opts.rate,
			Volatility: opts.volatility,
		},
		TotalPaths: opts.paths,
		Workers:    opts.workers,
	}
	if cmd.Flags().Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}

	if opts.configPath != "" {
		rf, err := LoadRunFile(opts.configPath)
		if err != nil {
			return pricer.Config{}, err
		}
		rf.applyTo(&cfg, cmd.Flags().Changed)
		logrus.Infof("Loaded run file %s", opts.configPath)
	}
	return cfg, cfg.Validate()
}

// runPricing executes one run and writes the report to out.
func runPricing(cfg pricer.Config, compare bool, out io.Writer) error {
	engine, err := pricer.NewEngine(cfg)
	if err != nil {
		return err
	}
	logrus.Infof("Starting pricing run: S=%v K=%v T=%v r=%v sigma=%v paths=%d workers=%d seed=%d",
		cfg.Params.Spot, cfg.Params.Strike, cfg.Params.Maturity, cfg.Params.Rate, cfg.Params.Volatility,
		cfg.TotalPaths, cfg.Workers, int64(engine.Key()))

	res, err := engine.Run()
	if err != nil {
		return err
	}
	if err := res.Print(out); err != nil {
		return err
	}
	if compare {
		closed := pricer.BlackScholesCall(cfg.Params)
		if _, err := fmt.Fprintf(out, "Black-Scholes Closed-Form Price: %s\n", pricer.FormatPrice(closed)); err != nil {
			return err
		}
		logrus.Infof("Estimate deviates from closed form by %v (std err %v)", res.Price-closed, res.StdErr)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init attaches subcommands
func init() {
	rootCmd.AddCommand(newRunCmd(&runOptions{}))
}
