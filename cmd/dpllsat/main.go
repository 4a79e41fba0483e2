// Command dpllsat reads a DIMACS CNF instance and reports SATISFIABLE or
// UNSATISFIABLE, per spec §6's command-line contract.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gosat/dpllsat/heuristics"
	"github.com/gosat/dpllsat/internal/dimacs"
	"github.com/gosat/dpllsat/internal/sat"
)

var (
	verboseCount  int
	printModel    bool
	heuristicKind string
)

var rootCmd = &cobra.Command{
	Use:   "dpllsat <instance.cnf>",
	Short: "Solve a DIMACS CNF instance with two-watched-literal DPLL search",
	Args:  cobra.ExactArgs(1),
	RunE:  solve,
}

func init() {
	rootCmd.Flags().CountVarP(&verboseCount, "verbose", "v", "increase logging verbosity (-v=info, -vv=debug)")
	rootCmd.Flags().BoolVar(&printModel, "model", false, "print the satisfying assignment, if one is found")
	rootCmd.Flags().StringVar(&heuristicKind, "heuristic", "first", "decision heuristic: first, random, jw, occurrence")
}

func newLogger(verbosity int) *logrus.Logger {
	level := logrus.WarnLevel
	switch {
	case verbosity >= 2:
		level = logrus.DebugLevel
	case verbosity == 1:
		level = logrus.InfoLevel
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	return logger
}

func newHeuristic(kind string) sat.Heuristic {
	switch kind {
	case "first", "":
		return heuristics.FirstUnassigned{}
	case "random":
		return heuristics.NewRandomPhase(1)
	case "jw":
		return &heuristics.JeroslowWangPhase{}
	case "occurrence":
		return heuristics.Combine(&heuristics.ByOccurrence{}, &heuristics.JeroslowWangPhase{})
	default:
		return heuristics.FirstUnassigned{}
	}
}

func solve(cmd *cobra.Command, args []string) error {
	logger := newLogger(verboseCount)

	s := sat.NewSolver(sat.Options{
		Heuristic: newHeuristic(heuristicKind),
		Logger:    logger,
	})

	instanceFile := args[0]
	if err := dimacs.Load(instanceFile, s); err != nil {
		logger.WithError(err).WithField("file", instanceFile).Warn("could not load instance")
		return err
	}
	logger.WithFields(logrus.Fields{
		"variables": s.NumVariables(),
		"clauses":   s.NumConstraints(),
	}).Info("instance loaded")

	status := s.Solve()

	decisions, propagations, conflicts, backtracks := s.Stats()
	logger.WithFields(logrus.Fields{
		"decisions":    decisions,
		"propagations": propagations,
		"conflicts":    conflicts,
		"backtracks":   backtracks,
	}).Info("search complete")

	switch status {
	case sat.True:
		fmt.Println("SATISFIABLE")
		if printModel && len(s.Models) > 0 {
			printAssignment(s.Models[len(s.Models)-1])
		}
	case sat.False:
		fmt.Println("UNSATISFIABLE")
	default:
		return fmt.Errorf("dpllsat: solver returned unexpected status %s", status)
	}

	return nil
}

func printAssignment(model []bool) {
	for v, b := range model {
		if b {
			fmt.Printf("%d ", v+1)
		} else {
			fmt.Printf("-%d ", v+1)
		}
	}
	fmt.Println("0")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
