package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"removedups/harness"
	"removedups/log"
	"removedups/tools"
)

func main() {
	var (
		algorithms = flag.String("algorithm", "", "comma separated algorithms to run, default all")
		input      = flag.String("input", "", "deduplicate this sequence instead of running the case table")
		logLevel   = flag.String("log-level", "warn", "trace, debug, info, warn or error")
		csvFile    = flag.String("csv", "", "write the case report to this file")
	)
	flag.Parse()

	cfg := harness.NewConfig()
	cfg.Algorithms = tools.SplitList(*algorithms)
	cfg.LogLevel = *logLevel

	logger := log.New()
	runner, err := harness.NewRunner(cfg, logger, prometheus.NewRegistry())
	if err != nil {
		logger.Error("create runner: %v", err)
		os.Exit(2)
	}

	if *input != "" {
		os.Exit(dedupInput(runner, logger, *input))
	}

	report := runner.Run(harness.Cases())
	for _, res := range report.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Printf("%s %-12s %-26s %v -> %v\n", status, res.Algorithm, res.Case, res.Input, res.Got)
	}
	fmt.Printf("run %s: %d passed, %d failed\n", report.RunID, report.Passed(), report.Failed())

	if *csvFile != "" {
		if err := report.SaveCSV(*csvFile); err != nil {
			logger.Error("save report to %s: %v", *csvFile, err)
			os.Exit(2)
		}
	}
	if !report.OK() {
		os.Exit(1)
	}
}

func dedupInput(runner *harness.Runner, logger log.Logger, input string) int {
	values, err := tools.ParseInts(input)
	if err != nil {
		logger.Error("parse input %q: %v", input, err)
		return 2
	}
	for _, name := range runner.Algorithms() {
		out, err := runner.Dedup(name, values)
		if err != nil {
			logger.Error("%s: %v", name, err)
			return 2
		}
		fmt.Printf("%-12s %s\n", name, out)
	}
	return 0
}
