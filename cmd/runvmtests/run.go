package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/palladium-chain/corevm/go/interpreter"
	"github.com/palladium-chain/corevm/go/vmcore"
	"github.com/palladium-chain/corevm/go/vmtest"
)

func buildApp() *cli.App {
	return &cli.App{
		Name:  "runvmtests",
		Usage: "replay Ethereum VMTests JSON fixtures against this interpreter",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "fork",
				Usage: "override every fixture's fork with this one (Frontier..Berlin)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print every mismatch, not just the pass/fail summary",
			},
		},
		Action: doRun,
	}
}

func doRun(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("usage: runvmtests [--fork REVISION] [--verbose] <path>...")
	}

	var forkOverride *vmcore.Revision
	if s := c.String("fork"); s != "" {
		rev, err := parseForkFlag(s)
		if err != nil {
			return err
		}
		forkOverride = &rev
	}
	verbose := c.Bool("verbose")

	var paths []string
	for _, arg := range c.Args().Slice() {
		found, err := collectFixtureFiles(arg)
		if err != nil {
			return err
		}
		paths = append(paths, found...)
	}

	interp := interpreter.New()

	var total, passed int
	for _, path := range paths {
		results, err := runFixtureFile(interp, path, forkOverride)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		for name, result := range results {
			total++
			if result.Passed() {
				passed++
				continue
			}
			fmt.Printf("FAIL %s: %s\n", path, name)
			if verbose {
				for _, diff := range result.Diffs {
					fmt.Printf("\t%s\n", diff)
				}
			}
		}
	}

	fmt.Printf("%d/%d fixtures passed\n", passed, total)
	if passed != total {
		return fmt.Errorf("%d fixture(s) failed", total-passed)
	}
	return nil
}

func collectFixtureFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// runFixtureFile decodes a VMTests JSON file, which bundles one or more
// named test cases in a single top-level object, and runs each through the
// interpreter.
func runFixtureFile(interp *interpreter.Interp, path string, forkOverride *vmcore.Revision) (map[string]vmtest.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var named map[string]json.RawMessage
	if err := json.Unmarshal(data, &named); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	results := make(map[string]vmtest.Result, len(named))
	for name, raw := range named {
		fork := vmcore.Istanbul
		if forkOverride != nil {
			fork = *forkOverride
		}
		fixture, err := vmtest.Decode(fork, raw)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", name, err)
		}
		result, err := vmtest.Run(interp, fixture)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", name, err)
		}
		results[name] = result
	}
	return results, nil
}

func parseForkFlag(s string) (vmcore.Revision, error) {
	var rev vmcore.Revision
	quoted, err := json.Marshal(s)
	if err != nil {
		return 0, err
	}
	if err := rev.UnmarshalJSON(quoted); err != nil {
		return 0, fmt.Errorf("--fork: %w", err)
	}
	return rev, nil
}
