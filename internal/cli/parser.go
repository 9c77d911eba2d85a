// Package cli turns the raw argument vector into a run request.
//
// The surface predates this implementation and is kept intact: job flags take
// one optional trailing path token, anything unknown is an immediate argument
// error, and a handful of flags short-circuit into terminal actions. None of
// the usual flag packages can express "flag with optional positional
// argument", so the scan is done by hand, left to right.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JotaJota96/mysqldumpgz/internal/config"
)

// Action is what the invocation asks for besides running jobs.
type Action int

const (
	ActionRun Action = iota
	ActionHelp
	ActionCheck
	ActionShowConfig
)

// RunRequest is the parsed intent of one invocation. Jobs point into the
// configuration's job table so that an output override set here is visible to
// every later selection of the same job.
type RunRequest struct {
	Jobs      []*config.Job
	Simulate  bool
	AssumeYes bool
	Action    Action
}

// Parse scans args left to right. It returns an error only for argument
// errors; the caller maps those to the fixed argument-error exit code.
// No arguments at all means the help action.
func Parse(cfg *config.Config, args []string) (*RunRequest, error) {
	req := &RunRequest{}

	if len(args) == 0 {
		req.Action = ActionHelp
		return req, nil
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			req.Action = ActionHelp
			return req, nil
		case "--check":
			req.Action = ActionCheck
			return req, nil
		case "--config":
			req.Action = ActionShowConfig
			return req, nil
		case "-s", "--simulate":
			req.Simulate = true
		case "-y", "--yes":
			req.AssumeYes = true
		case "-a", "--all":
			for j := range cfg.Jobs {
				req.Jobs = append(req.Jobs, &cfg.Jobs[j])
			}
		default:
			job, ok := cfg.JobByFlag(args[i])
			if !ok {
				return nil, fmt.Errorf("Invalid option: %s", args[i])
			}
			req.Jobs = append(req.Jobs, job)

			// A following token that does not look like a flag is this
			// job's output file. A path that genuinely starts with "-"
			// cannot be passed this way; known limitation.
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				abs, err := filepath.Abs(args[i+1])
				if err != nil {
					return nil, fmt.Errorf("Invalid output path: %s", args[i+1])
				}
				job.OutputFile = abs
				i++
			}
		}
	}

	if len(req.Jobs) == 0 {
		return nil, fmt.Errorf("No job selected, see --help")
	}

	return req, nil
}
