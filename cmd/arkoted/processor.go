// processor.go - Script loading, parallel replay and reporting
package main

import (
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/arkoted-go/internal/config"
	"github.com/lgbarn/arkoted-go/internal/errors"
	"github.com/lgbarn/arkoted-go/internal/game"
	"github.com/lgbarn/arkoted-go/internal/output"
	"github.com/lgbarn/arkoted-go/internal/parser"
	"github.com/lgbarn/arkoted-go/internal/worker"
)

// replayOptions are the per-run switches that are not part of Config.
type replayOptions struct {
	Strict    bool
	ShowBoard bool
	JSON      bool
}

// newReportWriter picks the report format.
func newReportWriter(w io.Writer, opts replayOptions) output.ReportWriter {
	if opts.JSON {
		return output.NewJSONWriter(w, opts.ShowBoard)
	}
	return output.NewTextWriter(w, opts.ShowBoard)
}

// stdinName labels the script read from standard input.
const stdinName = "<stdin>"

// loadScripts parses every named file, or stdin when there are none. A file
// that cannot be read or parsed becomes an item carrying the error.
func loadScripts(paths []string, stdin io.Reader) []worker.WorkItem {
	if len(paths) == 0 {
		script, err := parser.ParseScript(stdin, stdinName)
		return []worker.WorkItem{{Script: script, Err: err, Index: 0}}
	}

	items := make([]worker.WorkItem, 0, len(paths))
	for i, path := range paths {
		item := worker.WorkItem{Index: i}
		file, err := os.Open(path) //nolint:gosec // G304: paths come from the command line
		if err != nil {
			item.Err = err
			item.Script = &parser.Script{Name: path}
			items = append(items, item)
			continue
		}
		item.Script, item.Err = parser.ParseScript(file, path)
		file.Close()
		if item.Script == nil {
			item.Script = &parser.Script{Name: path}
		}
		items = append(items, item)
	}
	return items
}

// replayFunc returns the worker function that replays a script in a fresh game.
func replayFunc(cfg *config.Config, logger log.Interface, opts replayOptions) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index}
		if item.Script != nil {
			result.Name = item.Script.Name
		}
		if item.Err != nil {
			result.Err = item.Err
			return result
		}

		report, err := replayScript(cfg, logger, item.Script, opts)
		result.Report = report
		result.Err = err
		return result
	}
}

// replayScript applies the script's moves in order. In strict mode the first
// rejected move ends the replay with a MoveError wrapping ErrIllegalMove.
func replayScript(cfg *config.Config, logger log.Interface, script *parser.Script, opts replayOptions) (*output.Report, error) {
	g := game.New(cfg, game.WithLogger(logger.WithField("script", script.Name)))
	report := &output.Report{Name: script.Name, GameID: g.ID().String()}

	var err error
	for _, m := range script.Moves {
		out := g.ApplyMove(m.From, m.To)
		report.Moves = append(report.Moves, output.MoveLine{Line: m.Line, Outcome: out})
		if out.Accepted {
			report.Accepted++
			continue
		}
		report.Rejected++
		if opts.Strict {
			err = &errors.MoveError{
				Err:    errors.Wrapf(errors.ErrIllegalMove, "%s line %d: %v", script.Name, m.Line, out.Reason),
				GameID: report.GameID,
				Ply:    g.Ply() + 1,
				From:   m.From.Algebraic(),
				To:     m.To.Algebraic(),
			}
			break
		}
	}
	report.Board = g.String()
	return report, err
}

// reportOf returns the result's report, or a bare one for a script that
// never ran, with the result's error attached.
func reportOf(result worker.ProcessResult) *output.Report {
	report, _ := result.Report.(*output.Report)
	if report == nil {
		report = &output.Report{Name: result.Name}
	}
	report.Err = result.Err
	return report
}

// replayAll replays every item on cfg.Workers goroutines and writes the
// reports in input order. It returns the number of failed scripts.
func replayAll(cfg *config.Config, logger log.Interface, items []worker.WorkItem, opts replayOptions) (int, error) {
	pool := worker.NewPool(replayFunc(cfg, logger, opts),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(len(items)+1),
	)

	w := newReportWriter(cfg.OutputFile, opts)
	failed := 0
	for _, result := range pool.Run(items) {
		if err := w.WriteReport(reportOf(result)); err != nil {
			return failed, err
		}
		if result.Err != nil {
			failed++
			logger.WithError(result.Err).WithField("script", result.Name).Error("script failed")
		}
	}
	return failed, w.Close()
}
