// Package driver runs verification over one or many diagram files. The
// verifier itself holds no shared state, so files are processed in parallel
// without coordination.
package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"diagrid/internal/diagram"
	"diagrid/internal/verify"
)

// Result is the outcome for one file. Err is set for I/O failures; a diagram
// with violations is a Report that fails, not an Err.
type Result struct {
	Path   string
	Report *verify.Report
	Err    error
}

// Event notifies a progress consumer about one file. Sent once when the file
// starts and once when it finishes.
type Event struct {
	Path string
	Done bool
	Pass bool
	Err  error
}

// Loader selects the diagram lines out of one file's raw text, e.g. a fenced
// markdown block. A nil Loader verifies the whole file. A Loader error is an
// input failure for that file, never a pass.
type Loader func(text string) ([]string, error)

// VerifyFiles verifies every path in parallel, capped at jobs workers
// (0 = one per CPU). Results keep the order of paths regardless of
// completion order. When events is non-nil every start/finish is reported
// on it; the channel is closed before returning.
func VerifyFiles(ctx context.Context, paths []string, opts verify.Options, jobs int, loader Loader, events chan<- Event) ([]Result, error) {
	if events != nil {
		defer close(events)
	}
	if len(paths) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Indices are unique per goroutine, so no mutex is needed.
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(events, Event{Path: path})
			res := verifyOne(path, opts, loader)
			results[i] = res
			emit(events, Event{
				Path: path,
				Done: true,
				Pass: res.Err == nil && res.Report.Pass(),
				Err:  res.Err,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func verifyOne(path string, opts verify.Options, loader Loader) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	text := string(data)
	if loader != nil {
		lines, err := loader(text)
		if err != nil {
			return Result{Path: path, Err: fmt.Errorf("%s: %w", path, err)}
		}
		text = strings.Join(lines, "\n")
	}
	d := diagram.FromText(text)
	if d.LineCount() == 0 {
		return Result{Path: path, Err: fmt.Errorf("%s: no diagram content found", path)}
	}
	return Result{Path: path, Report: verify.Verify(d, opts)}
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}
