// Package runner normalizes a set of manifest files, in parallel, and
// reports a result per file.
package runner

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"nathanbeddoewebdev/pkgsort/internal/history"
	"nathanbeddoewebdev/pkgsort/internal/logging"
	"nathanbeddoewebdev/pkgsort/internal/manifest"
	"nathanbeddoewebdev/pkgsort/internal/normalize"
	"nathanbeddoewebdev/pkgsort/internal/retry"

	"golang.org/x/sync/errgroup"
)

// ErrDeclined is recorded on a result when Confirm refused the write.
var ErrDeclined = errors.New("write declined")

// ConfirmFunc asks whether the sorted output may be written to path.
type ConfirmFunc func(path string, before, after []byte) (bool, error)

// Options configures a Runner.
type Options struct {
	Normalizer *normalize.Normalizer

	// Indent overrides the indent detected in each file when non-empty.
	Indent string

	// Check reports files that would change without writing them.
	Check bool

	// DryRun renders the sorted output into Result.Output without writing.
	DryRun bool

	// History, when set, is used to skip files whose content was already
	// sorted in an earlier run, and records the outcome of each file.
	// A recorded run only counts when it used the same settings.
	History history.Repository

	// Settings identifies configuration the Normalizer cannot describe
	// itself, such as the layout's sort method names. It is folded into
	// the recorded hashes together with the normalizer fingerprint and
	// Indent.
	Settings string

	// Confirm, when set, is consulted before each write. Prompts are
	// issued one file at a time.
	Confirm ConfirmFunc

	// Concurrency caps the number of files processed at once. Zero means
	// GOMAXPROCS.
	Concurrency int

	Logger *slog.Logger
}

// Result is the outcome of processing one file.
type Result struct {
	Path     string
	Outcome  string
	Output   []byte
	Err      error
	Duration time.Duration
}

// Runner processes manifest files.
type Runner struct {
	opts     Options
	settings string
}

// New returns a Runner for opts.
func New(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	if opts.Confirm != nil {
		opts.Concurrency = 1
	}
	r := &Runner{opts: opts}
	if opts.Normalizer != nil {
		r.settings = opts.Normalizer.Fingerprint()
	}
	r.settings += fmt.Sprintf("indent=%q\n%s", opts.Indent, opts.Settings)
	return r
}

// Run processes every path and returns one result per path, in the same
// order. Per-file failures are reported in the results; the returned
// error is non-nil only if ctx was cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)
	for i, p := range paths {
		g.Go(func() error {
			results[i] = r.process(gctx, p)
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}

func (r *Runner) process(ctx context.Context, arg string) (res Result) {
	start := time.Now()
	res.Path = arg
	defer func() {
		res.Duration = time.Since(start)
		if res.Err != nil {
			r.opts.Logger.Warn("failed to process manifest", "path", res.Path, "error", res.Err)
		} else {
			r.opts.Logger.Info("processed manifest", "path", res.Path, "outcome", res.Outcome, "duration", res.Duration)
		}
	}()

	if err := ctx.Err(); err != nil {
		return failed(res, err)
	}

	path, err := manifest.ResolvePath(arg)
	if err != nil {
		return failed(res, err)
	}
	res.Path = path
	key := historyKey(path)

	doc, err := manifest.Read(path)
	if err != nil {
		r.record(ctx, key, res, "", start)
		return failed(res, err)
	}
	hash := r.contentHash(doc.Raw)

	if r.alreadySorted(key, hash) {
		res.Outcome = history.OutcomeSkipped
		return res
	}

	sorted, err := r.opts.Normalizer.Normalize(doc.Root)
	if err != nil {
		res = failed(res, err)
		r.record(ctx, key, res, hash, start)
		return res
	}
	out, err := doc.Render(sorted, r.opts.Indent)
	if err != nil {
		res = failed(res, err)
		r.record(ctx, key, res, hash, start)
		return res
	}
	if r.opts.DryRun {
		res.Output = out
	}

	if bytes.Equal(out, doc.Raw) {
		res.Outcome = history.OutcomeUnchanged
		r.record(ctx, key, res, hash, start)
		return res
	}

	if r.opts.Check || r.opts.DryRun {
		res.Outcome = history.OutcomeWouldSort
		r.record(ctx, key, res, hash, start)
		return res
	}

	if r.opts.Confirm != nil {
		ok, err := r.opts.Confirm(path, doc.Raw, out)
		if err != nil {
			return failed(res, err)
		}
		if !ok {
			res.Outcome = history.OutcomeSkipped
			res.Err = ErrDeclined
			return res
		}
	}

	write := func() error { return manifest.Write(path, out) }
	if err := retry.Do(ctx, retry.DefaultConfig(), retry.IsTransient, write); err != nil {
		res = failed(res, err)
		r.record(ctx, key, res, hash, start)
		return res
	}
	res.Outcome = history.OutcomeSorted
	r.record(ctx, key, res, r.contentHash(out), start)
	return res
}

func failed(res Result, err error) Result {
	res.Outcome = history.OutcomeError
	res.Err = err
	return res
}

// alreadySorted reports whether the last recorded run left this exact
// content in sorted order. Dry runs always render.
func (r *Runner) alreadySorted(key, hash string) bool {
	if r.opts.History == nil || r.opts.DryRun {
		return false
	}
	latest, err := r.opts.History.Latest(key)
	if err != nil {
		r.opts.Logger.Warn("failed to read history", "path", key, "error", err)
		return false
	}
	return latest != nil && latest.Clean() && latest.ContentHash == hash
}

func (r *Runner) record(ctx context.Context, key string, res Result, hash string, start time.Time) {
	if r.opts.History == nil || r.opts.DryRun {
		return
	}
	entry := &history.Entry{
		Path:        key,
		Outcome:     res.Outcome,
		ContentHash: hash,
		DurationMs:  time.Since(start).Milliseconds(),
	}
	if res.Err != nil {
		entry.Detail = res.Err.Error()
	}
	save := func() error { return r.opts.History.Save(entry) }
	if err := retry.Do(ctx, retry.DefaultConfig(), history.IsBusy, save); err != nil {
		r.opts.Logger.Warn("failed to record history", "path", key, "error", err)
	}
}

func historyKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// contentHash digests data together with the runner's settings, so that a
// run under different settings never matches a recorded hash.
func (r *Runner) contentHash(data []byte) string {
	h := sha256.New()
	h.Write([]byte(r.settings))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
