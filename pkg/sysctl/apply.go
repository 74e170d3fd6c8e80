package sysctl

import (
	"errors"
	"log/slog"
	"syscall"
)

// benignErrnos are the write failures tolerated without failing the run:
// reduced privileges, a tunable absent from the running kernel, or a
// read-only mount. EROFS counts as a permission problem because container
// managers usually protect their sysctl trees that way.
var benignErrnos = []error{
	syscall.EPERM,
	syscall.EACCES,
	syscall.EROFS,
	syscall.ENOENT,
}

// Applier writes a list of settings through a Writer, best effort. It holds
// no state across runs; the logger is injected so the core stays testable
// without a real logging subsystem.
type Applier struct {
	Writer   Writer
	Prefixes Prefixes
	Log      *slog.Logger
}

// Result summarizes one apply pass.
type Result struct {
	Applied int
	Skipped int
	Ignored int
	Failed  int

	firstErr error
}

// Err returns the first fatal write error of the run, or nil if every write
// succeeded or failed only benignly.
func (r *Result) Err() error {
	return r.firstErr
}

// Apply processes entries strictly in input order. Entries that miss the
// prefix whitelist are skipped silently. Each remaining entry gets its value
// normalized and a single synchronous write. Benign failures are logged and
// ignored; any other failure is logged at error level and marks the run
// failed, but processing always continues to the end.
func (a *Applier) Apply(entries []Entry) *Result {
	log := a.Log
	if log == nil {
		log = slog.Default()
	}

	res := &Result{}
	for _, e := range entries {
		if !a.Prefixes.Match(e.Name) {
			res.Skipped++
			settingsSkipped.Inc()
			continue
		}

		// Values are already trimmed by the parser; they only need
		// the same dot/slash normalization as names.
		value := Normalize(e.Value)

		err := a.Writer.Write(e.Name, value)
		if err == nil {
			res.Applied++
			settingsApplied.Inc()
			log.Debug("applied setting",
				slog.String("name", e.Name),
				slog.String("value", value),
			)
			continue
		}

		if benign(err) {
			res.Ignored++
			writeFailures.WithLabelValues("benign").Inc()
			log.Info("couldn't write setting, ignoring",
				slog.String("name", e.Name),
				slog.String("value", value),
				slog.String("error", err.Error()),
			)
			continue
		}

		res.Failed++
		writeFailures.WithLabelValues("fatal").Inc()
		log.Error("couldn't write setting",
			slog.String("name", e.Name),
			slog.String("value", value),
			slog.String("error", err.Error()),
		)
		if res.firstErr == nil {
			res.firstErr = err
		}
	}

	return res
}

// benign is a closed-set membership test, not string matching, so the
// classification stays portable.
func benign(err error) bool {
	for _, e := range benignErrnos {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
