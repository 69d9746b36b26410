// Package replacer commits re-encoded derived binaries back over their
// original files.
package replacer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a Replacer.
type Options struct {
	// Converter is the external converter executable.
	Converter string
	// DerivedSuffix locates the intermediate representation of an
	// original file.
	DerivedSuffix string
}

// Replacer runs the four-phase commit protocol: delete the originals,
// convert each intermediate to a freshly named binary, rename the fresh
// binaries onto the original names, and clean up intermediates only when
// the whole batch made it through. The protocol is deliberately not
// transactional: an original is deleted before its replacement exists, so
// a crash in between leaves a gap that the per-file accounting surfaces
// instead of hiding.
type Replacer struct {
	opts   Options
	store  ports.CacheStore
	runner ports.Runner
	logger ports.Logger
}

// New creates a Replacer.
func New(opts Options, store ports.CacheStore, runner ports.Runner, logger ports.Logger) *Replacer {
	if opts.DerivedSuffix == "" {
		opts.DerivedSuffix = ".converted.xml"
	}
	return &Replacer{
		opts:   opts,
		store:  store,
		runner: runner,
		logger: logger,
	}
}

type commitPhase int

const (
	phaseUntouched commitPhase = iota
	phaseDeleted
	phaseConverted
	phaseRenamed
)

type fileState struct {
	original     string
	intermediate string
	fresh        string
	phase        commitPhase
	err          error
}

// Commit replaces every original in the batch with its re-encoded binary.
// Phase failures are per file and never halt the batch; the result
// partitions the batch into fully converted, partially converted, and
// untouched, never a single flag. Intermediates are deleted only when
// every file completed all phases, otherwise all of them are preserved
// for manual recovery.
func (r *Replacer) Commit(ctx context.Context, files []string) domain.CommitResult {
	states := make([]*fileState, 0, len(files))
	for _, f := range files {
		states = append(states, &fileState{
			original:     f,
			intermediate: f + r.opts.DerivedSuffix,
			fresh:        freshName(f),
		})
	}

	r.deletePhase(states)
	r.convertPhase(ctx, states)
	r.renamePhase(states)

	var result domain.CommitResult
	for _, st := range states {
		switch st.phase {
		case phaseRenamed:
			result.FullyConverted = append(result.FullyConverted, st.original)
			// The committed binary no longer matches the fingerprint
			// captured from the old content.
			r.store.InvalidateConversion(st.original)
		case phaseUntouched:
			result.Untouched = append(result.Untouched, st.original)
		default:
			result.PartiallyConverted = append(result.PartiallyConverted, st.original)
		}
		if st.err != nil {
			r.logger.Warn("commit: " + st.original + ": " + st.err.Error())
		}
	}

	if result.Complete() {
		r.cleanupPhase(states)
	} else {
		r.logger.Warn("commit incomplete, preserving intermediate files for manual recovery")
	}
	r.store.Flush()

	return result
}

// deletePhase removes every original, relaxing a read-only bit when the
// first attempt is refused.
func (r *Replacer) deletePhase(states []*fileState) {
	for _, st := range states {
		if _, err := os.Stat(st.intermediate); err != nil {
			st.err = zerr.Wrap(err, "intermediate representation missing")
			continue
		}
		if err := removeForced(st.original); err != nil {
			st.err = zerr.Wrap(err, "deleting original")
			continue
		}
		st.phase = phaseDeleted
	}
}

// convertPhase produces a freshly named binary from each intermediate,
// never writing over the original name directly.
func (r *Replacer) convertPhase(ctx context.Context, states []*fileState) {
	for _, st := range states {
		if st.phase != phaseDeleted {
			continue
		}
		err := r.runner.Convert(ctx, domain.ConversionTask{
			Source:    st.intermediate,
			Converter: r.opts.Converter,
		}, st.fresh)
		if err != nil {
			st.err = zerr.Wrap(err, "converting intermediate")
			continue
		}
		st.phase = phaseConverted
	}
}

// renamePhase moves each fresh binary onto the original name. A target
// that unexpectedly reappeared gets one corrective delete-then-rename.
func (r *Replacer) renamePhase(states []*fileState) {
	for _, st := range states {
		if st.phase != phaseConverted {
			continue
		}
		err := os.Rename(st.fresh, st.original)
		if err != nil && fileExists(st.original) {
			if rmErr := removeForced(st.original); rmErr == nil {
				err = os.Rename(st.fresh, st.original)
			}
		}
		if err != nil {
			st.err = zerr.Wrap(err, "renaming fresh binary onto original")
			continue
		}
		st.phase = phaseRenamed
	}
}

func (r *Replacer) cleanupPhase(states []*fileState) {
	for _, st := range states {
		if err := os.Remove(st.intermediate); err != nil {
			r.logger.Warn("commit: removing intermediate " + st.intermediate + ": " + err.Error())
		}
	}
}

// freshName derives the distinct output name the converter writes during
// commit: level.fcb becomes level_new.fcb in the same directory.
func freshName(original string) string {
	dir := filepath.Dir(original)
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+"_new"+ext)
}

func removeForced(path string) error {
	err := os.Remove(path)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	if chErr := os.Chmod(path, 0o644); chErr != nil {
		return err
	}
	return os.Remove(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
