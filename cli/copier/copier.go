// Package copier implements filtered recursive directory copying.
//
// The walk is depth first with entries in lexical order, so two copies
// of the same tree always produce the same result. Excluded
// directories are pruned without descending into them. The first
// failure aborts the copy; content already written stays in place and
// cleanup is the caller's call. File content, layout and permission
// bits are reproduced, modification times and ownership are not.
package copier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/apex/log"

	"github.com/stencil-cli/stencil/cli/ignore"
	"github.com/stencil-cli/stencil/cli/util"
)

// SymlinkPolicy selects how symbolic links in the source tree are
// treated.
type SymlinkPolicy int

const (
	// SymlinkPreserve recreates links verbatim.
	SymlinkPreserve SymlinkPolicy = iota
	// SymlinkFollow deep copies link targets. A directory reached
	// through more than one link path is reported as a cycle.
	SymlinkFollow
	// SymlinkSkip leaves links out, counting them as skipped.
	SymlinkSkip
)

// String returns the configuration name of the policy.
func (p SymlinkPolicy) String() string {
	switch p {
	case SymlinkFollow:
		return "follow"
	case SymlinkSkip:
		return "skip"
	default:
		return "preserve"
	}
}

// ParseSymlinkPolicy converts a configuration string into a policy.
func ParseSymlinkPolicy(name string) (SymlinkPolicy, error) {
	switch name {
	case "preserve", "":
		return SymlinkPreserve, nil
	case "follow":
		return SymlinkFollow, nil
	case "skip":
		return SymlinkSkip, nil
	}
	return SymlinkPreserve, fmt.Errorf(
		"unknown symlink policy %q, expected preserve, follow or skip", name)
}

// Options control a single Copy call.
type Options struct {
	// Matcher excludes matching paths from the copy. Nil copies
	// everything.
	Matcher *ignore.Matcher
	// Symlinks is the symbolic link policy.
	Symlinks SymlinkPolicy
	// KeepEmptyDirs makes directories appear in the destination even
	// if everything inside them was excluded. When false, directories
	// are created only when some surviving entry needs them.
	KeepEmptyDirs bool
	// Overwrite allows copying into a non-empty destination. Existing
	// files are rewritten, unrelated files are kept.
	Overwrite bool
	// Progress, if set, is called once per copied entry with its
	// path relative to the source root.
	Progress func(relPath string)
}

// Stats accumulates counters of a finished copy.
type Stats struct {
	// Files is the number of regular files copied.
	Files int
	// Dirs is the number of directories created.
	Dirs int
	// Symlinks is the number of links recreated.
	Symlinks int
	// Skipped counts entries left out: excluded paths (a pruned
	// directory counts once), skipped links and irregular files.
	Skipped int
	// Bytes is the total size of file content copied.
	Bytes int64
}

// ErrDestinationNotEmpty is reported when the destination directory
// exists, has content and overwriting was not requested.
var ErrDestinationNotEmpty = errors.New("destination directory is not empty")

// CopyError wraps a copy failure and names the path it happened at.
type CopyError struct {
	Path string
	Err  error
}

// Error returns error message.
func (e *CopyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CopyError) Unwrap() error {
	return e.Err
}

// failAt wraps err into a CopyError unless it already carries a path.
func failAt(path string, err error) error {
	var copyErr *CopyError
	if errors.As(err, &copyErr) {
		return err
	}
	return &CopyError{Path: path, Err: err}
}

type treeCopier struct {
	ctx     context.Context
	opts    Options
	stats   Stats
	visited map[string]bool
}

// Copy copies the directory tree at src into dst applying the options.
// The destination root itself is always created. Cancelling the
// context stops the copy between entries with the context's error.
func Copy(ctx context.Context, src, dst string, opts Options) (Stats, error) {
	var stats Stats

	srcInfo, err := os.Stat(src)
	if err != nil {
		return stats, failAt(src, err)
	}
	if !srcInfo.IsDir() {
		return stats, failAt(src, errors.New("source is not a directory"))
	}

	if dstInfo, err := os.Stat(dst); err == nil {
		if !dstInfo.IsDir() {
			return stats, failAt(dst, errors.New("destination exists and is not a directory"))
		}
		if !opts.Overwrite {
			empty, err := util.IsEmptyDir(dst)
			if err != nil {
				return stats, failAt(dst, err)
			}
			if !empty {
				return stats, &CopyError{Path: dst, Err: ErrDestinationNotEmpty}
			}
		}
	} else if !os.IsNotExist(err) {
		return stats, failAt(dst, err)
	}

	rootPerm := srcInfo.Mode().Perm()
	if !util.IsDir(dst) {
		if err := os.MkdirAll(dst, rootPerm); err != nil {
			return stats, failAt(dst, err)
		}
		if err := os.Chmod(dst, rootPerm); err != nil {
			return stats, failAt(dst, err)
		}
	}

	copier := &treeCopier{ctx: ctx, opts: opts, visited: make(map[string]bool)}
	if opts.Symlinks == SymlinkFollow {
		if resolved, err := filepath.EvalSymlinks(src); err == nil {
			copier.visited[resolved] = true
		}
	}

	err = copier.copyTree(src, dst, "", func() error { return nil })
	return copier.stats, err
}

// copyTree copies the children of srcDir into dstDir. ensureDst
// creates dstDir and its missing ancestors on first demand, so empty
// directory chains are only materialized when requested.
func (c *treeCopier) copyTree(srcDir, dstDir, relBase string, ensureDst func() error) error {
	if c.opts.KeepEmptyDirs {
		if err := ensureDst(); err != nil {
			return err
		}
	}
	if c.opts.Symlinks == SymlinkFollow {
		if resolved, err := filepath.EvalSymlinks(srcDir); err == nil {
			c.visited[resolved] = true
		}
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return failAt(srcDir, err)
	}

	for _, entry := range entries {
		if err := c.ctx.Err(); err != nil {
			return err
		}

		rel := path.Join(relBase, entry.Name())
		if c.opts.Matcher.Match(rel) {
			c.stats.Skipped++
			log.Debugf("Excluded %q", rel)
			continue
		}

		srcPath := filepath.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, entry.Name())

		switch {
		case entry.Type()&os.ModeSymlink != 0:
			if err := c.copySymlink(srcPath, dstPath, rel, ensureDst); err != nil {
				return err
			}
		case entry.IsDir():
			info, err := entry.Info()
			if err != nil {
				return failAt(srcPath, err)
			}
			makeDir := c.dirCreator(info.Mode().Perm(), dstPath, rel, ensureDst)
			if err := c.copyTree(srcPath, dstPath, rel, makeDir); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := ensureDst(); err != nil {
				return err
			}
			if err := c.copyFile(srcPath, dstPath, rel); err != nil {
				return err
			}
		default:
			// Sockets, devices and the like have no place in a template.
			c.stats.Skipped++
			log.Debugf("Skipped irregular file %q", rel)
		}
	}

	return nil
}

// dirCreator returns a memoized creator of dstPath that first makes
// sure the parent chain exists.
func (c *treeCopier) dirCreator(perm os.FileMode, dstPath, rel string,
	ensureParent func() error,
) func() error {
	done := false
	return func() error {
		if done {
			return nil
		}
		if err := ensureParent(); err != nil {
			return err
		}

		if err := os.Mkdir(dstPath, perm); err != nil {
			if !os.IsExist(err) {
				return failAt(dstPath, err)
			}
			done = true
			return nil
		}
		// Mkdir permissions pass through umask, set them verbatim.
		if err := os.Chmod(dstPath, perm); err != nil {
			return failAt(dstPath, err)
		}

		done = true
		c.stats.Dirs++
		c.progressAt(rel)
		return nil
	}
}

func (c *treeCopier) copyFile(srcPath, dstPath, rel string) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return failAt(srcPath, err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return failAt(srcPath, err)
	}
	perm := info.Mode().Perm()

	dstFile, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return failAt(dstPath, err)
	}

	written, err := io.Copy(dstFile, srcFile)
	if closeErr := dstFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return failAt(dstPath, err)
	}
	if err := os.Chmod(dstPath, perm); err != nil {
		return failAt(dstPath, err)
	}

	c.stats.Files++
	c.stats.Bytes += written
	c.progressAt(rel)
	return nil
}

func (c *treeCopier) copySymlink(srcPath, dstPath, rel string, ensureDst func() error) error {
	switch c.opts.Symlinks {
	case SymlinkSkip:
		c.stats.Skipped++
		log.Debugf("Skipped symlink %q", rel)
		return nil

	case SymlinkFollow:
		resolved, err := filepath.EvalSymlinks(srcPath)
		if err != nil {
			return failAt(srcPath, err)
		}
		info, err := os.Stat(resolved)
		if err != nil {
			return failAt(srcPath, err)
		}

		if info.IsDir() {
			if c.visited[resolved] {
				return failAt(srcPath,
					fmt.Errorf("symbolic link cycle detected (target %q)", resolved))
			}
			makeDir := c.dirCreator(info.Mode().Perm(), dstPath, rel, ensureDst)
			return c.copyTree(resolved, dstPath, rel, makeDir)
		}

		if err := ensureDst(); err != nil {
			return err
		}
		if err := util.CopyFileDeep(srcPath, dstPath); err != nil {
			return failAt(srcPath, err)
		}
		c.stats.Files++
		c.stats.Bytes += info.Size()
		c.progressAt(rel)
		return nil

	default: // SymlinkPreserve
		target, err := os.Readlink(srcPath)
		if err != nil {
			return failAt(srcPath, err)
		}
		if err := ensureDst(); err != nil {
			return err
		}
		if c.opts.Overwrite {
			// os.Symlink refuses to replace an existing link.
			os.Remove(dstPath)
		}
		if err := os.Symlink(target, dstPath); err != nil {
			return failAt(dstPath, err)
		}
		c.stats.Symlinks++
		c.progressAt(rel)
		return nil
	}
}

func (c *treeCopier) progressAt(rel string) {
	if c.opts.Progress != nil {
		c.opts.Progress(rel)
	}
}
