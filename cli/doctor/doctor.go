// Package doctor audits the consistency between the template registry
// and the template storage, and repairs what it can.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"
	"github.com/stencil-cli/stencil/cli/templates"
	"github.com/stencil-cli/stencil/cli/util"
)

// Report lists the inconsistencies found in one audit pass.
type Report struct {
	// Dangling are registry records whose storage directory is missing.
	Dangling []templates.Template
	// Orphans are storage directories without a registry record,
	// typically left by a capture that died between the move and the
	// registry write.
	Orphans []string
	// Staging are leftover capture staging directories.
	Staging []string
}

// Clean reports whether the audit found nothing wrong.
func (r *Report) Clean() bool {
	return len(r.Dangling) == 0 && len(r.Orphans) == 0 && len(r.Staging) == 0
}

// Diagnose audits the registry against the storage under templatesDir.
func Diagnose(registry *templates.Registry, templatesDir string) (Report, error) {
	var report Report

	log.Debugf("Auditing registry %q against storage %q", registry.Path(), templatesDir)
	records, err := registry.List()
	if err != nil {
		return report, err
	}

	recorded := make(map[string]bool, len(records))
	for _, record := range records {
		recorded[record.Name] = true
		if !util.IsDir(record.StoragePath) {
			report.Dangling = append(report.Dangling, record)
		}
	}

	entries, err := os.ReadDir(templatesDir)
	if os.IsNotExist(err) {
		return report, nil
	} else if err != nil {
		return report, fmt.Errorf("failed to read templates directory: %s", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case templates.IsStagingDir(name):
			report.Staging = append(report.Staging, filepath.Join(templatesDir, name))
		case recorded[name]:
			// Consistent.
		case templates.ValidateName(name) != nil:
			// Not something stencil would have stored, leave it alone.
		default:
			report.Orphans = append(report.Orphans, filepath.Join(templatesDir, name))
		}
	}

	return report, nil
}

// Fix repairs a report: dangling records are dropped, orphan storage
// is adopted back into the registry under its directory name, stale
// staging directories are deleted.
func Fix(registry *templates.Registry, report Report) error {
	for _, record := range report.Dangling {
		if err := registry.Delete(record.Name); err != nil {
			return fmt.Errorf("failed to drop dangling record %q: %s", record.Name, err)
		}
		log.Infof("Dropped registry record %q, storage was missing", record.Name)
	}

	for _, orphanDir := range report.Orphans {
		record := templates.Template{
			ID:          uuid.NewString(),
			Name:        filepath.Base(orphanDir),
			StoragePath: orphanDir,
			CreatedAt:   time.Now().UTC(),
		}
		if err := registry.Add(record); err != nil {
			return fmt.Errorf("failed to adopt orphan storage %q: %s", orphanDir, err)
		}
		log.Infof("Adopted orphan storage %q as template %q", orphanDir, record.Name)
	}

	for _, stagingDir := range report.Staging {
		if err := os.RemoveAll(stagingDir); err != nil {
			return fmt.Errorf("failed to remove staging leftover %q: %s", stagingDir, err)
		}
		log.Infof("Removed staging leftover %q", stagingDir)
	}

	return nil
}

// Run audits the registry and prints the findings. With fix set it
// also repairs them.
func Run(registryPath, templatesDir string, fix bool) error {
	registry, err := templates.OpenRegistry(registryPath)
	if err != nil {
		return err
	}
	defer registry.Close()

	report, err := Diagnose(registry, templatesDir)
	if err != nil {
		return err
	}

	if report.Clean() {
		log.Infof("Registry and storage are consistent")
		return nil
	}

	for _, record := range report.Dangling {
		log.Warnf("Template %q has no storage at %q", record.Name, record.StoragePath)
	}
	for _, orphanDir := range report.Orphans {
		log.Warnf("Storage %q has no registry record", orphanDir)
	}
	for _, stagingDir := range report.Staging {
		log.Warnf("Staging leftover %q from an interrupted capture", stagingDir)
	}

	if !fix {
		return fmt.Errorf("found %d problem(s), run 'stencil doctor --fix' to repair",
			len(report.Dangling)+len(report.Orphans)+len(report.Staging))
	}

	return Fix(registry, report)
}
