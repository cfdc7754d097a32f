package templates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"
	bolt "go.etcd.io/bbolt"
)

const (
	templatesBucket  = "templates"
	metaBucket       = "meta"
	schemaVersionKey = "schema_version"
	schemaVersion    = "1"

	registryFileMode = 0600
	lockTimeout      = time.Second
)

// Registry is the durable template catalog backed by a bbolt database.
// Keys are template names, values are JSON encoded Template records,
// so listing is naturally sorted by name. The database file is locked
// for the lifetime of the registry, which serializes concurrent
// stencil invocations.
type Registry struct {
	db   *bolt.DB
	path string
}

// OpenRegistry opens or creates the registry database at path.
// Unreadable or invalid content is reported as ErrRegistryCorrupt.
func OpenRegistry(path string) (*Registry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to prepare the registry directory: %w", err)
	}

	db, err := bolt.Open(path, registryFileMode, &bolt.Options{Timeout: lockTimeout})
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, fmt.Errorf("registry %q is locked by another process", path)
		}
		return nil, fmt.Errorf("%w: %s", ErrRegistryCorrupt, err)
	}

	registry := &Registry{db: db, path: path}
	if err := registry.init(); err != nil {
		db.Close()
		return nil, err
	}

	return registry, nil
}

// init creates the buckets of a fresh database and validates an
// existing one: schema version must match and every record must
// decode.
func (r *Registry) init() error {
	return r.db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists([]byte(metaBucket))
		if err != nil {
			return err
		}
		records, err := tx.CreateBucketIfNotExists([]byte(templatesBucket))
		if err != nil {
			return err
		}

		version := meta.Get([]byte(schemaVersionKey))
		if version == nil {
			if records.Stats().KeyN != 0 {
				return fmt.Errorf("%w: records without a schema version", ErrRegistryCorrupt)
			}
			if err := meta.Put([]byte(schemaVersionKey), []byte(schemaVersion)); err != nil {
				return err
			}
			log.Debugf("Initialized a fresh registry at %s", r.path)
		} else if string(version) != schemaVersion {
			return fmt.Errorf("%w: unsupported schema version %q",
				ErrRegistryCorrupt, string(version))
		}

		return records.ForEach(func(name, data []byte) error {
			var record Template
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("%w: unreadable record %q: %s",
					ErrRegistryCorrupt, string(name), err)
			}
			return nil
		})
	})
}

// Close releases the database and its file lock.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Path returns the registry database file path.
func (r *Registry) Path() string {
	return r.path
}

// Add registers a new template. A present record with the same name
// is reported as ErrTemplateExists.
func (r *Registry) Add(record Template) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode template %q: %s", record.Name, err)
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(templatesBucket))
		if bucket.Get([]byte(record.Name)) != nil {
			return fmt.Errorf("template %q: %w", record.Name, ErrTemplateExists)
		}
		return bucket.Put([]byte(record.Name), data)
	})
}

// Put registers a template overwriting a present record with the
// same name.
func (r *Registry) Put(record Template) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode template %q: %s", record.Name, err)
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(templatesBucket)).Put([]byte(record.Name), data)
	})
}

// Get returns the record of the named template.
func (r *Registry) Get(name string) (Template, error) {
	var record Template
	err := r.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(templatesBucket)).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("template %q: %w", name, ErrTemplateNotFound)
		}
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("%w: unreadable record %q: %s", ErrRegistryCorrupt, name, err)
		}
		return nil
	})
	return record, err
}

// List returns all records sorted by template name.
func (r *Registry) List() ([]Template, error) {
	var records []Template
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(templatesBucket)).ForEach(func(name, data []byte) error {
			var record Template
			if err := json.Unmarshal(data, &record); err != nil {
				return fmt.Errorf("%w: unreadable record %q: %s",
					ErrRegistryCorrupt, string(name), err)
			}
			records = append(records, record)
			return nil
		})
	})
	return records, err
}

// Delete removes the record of the named template. The backing
// storage is not touched.
func (r *Registry) Delete(name string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(templatesBucket))
		if bucket.Get([]byte(name)) == nil {
			return fmt.Errorf("template %q: %w", name, ErrTemplateNotFound)
		}
		return bucket.Delete([]byte(name))
	})
}

// Rename atomically replaces the record oldName with the given one.
// The new name must be free.
func (r *Registry) Rename(oldName string, record Template) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode template %q: %s", record.Name, err)
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(templatesBucket))
		if bucket.Get([]byte(oldName)) == nil {
			return fmt.Errorf("template %q: %w", oldName, ErrTemplateNotFound)
		}
		if oldName != record.Name && bucket.Get([]byte(record.Name)) != nil {
			return fmt.Errorf("template %q: %w", record.Name, ErrTemplateExists)
		}
		if err := bucket.Delete([]byte(oldName)); err != nil {
			return err
		}
		return bucket.Put([]byte(record.Name), data)
	})
}
