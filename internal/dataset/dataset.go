// Package dataset loads a curated reference corpus from disk and answers
// questions by literal substring search over it. The corpus is a
// directory per class with a JSON document per subject; it is loaded
// once at startup and never mutated afterwards.
package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one loaded document plus its metadata.
type Entry struct {
	// Class, Subject and Chapter come from the document's metadata
	// fields, falling back to the directory and file names.
	Class   string
	Subject string
	Chapter string

	// Doc is the parsed document body, an arbitrarily nested record
	// with string leaves.
	Doc any

	// Path is the source file, for diagnostics.
	Path string
}

// Dataset is the loaded, immutable corpus. Entries keep load order:
// classes sorted, then subject files sorted within each class.
type Dataset struct {
	entries []Entry
}

// Load walks root (one directory per class, one JSON file per subject)
// and parses every document. Malformed or schema-invalid documents are
// skipped with a warning; a missing root yields an empty dataset.
func Load(root string) (*Dataset, error) {
	ds := &Dataset{}
	if root == "" {
		return ds, nil
	}

	classDirs, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return ds, nil
		}
		return nil, fmt.Errorf("read dataset root: %w", err)
	}
	sort.Slice(classDirs, func(i, j int) bool { return classDirs[i].Name() < classDirs[j].Name() })

	for _, dir := range classDirs {
		if !dir.IsDir() {
			continue
		}
		classPath := filepath.Join(root, dir.Name())

		files, err := os.ReadDir(classPath)
		if err != nil {
			slog.Warn("skipping unreadable class directory", "path", classPath, "error", err)
			continue
		}
		sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			path := filepath.Join(classPath, f.Name())
			entry, err := loadEntry(path, dir.Name(), f.Name())
			if err != nil {
				slog.Warn("skipping malformed dataset document", "path", path, "error", err)
				continue
			}
			ds.entries = append(ds.entries, entry)
		}
	}

	return ds, nil
}

// loadEntry parses and validates one document.
func loadEntry(path, dirName, fileName string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Entry{}, fmt.Errorf("parse JSON: %w", err)
	}

	if err := validateDocument(doc); err != nil {
		return Entry{}, fmt.Errorf("validate: %w", err)
	}

	entry := Entry{
		Class:   strings.TrimPrefix(dirName, "class-"),
		Subject: strings.TrimSuffix(fileName, ".json"),
		Doc:     doc,
		Path:    path,
	}

	if m, ok := doc.(map[string]any); ok {
		if v := metaString(m, "class"); v != "" {
			entry.Class = v
		}
		if v := metaString(m, "subject"); v != "" {
			entry.Subject = v
		}
		if v := metaString(m, "chapter_name"); v != "" {
			entry.Chapter = v
		} else if v := metaString(m, "chapter"); v != "" {
			entry.Chapter = v
		}
	}

	return entry, nil
}

// metaString reads a metadata field that may be a string or a number.
func metaString(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%v", v), ".0")
	default:
		return ""
	}
}

// Len returns the number of loaded entries.
func (d *Dataset) Len() int {
	return len(d.entries)
}

// Entries returns the loaded entries in load order.
func (d *Dataset) Entries() []Entry {
	return d.entries
}
