package annotation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// LoadOptions are options for Load.
type LoadOptions struct {
	// Locale selects a file if Load is called for a directory. If empty, the
	// locale is taken from the environment.
	Locale string
}

// Load reads a dataset from a file. The format is selected by the file
// extension: ".json" for CLDR JSON, ".yaml" or ".yml" for YAML.
//
// If path is a directory, it is expected to contain one dataset per locale,
// either as <tag>.json, <tag>.yaml, <tag>.yml or <tag>/annotations.json (the
// layout of the CLDR distribution). The file best matching opts.Locale
// is loaded.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	if info.IsDir() {
		if path, err = resolveLocaleFile(path, opts.Locale); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadCLDR(f, path)
	case ".yaml", ".yml":
		return ReadYAML(f, path)
	}
	return nil, &LoadError{Source: path, Err: fmt.Errorf("unsupported file type %q", filepath.Ext(path))}
}

var datasetExtensions = []string{".json", ".yaml", ".yml"}

type localeFile struct {
	tag  language.Tag
	path string
}

// resolveLocaleFile selects a dataset file from a directory.
func resolveLocaleFile(dir string, locale string) (string, error) {
	files, err := localeFiles(dir)
	if err != nil {
		return "", &LoadError{Source: dir, Err: err}
	}
	if len(files) == 0 {
		return "", &LoadError{Source: dir, Err: errors.New("no dataset files in directory")}
	}
	if locale == "" {
		locale = DetectLocale()
	}
	tags := make([]language.Tag, len(files))
	for i, f := range files {
		tags[i] = f.tag
	}
	i, confidence := matchLocale(locale, tags)
	if confidence == language.No {
		tracer().Infof("no dataset for locale %s, falling back to %s", locale, files[i].tag)
	}
	tracer().Debugf("locale %s resolves to %s", locale, files[i].path)
	return files[i].path, nil
}

func localeFiles(dir string) ([]localeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []localeFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			p := filepath.Join(dir, name, "annotations.json")
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if tag, err := language.Parse(name); err == nil {
				files = append(files, localeFile{tag: tag, path: p})
			}
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if !isDatasetExtension(ext) {
			continue
		}
		if tag, err := language.Parse(strings.TrimSuffix(name, filepath.Ext(name))); err == nil {
			files = append(files, localeFile{tag: tag, path: filepath.Join(dir, name)})
		}
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].path < files[j].path
	})
	return files, nil
}

func isDatasetExtension(ext string) bool {
	for _, x := range datasetExtensions {
		if ext == x {
			return true
		}
	}
	return false
}
