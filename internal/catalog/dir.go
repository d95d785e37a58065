package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// CustomCategory is the category name user-defined templates appear under.
const CustomCategory = "Custom Templates"

// templateExts are file extensions scanned in a custom templates directory.
var templateExts = map[string]struct{}{
	".lav": {},
	".sem": {},
	".txt": {},
}

// IsTemplateFile reports whether path carries a recognized template
// extension. File watchers use this to ignore unrelated edits.
func IsTemplateFile(path string) bool {
	_, ok := templateExts[strings.ToLower(filepath.Ext(path))]
	return ok
}

// LoadDir reads user template files from dir and returns them as examples,
// sorted by name. A file's display name comes from a leading "# name: ..."
// comment, falling back to the filename stem. A missing directory yields no
// examples and no error.
func LoadDir(dir string) ([]Example, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var examples []Example
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := templateExts[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		name := templateName(entry.Name(), string(content))
		examples = append(examples, Example{Name: name, Syntax: string(content)})
	}

	sort.Slice(examples, func(i, j int) bool { return examples[i].Name < examples[j].Name })
	return examples, nil
}

// templateName extracts the display name from a "# name: ..." header line,
// falling back to the filename without extension.
func templateName(filename, content string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "#"); ok {
			rest = strings.TrimSpace(rest)
			if name, ok := strings.CutPrefix(rest, "name:"); ok {
				if name = strings.TrimSpace(name); name != "" {
					return name
				}
			}
		}
		break
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// Provider hands out the current catalog and supports reloading the custom
// templates directory, e.g. when a file watcher reports changes.
type Provider struct {
	mu      sync.RWMutex
	dir     string
	current *Catalog
}

// NewProvider builds a provider over the built-in catalog, merged with any
// templates already present in dir (empty dir disables custom templates).
func NewProvider(dir string) (*Provider, error) {
	p := &Provider{dir: dir, current: Builtin()}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the current catalog.
func (p *Provider) Get() *Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Reload re-reads the custom templates directory and swaps in a fresh
// catalog. The built-in portfolio is never affected by reloads.
func (p *Provider) Reload() error {
	next := Builtin()
	if p.dir != "" {
		examples, err := LoadDir(p.dir)
		if err != nil {
			return err
		}
		if len(examples) > 0 {
			next = next.WithCategory(Category{Name: CustomCategory, Examples: examples})
		}
	}

	p.mu.Lock()
	p.current = next
	p.mu.Unlock()
	return nil
}
