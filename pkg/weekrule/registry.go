package weekrule

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// Registry manages a collection of named week rules.
type Registry struct {
	mu       sync.RWMutex
	rules    map[string]*Rule
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onChange func(event string, rule *Rule)
}

// NewRegistry creates a registry seeded with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]*Rule)}
	for _, rule := range builtins() {
		r.rules[rule.Name] = rule
	}
	return r
}

// NewRegistryWithDirectory creates a registry and loads descriptor files
// from the directory on top of the built-ins.
func NewRegistryWithDirectory(dir string) (*Registry, error) {
	r := NewRegistry()
	if err := r.LoadDirectory(dir); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a rule, replacing any existing rule of the same name.
func (r *Registry) Register(rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("rule cannot be nil")
	}
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("invalid rule: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.Name] = rule
	return nil
}

// Unregister removes a rule by name.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rules[name]; !ok {
		return fmt.Errorf("rule %q not found", name)
	}
	delete(r.rules, name)
	return nil
}

// Get returns a rule by name.
func (r *Registry) Get(name string) (*Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[name]
	return rule, ok
}

// List returns all registered rules, sorted by name.
func (r *Registry) List() []*Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]*Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Name < rules[j].Name })
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// LoadDirectory loads all YAML descriptor files from a directory. A
// missing directory is not an error; there is simply nothing to load.
func (r *Registry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, name)); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading rules: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// LoadFile loads a single descriptor file. A file may hold one rule or a
// list of rules.
func (r *Registry) LoadFile(path string) error {
	_, err := r.loadFile(path)
	return err
}

// loadFile registers the rules in a descriptor file and reports which
// rules it registered, so the watch path can notify per rule.
func (r *Registry) loadFile(path string) ([]*Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var rules []*Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		var single Rule
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		rules = []*Rule{&single}
	}

	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			return nil, fmt.Errorf("registering rule: %w", err)
		}
	}
	return rules, nil
}

// Reload resets the registry to the built-ins and reloads the configured
// directory.
func (r *Registry) Reload() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for reload")
	}

	r.mu.Lock()
	r.rules = make(map[string]*Rule)
	for _, rule := range builtins() {
		r.rules[rule.Name] = rule
	}
	r.mu.Unlock()

	return r.LoadDirectory(r.dir)
}

// SetOnChange sets a callback invoked when a watched descriptor changes.
func (r *Registry) SetOnChange(fn func(event string, rule *Rule)) {
	r.onChange = fn
}

// Watch starts watching the descriptor directory for changes.
func (r *Registry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}
	return nil
}

// StopWatch stops watching the descriptor directory.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
		r.stopChan = nil
	}
	if r.watcher != nil {
		r.watcher.Close()
		r.watcher = nil
	}
}

func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				r.handleFileChange(event.Name, "create")
			case event.Op&fsnotify.Write == fsnotify.Write:
				r.handleFileChange(event.Name, "modify")
			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				// A removed file's rules cannot be identified individually;
				// rebuild from the directory.
				_ = r.Reload()
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (r *Registry) handleFileChange(path, eventType string) {
	rules, err := r.loadFile(path)
	if err != nil {
		return
	}

	if r.onChange != nil {
		for _, rule := range rules {
			r.onChange(eventType, rule)
		}
	}
}
