package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/probench/probench/internal/registry"
)

// Loaded is the result of discovering probes from a suite location: the
// populated registry plus the run-level settings the suite declared.
type Loaded struct {
	Name      string
	BaseURL   string
	Variables map[string]string
	Registry  *registry.Registry

	open  *RequestSpec
	close *RequestSpec
}

// Load discovers probes from location, which is either a single suite file
// or a directory of *.yaml / *.yml files loaded in sorted order.
//
// An unreadable location or one that yields no probes is a DiscoveryError:
// having nothing to run is a configuration mistake, not an empty success.
// A probe name declared twice, within or across files, is a
// DuplicateProbeError.
func Load(location string) (*Loaded, error) {
	files, err := suiteFiles(location)
	if err != nil {
		return nil, err
	}

	loaded := &Loaded{
		Variables: make(map[string]string),
		Registry:  registry.New(),
	}

	for _, file := range files {
		s, err := parseFile(file)
		if err != nil {
			return nil, err
		}
		if err := loaded.merge(file, s); err != nil {
			return nil, err
		}
	}

	if loaded.Registry.Len() == 0 {
		return nil, &registry.DiscoveryError{
			Location: location,
			Reason:   "no probes declared",
		}
	}
	return loaded, nil
}

func suiteFiles(location string) ([]string, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, &registry.DiscoveryError{
			Location: location,
			Reason:   "location is not readable",
			Err:      err,
		}
	}

	if !info.IsDir() {
		return []string{location}, nil
	}

	entries, err := os.ReadDir(location)
	if err != nil {
		return nil, &registry.DiscoveryError{
			Location: location,
			Reason:   "location is not readable",
			Err:      err,
		}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(location, entry.Name()))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, &registry.DiscoveryError{
			Location: location,
			Reason:   "no suite files found",
		}
	}
	return files, nil
}

func parseFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &registry.DiscoveryError{
			Location: path,
			Reason:   "suite file is not readable",
			Err:      err,
		}
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &registry.DiscoveryError{
			Location: path,
			Reason:   "invalid suite file",
			Err:      err,
		}
	}
	return &s, nil
}

// merge folds one parsed suite file into the loaded result. The first file
// to declare a name, base URL, or lifecycle request wins; probes accumulate
// across files.
func (l *Loaded) merge(path string, s *Suite) error {
	if l.Name == "" {
		l.Name = s.Name
	}
	if l.BaseURL == "" {
		l.BaseURL = s.BaseURL
	}
	if l.open == nil {
		l.open = s.Open
	}
	if l.close == nil {
		l.close = s.Close
	}
	for k, v := range s.Variables {
		if _, exists := l.Variables[k]; !exists {
			l.Variables[k] = v
		}
	}

	for i := range s.Probes {
		spec := s.Probes[i]
		if spec.Name == "" {
			return &registry.DiscoveryError{
				Location: path,
				Reason:   fmt.Sprintf("probe %d has no name", i),
			}
		}
		if spec.Request.Method == "" || spec.Request.Path == "" {
			return &registry.DiscoveryError{
				Location: path,
				Reason:   fmt.Sprintf("probe %q needs a request method and path", spec.Name),
			}
		}
		if err := l.Registry.Register(spec.Name, compile(spec, l.Variables)); err != nil {
			return err
		}
	}
	return nil
}

// resolve substitutes {{name}} placeholders from the suite variables.
func resolve(input string, vars map[string]string) string {
	result := input
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
