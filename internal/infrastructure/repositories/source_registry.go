package repositories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
	domainRepos "github.com/e-marchand/dep-checker/internal/domain/repositories"
)

// SourceFactory builds a ReleaseRepository from gateway options.
type SourceFactory func(opts entities.SourceOptions) domainRepos.ReleaseRepository

// SourceRegistry manages all registered release-hosting providers.
type SourceRegistry struct {
	sources map[string]SourceFactory
}

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources: make(map[string]SourceFactory),
	}
}

// Register adds a source factory under the given name (e.g. "github").
func (r *SourceRegistry) Register(name string, factory SourceFactory) {
	r.sources[name] = factory
}

// Get returns a configured gateway for the given provider name.
func (r *SourceRegistry) Get(name string, opts entities.SourceOptions) (domainRepos.ReleaseRepository, error) {
	factory, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf(
			"unknown provider type: %q (available: %s)", name, strings.Join(r.Names(), ", "),
		)
	}
	return factory(opts), nil
}

// Names returns the registered provider names, sorted.
func (r *SourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
