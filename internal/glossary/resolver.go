// Package glossary resolves a glossary name and language direction to a
// provider glossary id.
package glossary

import (
	"context"
	"fmt"

	"github.com/vkozar/redraft/internal/deepl"
	"github.com/vkozar/redraft/internal/lang"
)

// Catalog lists the provider's glossaries.
type Catalog interface {
	ListGlossaries(ctx context.Context) ([]deepl.Glossary, error)
}

// Resolver matches (name, source, target) against the catalog. The catalog
// is fetched at most once per Resolver, including when nothing matched, so a
// multi-hop request never refetches between hops. Create one Resolver per
// orchestrated request; it is not safe for concurrent use.
type Resolver struct {
	catalog Catalog
	entries []deepl.Glossary
	fetched bool
}

func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns the id of the first catalog entry matching name and the
// base forms of source and target. Direction matters: a DE→EN glossary does
// not match an EN→DE request. An empty name resolves to nothing without
// touching the catalog. A failed catalog fetch aborts the enclosing request
// rather than silently proceeding without a glossary.
func (r *Resolver) Resolve(ctx context.Context, name string, source, target lang.Code) (string, bool, error) {
	if name == "" {
		return "", false, nil
	}
	if !r.fetched {
		entries, err := r.catalog.ListGlossaries(ctx)
		if err != nil {
			return "", false, fmt.Errorf("failed to fetch glossary catalog: %w", err)
		}
		r.entries = entries
		r.fetched = true
	}
	for _, g := range r.entries {
		if g.Name == name && g.SourceLang.BaseEqual(source) && g.TargetLang.BaseEqual(target) {
			return g.ID, true, nil
		}
	}
	return "", false, nil
}
