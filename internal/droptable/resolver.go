package droptable

import (
	"strings"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Resolver finds drop table records for enemy names as they appear in quest data
type Resolver struct {
	table   *Table
	aliases *Aliases
}

// NewResolver creates a Resolver. aliases may be nil for the reference rules.
func NewResolver(table *Table, aliases *Aliases) *Resolver {
	if aliases == nil {
		aliases = DefaultAliases()
	}
	return &Resolver{table: table, aliases: aliases}
}

// Table returns the underlying drop table
func (r *Resolver) Table() *Table {
	return r.table
}

// Aliases returns the naming rules in use
func (r *Resolver) Aliases() *Aliases {
	return r.aliases
}

// FindEnemy looks name up in the episode's enemies. Strategies are tried in order
// and the first hit wins: exact, case-insensitive, Ultimate-to-base alias, a table
// entry whose base name equals the name, then substring either way. The matched
// table key is returned with the record.
func (r *Resolver) FindEnemy(name string, ep domain.Episode) (string, Enemy, bool) {
	if e, ok := r.table.Enemy(ep, name); ok {
		return name, e, true
	}

	names := r.table.EnemyNames(ep)
	folded := domain.FoldName(name)
	for _, key := range names {
		if domain.FoldName(key) == folded {
			e, _ := r.table.Enemy(ep, key)
			return key, e, true
		}
	}

	mapped := r.aliases.BaseName(name)
	if mapped != name {
		if e, ok := r.table.Enemy(ep, mapped); ok {
			return mapped, e, true
		}
	}

	for _, key := range names {
		base := r.aliases.BaseName(key)
		if base == name || base == mapped {
			e, _ := r.table.Enemy(ep, key)
			return key, e, true
		}
	}

	if folded == "" {
		return "", Enemy{}, false
	}
	for _, key := range names {
		k := domain.FoldName(key)
		if strings.Contains(k, folded) || strings.Contains(folded, k) {
			e, _ := r.table.Enemy(ep, key)
			return key, e, true
		}
	}

	return "", Enemy{}, false
}
