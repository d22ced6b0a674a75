// Package itemvalue classifies an item name against the price catalogs and routes
// it to the calculator for its category.
package itemvalue

import (
	"fmt"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/armor"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/patterns"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/weapon"
)

// strategy values items of one category
type strategy struct {
	category domain.Category
	has      func(name string) bool
	value    func(name, area string) (float64, error)
}

// Router values any catalog item. Categories are probed in a fixed order and the
// first catalog containing the name wins.
type Router struct {
	catalog    *pricing.Catalog
	tables     *patterns.Tables
	weapons    *weapon.Calculator
	armor      *armor.Calculator
	strategies []strategy
	cache      *valueCache
}

// NewRouter creates a Router over catalog and tables. tables may be nil for the defaults.
func NewRouter(catalog *pricing.Catalog, tables *patterns.Tables, cacheCfg CacheConfig) *Router {
	if tables == nil {
		tables = patterns.Default()
	}
	return newRouter(catalog, tables, newValueCache(cacheCfg))
}

func newRouter(catalog *pricing.Catalog, tables *patterns.Tables, cache *valueCache) *Router {
	r := &Router{
		catalog: catalog,
		tables:  tables,
		weapons: weapon.NewCalculator(catalog, tables),
		armor:   armor.NewCalculator(catalog),
		cache:   cache,
	}
	r.strategies = []strategy{
		{domain.CategoryWeapon, r.hasWeapon, r.weapons.ExpectedValue},
		{domain.CategoryFrame, r.has(domain.CategoryFrame), ignoreArea(r.armor.FrameExpectedValue)},
		{domain.CategoryBarrier, r.has(domain.CategoryBarrier), ignoreArea(r.armor.BarrierExpectedValue)},
		{domain.CategoryUnit, r.has(domain.CategoryUnit), ignoreArea(func(name string) (float64, error) {
			return catalog.LookupUnit(name, 1)
		})},
		{domain.CategoryCell, r.has(domain.CategoryCell), ignoreArea(catalog.LookupCell)},
		{domain.CategoryTool, r.has(domain.CategoryTool), ignoreArea(func(name string) (float64, error) {
			return catalog.LookupTool(name, pricing.DefaultToolQuantity)
		})},
		{domain.CategoryMag, r.has(domain.CategoryMag), ignoreArea(func(name string) (float64, error) {
			return catalog.LookupMag(name, pricing.DefaultMagLevel)
		})},
		{domain.CategoryDisk, r.has(domain.CategoryDisk), ignoreArea(func(name string) (float64, error) {
			return catalog.LookupDisk(name, pricing.DefaultDiskLevel)
		})},
	}
	return r
}

func (r *Router) has(category domain.Category) func(string) bool {
	return func(name string) bool { return r.catalog.Has(category, name) }
}

// hasWeapon also accepts common weapons, which are valued at base
func (r *Router) hasWeapon(name string) bool {
	if r.catalog.Has(domain.CategoryWeapon, name) {
		return true
	}
	_, ok := r.catalog.CommonWeapon(name)
	return ok
}

func ignoreArea(fn func(name string) (float64, error)) func(name, area string) (float64, error) {
	return func(name, _ string) (float64, error) { return fn(name) }
}

// WithStrategy returns a router resolving prices with s. The value cache is shared.
func (r *Router) WithStrategy(s pricing.Strategy) *Router {
	if s == "" || s == r.catalog.Strategy() {
		return r
	}
	return newRouter(r.catalog.WithStrategy(s), r.tables, r.cache)
}

// Catalog returns the catalog the router prices against
func (r *Router) Catalog() *pricing.Catalog {
	return r.catalog
}

// Tables returns the roll tables used for weapons
func (r *Router) Tables() *patterns.Tables {
	return r.tables
}

// Classify returns the first category whose catalog contains name
func (r *Router) Classify(name string) (domain.Category, error) {
	for _, s := range r.strategies {
		if s.has(name) {
			return s.category, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrItemNotClassifiable, name)
}

// ClassifyAndValue classifies name and returns its expected value. area only
// affects weapons.
func (r *Router) ClassifyAndValue(name, area string) (domain.Category, float64, error) {
	key := cacheKey{strategy: r.catalog.Strategy(), name: name, area: area}
	if r.cache != nil {
		if entry, ok := r.cache.Get(key); ok {
			return entry.Category, entry.Value, nil
		}
	}

	for _, s := range r.strategies {
		if !s.has(name) {
			continue
		}
		value, err := s.value(name, area)
		if err != nil {
			return "", 0, fmt.Errorf("failed to value %s %q: %w", s.category, name, err)
		}
		if r.cache != nil {
			r.cache.Set(key, s.category, value)
		}
		return s.category, value, nil
	}
	return "", 0, fmt.Errorf("%w: %q", domain.ErrItemNotClassifiable, name)
}

// Value is ClassifyAndValue without the category
func (r *Router) Value(name, area string) (float64, error) {
	_, v, err := r.ClassifyAndValue(name, area)
	return v, err
}

// DiskValue prices a technique disk at level
func (r *Router) DiskValue(name string, level int) (float64, error) {
	return r.catalog.LookupDisk(name, level)
}

// Breakdown is the itemized valuation of one item. Only weapons, frames and
// barriers carry a detailed breakdown.
type Breakdown struct {
	Item     string            `json:"item"`
	Category domain.Category   `json:"category"`
	Value    float64           `json:"value"`
	Weapon   *weapon.Breakdown `json:"weapon,omitempty"`
	Armor    *armor.Breakdown  `json:"armor,omitempty"`
}

// Breakdown classifies name and returns its itemized valuation
func (r *Router) Breakdown(name, area string) (*Breakdown, error) {
	category, value, err := r.ClassifyAndValue(name, area)
	if err != nil {
		return nil, err
	}

	b := &Breakdown{Item: name, Category: category, Value: value}
	switch category {
	case domain.CategoryWeapon:
		b.Weapon, err = r.weapons.Breakdown(name, area)
	case domain.CategoryFrame:
		b.Armor, err = r.armor.FrameBreakdown(name)
	case domain.CategoryBarrier:
		b.Armor, err = r.armor.BarrierBreakdown(name)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CacheStats reports value cache statistics; zero when caching is disabled
func (r *Router) CacheStats() CacheStats {
	if r.cache == nil {
		return CacheStats{}
	}
	return r.cache.GetStats()
}

// ClearCache drops every memoized value
func (r *Router) ClearCache() {
	if r.cache != nil {
		r.cache.Clear()
	}
}
