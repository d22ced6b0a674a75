package pricing

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Options controls how prices are resolved
type Options struct {
	Strategy Strategy
	// MissingPriceIsZero values absent items at 0 instead of returning ErrPriceNotFound
	MissingPriceIsZero bool
}

// DefaultOptions returns the minimum strategy with missing prices treated as zero
func DefaultOptions() Options {
	return Options{Strategy: DefaultStrategy, MissingPriceIsZero: true}
}

// Data is the parsed content of a price guide directory
type Data struct {
	Weapons       map[string]WeaponEntry
	CommonWeapons map[string]WeaponEntry
	SRank         SRankData
	Frames        map[string]ArmorEntry
	Barriers      map[string]ArmorEntry
	Units         map[string]BaseEntry
	Cells         map[string]BaseEntry
	Tools         map[string]BaseEntry
	Mags          map[string]BaseEntry
	Disks         map[string]LevelTable
}

// table is a name-keyed catalog table with case-insensitive lookup
type table[T any] struct {
	entries map[string]T
	folded  map[string]string
}

func newTable[T any](entries map[string]T) table[T] {
	t := table[T]{
		entries: make(map[string]T, len(entries)),
		folded:  make(map[string]string, len(entries)),
	}
	// sorted so that keys differing only in case resolve deterministically
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		t.entries[k] = entries[k]
		f := domain.FoldName(k)
		if _, exists := t.folded[f]; !exists {
			t.folded[f] = k
		}
	}
	return t
}

// lookup tries the exact key first, then a case-insensitive match
func (t table[T]) lookup(name string) (T, bool) {
	if v, ok := t.entries[name]; ok {
		return v, true
	}
	if k, ok := t.folded[domain.FoldName(name)]; ok {
		return t.entries[k], true
	}
	var zero T
	return zero, false
}

func (t table[T]) has(name string) bool {
	_, ok := t.lookup(name)
	return ok
}

// Catalog answers price lookups over an immutable price guide
type Catalog struct {
	opts Options

	weapons        table[*WeaponEntry]
	commonWeapons  table[*WeaponEntry]
	srankWeapons   table[BaseEntry]
	srankAbilities table[BaseEntry]
	frames         table[ArmorEntry]
	barriers       table[ArmorEntry]
	units          table[BaseEntry]
	cells          table[BaseEntry]
	tools          table[BaseEntry]
	mags           table[BaseEntry]
	disks          table[[]Tier]
}

// NewCatalog builds a catalog from parsed price data
func NewCatalog(data Data, opts Options) *Catalog {
	if opts.Strategy == "" {
		opts.Strategy = DefaultStrategy
	}
	return &Catalog{
		opts:           opts,
		weapons:        newTable(prepareWeapons(data.Weapons)),
		commonWeapons:  newTable(prepareWeapons(data.CommonWeapons)),
		srankWeapons:   newTable(data.SRank.Weapons),
		srankAbilities: newTable(data.SRank.Modifiers),
		frames:         newTable(data.Frames),
		barriers:       newTable(data.Barriers),
		units:          newTable(data.Units),
		cells:          newTable(data.Cells),
		tools:          newTable(data.Tools),
		mags:           newTable(data.Mags),
		disks:          newTable(prepareDisks(data.Disks)),
	}
}

func prepareWeapons(in map[string]WeaponEntry) map[string]*WeaponEntry {
	out := make(map[string]*WeaponEntry, len(in))
	for name, entry := range in {
		e := entry
		e.prepare()
		out[name] = &e
	}
	return out
}

func prepareDisks(in map[string]LevelTable) map[string][]Tier {
	out := make(map[string][]Tier, len(in))
	for name, levels := range in {
		out[name] = sortTiers(levels)
	}
	return out
}

// WithStrategy returns a catalog sharing the same tables but resolving ranges with s
func (c *Catalog) WithStrategy(s Strategy) *Catalog {
	if s == "" || s == c.opts.Strategy {
		return c
	}
	clone := *c
	clone.opts.Strategy = s
	return &clone
}

// Strategy returns the active price strategy
func (c *Catalog) Strategy() Strategy {
	return c.opts.Strategy
}

// Resolve resolves a price text with the catalog's strategy
func (c *Catalog) Resolve(p PriceText) float64 {
	return ResolveRange(string(p), c.opts.Strategy)
}

func (c *Catalog) resolvePtr(p *PriceText) float64 {
	return ResolveRange(textOf(p), c.opts.Strategy)
}

// missing applies the missing-price policy
func (c *Catalog) missing(name string, category domain.Category) (float64, error) {
	if c.opts.MissingPriceIsZero {
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q not found in %s prices", domain.ErrPriceNotFound, name, category)
}

// Has reports whether the named item exists in the category's table
func (c *Catalog) Has(category domain.Category, name string) bool {
	switch category {
	case domain.CategoryWeapon:
		return c.weapons.has(name)
	case domain.CategoryFrame:
		return c.frames.has(name)
	case domain.CategoryBarrier:
		return c.barriers.has(name)
	case domain.CategoryUnit:
		return c.units.has(name)
	case domain.CategoryCell:
		return c.cells.has(name)
	case domain.CategoryTool:
		return c.tools.has(name)
	case domain.CategoryMag:
		return c.mags.has(name)
	case domain.CategoryDisk:
		return c.disks.has(name)
	}
	return false
}

// Weapon returns the rare weapon entry for name
func (c *Catalog) Weapon(name string) (*WeaponEntry, bool) {
	return c.weapons.lookup(name)
}

// CommonWeapon returns the common weapon entry for name
func (c *Catalog) CommonWeapon(name string) (*WeaponEntry, bool) {
	return c.commonWeapons.lookup(name)
}

// Frame returns the frame entry for name
func (c *Catalog) Frame(name string) (ArmorEntry, bool) {
	return c.frames.lookup(name)
}

// Barrier returns the barrier entry for name
func (c *Catalog) Barrier(name string) (ArmorEntry, bool) {
	return c.barriers.lookup(name)
}

// WeaponBase is the weapon's base price. A weapon without a base is valued at its
// "0" hit price, and at 0 when that is missing too.
func (c *Catalog) WeaponBase(w *WeaponEntry) float64 {
	if w.Base != nil {
		return c.resolvePtr(w.Base)
	}
	if p, ok := w.HitValues[NoHitKey]; ok {
		return c.Resolve(p)
	}
	return 0
}

// ModifierPrice resolves the weapon's price for one attribute code; N/A prices are 0
func (c *Catalog) ModifierPrice(w *WeaponEntry, attribute string) float64 {
	return c.Resolve(w.Modifiers[attribute])
}

// HitPrice resolves the price for the greatest priced threshold <= hit
func (c *Catalog) HitPrice(w *WeaponEntry, hit int) float64 {
	tier, ok := w.TierAtHit(hit)
	if !ok {
		return 0
	}
	return c.Resolve(tier.Price)
}

// LookupBase returns the base price of an item in the given category
func (c *Catalog) LookupBase(name string, category domain.Category) (float64, error) {
	switch category {
	case domain.CategoryWeapon:
		return c.LookupWeapon(name, nil, 0)
	case domain.CategoryFrame:
		return c.LookupFrame(name, 0)
	case domain.CategoryBarrier:
		return c.LookupBarrier(name)
	case domain.CategoryUnit:
		return c.LookupUnit(name, 1)
	case domain.CategoryCell:
		return c.LookupCell(name)
	case domain.CategoryTool:
		return c.LookupTool(name, 1)
	case domain.CategoryMag:
		return c.LookupMag(name, DefaultMagLevel)
	case domain.CategoryDisk:
		return c.LookupDisk(name, DefaultDiskLevel)
	}
	return 0, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
}

// LookupWeapon prices a rolled weapon: base, plus modifier prices for attributes above
// HighAttributeThreshold, plus the hit price for the greatest threshold <= hit
func (c *Catalog) LookupWeapon(name string, attributes map[string]int, hit int) (float64, error) {
	w, ok := c.weapons.lookup(name)
	if !ok {
		return c.missing(name, domain.CategoryWeapon)
	}

	price := c.WeaponBase(w)
	for attribute, value := range attributes {
		if value > HighAttributeThreshold && w.HasModifier(attribute) {
			price += c.ModifierPrice(w, attribute)
		}
	}
	if hit > 0 {
		price += c.HitPrice(w, hit)
	}
	return price, nil
}

// LookupSRankWeapon prices an S-rank weapon plus its ability surcharge. An empty
// ability adds nothing; an unknown one is always an error.
func (c *Catalog) LookupSRankWeapon(name, ability string) (float64, error) {
	w, ok := c.srankWeapons.lookup(name)
	if !ok {
		return c.missing(name, domain.CategoryWeapon)
	}

	price := c.resolvePtr(w.Base)
	if ability == "" {
		return price, nil
	}

	a, ok := c.srankAbilities.lookup(ability)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrAbilityNotFound, ability)
	}
	return price + c.resolvePtr(a.Base), nil
}

// LookupFrame prices a frame at base plus the AddSlot tool price per slot
func (c *Catalog) LookupFrame(name string, slots int) (float64, error) {
	f, ok := c.frames.lookup(name)
	if !ok {
		return c.missing(name, domain.CategoryFrame)
	}

	price := c.resolvePtr(f.Base)
	if slots > 0 {
		slotPrice, err := c.LookupTool(AddSlotTool, slots)
		if err != nil {
			return 0, err
		}
		price += slotPrice
	}
	return price, nil
}

// LookupBarrier prices a barrier at base
func (c *Catalog) LookupBarrier(name string) (float64, error) {
	b, ok := c.barriers.lookup(name)
	if !ok {
		return c.missing(name, domain.CategoryBarrier)
	}
	return c.resolvePtr(b.Base), nil
}

// LookupUnit prices quantity units
func (c *Catalog) LookupUnit(name string, quantity int) (float64, error) {
	return c.lookupBase(c.units, name, domain.CategoryUnit, quantity)
}

// LookupTool prices quantity tools
func (c *Catalog) LookupTool(name string, quantity int) (float64, error) {
	return c.lookupBase(c.tools, name, domain.CategoryTool, quantity)
}

// LookupCell prices a cell
func (c *Catalog) LookupCell(name string) (float64, error) {
	return c.lookupBase(c.cells, name, domain.CategoryCell, 1)
}

// LookupMag prices a mag. Level does not change the price.
func (c *Catalog) LookupMag(name string, _ int) (float64, error) {
	return c.lookupBase(c.mags, name, domain.CategoryMag, 1)
}

// LookupDisk prices a technique disk at the greatest priced level <= level.
// Levels below every priced level are worth 0.
func (c *Catalog) LookupDisk(name string, level int) (float64, error) {
	tiers, ok := c.disks.lookup(name)
	if !ok {
		return c.missing(name, domain.CategoryDisk)
	}
	tier, ok := floorTier(tiers, level)
	if !ok {
		return 0, nil
	}
	return c.Resolve(tier.Price), nil
}

func (c *Catalog) lookupBase(t table[BaseEntry], name string, category domain.Category, quantity int) (float64, error) {
	e, ok := t.lookup(name)
	if !ok {
		return c.missing(name, category)
	}
	return c.resolvePtr(e.Base) * float64(quantity), nil
}
