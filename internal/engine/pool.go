package engine

import "sort"

// Cell is a single shared bit. Variable names hold *Cell handles, so two
// names holding the same handle alias each other.
type Cell struct {
	value bool
}

// NewCell returns a fresh cell holding v.
func NewCell(v bool) *Cell {
	return &Cell{value: v}
}

// Value returns the bit stored in the cell.
func (c *Cell) Value() bool {
	return c.value
}

// VariablePool maps variable names to cells.
type VariablePool struct {
	cells map[string]*Cell
}

// NewVariablePool creates an empty pool.
func NewVariablePool() *VariablePool {
	return &VariablePool{cells: make(map[string]*Cell)}
}

// Lookup returns the cell bound to name.
func (p *VariablePool) Lookup(name string) (*Cell, bool) {
	c, ok := p.cells[name]
	return c, ok
}

// Bind points name at a new cell holding v. Earlier aliases of name keep
// the cell they had.
func (p *VariablePool) Bind(name string, v bool) *Cell {
	c := NewCell(v)
	p.cells[name] = c
	return c
}

// Alias points dst at the cell bound to src.
func (p *VariablePool) Alias(dst, src string) bool {
	c, ok := p.cells[src]
	if !ok {
		return false
	}
	p.cells[dst] = c
	return true
}

// Len returns the number of bound names.
func (p *VariablePool) Len() int {
	return len(p.cells)
}

// Names returns the bound names in sorted order.
func (p *VariablePool) Names() []string {
	names := make([]string, 0, len(p.cells))
	for name := range p.cells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LogicPool maps names to truth tables.
type LogicPool struct {
	tables map[string]*Logic
}

// NewLogicPool creates an empty pool.
func NewLogicPool() *LogicPool {
	return &LogicPool{tables: make(map[string]*Logic)}
}

// Lookup returns the table registered as name.
func (p *LogicPool) Lookup(name string) (*Logic, bool) {
	l, ok := p.tables[name]
	return l, ok
}

// Define registers l as name, replacing any previous table.
func (p *LogicPool) Define(name string, l *Logic) {
	p.tables[name] = l
}

// Len returns the number of tables.
func (p *LogicPool) Len() int {
	return len(p.tables)
}

// Names returns the table names in sorted order.
func (p *LogicPool) Names() []string {
	names := make([]string, 0, len(p.tables))
	for name := range p.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
