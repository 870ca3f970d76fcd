// File: stats.go
// Title: AST Statistics
// Description: Counts nodes per kind and measures tree depth. The engine
//              attaches these numbers to its log entries.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial statistics collector

package ast

// Stats summarizes the shape of a tree
type Stats struct {
	Nodes  int            // Total number of nodes
	Depth  int            // Length of the longest root-to-leaf path
	ByKind map[string]int // Node count per kind
}

// Fields returns the statistics as flat key-value pairs for logging
func (s Stats) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"nodes": s.Nodes,
		"depth": s.Depth,
	}
	for kind, n := range s.ByKind {
		fields["nodes_"+kind] = n
	}
	return fields
}

// Measure walks e and returns its statistics
func Measure(e Expr) Stats {
	c := &statsCollector{stats: Stats{ByKind: make(map[string]int)}}
	c.stats.Depth = Accept[int](e, c)
	return c.stats
}

// statsCollector returns the depth of each subtree and counts as it goes
type statsCollector struct {
	stats Stats
}

func (c *statsCollector) count(kind string) {
	c.stats.Nodes++
	c.stats.ByKind[kind]++
}

func (c *statsCollector) VisitBinary(expr *Binary) int {
	c.count("binary")
	return 1 + max(Accept[int](expr.Left, c), Accept[int](expr.Right, c))
}

func (c *statsCollector) VisitGrouping(expr *Grouping) int {
	c.count("grouping")
	return 1 + Accept[int](expr.Expression, c)
}

func (c *statsCollector) VisitLiteral(expr *Literal) int {
	c.count("literal")
	return 1
}

func (c *statsCollector) VisitUnary(expr *Unary) int {
	c.count("unary")
	return 1 + Accept[int](expr.Right, c)
}
