// Package garden prices fenced garden plots. A plot is a 4-connected region of
// equal plant letters (grid.Regions); its fence price is its area times either
// its perimeter or, with a bulk discount, its number of straight sides.
//
// Sides are counted through corners: a closed rectilinear outline, holes
// included, has exactly as many sides as corners.
//
// Complexity: O(W·H) for all plots, one flood fill plus a corner scan.
package garden
