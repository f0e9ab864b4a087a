package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCategory indicates a cell value below zero.
	ErrNegativeCategory = errors.New("gridgraph: category must be non-negative")
	// ErrCategoryRange indicates a cell value not below the requested variety.
	ErrCategoryRange = errors.New("gridgraph: category outside variety")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)
