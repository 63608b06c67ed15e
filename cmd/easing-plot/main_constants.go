package main

// Default command-line flag values
const (
	defaultCurve    = "elastic-out"
	defaultSteps    = 21
	defaultFrom     = 0.0
	defaultTo       = 1.0
	defaultDuration = 1.0
)

// ASCII plot dimensions
const (
	plotWidth  = 64
	plotHeight = 16
	plotMark   = '*'
	plotBlank  = ' '
)

// Output formatting
const (
	minSteps       = 2
	valuePrecision = 6
	midRowDivisor  = 2
)
