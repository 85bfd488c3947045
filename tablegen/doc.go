// Package tablegen populates dispatch and lookup tables over a closed-open
// integer range before first use.
//
// The hot decoders index their tables with masked instruction fields, one
// slot per possible field value. Tables are filled once, from package init
// of the consumer, so no lookup ever races table construction and no
// runtime branching remains in the population path.
package tablegen
