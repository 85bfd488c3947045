// Package rom loads a cartridge image into memory in one shot.
//
// Load is the bootstrap path: the whole file or nothing, with failure
// escalated to a fatal diagnostic. Read is the error-returning variant for
// callers that want to recover. The returned Image is owned by the caller
// and not retained here.
package rom
