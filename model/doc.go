// Package model defines the in-memory representation of a drawing: the
// Document aggregate, its header and version, and the classes, table
// records, blocks, entities, and objects it owns, together with the
// per-record code pair codecs the reader and writer packages drive.
package model
