// Package core provides the low-level building blocks of the DXF wire
// protocol: the CodePair tagged value, the group-code type table, the
// push-back cursor used by every section reader, and the text and binary
// pair codecs.
//
// Higher-level packages (reader, writer, model) consume code pairs through
// the interfaces defined here and never touch raw bytes themselves.
package core
