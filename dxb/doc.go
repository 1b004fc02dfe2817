// Package dxb implements the legacy DXB binary-only drawing encoding:
// a fixed signature line followed by a flat stream of typed items. The
// format predates the tag-value encodings and can represent only a
// small entity repertoire; saving skips entities it cannot express.
package dxb
