// Package reader loads drawings from any of the supported encodings. It
// sniffs the format from the first line, then drives the section state
// machine over a push-back cursor of code pairs, delegating section
// bodies to the record codecs in package model.
package reader
