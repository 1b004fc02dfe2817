package model

import (
	"fmt"

	"github.com/tr3ysmith/dxf/core"
)

// AcadVersion is an ordered enumeration of drawing format revisions.
// Several writer decisions compare against fixed revisions: handles are
// always written at R13 and later, and the thumbnail section only exists
// at R2000 and later.
type AcadVersion int

const (
	R9 AcadVersion = iota
	R10
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
)

// String returns the release name of the version.
func (v AcadVersion) String() string {
	switch v {
	case R9:
		return "R9"
	case R10:
		return "R10"
	case R11:
		return "R11"
	case R12:
		return "R12"
	case R13:
		return "R13"
	case R14:
		return "R14"
	case R2000:
		return "R2000"
	case R2004:
		return "R2004"
	case R2007:
		return "R2007"
	case R2010:
		return "R2010"
	case R2013:
		return "R2013"
	case R2018:
		return "R2018"
	default:
		return "Unknown"
	}
}

// Code returns the $ACADVER string for the version. R11 and R12 share a
// code; parsing always yields R12.
func (v AcadVersion) Code() string {
	switch v {
	case R9:
		return "AC1004"
	case R10:
		return "AC1006"
	case R11, R12:
		return "AC1009"
	case R13:
		return "AC1012"
	case R14:
		return "AC1014"
	case R2000:
		return "AC1015"
	case R2004:
		return "AC1018"
	case R2007:
		return "AC1021"
	case R2010:
		return "AC1024"
	case R2013:
		return "AC1027"
	case R2018:
		return "AC1032"
	default:
		return ""
	}
}

// VersionFromCode parses a $ACADVER string.
func VersionFromCode(code string) (AcadVersion, error) {
	switch code {
	case "AC1004":
		return R9, nil
	case "AC1006":
		return R10, nil
	case "AC1009":
		return R12, nil
	case "AC1012":
		return R13, nil
	case "AC1014":
		return R14, nil
	case "AC1015":
		return R2000, nil
	case "AC1018":
		return R2004, nil
	case "AC1021":
		return R2007, nil
	case "AC1024":
		return R2010, nil
	case "AC1027":
		return R2013, nil
	case "AC1032":
		return R2018, nil
	}
	return R12, fmt.Errorf("%w: unsupported drawing version %q", core.ErrInvalidValue, code)
}

// SupportsHandles reports whether object handles are mandatory at this
// version.
func (v AcadVersion) SupportsHandles() bool {
	return v >= R13
}

// SupportsThumbnail reports whether the THUMBNAILIMAGE section exists at
// this version.
func (v AcadVersion) SupportsThumbnail() bool {
	return v >= R2000
}

// IsUnicode reports whether text files at this version store strings as
// UTF-8 rather than through an ANSI code page.
func (v AcadVersion) IsUnicode() bool {
	return v >= R2007
}
