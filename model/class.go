package model

import (
	"io"

	"github.com/tr3ysmith/dxf/core"
)

// Class is one record of the CLASSES section: an application-defined
// class registration.
type Class struct {
	RecordName        string // code 1
	ClassName         string // code 2
	ApplicationName   string // code 3
	ProxyCapabilities int32  // code 90
	InstanceCount     int32  // code 91, R2004 and later
	WasProxy          bool   // code 280
	IsEntity          bool   // code 281
}

// ReadClasses reads the body of a CLASSES section: zero or more 0/CLASS
// records. The section's 0/ENDSEC marker is pushed back for the
// dispatcher.
func ReadClasses(c *core.Cursor) ([]Class, error) {
	var classes []Class
	for {
		pair, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return classes, nil
			}
			return nil, err
		}
		if !pair.IsMarker("CLASS") {
			c.PushBack(pair)
			return classes, nil
		}
		cls, err := readClass(c)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cls)
	}
}

// readClass reads the fields of one class record, stopping before the
// next 0-code marker. Unknown codes are ignored.
func readClass(c *core.Cursor) (Class, error) {
	var cls Class
	for {
		pair, err := c.Next()
		if err != nil {
			if err == io.EOF {
				return cls, nil
			}
			return cls, err
		}
		if pair.Code == 0 {
			c.PushBack(pair)
			return cls, nil
		}
		switch pair.Code {
		case 1:
			cls.RecordName, err = pair.AsString()
		case 2:
			cls.ClassName, err = pair.AsString()
		case 3:
			cls.ApplicationName, err = pair.AsString()
		case 90:
			cls.ProxyCapabilities, err = pair.AsInt32()
		case 91:
			cls.InstanceCount, err = pair.AsInt32()
		case 280:
			cls.WasProxy, err = pair.AsBool()
		case 281:
			cls.IsEntity, err = pair.AsBool()
		}
		if err != nil {
			return cls, err
		}
	}
}

// Write emits the class record. The instance count only exists at R2004
// and later.
func (cls Class) Write(w core.PairWriter, version AcadVersion) error {
	pairs := []core.CodePair{
		core.NewStringPair(0, "CLASS"),
		core.NewStringPair(1, cls.RecordName),
		core.NewStringPair(2, cls.ClassName),
		core.NewStringPair(3, cls.ApplicationName),
		core.NewInt32Pair(90, cls.ProxyCapabilities),
	}
	if version >= R2004 {
		pairs = append(pairs, core.NewInt32Pair(91, cls.InstanceCount))
	}
	pairs = append(pairs,
		core.NewInt16Pair(280, boolInt16(cls.WasProxy)),
		core.NewInt16Pair(281, boolInt16(cls.IsEntity)),
	)
	return writePairs(w, pairs)
}
