package model

import "github.com/tr3ysmith/dxf/core"

// WriteTables emits every table of the TABLES section in canonical
// order. Each table is framed 0/TABLE, 2/<name> ... 0/ENDTAB; section
// framing belongs to the document writer.
func WriteTables(doc *Document, w core.PairWriter, writeHandles bool) error {
	if err := writeTable(w, "APPID", len(doc.AppIDs), func() error {
		for _, rec := range doc.AppIDs {
			if err := writeRecordCommon(w, "APPID", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeTable(w, "BLOCK_RECORD", len(doc.BlockRecords), func() error {
		for _, rec := range doc.BlockRecords {
			if err := writeRecordCommon(w, "BLOCK_RECORD", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeTable(w, "DIMSTYLE", len(doc.DimStyles), func() error {
		for _, rec := range doc.DimStyles {
			if err := writeRecordCommon(w, "DIMSTYLE", 105, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
			if err := writePairs(w, []core.CodePair{
				core.NewStringPair(3, rec.DimensionPrefix),
				core.NewDoublePair(40, rec.Scale),
				core.NewDoublePair(140, rec.TextHeight),
			}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeTable(w, "LAYER", len(doc.Layers), func() error {
		for _, rec := range doc.Layers {
			if err := writeRecordCommon(w, "LAYER", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
			if err := writePairs(w, []core.CodePair{
				core.NewInt16Pair(62, rec.Color),
				core.NewStringPair(6, rec.LineType),
			}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeTable(w, "LTYPE", len(doc.LineTypes), func() error {
		for _, rec := range doc.LineTypes {
			if err := writeRecordCommon(w, "LTYPE", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
			pairs := []core.CodePair{
				core.NewStringPair(3, rec.Description),
				core.NewInt16Pair(73, int16(len(rec.ElementLengths))),
				core.NewDoublePair(40, rec.TotalPatternLength),
			}
			for _, el := range rec.ElementLengths {
				pairs = append(pairs, core.NewDoublePair(49, el))
			}
			if err := writePairs(w, pairs); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeTable(w, "STYLE", len(doc.Styles), func() error {
		for _, rec := range doc.Styles {
			if err := writeRecordCommon(w, "STYLE", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
			if err := writePairs(w, []core.CodePair{
				core.NewDoublePair(40, rec.TextHeight),
				core.NewDoublePair(41, rec.WidthFactor),
				core.NewDoublePair(50, rec.ObliqueAngle),
				core.NewStringPair(3, rec.FontName),
			}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeTable(w, "UCS", len(doc.UCSs), func() error {
		for _, rec := range doc.UCSs {
			if err := writeRecordCommon(w, "UCS", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
			if err := writePoint(w, 10, rec.Origin); err != nil {
				return err
			}
			if err := writePoint(w, 11, rec.XAxis); err != nil {
				return err
			}
			if err := writePoint(w, 12, rec.YAxis); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := writeTable(w, "VIEW", len(doc.Views), func() error {
		for _, rec := range doc.Views {
			if err := writeRecordCommon(w, "VIEW", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
			if err := writePairs(w, []core.CodePair{
				core.NewDoublePair(40, rec.Height),
				core.NewDoublePair(41, rec.Width),
			}); err != nil {
				return err
			}
			if err := writePoint(w, 10, rec.Center); err != nil {
				return err
			}
			if err := writePoint(w, 11, rec.Direction); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return writeTable(w, "VPORT", len(doc.Viewports), func() error {
		for _, rec := range doc.Viewports {
			if err := writeRecordCommon(w, "VPORT", 5, rec.Handle, rec.Name, rec.Flags, writeHandles); err != nil {
				return err
			}
			if err := writePoint(w, 10, rec.LowerLeft); err != nil {
				return err
			}
			if err := writePoint(w, 11, rec.UpperRight); err != nil {
				return err
			}
			if err := writePoint(w, 12, rec.Center); err != nil {
				return err
			}
			if err := writePairs(w, []core.CodePair{
				core.NewDoublePair(40, rec.Height),
				core.NewDoublePair(41, rec.AspectRatio),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeTable frames one table and emits its records via body.
func writeTable(w core.PairWriter, name string, count int, body func() error) error {
	if err := writePairs(w, []core.CodePair{
		core.NewStringPair(0, "TABLE"),
		core.NewStringPair(2, name),
		core.NewInt16Pair(70, int16(count)),
	}); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}
	return w.Write(core.NewStringPair(0, "ENDTAB"))
}

// writeRecordCommon emits the leading marker and the common record
// fields. handleCode is 5 for every table except DIMSTYLE, which uses
// 105.
func writeRecordCommon(w core.PairWriter, name string, handleCode int, handle, recName string, flags int16, writeHandles bool) error {
	if err := w.Write(core.NewStringPair(0, name)); err != nil {
		return err
	}
	if writeHandles && handle != "" {
		if err := w.Write(core.NewStringPair(handleCode, handle)); err != nil {
			return err
		}
	}
	return writePairs(w, []core.CodePair{
		core.NewStringPair(2, recName),
		core.NewInt16Pair(70, flags),
	})
}

func writePoint(w core.PairWriter, base int, p Point) error {
	return writePairs(w, []core.CodePair{
		core.NewDoublePair(base, p.X),
		core.NewDoublePair(base+10, p.Y),
		core.NewDoublePair(base+20, p.Z),
	})
}
