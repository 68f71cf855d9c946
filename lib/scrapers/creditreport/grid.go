package creditreport

import "creditpull-backend/lib/document"

// a label column plus one column per bureau
const columnGroupCount = 1 + 3

// ExtractGridData reads one fixed-column grid section into per-bureau
// field maps. Each bureau column's first cell is its header; remaining
// cells zip positionally against the configured field list.
//
// Returns nil when the section, grid or column-count preconditions
// fail. That means "this section is not present on this document
// version", not a fault.
func ExtractGridData(doc document.Document, sel Selectors, cfg SectionConfig) RawGrid {
	section := findSection(doc, sel, cfg.Locator)
	if section == nil {
		return nil
	}
	return extractGridIn(section, sel, cfg)
}

func extractGridIn(scope document.Element, sel Selectors, cfg SectionConfig) RawGrid {
	grids := scope.Select(sel.Grid)
	if cfg.GridOrdinal >= len(grids) {
		return nil
	}

	columns := grids[cfg.GridOrdinal].Select(sel.ColumnGroup)
	if len(columns) != columnGroupCount {
		return nil
	}

	out := RawGrid{}
	for i, bureau := range Bureaus {
		// columns[0] is the label column
		cells := columns[i+1].Select(sel.Cell)

		fields := RawFields{}
		for j, name := range cfg.Fields {
			// skip the bureau header cell
			cellIdx := j + 1
			if cellIdx < len(cells) {
				fields[name] = rawText(cells[cellIdx])
			} else {
				fields[name] = nil
			}
		}
		out[bureau] = fields
	}
	return out
}
