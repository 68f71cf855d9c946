package creditreport

import "creditpull-backend/lib/document"

// a data row carries at least creditor, date and bureau cells
const inquiryRowMinCells = 3

// ExtractInquiryRows reads the inquiry detail rows. The section is
// located by exact heading match only: inquiry rows are indistinct
// enough that an ordinal guess could silently read a different table.
//
// Header rows fall out naturally (they carry no data cells) and rows
// without a creditor name are dropped: an inquiry nobody made is not a
// record.
func ExtractInquiryRows(doc document.Document, sel Selectors, cfg SectionConfig) []InquiryRow {
	section := findSectionExact(doc, sel, cfg.Locator)
	if section == nil {
		return nil
	}

	var out []InquiryRow
	for _, row := range section.Select(sel.InquiryRow) {
		cells := row.Select(sel.InquiryCell)
		if len(cells) < inquiryRowMinCells {
			continue
		}
		creditor := cells[0].Text()
		if creditor == "" {
			continue
		}
		out = append(out, InquiryRow{
			CreditorName: creditor,
			InquiryDate:  cells[1].Text(),
			CreditBureau: cells[2].Text(),
		})
	}
	return out
}
