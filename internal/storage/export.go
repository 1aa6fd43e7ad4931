package storage

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/multierr"

	"github.com/jeanpaul/contacts/internal/contact"
)

const exportSheet = "Contacts"

// ExportXLSX writes one row per contact to a spreadsheet at path:
// Name | Phones | Birthday. Phones are joined with "; ".
func ExportXLSX(book *contact.AddressBook, path string) (err error) {
	f := excelize.NewFile()
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &[]any{"Name", "Phones", "Birthday"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range book.Records() {
		birthday := ""
		if b, ok := r.ShowBirthday(); ok {
			birthday = b.String()
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.Name(), strings.Join(r.Phones(), "; "), birthday}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(exportSheet, "A", "C", 24); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
