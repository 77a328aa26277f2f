package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quotely/kuraberu/internal/models"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"id", "name", "provider", "price_f_nsw_2", "windscreen_cover"},
		{"p1", "Budget Drive", "ACME", "780", "No"},
		{"p2", "Premium Shield", "Zenith", "920", "Yes"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExcelSource_Load(t *testing.T) {
	src := NewExcelSource(writeTestWorkbook(t))
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Get(models.AttrID) != "p1" || records[0].Get("PRICE_F_NSW_2") != "780" {
		t.Errorf("unexpected first record: %v", records[0])
	}
	if !records[1].YesNo(models.AttrWindscreenCover) {
		t.Errorf("windscreen cover should parse as yes: %v", records[1])
	}
}

func TestExcelSource_LoadMissingFile(t *testing.T) {
	src := NewExcelSource(filepath.Join(t.TempDir(), "nope.xlsx"))
	if _, err := src.Load(context.Background()); err == nil {
		t.Error("expected error for missing workbook")
	}
}
