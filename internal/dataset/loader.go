package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/maishanyun/msy-dashboard/pkg/logger"
)

const (
	shipmentFile   = "MSY Data - Shipment.csv"
	ingredientFile = "MSY Data - Ingredient.csv"
)

// Loader reads the source spreadsheets from a data directory into a Snapshot.
// Individual files that are missing or unreadable are skipped, not fatal: the
// dashboard always renders from whatever subset of tables loaded.
type Loader struct {
	dataDir string
}

func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// Load builds a fresh snapshot from the data directory.
func (l *Loader) Load() *Snapshot {
	snap := EmptySnapshot()

	for _, month := range Months {
		path := filepath.Join(l.dataDir, month+".xlsx")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		table, err := loadSales(path)
		if err != nil {
			logger.Log.Warn().Err(err).Str("file", path).Msg("skipping sales workbook")
			continue
		}
		snap.Sales[month] = table
		logger.Log.Info().Str("month", month).Int("rows", table.RowCount).Msg("loaded sales workbook")
	}

	if table, err := loadShipments(filepath.Join(l.dataDir, shipmentFile)); err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn().Err(err).Msg("skipping shipment CSV")
		}
	} else {
		snap.Shipments = table
		logger.Log.Info().Int("rows", len(table.Records)).Msg("loaded shipment data")
	}

	if table, err := loadMenu(filepath.Join(l.dataDir, ingredientFile)); err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn().Err(err).Msg("skipping ingredient CSV")
		}
	} else {
		snap.Menu = table
		logger.Log.Info().Int("rows", len(table.Rows)).Msg("loaded ingredient data")
	}

	return snap
}

// loadSales reads the first sheet of a monthly sales workbook. Only the row
// count and the Group column survive; the rest of the sheet is not used by
// any computation.
func loadSales(path string) (*SalesTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}
	defer rows.Close()

	table := &SalesTable{}
	groupIdx := -1
	first := true
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}
		if first {
			first = false
			for i, col := range record {
				if col == "Group" {
					groupIdx = i
					break
				}
			}
			continue
		}
		if blankRow(record) {
			continue
		}
		table.RowCount++
		if groupIdx >= 0 && groupIdx < len(record) {
			table.Groups = append(table.Groups, record[groupIdx])
		}
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", path, err)
	}

	return table, nil
}

// loadShipments reads the shipment CSV, coercing every cell as it goes.
func loadShipments(path string) (*ShipmentTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	colMap := make(map[string]int)
	for i, col := range header {
		colMap[col] = i
	}

	table := &ShipmentTable{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		if blankRow(record) {
			continue
		}

		qtyCell := cellAt(record, colMap, "Quantity per shipment")
		numCell := cellAt(record, colMap, "Number of shipments")

		rec := ShipmentRecord{
			Ingredient:     CoerceString(cellAt(record, colMap, "Ingredient"), ""),
			QtyPerShipment: CoerceFloat(qtyCell, 0),
			NumShipments:   CoerceFloat(numCell, 0),
			Frequency:      CoerceString(cellAt(record, colMap, "frequency"), ""),
			Unit:           CoerceString(cellAt(record, colMap, "Unit of shipment"), ""),
			HasUsageData:   numericCell(qtyCell) || numericCell(numCell),
		}
		if rec.NumShipments < 0 {
			rec.NumShipments = 0
		}
		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// loadMenu reads the ingredient-composition CSV. The first column is always
// the item name; everything after it is an ingredient-quantity column kept raw
// for the complexity scorer.
func loadMenu(path string) (*MenuTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("ingredient CSV %s has an empty header", path)
	}

	table := &MenuTable{Columns: header[1:]}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record: %w", err)
		}
		if blankRow(record) {
			continue
		}

		cells := make([]string, len(table.Columns))
		for i := range table.Columns {
			if i+1 < len(record) {
				cells[i] = record[i+1]
			}
		}
		table.Rows = append(table.Rows, MenuRow{
			ItemName: CoerceString(record[0], ""),
			Cells:    cells,
		})
	}

	return table, nil
}

func cellAt(record []string, colMap map[string]int, name string) string {
	idx, ok := colMap[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func blankRow(record []string) bool {
	for _, cell := range record {
		if !missing(cell) {
			return false
		}
	}
	return true
}
