package dataset

// Months is the canonical period list. A snapshot may hold sales tables for
// any subset of these; ordering elsewhere always follows this list.
var Months = []string{"May", "June", "July", "August", "September", "October"}

// ShipmentRecord is one row of the shipment CSV, coerced at load time.
// HasUsageData records whether either usage cell actually carried a number;
// the usage aggregator uses it to tell "all quantities zero" apart from
// "no usable data at all".
type ShipmentRecord struct {
	Ingredient     string
	QtyPerShipment float64
	NumShipments   float64
	Frequency      string
	Unit           string
	HasUsageData   bool
}

// ShipmentTable is the loaded shipment dataset.
type ShipmentTable struct {
	Records []ShipmentRecord
}

// MenuTable is the loaded ingredient-composition dataset. The first source
// column is the item name; Columns holds every remaining column header in
// source order, and each row's Cells align with Columns index-for-index.
// Cells stay raw: zero/empty means the ingredient is unused in that item.
type MenuTable struct {
	Columns []string
	Rows    []MenuRow
}

type MenuRow struct {
	ItemName string
	Cells    []string
}

// SalesTable is the per-month sales dataset reduced to what the trend and
// forecast engines consume: the row count and the dish-group column.
type SalesTable struct {
	RowCount int
	Groups   []string
}

// Snapshot is the complete set of loaded tables at a point in time. It is
// immutable once built; a reload produces a fresh Snapshot and swaps it into
// the Store wholesale. Any table may be nil/absent.
type Snapshot struct {
	Sales     map[string]*SalesTable
	Shipments *ShipmentTable
	Menu      *MenuTable
}

// LoadedMonths returns the months with a sales table, in canonical order.
func (s *Snapshot) LoadedMonths() []string {
	loaded := make([]string, 0, len(s.Sales))
	for _, m := range Months {
		if _, ok := s.Sales[m]; ok {
			loaded = append(loaded, m)
		}
	}
	return loaded
}

// EmptySnapshot returns a snapshot with no tables loaded.
func EmptySnapshot() *Snapshot {
	return &Snapshot{Sales: make(map[string]*SalesTable)}
}
