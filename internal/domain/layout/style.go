package layout

// StyleID identifies a layout style rule set
type StyleID string

const (
	StyleClassic  StyleID = "classic"
	StyleMinimal  StyleID = "minimal"
	StyleCompact  StyleID = "compact"
	StyleDetailed StyleID = "detailed"
)

// String returns the string representation of StyleID
func (id StyleID) String() string {
	return string(id)
}

// ColumnWidths holds the fractional width of each item-table column.
// Description is 0 for styles that do not render the extended column.
type ColumnWidths struct {
	Item        float64
	Description float64
	Qty         float64
	Price       float64
	Total       float64
}

// StyleDescriptor is an immutable record of a layout style's rules
type StyleDescriptor struct {
	ID              StyleID
	DisplayName     string
	ShowBorders     bool
	ShowDescription bool
	Columns         ColumnWidths
}

// styleCatalog is the closed enumeration of layout styles. Column width
// tables follow the original rules: compact collapses the item column,
// detailed adds a description column, classic and minimal share widths.
var styleCatalog = []StyleDescriptor{
	{
		ID: StyleClassic, DisplayName: "Classic",
		ShowBorders: true, ShowDescription: false,
		Columns: ColumnWidths{Item: 0.40, Qty: 0.15, Price: 0.20, Total: 0.25},
	},
	{
		ID: StyleMinimal, DisplayName: "Minimal",
		ShowBorders: false, ShowDescription: false,
		Columns: ColumnWidths{Item: 0.40, Qty: 0.15, Price: 0.20, Total: 0.25},
	},
	{
		ID: StyleCompact, DisplayName: "Compact",
		ShowBorders: true, ShowDescription: false,
		Columns: ColumnWidths{Item: 0.45, Qty: 0.15, Price: 0.20, Total: 0.20},
	},
	{
		ID: StyleDetailed, DisplayName: "Detailed",
		ShowBorders: true, ShowDescription: true,
		Columns: ColumnWidths{Item: 0.35, Description: 0.25, Qty: 0.10, Price: 0.15, Total: 0.15},
	},
}
