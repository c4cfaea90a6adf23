package viewmodel

// Cell is one table cell. Only Text is always set.
type Cell struct {
	Text    string  `json:"text"`
	Subtext string  `json:"subtext,omitempty"`
	Link    *Link   `json:"link,omitempty"`
	Badge   *Badge  `json:"badge,omitempty"`
	Avatar  *Avatar `json:"avatar,omitempty"`
	Muted   bool    `json:"muted,omitempty"`
	ColSpan int     `json:"colSpan,omitempty"`
}

// Row is a table row keyed by the id of the entity it shows.
type Row struct {
	Key      string `json:"key"`
	Cells    []Cell `json:"cells"`
	Sentinel bool   `json:"sentinel,omitempty"`
}

// Table is a titled grid of rows.
type Table struct {
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// newTable builds a table, substituting a single sentinel row spanning every column
// when there are no rows.
func newTable(title string, columns []string, rows []Row, sentinel string) Table {
	if len(rows) == 0 {
		rows = []Row{{
			Key:      "empty",
			Sentinel: true,
			Cells:    []Cell{{Text: sentinel, Muted: true, ColSpan: len(columns)}},
		}}
	}
	return Table{Title: title, Columns: columns, Rows: rows}
}

// Sentinel reports the sentinel text when the table has no data rows.
func (t Table) Sentinel() (string, bool) {
	if len(t.Rows) == 1 && t.Rows[0].Sentinel && len(t.Rows[0].Cells) == 1 {
		return t.Rows[0].Cells[0].Text, true
	}
	return "", false
}
