package sheet

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"zero", "0", ""},
		{"non-numeric", "abc", ""},
		{"small", "950", "$950"},
		{"thousands", "6200", "$6,200"},
		{"millions", "6200000", "$6,200,000"},
		{"fraction", "1234.5", "$1,234.5"},
		{"already grouped", "12,500", "$12,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.value); got != tt.want {
				t.Errorf("Currency(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	r := Record{ID: 7, Priority: "High", EstValue: "3500"}

	tests := []struct {
		column string
		want   string
	}{
		{ColumnRowID, "7"},
		{string(FieldPriority), "High"},
		{string(FieldEstValue), "$3,500"},
		{string(FieldJobRequest), ""},
		{ColumnActions, ""},
	}

	for _, tt := range tests {
		idx := ColumnIndex(Columns, tt.column)
		if idx < 0 {
			t.Fatalf("column %q not found", tt.column)
		}
		if got := FormatValue(Columns[idx], r); got != tt.want {
			t.Errorf("FormatValue(%s) = %q, want %q", tt.column, got, tt.want)
		}
	}
}

func TestColumns_Editable(t *testing.T) {
	for _, c := range Columns {
		want := c.Key != "" && c.ID != ColumnActions
		if c.Editable() != want {
			t.Errorf("column %s Editable() = %v, want %v", c.ID, c.Editable(), want)
		}
	}

	if Columns[0].Editable() {
		t.Error("row id column should be read-only")
	}
	if Columns[len(Columns)-1].Editable() {
		t.Error("actions column should be read-only")
	}

	// Every data field has exactly one column
	for _, f := range DataFields {
		if ColumnIndex(Columns, string(f)) < 0 {
			t.Errorf("no column for field %s", f)
		}
	}
}
