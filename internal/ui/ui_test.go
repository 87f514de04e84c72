package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestResultRender_DetailsInOrder(t *testing.T) {
	r := NewSuccessResult("Export complete",
		Param{Key: "File", Value: "out.yaml"},
		Param{Key: "Records", Value: "5"},
	).SetWidth(80)

	out := r.Render()
	file := strings.Index(out, "out.yaml")
	records := strings.Index(out, "Records")
	if file < 0 || records < 0 {
		t.Fatalf("Render() missing details:\n%s", out)
	}
	if file > records {
		t.Error("Render() should keep detail order")
	}
	if !strings.Contains(out, "SUCCESS") {
		t.Error("Render() missing SUCCESS title")
	}
}

func TestResultRender_Failure(t *testing.T) {
	r := NewFailureResult("Import failed", errors.New("bad id"), []string{"Check the id column"}).SetWidth(80)

	out := r.Render()
	for _, want := range []string{"FAILED", "bad id", "Troubleshooting", "Check the id column"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		p := NewPrinter(&buf)
		got := p.ConfirmOverwrite("File exists", []string{"out.yaml will be replaced"}, strings.NewReader(tt.input))
		if got != tt.want {
			t.Errorf("ConfirmOverwrite(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(buf.String(), "out.yaml will be replaced") {
			t.Errorf("ConfirmOverwrite(%q) did not print warnings", tt.input)
		}
	}
}

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Export records", "sheet export", Param{Key: "Output", Value: "out.csv"})
	h.Width = 80

	out := h.String()
	for _, want := range []string{"EXPORT RECORDS", "sheet export", "out.csv"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}
