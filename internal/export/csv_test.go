package export

import (
	"strings"
	"testing"

	"github.com/protractor09/ai-dashboard/internal/dataset"
)

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	header := []string{"Name", "Notes"}
	rows := []dataset.Row{
		{"widget", "plain"},
		{"gadget", "red, shiny"},
	}

	if err := WriteCSV(&sb, header, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "Name,Notes\nwidget,plain\ngadget,\"red, shiny\"\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestWriteCSV_MinimalQuoting(t *testing.T) {
	var sb strings.Builder
	// Quotes inside a cell are NOT escaped; only commas trigger quoting.
	rows := []dataset.Row{{`say "hi"`, "a,b"}}

	if err := WriteCSV(&sb, []string{"A", "B"}, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "A,B\nsay \"hi\",\"a,b\"\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestWriteCSV_EmptyRows(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, []string{"A"}, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if sb.String() != "A\n" {
		t.Errorf("output = %q, want header only", sb.String())
	}
}
