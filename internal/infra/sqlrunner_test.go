package infra

import (
	"strings"
	"testing"
)

func TestSplitMarker(t *testing.T) {
	query := "\n--sql 3f2504e0-4f89-41d3-9a0c-0305e82c3301\nSELECT id FROM quote_orders"
	marker, body, err := splitMarker(query)
	if err != nil {
		t.Fatalf("splitMarker: %v", err)
	}
	if marker != "3f2504e0-4f89-41d3-9a0c-0305e82c3301" {
		t.Fatalf("marker = %q", marker)
	}
	if !strings.HasPrefix(body, "SELECT") {
		t.Fatalf("body = %q", body)
	}
}

func TestSplitMarkerRejectsUntaggedQuery(t *testing.T) {
	for _, query := range []string{
		"SELECT 1",
		"--sql not-a-uuid\nSELECT 1",
		"",
	} {
		if _, _, err := splitMarker(query); err == nil {
			t.Fatalf("splitMarker(%q) accepted an untagged query", query)
		}
	}
}
