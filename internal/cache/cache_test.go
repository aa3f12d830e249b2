package cache

import (
	"testing"

	"github.com/go-bsl/bslint/internal/analyzer"
)

func TestCache_StoreAndLookup(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	issues := []analyzer.Issue{{Kind: analyzer.KindLineTooLong, Severity: analyzer.SeverityInfo, Message: "too long"}}
	hash := Hash("Procedure P()\nEndProcedure\n")

	if err := c.Store("Module.bsl", hash, issues, 1000); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := c.Lookup("Module.bsl", hash)
	if !ok {
		t.Fatal("expected a cache hit for the matching content hash")
	}
	if len(got) != 1 || got[0].Message != "too long" {
		t.Errorf("got %+v, want the stored issues round-tripped", got)
	}
}

func TestCache_LookupMissOnHashMismatch(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	if err := c.Store("Module.bsl", Hash("old source"), nil, 1000); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if _, ok := c.Lookup("Module.bsl", Hash("new source")); ok {
		t.Error("a changed content hash should miss, forcing re-analysis")
	}
}

func TestCache_StoreOverwritesPriorEntry(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	first := []analyzer.Issue{{Kind: analyzer.KindLineTooLong}}
	second := []analyzer.Issue{{Kind: analyzer.KindTrailingWhitespace}}
	hash := Hash("src")

	if err := c.Store("Module.bsl", hash, first, 1); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := c.Store("Module.bsl", hash, second, 2); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok := c.Lookup("Module.bsl", hash)
	if !ok || len(got) != 1 || got[0].Kind != analyzer.KindTrailingWhitespace {
		t.Errorf("got %+v, ok=%v, want the second Store to replace the first", got, ok)
	}
}

func TestCache_Forget(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	hash := Hash("src")
	if err := c.Store("Module.bsl", hash, nil, 1); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := c.Forget("Module.bsl"); err != nil {
		t.Fatalf("Forget: %v", err)
	}
	if _, ok := c.Lookup("Module.bsl", hash); ok {
		t.Error("a forgotten entry should no longer be found")
	}
}

func TestHash_IsDeterministicAndContentSensitive(t *testing.T) {
	if Hash("same") != Hash("same") {
		t.Error("Hash must be deterministic for identical input")
	}
	if Hash("a") == Hash("b") {
		t.Error("Hash must differ for differing input")
	}
}
