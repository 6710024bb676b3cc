package digitindex

import (
	"reflect"
	"testing"

	"leetscan/scan"
)

func fixtureIndex() *Index {
	result := scan.NewIndex()
	result.Merge([]scan.Match{
		{Digits: "355317", Word: "assessed"},
		{Digits: "1337", Word: "leet"},
		{Digits: "1337", Word: "elite"},
		{Digits: "35531", Word: "esse"},
	})
	return New(result)
}

func TestWords(t *testing.T) {
	index := fixtureIndex()
	if got := index.Words("1337"); !reflect.DeepEqual(got, []string{"leet", "elite"}) {
		t.Fatalf("1337 should map to [leet elite], maps to %v", got)
	}
	if got := index.Words("9999"); got != nil {
		t.Fatalf("unknown digit string should yield nil, yields %v", got)
	}
}

func TestWithPrefix(t *testing.T) {
	index := fixtureIndex()
	entries := index.WithPrefix("355")
	if len(entries) != 2 {
		t.Fatalf("prefix 355 should hit 2 entries, hits %d", len(entries))
	}
	if entries[0].Digits != "35531" || entries[1].Digits != "355317" {
		t.Fatalf("entries should come back in sorted order, are %v", entries)
	}
	if !reflect.DeepEqual(entries[1].Words, []string{"assessed"}) {
		t.Fatalf("355317 should map to [assessed], maps to %v", entries[1].Words)
	}
	if got := index.WithPrefix("9"); len(got) != 0 {
		t.Fatalf("prefix 9 should hit nothing, hits %v", got)
	}
}

func TestWithPrefixEmpty(t *testing.T) {
	entries := fixtureIndex().WithPrefix("")
	if len(entries) != 3 {
		t.Fatalf("empty prefix should list all 3 entries, lists %d", len(entries))
	}
}
