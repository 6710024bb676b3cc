package report

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"leetscan/scan"
)

func fixtureIndex() *scan.Index {
	index := scan.NewIndex()
	index.Merge([]scan.Match{
		{Digits: "355317", Word: "assessed"},
		{Digits: "1337", Word: "leet"},
		{Digits: "1337", Word: "elite"},
	})
	return index
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(fixtureIndex(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// Keys come out sorted and double-quoted, words in recorded order.
	if !strings.Contains(out, `"1337":`) || !strings.Contains(out, `"355317":`) {
		t.Fatalf("digit-string keys should be double-quoted, output is:\n%s", out)
	}
	if strings.Index(out, `"1337":`) > strings.Index(out, `"355317":`) {
		t.Fatalf("keys should be sorted, output is:\n%s", out)
	}
	if strings.Index(out, "- leet") > strings.Index(out, "- elite") {
		t.Fatalf("words should keep recorded order, output is:\n%s", out)
	}
}

func TestRenderEmptyIndex(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(scan.NewIndex(), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "{}" {
		t.Fatalf("empty index should render as an empty mapping, renders as %q", buf.String())
	}
}

func TestRenderIsByteIdentical(t *testing.T) {
	var first, second bytes.Buffer
	if err := Render(fixtureIndex(), &first); err != nil {
		t.Fatal(err)
	}
	if err := Render(fixtureIndex(), &second); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("rendering the same index twice should be byte-identical")
	}
}

func TestWriteReadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.yaml")
	index := fixtureIndex()
	if err := Write(index, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded.SortedKeys(), index.SortedKeys()) {
		t.Fatalf("keys should survive the roundtrip, got %v", loaded.SortedKeys())
	}
	for _, digits := range index.SortedKeys() {
		if !reflect.DeepEqual(loaded.Words(digits), index.Words(digits)) {
			t.Fatalf("words for %s should survive the roundtrip, got %v", digits, loaded.Words(digits))
		}
	}
}
