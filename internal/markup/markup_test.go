package markup

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lines(t *testing.T, e Element, depth int) []string {
	t.Helper()
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := Write(w, e, depth); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestWriteLayout(t *testing.T) {
	e := Node("RUN", []Attr{A("alias", "r1"), A("center_name", "")},
		Empty("EXPERIMENT_REF", A("refname", "e1")),
		Leaf("COMMON_NAME", ""),
		Element{Name: "DESIGN_DESCRIPTION"},
	)
	want := []string{
		`    <RUN alias="r1" center_name="">`,
		`        <EXPERIMENT_REF refname="e1"/>`,
		`        <COMMON_NAME></COMMON_NAME>`,
		`        <DESIGN_DESCRIPTION/>`,
		`    </RUN>`,
	}
	if diff := cmp.Diff(want, lines(t, e, 1)); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain text", "plain text"},
		{"a<b", "a&lt;b"},
		{"R&D > 1", "R&amp;D &gt; 1"},
		{`Kit "X" 5' end`, `Kit "X" 5' end`},
		{"tab\there", "tab\there"},
		{"a\x0bb", "a�b"},
		{"a\xffb", "a�b"},
		{"a\x0b&b", "a�&amp;b"},
		{"café \U0001F9EC", "café \U0001F9EC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeText(tt.in); got != tt.want {
			t.Errorf("EscapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct{ in, want string }{
		{`say "hi"`, "say &quot;hi&quot;"},
		{"5' end", "5' end"},
		{"x\x00y", "x�y"},
	}
	for _, tt := range tests {
		if got := EscapeAttr(tt.in); got != tt.want {
			t.Errorf("EscapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteIsWellFormed(t *testing.T) {
	e := Node("SAMPLE", []Attr{A("alias", `<"x"&y>`)},
		Leaf("TITLE", "Soil & <water>"),
	)
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := Write(w, e, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = w.Flush()

	var got struct {
		Alias string `xml:"alias,attr"`
		Title string `xml:"TITLE"`
	}
	if err := xml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("not well-formed: %v\n%s", err, buf.String())
	}
	if got.Alias != `<"x"&y>` || got.Title != "Soil & <water>" {
		t.Fatalf("round trip lost content: %+v", got)
	}
	if !strings.HasSuffix(buf.String(), "</SAMPLE>\n") {
		t.Fatalf("missing trailing newline: %q", buf.String())
	}
}

func TestWriteControlAndInvalidBytesStayWellFormed(t *testing.T) {
	for _, v := range []string{"a\x0bb", "a\xffb", "a\x0b&b", "\x01\x1f"} {
		e := Node("RUN", []Attr{A("alias", v)},
			Empty("EXPERIMENT_REF", A("refname", v)),
			Leaf("TITLE", v),
		)
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		if err := Write(w, e, 0); err != nil {
			t.Fatalf("write: %v", err)
		}
		_ = w.Flush()

		dec := xml.NewDecoder(bytes.NewReader(buf.Bytes()))
		for {
			_, err := dec.Token()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					t.Fatalf("value %q: not well-formed: %v\n%s", v, err, buf.String())
				}
				break
			}
		}
	}
}
