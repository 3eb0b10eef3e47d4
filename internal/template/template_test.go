package template

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enasubmit/internal/attrs"
	"enasubmit/internal/markup"
	"enasubmit/internal/table"
)

func lines(t *testing.T, e markup.Element) []string {
	t.Helper()
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	require.NoError(t, markup.Write(w, e, 1))
	require.NoError(t, w.Flush())
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func render(t *testing.T, tpl Template, rec table.Record, o Options) []string {
	t.Helper()
	e, err := tpl.Render(rec, o)
	require.NoError(t, err)
	return lines(t, e)
}

func TestRunBlock(t *testing.T) {
	rec := table.NewRecord("run1",
		table.Field{Column: "EXPERIMENT", Value: "exp1"},
		table.Field{Column: "R1", Value: "a_1.fastq.gz"},
		table.Field{Column: "R1_MD5", Value: "abc123"},
		table.Field{Column: "R2", Value: "a_2.fastq.gz"},
		table.Field{Column: "R2_MD5", Value: "def456"},
	)
	want := []string{
		`    <RUN alias="run1" center_name="">`,
		`        <EXPERIMENT_REF refname="exp1"/>`,
		`        <DATA_BLOCK>`,
		`            <FILES>`,
		`                <FILE filename="a_1.fastq.gz" filetype="fastq" checksum_method="MD5" checksum="abc123"/>`,
		`                <FILE filename="a_2.fastq.gz" filetype="fastq" checksum_method="MD5" checksum="def456"/>`,
		`            </FILES>`,
		`        </DATA_BLOCK>`,
		`    </RUN>`,
	}
	if diff := cmp.Diff(want, render(t, Run, rec, Options{})); diff != "" {
		t.Fatalf("run block mismatch (-want +got):\n%s", diff)
	}
}

func TestExperimentBlock(t *testing.T) {
	rec := table.NewRecord("exp1",
		table.Field{Column: "TITLE", Value: "WGS of isolate 1"},
		table.Field{Column: "STUDY_REF", Value: "PRJEB1"},
		table.Field{Column: "SAMPLE_DESCRIPTOR", Value: "ERS1"},
		table.Field{Column: "LIBRARY_STRATEGY", Value: "WGS"},
		table.Field{Column: "LIBRARY_SOURCE", Value: "GENOMIC"},
		table.Field{Column: "LIBRARY_SELECTION", Value: "RANDOM"},
		table.Field{Column: "NOMINAL_LENGTH", Value: "350"},
		table.Field{Column: "NOMINAL_SDEV", Value: "50"},
		table.Field{Column: "LIBRARY_CONSTRUCTION_PROTOCOL", Value: "Nextera XT"},
		table.Field{Column: "INSTRUMENT_MODEL", Value: "Illumina MiSeq"},
		table.Field{Column: "library preparation date", Value: "2020-06-01"},
	)
	want := []string{
		`    <EXPERIMENT alias="exp1">`,
		`        <TITLE>WGS of isolate 1</TITLE>`,
		`        <STUDY_REF accession="PRJEB1"/>`,
		`        <DESIGN>`,
		`            <DESIGN_DESCRIPTION/>`,
		`            <SAMPLE_DESCRIPTOR accession="ERS1"/>`,
		`            <LIBRARY_DESCRIPTOR>`,
		`                <LIBRARY_NAME/>`,
		`                <LIBRARY_STRATEGY>WGS</LIBRARY_STRATEGY>`,
		`                <LIBRARY_SOURCE>GENOMIC</LIBRARY_SOURCE>`,
		`                <LIBRARY_SELECTION>RANDOM</LIBRARY_SELECTION>`,
		`                <LIBRARY_LAYOUT>`,
		`                    <PAIRED NOMINAL_LENGTH="350" NOMINAL_SDEV="50"/>`,
		`                </LIBRARY_LAYOUT>`,
		`                <LIBRARY_CONSTRUCTION_PROTOCOL>Nextera XT</LIBRARY_CONSTRUCTION_PROTOCOL>`,
		`            </LIBRARY_DESCRIPTOR>`,
		`        </DESIGN>`,
		`        <PLATFORM>`,
		`            <ILLUMINA>`,
		`                <INSTRUMENT_MODEL>Illumina MiSeq</INSTRUMENT_MODEL>`,
		`            </ILLUMINA>`,
		`        </PLATFORM>`,
		`        <EXPERIMENT_ATTRIBUTES>`,
		`            <EXPERIMENT_ATTRIBUTE>`,
		`                <TAG>library preparation date</TAG>`,
		`                <VALUE>2020-06-01</VALUE>`,
		`            </EXPERIMENT_ATTRIBUTE>`,
		`        </EXPERIMENT_ATTRIBUTES>`,
		`    </EXPERIMENT>`,
	}
	if diff := cmp.Diff(want, render(t, Experiment, rec, Options{})); diff != "" {
		t.Fatalf("experiment block mismatch (-want +got):\n%s", diff)
	}
}

func sampleA() table.Record {
	return table.NewRecord("sampleA",
		table.Field{Column: "TITLE", Value: "T"},
		table.Field{Column: "TAXON_ID", Value: "9"},
		table.Field{Column: "SCIENTIFIC_NAME", Value: "S"},
		table.Field{Column: "host", Value: "H"},
		table.Field{Column: "host health state", Value: "HH"},
		table.Field{Column: "collection date", Value: "2020"},
		table.Field{Column: "geographic location (country and/or sea)", Value: "AU"},
	)
}

// attributePairs extracts (TAG, VALUE) pairs from SAMPLE_ATTRIBUTES.
func attributePairs(t *testing.T, e markup.Element) [][2]string {
	t.Helper()
	for _, c := range e.Children {
		if c.Name != "SAMPLE_ATTRIBUTES" {
			continue
		}
		var out [][2]string
		for _, a := range c.Children {
			require.Len(t, a.Children, 2)
			out = append(out, [2]string{a.Children[0].Text, a.Children[1].Text})
		}
		return out
	}
	t.Fatal("no SAMPLE_ATTRIBUTES")
	return nil
}

func TestSampleDefaultAttributes(t *testing.T) {
	e, err := Sample.Render(sampleA(), Options{Attributes: attrs.Default(), Identifier: IdentifierIsolate})
	require.NoError(t, err)

	want := [][2]string{
		{"isolate", "sampleA"},
		{"host", "H"},
		{"host health state", "HH"},
		{"collection date", "2020"},
		{"geographic location (country and/or sea)", "AU"},
	}
	assert.Equal(t, want, attributePairs(t, e))
}

func TestSampleChecklistAndStrain(t *testing.T) {
	e, err := Sample.Render(sampleA(), Options{
		Attributes: []string{"host"},
		Checklist:  "ERC000028",
		CentreName: "Doherty",
		Identifier: IdentifierStrain,
	})
	require.NoError(t, err)

	assert.Equal(t, [][2]string{
		{"ENA-CHECKLIST", "ERC000028"},
		{"strain", "sampleA"},
		{"host", "H"},
	}, attributePairs(t, e))

	got := lines(t, e)
	assert.Equal(t, `    <SAMPLE alias="sampleA" center_name="Doherty">`, got[0])
	assert.Contains(t, got, `            <COMMON_NAME></COMMON_NAME>`)
}

func TestSampleDefaultsToIsolate(t *testing.T) {
	e, err := Sample.Render(sampleA(), Options{})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"isolate", "sampleA"}}, attributePairs(t, e))
}

func TestRenderMissingColumn(t *testing.T) {
	rec := table.NewRecord("run9", table.Field{Column: "EXPERIMENT", Value: "e"})
	_, err := Run.Render(rec, Options{})
	require.ErrorIs(t, err, ErrMissingColumn)

	var mc *MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "run9", mc.Key)
	assert.Equal(t, "R1", mc.Column)
	assert.Contains(t, err.Error(), `"run9"`)
}

func TestRenderMissingAttribute(t *testing.T) {
	_, err := Sample.Render(sampleA(), Options{Attributes: []string{"host", "serovar"}})
	var mc *MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "serovar", mc.Column)
}

func TestRequiredColumns(t *testing.T) {
	got := Sample.RequiredColumns(Options{Attributes: []string{"host"}})
	assert.Equal(t, []string{"TITLE", "TAXON_ID", "SCIENTIFIC_NAME", "host"}, got)
	assert.Len(t, Run.RequiredColumns(Options{Attributes: []string{"ignored"}}), 5)
}

func TestRenderEmptyRequiredValue(t *testing.T) {
	rec := table.NewRecord("run1",
		table.Field{Column: "EXPERIMENT", Value: "exp1"},
		table.Field{Column: "R1", Value: "a_1.fastq.gz"},
		table.Field{Column: "R1_MD5", Value: ""},
		table.Field{Column: "R2", Value: "a_2.fastq.gz"},
		table.Field{Column: "R2_MD5", Value: "def456"},
	)
	_, err := Run.Render(rec, Options{})
	var mc *MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "R1_MD5", mc.Column)
	assert.True(t, mc.Empty)

	err = Run.Check(rec, Options{})
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "R1_MD5", mc.Column)
}
