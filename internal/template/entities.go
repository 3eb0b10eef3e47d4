package template

import (
	m "enasubmit/internal/markup"
)

// Experiment is the EXPERIMENT block for paired-end Illumina libraries.
var Experiment = Template{
	Kind:      KindExperiment,
	SetTag:    "EXPERIMENT_SET",
	KeyColumn: "EXPERIMENT",
	Required: []string{
		"TITLE", "STUDY_REF", "SAMPLE_DESCRIPTOR",
		"LIBRARY_STRATEGY", "LIBRARY_SOURCE", "LIBRARY_SELECTION",
		"NOMINAL_LENGTH", "NOMINAL_SDEV", "LIBRARY_CONSTRUCTION_PROTOCOL",
		"INSTRUMENT_MODEL", "library preparation date",
	},
	build: buildExperiment,
}

// Run is the RUN block with exactly two FASTQ files, R1 then R2.
var Run = Template{
	Kind:      KindRun,
	SetTag:    "RUN_SET",
	KeyColumn: "RUN",
	Required:  []string{"EXPERIMENT", "R1", "R1_MD5", "R2", "R2_MD5"},
	build:     buildRun,
}

// Sample is the SAMPLE block; its attribute list comes from Options.
var Sample = Template{
	Kind:        KindSample,
	SetTag:      "SAMPLE_SET",
	Declaration: true,
	KeyColumn:   IdentifierIsolate,
	Required:    []string{"TITLE", "TAXON_ID", "SCIENTIFIC_NAME"},
	build:       buildSample,
}

func buildExperiment(key string, p *picker, _ Options) m.Element {
	return m.Node("EXPERIMENT", []m.Attr{m.A("alias", key)},
		m.Leaf("TITLE", p.get("TITLE")),
		m.Empty("STUDY_REF", m.A("accession", p.get("STUDY_REF"))),
		m.Node("DESIGN", nil,
			m.Empty("DESIGN_DESCRIPTION"),
			m.Empty("SAMPLE_DESCRIPTOR", m.A("accession", p.get("SAMPLE_DESCRIPTOR"))),
			m.Node("LIBRARY_DESCRIPTOR", nil,
				m.Empty("LIBRARY_NAME"),
				m.Leaf("LIBRARY_STRATEGY", p.get("LIBRARY_STRATEGY")),
				m.Leaf("LIBRARY_SOURCE", p.get("LIBRARY_SOURCE")),
				m.Leaf("LIBRARY_SELECTION", p.get("LIBRARY_SELECTION")),
				m.Node("LIBRARY_LAYOUT", nil,
					m.Empty("PAIRED",
						m.A("NOMINAL_LENGTH", p.get("NOMINAL_LENGTH")),
						m.A("NOMINAL_SDEV", p.get("NOMINAL_SDEV")),
					),
				),
				m.Leaf("LIBRARY_CONSTRUCTION_PROTOCOL", p.get("LIBRARY_CONSTRUCTION_PROTOCOL")),
			),
		),
		m.Node("PLATFORM", nil,
			m.Node("ILLUMINA", nil,
				m.Leaf("INSTRUMENT_MODEL", p.get("INSTRUMENT_MODEL")),
			),
		),
		m.Node("EXPERIMENT_ATTRIBUTES", nil,
			tagValue("EXPERIMENT_ATTRIBUTE", "library preparation date", p.get("library preparation date")),
		),
	)
}

func buildRun(key string, p *picker, _ Options) m.Element {
	file := func(name, sum string) m.Element {
		return m.Empty("FILE",
			m.A("filename", p.get(name)),
			m.A("filetype", "fastq"),
			m.A("checksum_method", "MD5"),
			m.A("checksum", p.get(sum)),
		)
	}
	return m.Node("RUN", []m.Attr{m.A("alias", key), m.A("center_name", "")},
		m.Empty("EXPERIMENT_REF", m.A("refname", p.get("EXPERIMENT"))),
		m.Node("DATA_BLOCK", nil,
			m.Node("FILES", nil,
				file("R1", "R1_MD5"),
				file("R2", "R2_MD5"),
			),
		),
	)
}

func buildSample(key string, p *picker, o Options) m.Element {
	id := o.Identifier
	if id == "" {
		id = IdentifierIsolate
	}
	title, taxon, name := p.get("TITLE"), p.get("TAXON_ID"), p.get("SCIENTIFIC_NAME")

	var attrs []m.Element
	if o.Checklist != "" {
		attrs = append(attrs, tagValue("SAMPLE_ATTRIBUTE", "ENA-CHECKLIST", o.Checklist))
	}
	attrs = append(attrs, tagValue("SAMPLE_ATTRIBUTE", id, key))
	for _, a := range o.Attributes {
		attrs = append(attrs, tagValue("SAMPLE_ATTRIBUTE", a, p.get(a)))
	}

	return m.Node("SAMPLE", []m.Attr{m.A("alias", key), m.A("center_name", o.CentreName)},
		m.Leaf("TITLE", title),
		m.Node("SAMPLE_NAME", nil,
			m.Leaf("TAXON_ID", taxon),
			m.Leaf("SCIENTIFIC_NAME", name),
			m.Leaf("COMMON_NAME", ""),
		),
		m.Node("SAMPLE_ATTRIBUTES", nil, attrs...),
	)
}

func tagValue(wrapper, tag, value string) m.Element {
	return m.Node(wrapper, nil, m.Leaf("TAG", tag), m.Leaf("VALUE", value))
}
