package vectorscope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectFormat tags every .wcv file.
	ProjectFormat = "wcv"
	// ProjectVersion is the only .wcv version this package reads and writes.
	ProjectVersion = 1
	// ProjectExt is the usual file extension of a project.
	ProjectExt = ".wcv"
)

// Project is the persisted form of a FrameSequence. Each frame is stored as
// GridSize rows of GridSize characters, '1' for a lit cell and '0' for an
// unlit one, in row-major order.
type Project struct {
	Format  string     `yaml:"format" json:"format"`
	Version int        `yaml:"version" json:"version"`
	Size    int        `yaml:"size" json:"size"`
	Count   int        `yaml:"count" json:"count"`
	Frames  [][]string `yaml:"frames" json:"frames"`
}

// NewProject captures the frames of the sequence.
func NewProject(seq *FrameSequence) Project {
	frames := seq.Frames()
	p := Project{
		Format:  ProjectFormat,
		Version: ProjectVersion,
		Size:    GridSize,
		Count:   len(frames),
		Frames:  make([][]string, len(frames)),
	}
	for i, g := range frames {
		rows := make([]string, GridSize)
		for r := range g {
			var sb strings.Builder
			for c := range g[r] {
				if g[r][c] {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
			}
			rows[r] = sb.String()
		}
		p.Frames[i] = rows
	}
	return p
}

// Sequence validates the project and converts it back to a FrameSequence.
// Any violation is reported as ErrCorruptProject.
func (p *Project) Sequence() (*FrameSequence, error) {
	if p.Format != ProjectFormat {
		return nil, fmt.Errorf("%w: unknown format %q", ErrCorruptProject, p.Format)
	}
	if p.Version != ProjectVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptProject, p.Version)
	}
	if p.Size != GridSize {
		return nil, fmt.Errorf("%w: grid size %d, expected %d", ErrCorruptProject, p.Size, GridSize)
	}
	if len(p.Frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrCorruptProject)
	}
	if p.Count != len(p.Frames) {
		return nil, fmt.Errorf("%w: frame count %d does not match %d frames", ErrCorruptProject, p.Count, len(p.Frames))
	}
	frames := make([]Grid, len(p.Frames))
	for i, rows := range p.Frames {
		if len(rows) != GridSize {
			return nil, fmt.Errorf("%w: frame %d has %d rows, expected %d", ErrCorruptProject, i, len(rows), GridSize)
		}
		for r, row := range rows {
			if len(row) != GridSize {
				return nil, fmt.Errorf("%w: frame %d row %d has %d cells, expected %d", ErrCorruptProject, i, r, len(row), GridSize)
			}
			for c := 0; c < GridSize; c++ {
				switch row[c] {
				case '1':
					frames[i][r][c] = true
				case '0':
				default:
					return nil, fmt.Errorf("%w: frame %d row %d has invalid cell %q", ErrCorruptProject, i, r, row[c])
				}
			}
		}
	}
	return NewFrameSequenceFrom(frames)
}

// SaveProject writes the sequence to w as a YAML .wcv document.
func SaveProject(seq *FrameSequence, w io.Writer) error {
	contents, err := yaml.Marshal(NewProject(seq))
	if err != nil {
		return fmt.Errorf("could not marshal project: %v", err)
	}
	if _, err := w.Write(contents); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// LoadProject reads a .wcv document from r. Both the YAML form and its JSON
// equivalent are accepted.
func LoadProject(r io.Reader) (*FrameSequence, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return unmarshalProject(b)
}

// SaveProjectFile saves the sequence to path. A path ending in .json is
// written as JSON, anything else as YAML. The file is replaced only once the
// new contents are completely written.
func SaveProjectFile(seq *FrameSequence, path string) error {
	var contents []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		contents, err = json.MarshalIndent(NewProject(seq), "", "  ")
	} else {
		contents, err = yaml.Marshal(NewProject(seq))
	}
	if err != nil {
		return fmt.Errorf("could not marshal project: %v", err)
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(contents))
		return err
	})
}

// LoadProjectFile loads the project saved at path.
func LoadProjectFile(path string) (*FrameSequence, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	seq, err := unmarshalProject(b)
	if err != nil {
		return nil, fmt.Errorf("could not load %v: %w", path, err)
	}
	return seq, nil
}

func unmarshalProject(b []byte) (*FrameSequence, error) {
	var p Project
	if errJSON := json.Unmarshal(b, &p); errJSON != nil {
		p = Project{}
		if errYaml := yaml.Unmarshal(b, &p); errYaml != nil {
			return nil, fmt.Errorf("%w: the project could not be parsed as .json (%v) or .yml (%v)", ErrCorruptProject, errJSON, errYaml)
		}
	}
	return p.Sequence()
}
