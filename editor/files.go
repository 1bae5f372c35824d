package editor

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/NaFo44/vectorscope"
)

const (
	DefaultProjectFile = "untitled" + vectorscope.ProjectExt
	DefaultImageFile   = "matrix16x16_vectorscope.wav"
	DefaultVideoFile   = "video_vectorscope_16x16.wav"
)

// ReadProject replaces the frames with the project read from r. On error
// the session is left unchanged and an alert is added.
func (m *Model) ReadProject(r io.Reader) bool {
	seq, err := vectorscope.LoadProject(r)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error reading the project: %v", err), Error)
		return false
	}
	m.setLoaded(seq)
	return true
}

func (m *Model) WriteProject(w io.Writer) bool {
	if err := vectorscope.SaveProject(m.seq, w); err != nil {
		m.alerts.Add(fmt.Sprintf("Error writing the project: %v", err), Error)
		return false
	}
	return true
}

// Load reads the project file and makes it the file the session saves to.
func (m *Model) Load(path string) bool {
	seq, err := vectorscope.LoadProjectFile(path)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error loading %v: %v", path, err), Error)
		return false
	}
	m.setLoaded(seq)
	m.filePath = path
	m.changedSinceSave = false
	log.Printf("loaded %v: %d frames", path, seq.Len())
	return true
}

func (m *Model) setLoaded(seq *vectorscope.FrameSequence) {
	m.saveUndo("Load", 0)
	m.seq = seq
	m.paintValue = true
}

// Save writes the project to FilePath, or to DefaultProjectFile when the
// session has no file yet.
func (m *Model) Save() bool {
	path := m.filePath
	if path == "" {
		path = DefaultProjectFile
	}
	return m.SaveAs(path)
}

func (m *Model) SaveAs(path string) bool {
	if err := vectorscope.SaveProjectFile(m.seq, path); err != nil {
		m.alerts.Add(fmt.Sprintf("Error saving %v: %v", path, err), Error)
		return false
	}
	m.filePath = path
	m.changedSinceSave = false
	m.alerts.Add("Saved "+path, Info)
	log.Printf("saved %v: %d frames", path, m.seq.Len())
	return true
}

// ExportImage writes the current frame as a looping image WAV. A blank frame
// is not exported.
func (m *Model) ExportImage(path string) bool {
	frame := *m.seq.Current()
	if frame.Empty() {
		m.alerts.Add("No lit cells in the current frame.", Warning)
		return false
	}
	buf, err := m.synth.ExportImage(frame, m.imageDuration)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error rendering the image: %v", err), Error)
		return false
	}
	return m.writeWav(path, buf)
}

// ExportVideo writes every frame in order as a video WAV.
func (m *Model) ExportVideo(path string) bool {
	buf, err := m.synth.ExportVideo(m.seq.Frames(), m.frameDuration)
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error rendering the video: %v", err), Error)
		return false
	}
	return m.writeWav(path, buf)
}

func (m *Model) writeWav(path string, buf vectorscope.AudioBuffer) bool {
	if err := vectorscope.WriteWavFile(path, buf, m.format); err != nil {
		m.alerts.Add(fmt.Sprintf("Error writing %v: %v", path, err), Error)
		return false
	}
	m.alerts.Add(fmt.Sprintf("Exported %v (%.2f s)", path, buf.Duration(m.format.SampleRate)), Info)
	log.Printf("exported %v: %d samples, peak %.3f", path, len(buf), buf.Peak())
	return true
}

// ExportPath returns where an export goes by default: next to the project
// file, named after it, or the default file name if there is no project
// file.
func (m *Model) ExportPath(video bool) string {
	if m.filePath == "" {
		if video {
			return DefaultVideoFile
		}
		return DefaultImageFile
	}
	base := strings.TrimSuffix(m.filePath, filepath.Ext(m.filePath))
	if video {
		return base + "_video.wav"
	}
	return base + "_image.wav"
}
