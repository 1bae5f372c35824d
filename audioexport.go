package vectorscope

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/viterin/vek/vek32"
)

// WavFormat describes the sample encoding of a written .wav file. The file
// is always stereo: left = first channel of the AudioBuffer.
type WavFormat struct {
	SampleRate int
	PCM16      bool // signed 16-bit integer samples; float32 otherwise
}

// DefaultWavFormat is 44100 Hz signed 16-bit PCM.
var DefaultWavFormat = WavFormat{SampleRate: DefaultSampleRate, PCM16: true}

// Wav encodes the buffer as a complete .wav file.
func (b AudioBuffer) Wav(f WavFormat) ([]byte, error) {
	if f.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	buf := new(bytes.Buffer)
	wavHeader(2*len(b), f, buf)
	err := rawToBuffer(b.Interleaved(), f.PCM16, buf)
	if err != nil {
		return nil, fmt.Errorf("Wav failed: %v", err)
	}
	return buf.Bytes(), nil
}

// Raw encodes the buffer as headerless interleaved little-endian samples.
func (b AudioBuffer) Raw(pcm16 bool) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := rawToBuffer(b.Interleaved(), pcm16, buf)
	if err != nil {
		return nil, fmt.Errorf("Raw failed: %v", err)
	}
	return buf.Bytes(), nil
}

// WriteWav writes the buffer as a .wav file to w.
func WriteWav(w io.Writer, b AudioBuffer, f WavFormat) error {
	data, err := b.Wav(f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// WriteWavFile writes the buffer as a .wav file at path. The file appears
// only once it has been completely written; on failure nothing is left
// behind.
func WriteWavFile(path string, b AudioBuffer, f WavFormat) error {
	data, err := b.Wav(f)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// rawToBuffer clamps the samples to [-1, 1] and writes them either as int16
// or as float32 values.
func rawToBuffer(data []float32, pcm16 bool, buf *bytes.Buffer) error {
	for i, v := range data {
		data[i] = clampSample(v)
	}
	var err error
	if pcm16 {
		vek32.MulNumber_Inplace(data, math.MaxInt16)
		int16data := make([]int16, len(data))
		for i, v := range data {
			int16data[i] = int16(clamp(int(v), math.MinInt16, math.MaxInt16))
		}
		err = binary.Write(buf, binary.LittleEndian, int16data)
	} else {
		err = binary.Write(buf, binary.LittleEndian, data)
	}
	if err != nil {
		return fmt.Errorf("could not binary write data to binary buffer: %v", err)
	}
	return nil
}

// wavHeader writes a wave header for either a float32 or an int16 stereo
// .wav file into buf. bufferLength is the number of individual samples, i.e.
// twice the number of stereo frames.
func wavHeader(bufferLength int, f WavFormat, buf *bytes.Buffer) {
	// Refer to: http://www-mmsp.ece.mcgill.ca/Documents/AudioFormats/WAVE/WAVE.html
	numChannels := 2
	var bytesPerSample, chunkSize, fmtChunkSize, waveFormat int
	var factChunk bool
	if f.PCM16 {
		bytesPerSample = 2
		chunkSize = 36 + bytesPerSample*bufferLength
		fmtChunkSize = 16
		waveFormat = 1 // PCM
		factChunk = false
	} else {
		bytesPerSample = 4
		chunkSize = 50 + bytesPerSample*bufferLength
		fmtChunkSize = 18
		waveFormat = 3 // IEEE float
		factChunk = true
	}
	buf.Write([]byte("RIFF"))
	binary.Write(buf, binary.LittleEndian, uint32(chunkSize))
	buf.Write([]byte("WAVE"))
	buf.Write([]byte("fmt "))
	binary.Write(buf, binary.LittleEndian, uint32(fmtChunkSize))
	binary.Write(buf, binary.LittleEndian, uint16(waveFormat))
	binary.Write(buf, binary.LittleEndian, uint16(numChannels))
	binary.Write(buf, binary.LittleEndian, uint32(f.SampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(f.SampleRate*numChannels*bytesPerSample)) // avgBytesPerSec
	binary.Write(buf, binary.LittleEndian, uint16(numChannels*bytesPerSample))              // blockAlign
	binary.Write(buf, binary.LittleEndian, uint16(8*bytesPerSample))                        // bits per sample
	if fmtChunkSize > 16 {
		binary.Write(buf, binary.LittleEndian, uint16(0)) // size of extension
	}
	if factChunk {
		buf.Write([]byte("fact"))
		binary.Write(buf, binary.LittleEndian, uint32(4))                        // fact chunk size
		binary.Write(buf, binary.LittleEndian, uint32(bufferLength/numChannels)) // frames per channel
	}
	buf.Write([]byte("data"))
	binary.Write(buf, binary.LittleEndian, uint32(bytesPerSample*bufferLength))
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
