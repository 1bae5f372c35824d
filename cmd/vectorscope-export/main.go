package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/NaFo44/vectorscope"
	"github.com/NaFo44/vectorscope/config"
	"github.com/NaFo44/vectorscope/version"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("vectorscope-export: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	prefs := config.MakePreferences()
	if prefs.YmlError != nil {
		log.Printf("ignoring errors in preferences.yml: %v", prefs.YmlError)
	}
	flags := flag.NewFlagSet("vectorscope-export", flag.ContinueOnError)
	image := flags.Bool("image", false, "Export one frame as a looping still image instead of the whole animation.")
	frameNum := flags.Int("frame", 1, "The frame exported by -image, counting from 1.")
	duration := flags.Float64("d", 0, "Duration in seconds: the total length of an image, or the length of each animation frame. 0 uses the value from the preferences.")
	sampleRate := flags.Int("r", prefs.SampleRate, "Sample rate of the output in Hz.")
	pcm := flags.Bool("c", prefs.PCM16, "Convert audio to 16-bit signed PCM instead of 32-bit float.")
	mapping := flags.String("m", prefs.Mapping, "Channel mapping: xy or vectorscope.")
	directory := flags.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, files are placed in the current directory.")
	stdoutFlag := flags.Bool("s", false, "Do not write files; write to standard output instead.")
	versionFlag := flags.Bool("v", false, "Print version.")
	help := flags.Bool("h", false, "Show help.")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Converts 16x16 frame projects (.wcv/.yml/.json) into stereo WAV files for XY oscilloscopes.\nUsage: vectorscope-export [flags] [path ...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	if flags.NArg() == 0 || *help {
		flags.Usage()
		return 0
	}
	prefs.SampleRate = *sampleRate
	prefs.PCM16 = *pcm
	prefs.Mapping = *mapping
	synth, err := prefs.Synthesizer()
	if err != nil {
		log.Printf("invalid settings: %v", err)
		return 1
	}
	p := message.NewPrinter(language.English)
	process := func(filename string) error {
		seq, err := vectorscope.LoadProjectFile(filename)
		if err != nil {
			return err
		}
		var buf vectorscope.AudioBuffer
		if *image {
			frame, ok := seq.Frame(*frameNum - 1)
			if !ok {
				return fmt.Errorf("frame %v does not exist, the project has %v frames", *frameNum, seq.Len())
			}
			d := prefs.ImageDuration
			if *duration != 0 {
				d = *duration
			}
			buf, err = synth.ExportImage(frame, d)
		} else {
			d := prefs.FrameDuration
			if *duration != 0 {
				d = *duration
			}
			buf, err = synth.ExportVideo(seq.Frames(), d)
		}
		if err != nil {
			return fmt.Errorf("could not render: %w", err)
		}
		if *stdoutFlag {
			return vectorscope.WriteWav(stdout, buf, prefs.WavFormat())
		}
		dir := *directory
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				return fmt.Errorf("could not get working directory, specify the output directory explicitly: %v", err)
			}
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
		out := filepath.Join(dir, outputName(filename, *image))
		if err := vectorscope.WriteWavFile(out, buf, prefs.WavFormat()); err != nil {
			return err
		}
		log.Print(p.Sprintf("%v: %d frames, %d samples (%.2f s, peak %.3f)", out, seq.Len(), len(buf), buf.Duration(prefs.SampleRate), buf.Peak()))
		return nil
	}
	retval := 0
	for _, param := range flags.Args() {
		files := []string{param}
		if info, err := os.Stat(param); err == nil && info.IsDir() {
			files = nil
			for _, pattern := range []string{"*" + vectorscope.ProjectExt, "*.yml", "*.json"} {
				matches, err := filepath.Glob(filepath.Join(param, pattern))
				if err != nil {
					log.Printf("could not glob the path %v for %v files: %v", param, pattern, err)
					retval = 1
					continue
				}
				files = append(files, matches...)
			}
		}
		for _, file := range files {
			if err := process(file); err != nil {
				log.Printf("could not process file %v: %v", file, err)
				retval = 1
			}
		}
	}
	return retval
}

// outputName returns the WAV name for a project file: the project name with
// a .wav extension, and an _image suffix for still images.
func outputName(filename string, image bool) string {
	_, name := filepath.Split(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if image {
		name += "_image"
	}
	return name + ".wav"
}
