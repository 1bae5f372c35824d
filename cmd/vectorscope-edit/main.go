package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/NaFo44/vectorscope/config"
	"github.com/NaFo44/vectorscope/editor"
	"github.com/NaFo44/vectorscope/editor/tui"
	"github.com/NaFo44/vectorscope/version"
)

var logFile = flag.String("log-file", "vectorscope-edit.log", "Log file path")
var versionFlag = flag.Bool("v", false, "Print version.")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Terminal editor for 16x16 vectorscope animations.\nUsage: %s [flags] [project.wcv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}
	// the alternate screen owns the terminal, so logs go to a file only
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer f.Close()
	log.SetOutput(f)
	log.Printf("starting vectorscope-edit %v", version.String())

	model, err := editor.NewModel(config.MakePreferences())
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid preferences: %v\n", err)
		os.Exit(1)
	}
	if a := flag.Args(); len(a) > 0 {
		if _, err := os.Stat(a[0]); err == nil {
			model.Load(a[0])
			model.ClearUndoHistory()
		} else {
			model.SetFilePath(a[0]) // new project, created on first save
		}
	}
	if err := tui.Run(tui.NewModel(model, config.MakeKeyMap())); err != nil {
		log.Printf("editor failed: %v", err)
		fmt.Fprintf(os.Stderr, "editor failed: %v\n", err)
		os.Exit(1)
	}
	if model.ChangedSinceSave() {
		log.Printf("quit with unsaved changes")
	}
}
