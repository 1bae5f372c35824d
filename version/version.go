// Package version tells which build of the vectorscope tools is running.
package version

import "runtime/debug"

// Version can be set at build time, e.g.
// go build -ldflags "-X github.com/NaFo44/vectorscope/version.Version=$(git describe --dirty)"
var Version string

// Revision is the short VCS revision of the build, suffixed with "-dirty"
// when the work tree had local modifications. Empty when the binary was not
// built from a repository.
var Revision = revision(debug.ReadBuildInfo)

func revision(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return ""
	}
	var rev string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && modified {
		rev += "-dirty"
	}
	return rev
}

// String returns Version if set, then Revision, then "devel".
func String() string {
	switch {
	case Version != "":
		return Version
	case Revision != "":
		return Revision
	}
	return "devel"
}
