package version

import (
	"encoding/json"
	"log"
	"runtime/debug"
)

type Info struct {
	Commit string `json:"commit"`
	Time   string `json:"time"`
	Go     string `json:"go,omitempty"`
}

// Read returns the vcs revision and time stamped in the binary by go build.
func Read() Info {
	v := Info{}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	v.Go = info.GoVersion
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.Commit = setting.Value
		case "vcs.time":
			v.Time = setting.Value
		}
	}
	return v
}

var Version = func() string {
	v := Read()
	b, err := json.Marshal(&v)
	if err != nil {
		log.Fatal(err)
	}
	return string(b)
}()
