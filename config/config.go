package config

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// DefaultPath of the configuration file, relative to the working directory.
const DefaultPath = "conf/config.ini"

type Config struct {
	ServerAddr string

	ImportDir    string
	VerticesFile string
	EdgesFile    string

	System       string
	TerminalFlow float64
}

// Load reads the configuration file. A missing or broken file logs a
// warning and falls back to the defaults.
func Load(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("config not readable, using defaults")
		file = ini.Empty()
	}

	return Config{
		ServerAddr:   file.Section("server").Key("Addr").MustString(":9000"),
		ImportDir:    file.Section("import").Key("Dir").MustString("import"),
		VerticesFile: file.Section("import").Key("Vertices").MustString("vertices.csv"),
		EdgesFile:    file.Section("import").Key("Edges").MustString("edges.csv"),
		System:       file.Section("network").Key("System").MustString("ZUL"),
		TerminalFlow: file.Section("network").Key("TerminalFlow").MustFloat64(240),
	}
}
