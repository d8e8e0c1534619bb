// Package cli parses command-line flags for the server and ingest
// binaries, mirroring the teacher's flag.FlagSet-based Flags/SetupFlags
// shape.
package cli

import "flag"

// ServerFlags holds the parsed flags for cmd/server.
type ServerFlags struct {
	ConfigPath *string
}

// SetupServerFlags registers and parses cmd/server's flags.
func SetupServerFlags(args []string) (ServerFlags, error) {
	fs := flag.NewFlagSet("wisho-server", flag.ContinueOnError)
	flags := ServerFlags{
		ConfigPath: fs.String("config", "wisho.toml", "path to the TOML configuration file"),
	}
	if err := fs.Parse(args); err != nil {
		return ServerFlags{}, err
	}
	return flags, nil
}

// IngestFlags holds the parsed flags for cmd/ingest.
type IngestFlags struct {
	ConfigPath *string
	InputPath  *string
}

// SetupIngestFlags registers and parses cmd/ingest's flags.
func SetupIngestFlags(args []string) (IngestFlags, error) {
	fs := flag.NewFlagSet("wisho-ingest", flag.ContinueOnError)
	flags := IngestFlags{
		ConfigPath: fs.String("config", "wisho.toml", "path to the TOML configuration file"),
		InputPath:  fs.String("input", "JMdict.xml", "path to the JMdict XML file to ingest"),
	}
	if err := fs.Parse(args); err != nil {
		return IngestFlags{}, err
	}
	return flags, nil
}
