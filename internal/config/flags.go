package config

import (
	"flag"
	"os"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p listen port
//	-d document store connection string
//	-n logical database name
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

// parseFlags parses the given argument list into a *StructuredConfig.
// A dedicated FlagSet is used instead of flag.CommandLine so the function
// can be called repeatedly from tests.
func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("credvault", flag.ContinueOnError)

	var port int
	var databaseURL string
	var databaseName string

	fs.IntVar(&port, "p", 0, "Listen port")
	fs.StringVar(&databaseURL, "d", "", "Document store connection string")
	fs.StringVar(&databaseName, "n", "", "Logical database name")

	// unknown flags are reported by the FlagSet itself; partial results
	// are still returned so env-provided values can fill the gaps
	_ = fs.Parse(args)

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				URL:  databaseURL,
				Name: databaseName,
			},
		},
		Server: Server{
			Port: port,
		},
	}
}
