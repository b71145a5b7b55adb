package config

import (
	"flag"
	"os"

	"moondb/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database DSN (e.g., "postgres://127.0.0.1:5432/moondb")
//	-u string   database user
//	-p string   database password
//	-dev        run with an embedded development database
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled
// by the JSON loader.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-p", "-dev"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DBUser, "u", config.DBUser, "database user")
	fs.StringVar(&config.DBPassword, "p", config.DBPassword, "database password")
	fs.BoolVar(&config.Dev, "dev", config.Dev, "use an embedded development database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
