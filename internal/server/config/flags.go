package config

import (
	"flag"
	"os"
	"time"

	"github.com/tajaa/matcha-recruit-sub001/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      candidate token validity, hours
//	-m int      default negotiation round cap
//	-r string   redis URL for event publishing
//	-u string   public base URL for candidate links
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The token validity flag is accepted as an integer in hours and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-m", "-r", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	candidateTokenTTL := fs.Int("t", int(config.CandidateTokenTTL.Hours()), "candidate_token_ttl (in hours)")

	fs.IntVar(&config.DefaultMaxRounds, "m", config.DefaultMaxRounds, "default negotiation round cap")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL for event publishing")
	fs.StringVar(&config.PublicBaseURL, "u", config.PublicBaseURL, "public base URL for candidate links")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CandidateTokenTTL = time.Duration(*candidateTokenTTL) * time.Hour
}
