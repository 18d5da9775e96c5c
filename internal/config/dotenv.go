package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenvCandidates are read in shadowing order: a machine-local override
// first, the checked-in defaults second.
var dotenvCandidates = []string{".env.local", ".env"}

// LoadDotEnv reads the dotenv files into the process environment and returns
// the files it actually read. godotenv never overwrites a variable that is
// already set, so precedence ends up OS environment > .env.local > .env.
func LoadDotEnv() []string {
	var loaded []string
	for _, name := range dotenvCandidates {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			continue
		}
		loaded = append(loaded, name)
	}
	return loaded
}
