package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/joho/godotenv"
)

// EnvFilePath returns the env file path given with the -c or
// --config flag, or an empty string if none is given.
// If -h or --help is given, the usage is written to stdout and
// an error wrapping [flag.ErrHelp] is returned.
func EnvFilePath(args []string, stdout io.Writer) (path string, err error) {
	flagSet := flag.NewFlagSet("gandyn", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	const usage = "path to an env file to load settings from"
	flagSet.StringVar(&path, "c", "", usage)
	flagSet.StringVar(&path, "config", "", usage)
	err = flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.SetOutput(stdout)
			flagSet.Usage()
		}
		return "", fmt.Errorf("parsing flags: %w", err)
	}
	return path, nil
}

// LoadEnvFile sets the environment variables defined in the env
// file at path. Variables already set in the environment are
// not overridden.
func LoadEnvFile(path string) (err error) {
	err = godotenv.Load(path)
	if err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}
