// Command sitepass derives deterministic per-site passwords from a single
// master secret. The secret is read from the SITEPASS_SECRET environment
// variable or prompted for without echo; the derived password is printed
// to stdout or copied to the system clipboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sitepass/sitepass"
)

const version = "1.0.0"

type options struct {
	length     int
	iterations int
	mode       string
	hash       string
	copyToClip bool
	confirm    bool
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sitepass [flags] <site>...",
		Short: "Derive deterministic per-site passwords from one master secret",
		Long: `sitepass derives a reproducible password for each site from a single
memorized master secret, using PBKDF2 over an HMAC pseudorandom function.
Nothing is stored: the same secret and site always produce the same
password.

The master secret is taken from the ` + secretEnvVar + ` environment
variable if set, otherwise prompted for without echo.`,
		Example: `  sitepass example.com
  sitepass -n 24 -m simple example.com github.com
  sitepass --copy example.com`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.length, "length", "n", sitepass.DefaultLength, "derived length in bytes")
	flags.IntVarP(&opts.iterations, "iterations", "i", sitepass.DefaultIterations, "PBKDF2 iteration count")
	flags.StringVarP(&opts.mode, "mode", "m", "full", "password alphabet: full, simple or raw")
	flags.StringVar(&opts.hash, "hash", "sha1", "HMAC hash function: sha1, sha256 or sha512")
	flags.BoolVarP(&opts.copyToClip, "copy", "c", false, "copy the password to the clipboard instead of printing it")
	flags.BoolVar(&opts.confirm, "confirm", false, "prompt for the master secret twice")
	flags.StringVar(&opts.configPath, "config", "", "settings file path (default ~/.sitepass.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable diagnostic logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options, sites []string) error {
	logger := zap.NewNop()
	if opts.verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logger.Sync()
	}

	params, err := resolveParams(opts, cmd.Flags(), logger)
	if err != nil {
		return err
	}
	logger.Debug("derivation parameters resolved",
		zap.Int("iterations", params.Iterations),
		zap.Int("length", params.Length),
		zap.Stringer("mode", params.Mode),
		zap.Stringer("hash", params.Hash))

	deriver, err := sitepass.New(params)
	if err != nil {
		return err
	}

	secret, err := getSecret(opts.confirm)
	if err != nil {
		return err
	}
	defer zeroBytes(secret)

	for _, site := range sites {
		password := deriver.Derive(secret, []byte(site))
		if opts.copyToClip {
			if err := copyToClipboard(password); err != nil {
				return fmt.Errorf("failed to copy password for %s: %w", site, err)
			}
			logger.Debug("password copied to clipboard", zap.String("site", site))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), password)
	}
	return nil
}

// resolveParams layers the settings file under any explicitly set flags
func resolveParams(opts *options, flags *pflag.FlagSet, logger *zap.Logger) (sitepass.Params, error) {
	path := opts.configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".sitepass.yaml")
		}
	}

	params := sitepass.DefaultParams()
	if path != "" {
		var err error
		params, err = sitepass.LoadSettings(newOSFS(), path)
		if err != nil {
			return sitepass.Params{}, err
		}
		logger.Debug("settings loaded", zap.String("path", path))
	}

	if flags.Changed("length") {
		params.Length = opts.length
	}
	if flags.Changed("iterations") {
		params.Iterations = opts.iterations
	}
	if flags.Changed("mode") {
		mode, err := sitepass.ParseAlphabetMode(opts.mode)
		if err != nil {
			return sitepass.Params{}, err
		}
		params.Mode = mode
	}
	if flags.Changed("hash") {
		hash, err := sitepass.ParseHashFunc(opts.hash)
		if err != nil {
			return sitepass.Params{}, err
		}
		params.Hash = hash
	}
	return params, nil
}
