// Command cfgx-check resolves a service's credential secret and reports the
// outcome, for operators verifying a migration away from hardcoded keys.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hengadev/cfgx"
	s3bucket "github.com/hengadev/cfgx/providers/s3"
	awssecrets "github.com/hengadev/cfgx/providers/secrets/aws"
	vaultsecrets "github.com/hengadev/cfgx/providers/secrets/hashicorp"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "resolve":
		resolveCommand(os.Args[2:])
	case "verify":
		verifyCommand(os.Args[2:])
	case "version":
		versionCommand()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  resolve   Resolve the secret and print the redacted configuration\n")
	fmt.Fprintf(os.Stderr, "  verify    Resolve, then list storage buckets with the resolved credentials\n")
	fmt.Fprintf(os.Stderr, "  version   Show version information\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

// checkFlags are the options shared by resolve and verify.
type checkFlags struct {
	secret     string
	regionHint string
	configPath string
	store      string
	timeout    time.Duration
}

func parseCheckFlags(name string, args []string) checkFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	secret := fs.String("secret", "", "Name of the secret to resolve")
	regionHint := fs.String("region", "", "Region hint when the secret omits one")
	configPath := fs.String("config", "", "Path to a cfgx YAML configuration file")
	store := fs.String("store", "aws", "Secret store backend: aws or vault")
	timeout := fs.Duration("timeout", 30*time.Second, "Overall deadline for the check")

	fs.Parse(args)

	return checkFlags{
		secret:     *secret,
		regionHint: *regionHint,
		configPath: *configPath,
		store:      *store,
		timeout:    *timeout,
	}
}

func resolveCommand(args []string) {
	flags := parseCheckFlags("resolve", args)

	resolved := mustResolve(flags)
	fmt.Println(resolved)
}

func verifyCommand(args []string) {
	flags := parseCheckFlags("verify", args)

	resolved := mustResolve(flags)
	fmt.Println(resolved)

	ctx, cancel := context.WithTimeout(context.Background(), flags.timeout)
	defer cancel()

	buckets, err := s3bucket.Buckets(ctx, s3bucket.NewClient(resolved))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Credentials verified: %d bucket(s) visible\n", len(buckets))
	for _, name := range buckets {
		fmt.Printf("  %s\n", name)
	}
}

func versionCommand() {
	fmt.Println(cfgx.VersionInfo())
}

// mustResolve loads configuration, builds the requested store, and runs one
// resolution. Any failure prints the stage-identifying diagnostic and exits 1.
func mustResolve(flags checkFlags) cfgx.ResolvedConfig {
	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), flags.timeout)
	defer cancel()

	store, err := buildStore(ctx, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Store error: %v\n", err)
		os.Exit(1)
	}

	resolved, err := cfgx.Resolve(ctx, store, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Resolution failed: %v\n", err)
		os.Exit(1)
	}
	return resolved
}

// loadConfig prefers flags, then the config file, then the environment.
func loadConfig(flags checkFlags) (cfgx.Config, error) {
	if flags.secret != "" {
		return cfgx.NewConfig(
			cfgx.WithSecretName(flags.secret),
			cfgx.WithRegionHint(flags.regionHint),
			cfgx.WithRegionSources(cfgx.AmbientRegion()),
		)
	}
	if flags.configPath != "" {
		cfg, err := cfgx.LoadConfigFromFile(flags.configPath)
		if err != nil {
			return cfgx.Config{}, err
		}
		cfg.RegionSources = []cfgx.RegionSource{cfgx.AmbientRegion()}
		return cfg, nil
	}
	cfg, err := cfgx.LoadConfigFromEnvironment()
	if err != nil {
		return cfgx.Config{}, err
	}
	cfg.RegionSources = []cfgx.RegionSource{cfgx.AmbientRegion()}
	return cfg, nil
}

func buildStore(ctx context.Context, flags checkFlags) (cfgx.SecretStore, error) {
	switch flags.store {
	case "aws":
		return awssecrets.NewStore(ctx, awssecrets.Config{Region: flags.regionHint})
	case "vault":
		return vaultsecrets.NewKVStore()
	default:
		return nil, fmt.Errorf("unknown store backend %q (want aws or vault)", flags.store)
	}
}
