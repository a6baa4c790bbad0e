package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/buildinfo"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/config"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "pkgscore"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stderr io.Writer
	config config.Config
	flags  globalFlags

	logFile io.Closer
}

type globalFlags struct {
	configPath string
	jobs       int
	verbose    bool
}

// New creates a new CLI instance. Until a command runs, the logger writes to
// w at level; afterwards LOG_LEVEL, LOG_FILE and --verbose decide.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
		config: config.Default(),
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Rank open-source packages by trustworthiness",
		Long: `pkgscore reads GitHub repository and npm package URLs and prints one JSON
line per package with five sub-scores and a weighted net score, best first.

The sub-scores are ramp-up, correctness, bus factor, responsive maintainer
and license compatibility. A GitHub token is read from GITHUB_TOKEN or .env.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup(cmd) },
		PersistentPostRun: func(cmd *cobra.Command, args []string) { c.teardown() },
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "path to a TOML config file")
	pf.IntVar(&c.flags.jobs, "jobs", 0, "URLs scored at once (default from config, 4)")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(c.urlCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Setup
// =============================================================================

// setup loads configuration, applies flag overrides and points the logger at
// its destination.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Scoring.Jobs = c.flags.jobs
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	c.config = cfg

	w, level, closer := logDestination(cfg.Log, c.flags.verbose, c.stderr)
	c.Logger.SetOutput(w)
	c.Logger.SetLevel(level)
	c.logFile = closer

	observability.SetHTTPHooks(httpLogHooks{})
	observability.SetScoreHooks(scoreLogHooks{})
	return nil
}

func (c *CLI) teardown() {
	if c.logFile != nil {
		c.logFile.Close()
		c.logFile = nil
	}
}

// logDestination maps LOG_LEVEL and LOG_FILE onto a writer and level.
// Level 2 logs debug and level 1 info. Any other level, a missing LOG_FILE
// or one that cannot be created turns logging off. verbose overrides both
// and logs to stderr.
func logDestination(cfg config.Log, verbose bool, stderr io.Writer) (io.Writer, log.Level, io.Closer) {
	if verbose {
		return stderr, log.DebugLevel, nil
	}

	var level log.Level
	switch cfg.Level {
	case 2:
		level = log.DebugLevel
	case 1:
		level = log.InfoLevel
	default:
		return io.Discard, log.FatalLevel, nil
	}

	if cfg.File == "" {
		return io.Discard, log.FatalLevel, nil
	}
	f, err := os.Create(cfg.File)
	if err != nil {
		return io.Discard, log.FatalLevel, nil
	}
	return f, level, f
}
