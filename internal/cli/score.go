package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/identity"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations/git"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations/github"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/integrations/npm"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/metrics"
	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/score"
)

// urlCommand creates the url command for scoring a list of URLs.
func (c *CLI) urlCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "url <file>",
		Aliases: []string{"score"},
		Short:   "Score the packages listed in a file",
		Long: `Score every URL in file, one per line, and print one JSON object per
scored package on stdout, highest net score first.

Accepted URLs are https://github.com/<owner>/<repo> and
https://www.npmjs.com/package/<name>. Other hosts, and URLs without a host,
are skipped silently. Blank lines are ignored; a line that is not a URL
with a scheme aborts the run before anything is printed.`,
		Example: `  pkgscore url urls.txt
  pkgscore url --jobs 8 urls.txt
  LOG_LEVEL=2 LOG_FILE=run.log pkgscore url urls.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runURL(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (c *CLI) runURL(ctx context.Context, out io.Writer, path string) error {
	urls, err := score.ReadURLFile(path)
	if err != nil {
		return err
	}

	gateway, err := github.NewGateway(c.config.GitHub)
	if err != nil {
		return err
	}

	logger := c.Logger.With("run", uuid.NewString())
	ctx = withLogger(ctx, logger)
	logger.Info("starting", "urls", len(urls), "jobs", c.config.Scoring.Jobs)

	resolver := identity.NewResolver(npm.NewClient(c.config.Registry.URL))
	calc := metrics.NewCalculator(gateway, git.NewCloner(c.config.Scoring.CloneDepth))
	engine := score.NewEngine(resolver, calc, score.Options{
		Jobs:       c.config.Scoring.Jobs,
		URLTimeout: c.config.Scoring.URLTimeout.Duration,
		Logger:     logger,
	})

	prog := newProgress(logger)
	var spinner *Spinner
	if isTerminal(c.stderr) && len(urls) > 0 {
		spinner = newSpinnerWithContext(ctx, c.stderr, fmt.Sprintf("Scoring %d urls", len(urls)))
		spinner.Start()
	}
	records, err := engine.Score(ctx, urls)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Scored %d of %d urls", len(records), len(urls)))

	if skipped := len(urls) - len(records); skipped > 0 && c.flags.verbose {
		printWarning(c.stderr, "%d of %d urls could not be resolved to a GitHub repository", skipped, len(urls))
	}

	score.Rank(records)
	return score.Render(out, records)
}
