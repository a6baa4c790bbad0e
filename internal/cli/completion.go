package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starliteSeeker/ECE461-Team19-CLI/pkg/buildinfo"
)

// versionCommand prints the build information injected at link time.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), appName+" "+buildinfo.String())
			return err
		},
	}
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pkgscore.

To load completions:

Bash:
  $ source <(pkgscore completion bash)

Zsh:
  $ pkgscore completion zsh > "${fpath[1]}/_pkgscore"

Fish:
  $ pkgscore completion fish > ~/.config/fish/completions/pkgscore.fish

PowerShell:
  PS> pkgscore completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
