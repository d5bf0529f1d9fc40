package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var completionInstall bool

// completionShell wires up one supported shell: gen writes the completion
// script, installPath is the user-local target relative to the home
// directory (nil when --install is unsupported), and loadHint is the
// one-liner for loading the script in the current session.
type completionShell struct {
	gen         func(w io.Writer) error
	installPath []string
	loadHint    string
	installNote string
}

var completionShells = map[string]completionShell{
	"bash": {
		gen:         func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
		installPath: []string{".local", "share", "bash-completion", "completions", "taskmaster"},
		loadHint:    `eval "$(taskmaster completion bash)"`,
		installNote: "Restart your shell or source the file to pick it up.",
	},
	"zsh": {
		gen:         func(w io.Writer) error { return rootCmd.GenZshCompletion(w) },
		installPath: []string{".local", "share", "zsh", "site-functions", "_taskmaster"},
		loadHint:    `eval "$(taskmaster completion zsh)"`,
		installNote: "Add the directory to your fpath before compinit if it is not there yet.",
	},
	"fish": {
		gen:         func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
		installPath: []string{".config", "fish", "completions", "taskmaster.fish"},
		loadHint:    "taskmaster completion fish | source",
		installNote: "New fish sessions pick the completions up automatically.",
	},
	"powershell": {
		gen:      func(w io.Writer) error { return rootCmd.GenPowerShellCompletionWithDesc(w) },
		loadHint: "taskmaster completion powershell | Out-String | Invoke-Expression",
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [shell]",
	Short: "Generate shell completion scripts",
	Long: `Generate tab-completion scripts for taskmaster commands, flags, and
task ids.

Without --install the script is printed on stdout for you to source or
redirect. With --install it is written to the shell's user-local
completion directory.

Quick install:

  taskmaster completion bash --install
  taskmaster completion zsh --install
  taskmaster completion fish --install

Powershell has no user-local directory convention; add the printed
script to your profile instead.`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MaximumNArgs(1),
	RunE:      runCompletion,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	completionCmd.Flags().BoolVar(&completionInstall, "install", false,
		"write the script into the shell's completion directory")
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	name := args[0]
	sh, ok := completionShells[name]
	if !ok {
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish, powershell)", name)
	}

	if completionInstall {
		return installCompletion(name, sh)
	}

	printCompletionHints(cmd, name, sh)
	return sh.gen(cmd.OutOrStdout())
}

// printCompletionHints writes load instructions to stderr ahead of a stdout
// script dump, keeping a redirected stdout sourceable as-is.
func printCompletionHints(cmd *cobra.Command, name string, sh completionShell) {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, "# To load completions in your current session:")
	fmt.Fprintf(w, "#   %s\n", sh.loadHint)
	if sh.installPath != nil {
		fmt.Fprintln(w, "# To install them permanently:")
		fmt.Fprintf(w, "#   taskmaster completion %s --install\n", name)
	}
	fmt.Fprintln(w, "#")
}

func installCompletion(name string, sh completionShell) error {
	if sh.installPath == nil {
		return fmt.Errorf("automatic install is not supported for %s; add the output of 'taskmaster completion %s' to your profile", name, name)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}

	target := filepath.Join(home, filepath.Join(sh.installPath...))
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return fmt.Errorf("creating completion directory: %w", err)
	}
	if err := writeCompletionFile(target, sh.gen); err != nil {
		return err
	}

	fmt.Printf("Completions installed to %s\n", target)
	if sh.installNote != "" {
		fmt.Println(sh.installNote)
	}
	return nil
}

// writeCompletionFile generates the script into target, reporting both
// write and close failures.
func writeCompletionFile(target string, gen func(io.Writer) error) error {
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating completion file %s: %w", target, err)
	}

	genErr := gen(f)
	closeErr := f.Close()
	if genErr != nil {
		return fmt.Errorf("generating completion script: %w", genErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing completion file %s: %w", target, closeErr)
	}
	return nil
}
