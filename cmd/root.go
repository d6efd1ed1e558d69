package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/samzong/gcm/internal/commit"
	"github.com/samzong/gcm/internal/config"
	"github.com/samzong/gcm/internal/git"
	"github.com/samzong/gcm/internal/prompt"
	"github.com/samzong/gcm/internal/workflow"
	"github.com/spf13/cobra"
	"go.abhg.dev/log/silog"
)

var (
	cfgFile   string
	message   string
	dryRun    bool
	verbose   bool
	configErr error
	rootCtx   = context.Background()
	rootCmd   = &cobra.Command{
		Use:   "gcm",
		Short: "gcm - Git Commit Message prompt",
		Long: `gcm commits the staged changes of the current repository ` +
			`with a one-line message typed at an interactive prompt ` +
			`that completes and hints conventional commit types.`,
		Version:       fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		Args:          cobra.NoArgs,
		RunE:          runCommit,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// Seams replaced in tests.
var (
	newMessageReader = func(opts prompt.EditorOptions) workflow.MessageReader {
		return prompt.NewEditor(prompt.KeywordHelper{}, opts)
	}
	newCommitter = func(log *slog.Logger) workflow.Committer {
		return workflow.EngineCommitter{
			Engine: commit.GitEngine(git.NewClient(git.Options{Logger: log})),
		}
	}
)

// SetContext sets the context commands run with.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

// RootCmd returns the root command, for documentation generators.
func RootCmd() *cobra.Command {
	return rootCmd
}

func Execute() error {
	return rootCmd.ExecuteContext(rootCtx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is $XDG_CONFIG_HOME/gcm/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Log every git command")
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "Use the given message instead of prompting")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve the commit without creating it; the staged tree is still written to the object database")

	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(silog.NewHandler(w, &silog.HandlerOptions{Level: level}))
}

func runCommit(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return fmt.Errorf("configuration error: %w", configErr)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	log := newLogger(errWriter())
	styles := prompt.DefaultStyles(cfg.HintColor)
	reader := newMessageReader(prompt.EditorOptions{
		Input:  inReader(),
		Output: errWriter(),
		Styles: &styles,
		Log:    log,
	})

	flow := workflow.NewCommitFlow(reader, newCommitter(log), workflow.CommitOptions{
		Message:    message,
		MessageSet: cmd.Flags().Changed("message"),
		Prompt:     cfg.Prompt,
		DryRun:     dryRun,
		Spinner:    cfg.Spinner,
		ErrWriter:  errWriter(),
		OutWriter:  outWriter(),
		Log:        log,
	})
	return flow.Run(cmd.Context())
}
