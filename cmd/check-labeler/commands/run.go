// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-15
// Last Modified: 2026-10-15

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"

	"github.com/similigh/check-labeler/internal/core/config"
	"github.com/similigh/check-labeler/internal/core/pipeline"
	similiGithub "github.com/similigh/check-labeler/internal/integrations/github"
	"github.com/similigh/check-labeler/internal/steps"
)

type runOptions struct {
	ConfigPath  string
	EventPath   string
	Repo        string
	Number      int
	Token       string
	CheckRegexp string
	Label       string
	DryRun      bool
	Workflow    string
	JSON        bool
	TUI         bool
}

// runEnv is the process surface a run talks to.
type runEnv struct {
	action *githubactions.Action
	getenv func(string) string
	stdout io.Writer
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sync the label on every issue referenced by the pull request",
	Long: `Run the labeling pipeline for one pull request.

Inside GitHub Actions the pull request is read from GITHUB_EVENT_PATH and the
settings from the action inputs. Locally, pass --event or --repo/--number
together with --check-regexp and --label.`,
	Run: func(cmd *cobra.Command, args []string) {
		runOpts.ConfigPath = cfgFile
		env := runEnv{
			action: githubactions.New(),
			getenv: os.Getenv,
			stdout: cmd.OutOrStdout(),
		}
		if err := runAction(cmd.Context(), runOpts, env, nil); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runOpts.EventPath, "event", "", "Path to the event payload (default: $GITHUB_EVENT_PATH)")
	runCmd.Flags().StringVar(&runOpts.Repo, "repo", "", "Repository (owner/name), overrides the payload")
	runCmd.Flags().IntVar(&runOpts.Number, "number", 0, "Pull request number, overrides the payload")
	runCmd.Flags().StringVar(&runOpts.Token, "token", "", "GitHub token (default: github-token input or $GITHUB_TOKEN)")
	runCmd.Flags().StringVar(&runOpts.CheckRegexp, "check-regexp", "", "Pattern whose first capture group holds the checkbox mark")
	runCmd.Flags().StringVar(&runOpts.Label, "label", "", "Label to add or remove")
	runCmd.Flags().BoolVar(&runOpts.DryRun, "dry-run", false, "Report label changes without applying them")
	runCmd.Flags().StringVar(&runOpts.Workflow, "workflow", pipeline.DefaultWorkflow, "Step preset to run (sync-labels, report-only)")
	runCmd.Flags().BoolVar(&runOpts.JSON, "json", false, "Print the run result as JSON")
	runCmd.Flags().BoolVar(&runOpts.TUI, "tui", false, "Show interactive progress (ignored in CI)")
}

// runAction executes one run. Hard failures are reported as an error
// workflow command and returned; soft stops return nil. A nil gh builds
// a client from the resolved token.
func runAction(ctx context.Context, opts runOptions, env runEnv, gh pipeline.GitHubClient) error {
	err := run(ctx, opts, env, gh)
	if err != nil {
		env.action.Errorf("%s", err)
	}
	return err
}

func run(ctx context.Context, opts runOptions, env runEnv, gh pipeline.GitHubClient) error {
	if ctx == nil {
		ctx = context.Background()
	}

	event, err := resolveEvent(opts, env.getenv)
	if err != nil {
		return err
	}

	notifier := actionNotifier{action: env.action}

	// Non-PR events stop before any config is read or API called.
	if event.Number <= 0 {
		pCtx := pipeline.NewContext(ctx, event, &config.Config{})
		_ = pCtx.Result.Skip(steps.ReasonNoPullRequest)
		return report(env, notifier, opts, pCtx.Result)
	}

	cfg, err := loadRunConfig(ctx, opts, env)
	if err != nil {
		return err
	}

	stepNames, err := pipeline.ResolveSteps(opts.Workflow)
	if err != nil {
		return err
	}

	if gh == nil {
		client, err := similiGithub.NewClient(ctx, cfg.GitHub.Token, similiGithub.WithBaseURL(cfg.GitHub.APIURL))
		if err != nil {
			return fmt.Errorf("failed to create GitHub client: %w", err)
		}
		gh = client
	}

	deps := &pipeline.Dependencies{
		GitHub:   gh,
		Notifier: notifier,
		DryRun:   cfg.DryRun,
	}

	pCtx := pipeline.NewContext(ctx, event, cfg)
	log.Printf("[run] %s: %s/%s#%d, steps %v", pCtx.Result.RunID, event.Owner, event.Repo, event.Number, stepNames)

	if opts.TUI && !isCI(env.getenv) {
		err = runWithTUI(pCtx, deps, stepNames)
	} else {
		err = runPipeline(pCtx, deps, stepNames, nil)
	}

	if reportErr := report(env, notifier, opts, pCtx.Result); reportErr != nil && err == nil {
		err = reportErr
	}
	return err
}

// loadRunConfig resolves settings with precedence flags > inputs > file.
func loadRunConfig(ctx context.Context, opts runOptions, env runEnv) (*config.Config, error) {
	cfg := &config.Config{}

	path := config.FindConfigPath(opts.ConfigPath)
	if opts.ConfigPath != "" && path == "" {
		return nil, fmt.Errorf("config file not found: %s", opts.ConfigPath)
	}
	if path != "" {
		var err error
		cfg, err = config.LoadWithInheritance(path, remoteConfigFetcher(ctx, opts, env))
		if err != nil {
			return nil, err
		}
		log.Printf("[config] loaded %s", path)
	}

	if err := cfg.ApplyInputs(env.action.GetInput); err != nil {
		return nil, err
	}
	if opts.Token != "" {
		cfg.GitHub.Token = opts.Token
	}
	cfg.ApplyEnv(env.getenv)

	if opts.CheckRegexp != "" {
		cfg.CheckRegexp = opts.CheckRegexp
	}
	if opts.Label != "" {
		cfg.Label = opts.Label
	}
	if opts.DryRun {
		cfg.DryRun = true
	}

	return cfg, nil
}

// remoteConfigFetcher resolves "extends" references through the contents API.
// The token comes from the flag, the input, the local file or GITHUB_TOKEN, in
// that order; the API URL from the local file or GITHUB_API_URL.
func remoteConfigFetcher(ctx context.Context, opts runOptions, env runEnv) config.Fetcher {
	return func(ref string, local config.GitHubConfig) ([]byte, error) {
		org, repo, branch, path, err := config.ParseExtendsRef(ref)
		if err != nil {
			return nil, err
		}

		token := opts.Token
		if token == "" {
			token = env.action.GetInput("github-token")
		}
		if token == "" {
			token = local.Token
		}
		if token == "" {
			token = env.getenv("GITHUB_TOKEN")
		}

		apiURL := local.APIURL
		if apiURL == "" || apiURL == config.DefaultAPIURL {
			apiURL = env.getenv("GITHUB_API_URL")
		}

		client, err := similiGithub.NewClient(ctx, token, similiGithub.WithBaseURL(apiURL))
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub client: %w", err)
		}
		return client.GetFileContent(ctx, org, repo, path, branch)
	}
}

// report surfaces the result: a warning on soft stops, step outputs,
// the job summary and, on request, the JSON result.
func report(env runEnv, notifier pipeline.Notifier, opts runOptions, result *pipeline.Result) error {
	if result.Skipped {
		notifier.Warning(result.SkipReason)
	}

	if env.getenv("GITHUB_OUTPUT") != "" {
		env.action.SetOutput("issues", strings.Join(result.Issues, ","))
		env.action.SetOutput("checked", strconv.FormatBool(result.Checked))
		env.action.SetOutput("updated-issues", strings.Join(changedIssues(result), ","))
	}
	if env.getenv("GITHUB_STEP_SUMMARY") != "" {
		env.action.AddStepSummary(buildSummary(result))
	}

	if opts.JSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(env.stdout, string(data))
	}
	return nil
}

func isCI(getenv func(string) string) bool {
	return getenv("CI") == "true" || getenv("GITHUB_ACTIONS") == "true"
}

// actionNotifier forwards step messages as workflow commands.
type actionNotifier struct {
	action *githubactions.Action
}

func (n actionNotifier) Notice(msg string) {
	n.action.Noticef("%s", msg)
}

func (n actionNotifier) Warning(msg string) {
	n.action.Warningf("%s", msg)
}
