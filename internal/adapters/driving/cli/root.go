// Package cli implements the jira-mcp command-line interface.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atlaslens/jira-mcp/internal/adapters/driven/config/file"
	"github.com/atlaslens/jira-mcp/internal/adapters/driven/storage/memory"
	"github.com/atlaslens/jira-mcp/internal/connectors/jira"
	"github.com/atlaslens/jira-mcp/internal/core/ports/driving"
	"github.com/atlaslens/jira-mcp/internal/core/services"
	"github.com/atlaslens/jira-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// cacheSweepInterval is how often the metadata cache evicts expired entries.
const cacheSweepInterval = time.Minute

var verboseFlag bool

// Services shared by the commands. Populated by initServices.
var (
	jiraClient     *jira.Client
	issueService   driving.IssueService
	projectService driving.ProjectService
)

var rootCmd = &cobra.Command{
	Use:   "jira-mcp",
	Short: "MCP server for Jira",
	Long: `jira-mcp exposes a Jira site to MCP-compatible AI assistants.

Credentials are read from the environment (JIRA_BASE_URL, JIRA_EMAIL,
JIRA_API_TOKEN, or JIRA_PAT for Data Center) with a fallback to the
config file written by 'jira-mcp auth login'.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// initServices resolves credentials and wires the service graph.
// The cache sweep loop runs until ctx is cancelled.
func initServices(ctx context.Context) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	creds, err := jira.ResolveCredentials(jira.EnvSource{}, store)
	if err != nil {
		return err
	}
	logger.Debug("resolved credentials: %s", creds)

	jiraClient = jira.NewClient(creds)

	cache := memory.NewTTLCache[string, any](memory.DefaultTTL)
	cache.StartSweeping(ctx, cacheSweepInterval)

	issueService = services.NewIssueService(jiraClient)
	projectService = services.NewProjectService(jiraClient, cache)
	return nil
}

// newConfigStore opens the default config store. Split out so tests
// can point it at a temp directory.
var newConfigStore = func() (*file.ConfigStore, error) {
	return file.NewConfigStore("")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
