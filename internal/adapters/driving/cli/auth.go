package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atlaslens/jira-mcp/internal/adapters/driven/config/file"
	"github.com/atlaslens/jira-mcp/internal/connectors/jira"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Jira credentials",
	Long: `Store and verify the Jira connection credentials.

Credentials resolve from the environment first (JIRA_BASE_URL,
JIRA_EMAIL, JIRA_API_TOKEN, or JIRA_PAT), then from the config file
this command writes.

Examples:
  # Interactive login (token prompted without echo)
  jira-mcp auth login

  # Non-interactive
  jira-mcp auth login --url https://acme.atlassian.net --email you@acme.com --token xxx

  # Data Center personal access token
  jira-mcp auth login --url https://jira.acme.com --pat xxx

  # Verify whatever is currently configured
  jira-mcp auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store Jira credentials in the config file",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Verify the configured credentials against the API",
	RunE:  runAuthStatus,
}

// Flags for auth login.
var (
	authLoginURL   string
	authLoginEmail string
	authLoginToken string
	authLoginPAT   string
)

func init() {
	authLoginCmd.Flags().StringVar(
		&authLoginURL, "url", "", "Jira site URL, e.g. https://acme.atlassian.net")
	authLoginCmd.Flags().StringVar(
		&authLoginEmail, "email", "", "Account email (Cloud Basic auth)")
	authLoginCmd.Flags().StringVar(
		&authLoginToken, "token", "", "API token (prompted when omitted)")
	authLoginCmd.Flags().StringVar(
		&authLoginPAT, "pat", "", "Personal access token (Data Center Bearer auth)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	url := authLoginURL
	if url == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Jira site URL: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		url = strings.TrimSpace(line)
	}
	if url == "" {
		return fmt.Errorf("site URL is required")
	}

	cfg := file.Config{BaseURL: strings.TrimRight(url, "/")}

	if authLoginPAT != "" {
		cfg.PAT = authLoginPAT
	} else {
		email := authLoginEmail
		if email == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Account email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			email = strings.TrimSpace(line)
		}
		if email == "" {
			return fmt.Errorf("email is required (or use --pat)")
		}

		token := authLoginToken
		if token == "" {
			fmt.Fprint(cmd.OutOrStdout(), "API token: ")
			secret, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("reading token: %w", err)
			}
			token = strings.TrimSpace(string(secret))
		}
		if token == "" {
			return fmt.Errorf("API token is required")
		}

		cfg.Email = email
		cfg.APIToken = token
	}

	if err := store.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Credentials saved for %s\n", cfg.BaseURL)
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	store, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	creds, err := jira.ResolveCredentials(jira.EnvSource{}, store)
	if err != nil {
		return err
	}

	client := jira.NewClient(creds)
	me, err := client.Myself(cmd.Context())
	if err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}

	name, _ := me["displayName"].(string)
	fmt.Fprintf(cmd.OutOrStdout(), "Authenticated to %s as %s\n", creds.BaseURL, name)
	return nil
}
