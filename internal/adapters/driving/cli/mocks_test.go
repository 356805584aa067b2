package cli

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stonynews/stonynews-cli/internal/adapters/driven/config/memory"
	"github.com/stonynews/stonynews-cli/internal/core/domain"
	coreservices "github.com/stonynews/stonynews-cli/internal/core/services"
)

// mockNewsService implements driving.NewsService for testing.
type mockNewsService struct {
	articles []domain.Article
	err      error
	topics   []string
}

func (m *mockNewsService) Search(_ context.Context, topic string) ([]domain.Article, error) {
	m.topics = append(m.topics, topic)
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}

func (m *mockNewsService) Suggestions() []string {
	return domain.Suggestions()
}

func sampleArticles() []domain.Article {
	return []domain.Article{
		{
			ID:       "sn-1773479100000-0",
			Title:    "Le Burkina Faso lance un programme agricole",
			Summary:  "Le gouvernement a présenté un plan de soutien aux producteurs de céréales.",
			Category: domain.CategoryEconomie,
			Sources: []domain.Citation{
				domain.NewCitation("RFI - Afrique", "https://www.rfi.fr/a"),
				domain.NewCitation("BBC News Afrique", "https://www.bbc.com/b"),
			},
			Timestamp: "09:05",
		},
		{
			ID:        "sn-1773479100000-1",
			Title:     "Dossier : Sahel",
			Summary:   "Texte libre sans structure.",
			Category:  domain.CategoryInternational,
			Sources:   []domain.Citation{},
			Timestamp: domain.DirectTimestamp,
		},
	}
}

// testEnv holds the services injected by setupTestServices.
type testEnv struct {
	news     *mockNewsService
	settings *coreservices.SettingsService
	store    *memory.ConfigStore
}

// setupTestServices injects a mock news service and a settings service over an
// in-memory config store with an empty environment. The returned function
// restores the previous state.
func setupTestServices() (*testEnv, func()) {
	oldServices, oldBootstrap, oldOpts := services, bootstrap, rootOpts

	store := memory.NewConfigStore(nil)
	settings := coreservices.NewSettingsService(store)
	settings.SetEnvLookup(func(string) (string, bool) { return "", false })

	env := &testEnv{
		news:     &mockNewsService{articles: sampleArticles()},
		settings: settings,
		store:    store,
	}
	services = &Services{News: env.news, Settings: env.settings}
	bootstrap = nil

	return env, func() {
		services, bootstrap, rootOpts = oldServices, oldBootstrap, oldOpts
	}
}

// executeCommand runs the root command with args and returns the combined output.
// Flag values left over from earlier executions are reset first.
func executeCommand(args ...string) (string, error) {
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
