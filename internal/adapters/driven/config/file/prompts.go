package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/stonynews/stonynews-cli/internal/core/domain"
	"github.com/stonynews/stonynews-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// promptExt is the extension of prompt files.
const promptExt = ".txt"

// PromptStore loads completion prompts from user-editable files on disk,
// falling back to embedded defaults.
//
// The store uses lazy initialisation: the directory and default files are
// created on the first Load, not in the constructor.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts returns the embedded prompts, used when user files don't
// exist and as the initial content of new files.
func defaultPrompts() map[string]string {
	return map[string]string{
		driven.PromptNewsSystem: domain.DefaultSystemInstruction(),
		driven.PromptNewsUser:   domain.DefaultUserPrompt,
	}
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.stonynews/prompts/.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		promptDir = filepath.Join(dir, "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and writes default files.
// A missing or blank file falls back to the embedded default.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	defaults := defaultPrompts()

	if s.initErr != nil {
		if prompt, ok := defaults[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	prompt, err := s.loadFromFile(name)
	if err != nil || prompt == "" {
		if defaultPrompt, ok := defaults[name]; ok {
			return defaultPrompt, nil
		}
		if err == nil {
			err = fmt.Errorf("empty file")
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		prompt = cached
	} else {
		s.cache[name] = prompt
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range defaultPrompts() {
		path := filepath.Join(s.promptDir, name+promptExt)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.promptDir, name+promptExt))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	content := `# Stony News prompts

This directory holds the prompts sent to the completion service.

## Files

- ` + "`news_system.txt`" + ` - Editorial rules and the article output format
- ` + "`news_user.txt`" + ` - The request sent for each topic

## Customisation

Edit a file to change the output. The TUI and the MCP server reload prompts
as soon as a file is saved; other commands pick them up on the next run.
Delete a file to restore its default.

## Output format

The article parser expects the format described in ` + "`news_system.txt`" + `:
each article starts with ` + "`---ARTICLE---`" + ` and carries ` + "`Titre:`" + `,
` + "`Résumé:`" + ` and ` + "`Catégorie:`" + ` lines. Keep these markers when editing.

## Format placeholders

` + "`news_user.txt`" + ` must contain exactly one ` + "`%s`" + `, replaced by the
topic. A template without it is ignored in favour of the default.
`
	return os.WriteFile(path, []byte(content), 0600)
}
