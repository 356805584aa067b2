// Package file provides file-based implementations of driven port interfaces.
// These adapters persist configuration to the local filesystem under
// ~/.stonynews by default.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable prompt templates with embedded defaults
//   - PromptWatcher: fsnotify-based hot reload of the prompt directory
package file
