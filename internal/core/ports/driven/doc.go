// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CompletionClient: Sends prompts to a hosted model (Gemini, OpenAI-compatible)
//
// # Optional Interfaces
//
// These can be nil - the application falls back to embedded defaults:
//
//   - PromptStore: User-editable prompt templates
//   - ConfigStore: Application configuration (settings commands only)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
