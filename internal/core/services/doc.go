// Package services implements the driving ports on top of the driven ports.
//
//   - QueryDispatcher: one grounded completion attempt, one ungrounded fallback
//   - ParseArticles: pure conversion of free text into article records
//   - NewsService: topic validation, dispatch, then parsing
//   - SettingsService: provider settings over a ConfigStore
package services
