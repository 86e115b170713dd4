// Package credentials persists the client's access and refresh tokens.
//
// # Overview
//
// Repository is the injectable get/set/delete/clear capability the
// authenticated HTTP client and the auth service depend on. Three
// implementations are provided:
//
//   - MemoryRepository: process-local map, used in tests and for
//     ephemeral sessions;
//   - SQLiteRepository: survives restarts; schema managed by the embedded
//     goose migrations in internal/client/migrations;
//   - SealedRepository: decorator encrypting every value with a key derived
//     from a passphrase before handing it to another Repository.
//
// Absent keys read as the empty string with a nil error, and deleting or
// clearing absent keys is not an error, so a forced logout can run any
// number of times.
//
// Typical Usage
//
//	repo, db, err := credentials.OpenSQLite(ctx, "tickets.db")
//	_ = credentials.SetTokens(ctx, repo, access, refresh)
//	tok, _ := repo.Get(ctx, common.AccessTokenKey)
//	_ = repo.Clear(ctx)
package credentials
