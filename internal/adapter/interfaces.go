// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the remote store the terminal reconciles against.
//
// The primary abstraction is [RemoteStore], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStore]); the remote side is treated as a black box that
// accepts idempotent writes keyed by caller-supplied ids.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrRemoteUnavailable] for
// 5xx and transport failures).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore defines transport-agnostic access to the authoritative remote
// store. Implementations are responsible for serialisation, auth header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteStore interface {
	// Ping checks whether the remote store is reachable. A nil error means
	// the terminal is considered online.
	Ping(ctx context.Context) error

	// ExistsByID reports whether a record with the given id is already
	// present in the named remote table. Used before re-submission so that
	// a transaction synced during a previous, interrupted pass is not
	// duplicated.
	ExistsByID(ctx context.Context, table, id string) (bool, error)

	// Insert writes a single record into the named remote table. The remote
	// side upserts on the record's natural key, so replaying the same record
	// is safe.
	Insert(ctx context.Context, table string, record any) error

	// InsertBatch writes a set of records into the named remote table in one
	// request. Like Insert, the write is an upsert on the records' natural
	// keys.
	InsertBatch(ctx context.Context, table string, records any) error
}
