// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until the passed
// context is cancelled and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled
	// and the server has drained in-flight requests.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
