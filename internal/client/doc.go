// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the movie-manager client runtime.
//
// [AsyncClient] exposes every client operation as a background call that
// reports to a callback on a single completion goroutine. [App] is the
// interactive terminal loop built on top of it.
package client
