// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless sync agent runtime.
//
// It wires local storage, the blob-store adapter, the reconciler, and the
// background sync job into a single process lifecycle.
package client
