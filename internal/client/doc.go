// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It drives the terminal UI through repeated login and inventory phases
// for the lifetime of the process.
package client
