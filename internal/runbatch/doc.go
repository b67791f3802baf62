// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch runs a batch of commands strictly in sequence and stops
// at the first failure. The batch outcome is modeled as an explicit state
// machine so that callers can distinguish a batch that never ran from one
// that ran and failed part-way through.
//
// Commands are opaque: the batch only looks at exit codes, never at output.
package runbatch
