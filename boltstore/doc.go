// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package boltstore implements ledger.Store on a single bbolt file. Records
// are JSON in the candidates and voters buckets, with a voters_by_nis bucket
// indexing NIS to voter ID.
package boltstore
