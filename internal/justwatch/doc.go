// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package justwatch implements the client for the JustWatch GraphQL API.
//
// Every operation is a single HTTP round trip: a POST to /graphql with a
// JSON body carrying operationName, a literal query document, and variables
// (plus one plain GET for URL metadata). The multi-country offers lookup is
// special: the upstream schema takes the country as a compile-time literal
// per field, so the client generates one aliased offers field per requested
// country and retrieves all of them in one request. Country codes are
// validated against a strict two-letter allowlist before being spliced into
// the document.
//
// The client never retries; transport failures and non-2xx statuses are
// surfaced immediately as [ErrRequestFailed] so the caller decides what to
// do. Error values can be matched with [errors.Is].
package justwatch
