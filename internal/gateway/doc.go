// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

// Package gateway exposes the auth and catalog services as a GraphQL API
// over HTTP. Sessions travel in the qid cookie.
package gateway
