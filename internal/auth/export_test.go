// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package auth

// WithTokenGenerator exposes withTokenGenerator to external tests.
var WithTokenGenerator = withTokenGenerator

// DummyPasswordHash exposes the timing-symmetry hash to external tests.
const DummyPasswordHash = dummyPasswordHash
