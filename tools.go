// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

//go:build tools

// Package main pins the ginkgo CLI, which runs the integration suites, to
// go.mod.
package main

import (
	_ "github.com/onsi/ginkgo/v2/ginkgo"
)
