// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the stacks project using Mage.
//
// Usage:
//
//	mage build     Compile stacks binary to bin/
//	mage test      Run all tests
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install stacks to GOPATH/bin
//go:build mage

package main

const (
	binGo      = "go"
	binaryName = "stacks"
	binaryDir  = "bin"
	cmdDir     = "./cmd/stacks"
)
