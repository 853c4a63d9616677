// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/autheliarr/autheliarr/cmd"

func main() {
	cmd.Execute()
}
