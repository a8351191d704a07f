// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/joho/godotenv"

	"github.com/goplus/llrecipe/cmd/llrecipe/internal"
)

func main() {
	// .env is optional; it may set LLRECIPE_PROFILE or CC for a checkout.
	_ = godotenv.Load()
	internal.Execute()
}
