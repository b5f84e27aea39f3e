// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/avl/fault"
)

// common errors - keep in alphabetic order
const (
	ErrCorruptBalance  = fault.ProcessError("balance invariant broken")
	ErrCorruptCounts   = fault.ProcessError("size invariant broken")
	ErrCorruptOrder    = fault.ProcessError("ordering invariant broken")
	ErrInvalidBounds   = fault.InvalidError("low bound exceeds high bound")
	ErrInvalidIndex    = fault.InvalidError("index is not a number")
	ErrNotFoundIndex   = fault.NotFoundError("index is out of range")
	ErrRequiredBounds  = fault.InvalidError("low and high bounds are required")
	ErrRequiredIndex   = fault.InvalidError("index argument is required")
	ErrRequiredKey     = fault.InvalidError("key argument is required")
	ErrRequiredKeyFile = fault.InvalidError("key file is required")
)
