// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrInvalidConfig is returned when the merged configuration violates an
// application invariant (unknown backend, missing DSN, non-positive limit).
var ErrInvalidConfig = errors.New("invalid configuration")
