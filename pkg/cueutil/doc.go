// SPDX-License-Identifier: MPL-2.0

// Package cueutil turns CUE validation errors into messages that name the
// file and the offending field, e.g.
//
//	config.ini: port: invalid value 70000 (out of bound <=65535)
package cueutil
