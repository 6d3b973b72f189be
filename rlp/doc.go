// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package rlp implements the Recursive Length Prefix serialization format:
// a compact, self-delimiting binary encoding of arbitrarily nested byte
// strings and lists. The package covers the structural format only; the
// mapping of typed values like integers, booleans, or records onto byte
// strings and lists lives in the codec package on top of it.
//
// Encoding is canonical: for every value there is exactly one valid byte
// sequence, and the decoder rejects everything else. This makes encodings
// suitable as hashing and content-addressing inputs, the primary use of
// the format in this project.
package rlp
