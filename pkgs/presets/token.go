// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// TokenLen is the length of a rename token in hex characters.
const TokenLen = 8

// TokenSource yields the random part of a rename suffix.
type TokenSource interface {
	Token() (string, error)
}

// TokenFunc adapts a function to a TokenSource.
type TokenFunc func() (string, error)

func (f TokenFunc) Token() (string, error) {
	return f()
}

// UUIDTokens draws each token from the leading bytes of a random UUID.
var UUIDTokens TokenSource = TokenFunc(uuidToken)

func uuidToken() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(u[:TokenLen/2]), nil
}

// FixedToken returns a TokenSource that always yields tok.
func FixedToken(tok string) TokenSource {
	return TokenFunc(func() (string, error) {
		return tok, nil
	})
}

// CheckToken reports whether tok is TokenLen lowercase hex characters.
func CheckToken(tok string) error {
	if len(tok) != TokenLen {
		return fmt.Errorf("presets: token %q: want %d hex characters", tok, TokenLen)
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return fmt.Errorf("presets: token %q: invalid character %q", tok, c)
		}
	}
	return nil
}
