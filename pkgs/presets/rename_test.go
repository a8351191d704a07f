// Copyright (c) 2026 The XGo Authors (xgo.dev). All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package presets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqTokens yields the given tokens in order.
func seqTokens(toks ...string) TokenSource {
	i := 0
	return TokenFunc(func() (string, error) {
		if i >= len(toks) {
			return "", errors.New("out of tokens")
		}
		tok := toks[i]
		i++
		return tok, nil
	})
}

func writePresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenameFile_Example(t *testing.T) {
	path := writePresets(t, `{"configurePresets":[{"name":"default","displayName":"Default"}],"buildPresets":[{"name":"default","configurePreset":"default"}]}`)

	r := &Renamer{Arch: "x86_64", Tokens: FixedToken("a1b2c3d4")}
	suffix, err := r.RenameFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x86_64-a1b2c3d4", suffix)

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Configure, 1)
	require.Len(t, doc.Build, 1)
	assert.Equal(t, "default-x86_64-a1b2c3d4", doc.Configure[0].Name)
	assert.Equal(t, "Default (x86_64-a1b2c3d4)", doc.Configure[0].DisplayName)
	assert.Equal(t, "default-x86_64-a1b2c3d4", doc.Build[0].Name)
	assert.Equal(t, "default-x86_64-a1b2c3d4", doc.Build[0].ConfigurePreset)
	assert.Empty(t, doc.Test)
}

func TestRenameFile_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)

	r := &Renamer{Arch: "x86_64", Tokens: FixedToken("a1b2c3d4")}
	suffix, err := r.RenameFile(path)
	require.NoError(t, err)
	assert.Empty(t, suffix)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file may be created")
}

func TestRenameFile_FreshSuffixEachRun(t *testing.T) {
	const input = `{"configurePresets":[{"name":"default","displayName":"Default"}]}`
	r := NewRenamer("armv8")

	first, err := r.RenameFile(writePresets(t, input))
	require.NoError(t, err)
	second, err := r.RenameFile(writePresets(t, input))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "armv8-"))
	assert.True(t, strings.HasPrefix(second, "armv8-"))
	assert.NotEqual(t, first, second)
}

func TestRenameFile_Twice(t *testing.T) {
	path := writePresets(t, `{"configurePresets":[{"name":"default","displayName":"Default"}],"testPresets":[{"name":"t","configurePreset":"default"}]}`)
	r := &Renamer{Arch: "x86_64", Tokens: seqTokens("aaaa1111", "bbbb2222")}

	_, err := r.RenameFile(path)
	require.NoError(t, err)
	_, err = r.RenameFile(path)
	require.NoError(t, err)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "default-x86_64-aaaa1111-x86_64-bbbb2222", doc.Configure[0].Name)
	assert.Equal(t, "Default (x86_64-aaaa1111) (x86_64-bbbb2222)", doc.Configure[0].DisplayName)
	assert.Equal(t, "default-x86_64-aaaa1111-x86_64-bbbb2222", doc.Test[0].ConfigurePreset)
	assert.Equal(t, "default-x86_64-aaaa1111-x86_64-bbbb2222", doc.Test[0].Name)
}

func TestRename_References(t *testing.T) {
	doc, err := Parse([]byte(`{
		"configurePresets": [
			{"name": "debug", "displayName": "Debug"},
			{"name": "release", "displayName": "Release"}
		],
		"buildPresets": [
			{"name": "build-debug", "configurePreset": "debug"},
			{"name": "build-release", "configurePreset": "release"},
			{"name": "build-other", "configurePreset": "other", "jobs": 4}
		],
		"testPresets": [
			{"name": "test-release", "configurePreset": "release"},
			{"name": "test-other", "configurePreset": "other"}
		]
	}`))
	require.NoError(t, err)

	mapping := doc.Rename("x86-0badf00d")
	assert.Equal(t, map[string]string{
		"debug":   "debug-x86-0badf00d",
		"release": "release-x86-0badf00d",
	}, mapping)

	names := make(map[string]bool)
	for _, p := range doc.Configure {
		names[p.Name] = true
	}
	for _, p := range append(append([]*Preset{}, doc.Build...), doc.Test...) {
		if p.ConfigurePreset == "other" {
			continue
		}
		assert.True(t, names[p.ConfigurePreset], "dangling reference %q", p.ConfigurePreset)
		assert.Equal(t, p.ConfigurePreset, p.Name)
	}

	assert.Equal(t, "build-other", doc.Build[2].Name)
	assert.Equal(t, "other", doc.Build[2].ConfigurePreset)
	assert.Equal(t, "test-other", doc.Test[1].Name)
	assert.Equal(t, "other", doc.Test[1].ConfigurePreset)
}

func TestRenameFile_PreservesOtherFields(t *testing.T) {
	path := writePresets(t, `{
  "version": 3,
  "vendor": {"conan": {}},
  "cmakeMinimumRequired": {"major": 3, "minor": 15, "patch": 0},
  "configurePresets": [
    {
      "name": "conan-release",
      "displayName": "'conan-release' config",
      "generator": "Ninja",
      "cacheVariables": {"CMAKE_POLICY_DEFAULT_CMP0091": "NEW", "CMAKE_BUILD_TYPE": "Release"},
      "toolchainFile": "generators/conan_toolchain.cmake",
      "binaryDir": "<build>/Release"
    }
  ],
  "buildPresets": [
    {"name": "conan-release", "configurePreset": "conan-release", "jobs": 8},
    {"name": "custom", "configurePreset": "external"}
  ],
  "testPresets": [
    {"name": "conan-release", "configurePreset": "conan-release"}
  ]
}`)

	r := &Renamer{Arch: "x86_64", Tokens: FixedToken("a1b2c3d4")}
	_, err := r.RenameFile(path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `{
    "version": 3,
    "vendor": {
        "conan": {}
    },
    "cmakeMinimumRequired": {
        "major": 3,
        "minor": 15,
        "patch": 0
    },
    "configurePresets": [
        {
            "name": "conan-release-x86_64-a1b2c3d4",
            "displayName": "'conan-release' config (x86_64-a1b2c3d4)",
            "generator": "Ninja",
            "cacheVariables": {
                "CMAKE_POLICY_DEFAULT_CMP0091": "NEW",
                "CMAKE_BUILD_TYPE": "Release"
            },
            "toolchainFile": "generators/conan_toolchain.cmake",
            "binaryDir": "<build>/Release"
        }
    ],
    "buildPresets": [
        {
            "name": "conan-release-x86_64-a1b2c3d4",
            "configurePreset": "conan-release-x86_64-a1b2c3d4",
            "jobs": 8
        },
        {
            "name": "custom",
            "configurePreset": "external"
        }
    ],
    "testPresets": [
        {
            "name": "conan-release-x86_64-a1b2c3d4",
            "configurePreset": "conan-release-x86_64-a1b2c3d4"
        }
    ]
}
`
	assert.Equal(t, want, string(got))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		malformed bool
		field     *FieldError
	}{
		{name: "not json", data: `{"configurePresets": [`, malformed: true},
		{name: "root array", data: `[]`, malformed: true},
		{name: "root null", data: `null`, malformed: true},
		{name: "collection object", data: `{"buildPresets": {}}`, malformed: true},
		{name: "collection null", data: `{"testPresets": null}`, malformed: true},
		{name: "entry string", data: `{"configurePresets": ["default"]}`, malformed: true},
		{
			name:  "configure without name",
			data:  `{"configurePresets": [{"displayName": "Default"}]}`,
			field: &FieldError{Collection: ConfigurePresets, Index: 0, Field: "name", Err: ErrMissingField},
		},
		{
			name:  "configure without displayName",
			data:  `{"configurePresets": [{"name": "a", "displayName": "A"}, {"name": "b"}]}`,
			field: &FieldError{Collection: ConfigurePresets, Index: 1, Field: "displayName", Err: ErrMissingField},
		},
		{
			name:  "build without configurePreset",
			data:  `{"buildPresets": [{"name": "b"}]}`,
			field: &FieldError{Collection: BuildPresets, Index: 0, Field: "configurePreset", Err: ErrMissingField},
		},
		{
			name:  "test without name",
			data:  `{"testPresets": [{"configurePreset": "a"}]}`,
			field: &FieldError{Collection: TestPresets, Index: 0, Field: "name", Err: ErrMissingField},
		},
		{
			name:  "name is a number",
			data:  `{"configurePresets": [{"name": 1, "displayName": "One"}]}`,
			field: &FieldError{Collection: ConfigurePresets, Index: 0, Field: "name", Err: ErrInvalidField},
		},
		{
			name:  "configurePreset is null",
			data:  `{"buildPresets": [{"name": "b", "configurePreset": null}]}`,
			field: &FieldError{Collection: BuildPresets, Index: 0, Field: "configurePreset", Err: ErrInvalidField},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.malformed {
				assert.ErrorIs(t, err, ErrMalformed)
				return
			}
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe)
			assert.ErrorIs(t, err, tt.field.Err)
		})
	}
}

func TestRenameFile_InvalidLeavesFileUntouched(t *testing.T) {
	const input = `{"configurePresets": [{"name": "a", "displayName": "A"}], "buildPresets": [{"name": "b"}]}`
	path := writePresets(t, input)

	r := &Renamer{Arch: "x86_64", Tokens: FixedToken("a1b2c3d4")}
	_, err := r.RenameFile(path)
	require.ErrorIs(t, err, ErrMissingField)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestRenamer_Suffix(t *testing.T) {
	t.Run("no arch", func(t *testing.T) {
		_, err := (&Renamer{Tokens: FixedToken("a1b2c3d4")}).Suffix()
		assert.ErrorIs(t, err, ErrNoArch)
	})
	t.Run("bad token", func(t *testing.T) {
		_, err := (&Renamer{Arch: "x86_64", Tokens: FixedToken("XYZ")}).Suffix()
		assert.Error(t, err)
	})
	t.Run("token error", func(t *testing.T) {
		_, err := (&Renamer{Arch: "x86_64", Tokens: seqTokens()}).Suffix()
		assert.ErrorContains(t, err, "out of tokens")
	})
	t.Run("default tokens", func(t *testing.T) {
		suffix, err := (&Renamer{Arch: "x86_64"}).Suffix()
		require.NoError(t, err)
		tok := strings.TrimPrefix(suffix, "x86_64-")
		assert.NoError(t, CheckToken(tok))
	})
}

func TestCheckToken(t *testing.T) {
	for _, tok := range []string{"a1b2c3d4", "00000000", "ffffffff"} {
		assert.NoError(t, CheckToken(tok), tok)
	}
	for _, tok := range []string{"", "a1b2c3d", "a1b2c3d4e", "A1B2C3D4", "g1b2c3d4"} {
		assert.Error(t, CheckToken(tok), tok)
	}
}

func TestUUIDTokens(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		tok, err := UUIDTokens.Token()
		require.NoError(t, err)
		require.NoError(t, CheckToken(tok))
		seen[tok] = true
	}
	assert.Greater(t, len(seen), 1)
}
