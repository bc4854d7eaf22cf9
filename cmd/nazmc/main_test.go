// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.نظم")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunRejectsWrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.txt")
	require.NoError(t, os.WriteFile(path, []byte("هيكل نقطة؛\n"), 0o644))

	var buf bytes.Buffer
	_, err := run(path, false, false, &buf)
	assert.Error(t, err)
}

func TestRunRejectsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	_, err := run(filepath.Join(t.TempDir(), "missing.نظم"), false, false, &buf)
	assert.Error(t, err)
}

func TestRunSucceedsOnCleanSource(t *testing.T) {
	path := writeSource(t, "هيكل نقطة؛\n")

	var buf bytes.Buffer
	ok, err := run(path, false, false, &buf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, buf.String())
}

func TestRunFailsOnDuplicateItem(t *testing.T) {
	path := writeSource(t, "هيكل نقطة؛\nهيكل نقطة؛\n")

	var buf bytes.Buffer
	ok, err := run(path, false, false, &buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, buf.String())
}

func TestRunFailsOnUnresolvedImport(t *testing.T) {
	path := writeSource(t, "استيراد غير::معروف::شيء؛\n")

	var buf bytes.Buffer
	ok, err := run(path, false, false, &buf)
	require.NoError(t, err)
	assert.False(t, ok)
}
