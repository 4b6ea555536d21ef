// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmdRejectsStdio(t *testing.T) {
	useNoConfig(t)
	_, _, err := execute(t, "watch", "-", "-", "-k", "id", "--no-progress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file paths")
}

func TestWatchCmd(t *testing.T) {
	useNoConfig(t)
	dir := t.TempDir()
	input := writeFile(t, dir, "input.csv", "id,a\n1,x\n")
	output := filepath.Join(dir, "output.csv")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmd := RootCmd()
	cmd.SetOut(bytes.NewBuffer(nil))
	cmd.SetErr(bytes.NewBuffer(nil))
	cmd.SetArgs([]string{"watch", input, output, "-k", "id", "--no-progress"})
	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	// the initial merge must appear
	require.Eventually(t, func() bool {
		_, err := os.Stat(output)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	// changing the input triggers a re-merge
	require.NoError(t, os.WriteFile(input, []byte("id,a\n1,x\n2,y\n"), 0644))
	require.Eventually(t, func() bool {
		b, err := os.ReadFile(output)
		return err == nil && bytes.Contains(b, []byte("2,y"))
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after context cancellation")
	}
}
