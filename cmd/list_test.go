package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/docslice/internal/domain"
)

func TestListCmd(t *testing.T) {
	fake, restore := swapWorkflow()
	defer restore()

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list", "scip.c", "scip.h"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.listArgs, 1)
	assert.Equal(t, domain.ListArgs{Source: "scip.c", Header: "scip.h"}, fake.listArgs[0])
}

func TestListCmd_WorkflowError(t *testing.T) {
	fake, restore := swapWorkflow()
	defer restore()

	fake.err = errors.New("boom")

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list", "scip.c", "scip.h"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list SOURCE HEADER", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}
