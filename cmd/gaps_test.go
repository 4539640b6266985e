package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/docslice/internal/domain"
	m "github.com/mouse-blink/docslice/internal/model"
)

func TestGapsCmd(t *testing.T) {
	fake, restore := swapWorkflow()
	defer restore()

	cmd := newRootCmd()
	cmd.AddCommand(newGapsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"gaps", "scip.c", "scip.h"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.gapsArgs, 1)
	assert.Equal(t, domain.GapsArgs{Source: "scip.c", Header: "scip.h"}, fake.gapsArgs[0])
}

func TestGapsCmd_OutputFlag(t *testing.T) {
	fake, restore := swapWorkflow()
	defer restore()

	cmd := newRootCmd()
	cmd.AddCommand(newGapsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"gaps", "-o", "table.txt", "scip.c", "scip.h"})
	err := cmd.Execute()
	require.NoError(t, err)

	require.Len(t, fake.gapsArgs, 1)
	assert.Equal(t, m.Path("table.txt"), fake.gapsArgs[0].Output)
}

func TestNewGapsCmd(t *testing.T) {
	cmd := newGapsCmd()

	assert.Equal(t, "gaps SOURCE HEADER", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("output"))
}
