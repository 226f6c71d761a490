package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMigrateCommand(t *testing.T) {
	cmd := newMigrateCommand()

	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Migration commands", cmd.Short)
	assert.True(t, cmd.HasSubCommands())
}

func TestNewMigrateDatabaseCommand(t *testing.T) {
	cmd := newMigrateDatabaseCommand()

	assert.Equal(t, "database", cmd.Use)
	assert.Equal(t, "Create the lookup cache tables for the database backend", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewMigrateDatabaseCommand_RunE_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newMigrateDatabaseCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}
