package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewChatPadApp_Initializers(t *testing.T) {
	app := NewChatPadApp()
	require.NotNil(t, app, "NewChatPadApp should not return nil")
}
