package cli

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Short(t *testing.T) {
	assert.Equal(t, "Start the gRPC server", serveCmd.Short)
}

func TestServeCmd_RunsUntilCancelled(t *testing.T) {
	t.Setenv("SERVICO_STORAGE__DRIVER", "memory")
	t.Setenv("SERVICO_SERVER__ADDR", "127.0.0.1:0")
	t.Setenv("SERVICO_METRICS__ADDR", "127.0.0.1:0")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, err := executeContext(t, ctx, "serve")

	require.NoError(t, err)
	assert.Contains(t, out, "serving gRPC on 127.0.0.1:")
	assert.Contains(t, out, "/metrics")
}

func TestServeCmd_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	t.Setenv("SERVICO_STORAGE__DRIVER", "memory")
	t.Setenv("SERVICO_SERVER__ADDR", taken.Addr().String())

	_, err = execute(t, "serve")

	assert.ErrorContains(t, err, "listening on "+taken.Addr().String())
}

func TestMCPServeCmd_HasPortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}
