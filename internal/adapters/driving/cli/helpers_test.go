package cli

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/servico/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/servico/internal/adapters/driving/grpcapi"
	"github.com/custodia-labs/servico/internal/core/services"
)

// resetFlags restores every flag in the tree to its default so state does
// not leak between executions of the shared root command.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args from an empty working directory
// and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

// executeContext is execute with a caller-supplied context.
func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.ExecuteContext(ctx)
	return buf.String(), err
}

// startServer runs a gRPC server over memory storage on a loopback port
// and returns its address.
func startServer(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	users, err := services.NewUserService(ctx, memory.NewUserStore(), nil)
	require.NoError(t, err)
	records, err := services.NewServiceRecordService(ctx, memory.NewServiceStore(), users, nil)
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpcapi.NewServer(grpcapi.NewHandler(users, records), grpcapi.Options{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = grpcapi.Serve(ctx, srv, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return lis.Addr().String()
}
