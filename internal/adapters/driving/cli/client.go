package cli

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"

	"github.com/custodia-labs/servico/internal/adapters/driving/grpcapi"
)

var (
	serverAddr   string
	outputFormat string
)

// addClientFlags adds the connection and output flags shared by the
// client commands.
func addClientFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&serverAddr, "addr", "", "server address (default derived from server.addr)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, plain or json")
}

// dialTarget returns the address the client commands connect to. A
// listen address without a host, or with a wildcard host, means the
// local machine.
func dialTarget() string {
	if serverAddr != "" {
		return serverAddr
	}
	host, port, err := net.SplitHostPort(cfg.Server.Addr)
	if err != nil {
		return cfg.Server.Addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}

func newClient() (*grpcapi.Client, error) {
	return grpcapi.NewClient(dialTarget())
}

// rpcError returns the server's message for a failed call.
func rpcError(err error) error {
	if st, ok := status.FromError(err); ok {
		return errors.New(st.Message())
	}
	return err
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
