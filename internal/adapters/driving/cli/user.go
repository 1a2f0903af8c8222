package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/servico/internal/adapters/driving/grpcapi"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  `List, fetch and register users on a running servico server.`,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Args:  cobra.NoArgs,
	RunE:  runUserList,
}

var userGetCmd = &cobra.Command{
	Use:   "get [user-id]",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserGet,
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a user",
	Long: `Register a user. The CPF may be given with or without punctuation and
must not belong to another user.

Example:
  servico user create --name "Ana Souza" --email ana@example.com --cpf 529.982.247-25`,
	Args: cobra.NoArgs,
	RunE: runUserCreate,
}

var userHeaders = []string{"ID", "NAME", "EMAIL", "CPF"}

func init() {
	userCreateCmd.Flags().String("name", "", "full name")
	userCreateCmd.Flags().String("email", "", "email address")
	userCreateCmd.Flags().String("cpf", "", "CPF (national ID)")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("cpf")

	addClientFlags(userCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}

func userRow(u grpcapi.User) []string {
	return []string{strconv.FormatInt(u.ID, 10), u.Name, u.Email, u.NationalID}
}

func runUserList(cmd *cobra.Command, _ []string) error {
	p, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	users, err := client.ListUsers(cmd.Context())
	if err != nil {
		return rpcError(err)
	}

	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = userRow(u)
	}
	return p.rows(users, userHeaders, rows)
}

func runUserGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	p, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	u, err := client.GetUser(cmd.Context(), id)
	if err != nil {
		return rpcError(err)
	}
	return p.rows(u, userHeaders, [][]string{userRow(*u)})
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	cpf, _ := cmd.Flags().GetString("cpf")

	p, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	res, err := client.CreateUser(cmd.Context(), &grpcapi.CreateUserRequest{
		Name:       name,
		Email:      email,
		NationalID: cpf,
	})
	if err != nil {
		return rpcError(err)
	}
	return p.message(res.Message, res, userHeaders, userRow(res.User))
}
