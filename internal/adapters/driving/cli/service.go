package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/servico/internal/adapters/driving/grpcapi"
)

var serviceCmd = &cobra.Command{
	Use:     "service",
	Aliases: []string{"svc"},
	Short:   "Manage service records",
	Long:    `List, fetch and create service records on a running servico server.`,
}

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all service records",
	Args:  cobra.NoArgs,
	RunE:  runServiceList,
}

var serviceGetCmd = &cobra.Command{
	Use:   "get [service-id]",
	Short: "Show a service record",
	Args:  cobra.ExactArgs(1),
	RunE:  runServiceGet,
}

var serviceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a service record",
	Long: `Create a service record for an existing user. Dates are dd/mm/yyyy and the
start must be before the end. New records are always awaiting.

Categories:
  1 Maintenance
  2 Installation
  3 Repair
  4 Cleaning
  5 Other

Example:
  servico service create --user 1 --start 01/02/2024 --end 05/02/2024 --price 150.00 --category 2`,
	Args: cobra.NoArgs,
	RunE: runServiceCreate,
}

var serviceHeaders = []string{"ID", "USER", "START", "END", "PRICE", "CATEGORY", "STATUS"}

func init() {
	serviceCreateCmd.Flags().Int64("user", 0, "owner user id")
	serviceCreateCmd.Flags().String("start", "", "start date (dd/mm/yyyy)")
	serviceCreateCmd.Flags().String("end", "", "end date (dd/mm/yyyy)")
	serviceCreateCmd.Flags().String("price", "0", "price")
	serviceCreateCmd.Flags().Int32("category", 0, "category (1-5)")
	_ = serviceCreateCmd.MarkFlagRequired("user")
	_ = serviceCreateCmd.MarkFlagRequired("start")
	_ = serviceCreateCmd.MarkFlagRequired("end")
	_ = serviceCreateCmd.MarkFlagRequired("category")

	addClientFlags(serviceCmd)
	serviceCmd.AddCommand(serviceListCmd)
	serviceCmd.AddCommand(serviceGetCmd)
	serviceCmd.AddCommand(serviceCreateCmd)
	rootCmd.AddCommand(serviceCmd)
}

func serviceRow(s grpcapi.Service) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		fmt.Sprintf("%s (%d)", s.UserName, s.UserID),
		s.StartDate,
		s.EndDate,
		s.Price.StringFixed(2),
		s.CategoryLabel,
		s.StatusLabel,
	}
}

func runServiceList(cmd *cobra.Command, _ []string) error {
	p, err := newPrinter(cmd.OutOrStdout(), outputFormat)
	if err != nil {
		return err
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	list, err := client.ListServices(cmd.Context())
	if err != nil {
		return rpcError(err)
	}

	rows := make([][]string, len(list))
	for i, s := range list {
		rows[i] = serviceRow(s)
	}
	return p.rows(list, serviceHeaders, rows)
}

func runServiceGet(cmd *cobra.Command, args []string) error {
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

	s, err := client.GetService(cmd.Context(), id)
	if err != nil {
		return rpcError(err)
	}
	return p.rows(s, serviceHeaders, [][]string{serviceRow(*s)})
}

func runServiceCreate(cmd *cobra.Command, _ []string) error {
	userID, _ := cmd.Flags().GetInt64("user")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	priceStr, _ := cmd.Flags().GetString("price")
	category, _ := cmd.Flags().GetInt32("category")

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return fmt.Errorf("invalid price %q", priceStr)
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

	res, err := client.CreateService(cmd.Context(), &grpcapi.CreateServiceRequest{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Price:     price,
		Category:  category,
	})
	if err != nil {
		return rpcError(err)
	}
	return p.message(res.Message, res, serviceHeaders, serviceRow(res.Service))
}
