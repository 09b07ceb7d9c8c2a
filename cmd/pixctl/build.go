package main

import (
	"fmt"
	"os"

	"github.com/akashipov/brcode/internal/pix"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// requestFile is the YAML form of a payment request. The amount stays a
// string so that it is read as an exact decimal.
type requestFile struct {
	PayeeKey        string `yaml:"payee_key"`
	BeneficiaryName string `yaml:"beneficiary_name"`
	BeneficiaryCity string `yaml:"beneficiary_city"`
	Amount          string `yaml:"amount"`
	TransactionID   string `yaml:"transaction_id"`
	Note            string `yaml:"note"`
}

func buildCmd() *cobra.Command {
	var (
		file string
		rf   requestFile
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a payload from flags or a YAML request file",
		Long: `Build prints the BR Code payload for a payment request.

Values from --file are read first; flags given on the command line override them.`,
		Example: `  pixctl build --key noivos@email.com --name "Gabriel e Milleny" --city Curitiba --amount 250
  pixctl build -f request.yaml --txid GIFT106`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := requestFile{}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal(data, &req); err != nil {
					return fmt.Errorf("parse %s: %w", file, err)
				}
			}
			overrideString(cmd, "key", &req.PayeeKey, rf.PayeeKey)
			overrideString(cmd, "name", &req.BeneficiaryName, rf.BeneficiaryName)
			overrideString(cmd, "city", &req.BeneficiaryCity, rf.BeneficiaryCity)
			overrideString(cmd, "amount", &req.Amount, rf.Amount)
			overrideString(cmd, "txid", &req.TransactionID, rf.TransactionID)
			overrideString(cmd, "note", &req.Note, rf.Note)

			pr, err := req.paymentRequest()
			if err != nil {
				return err
			}
			if err := pr.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pix.Build(pr))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with the payment request")
	cmd.Flags().StringVar(&rf.PayeeKey, "key", "", "PIX key of the beneficiary")
	cmd.Flags().StringVar(&rf.BeneficiaryName, "name", "", "Beneficiary name")
	cmd.Flags().StringVar(&rf.BeneficiaryCity, "city", "", "Beneficiary city")
	cmd.Flags().StringVar(&rf.Amount, "amount", "", "Amount, e.g. 100.50")
	cmd.Flags().StringVar(&rf.TransactionID, "txid", "", "Transaction id (default ***)")
	cmd.Flags().StringVar(&rf.Note, "note", "", "Free text shown to the payer")

	return cmd
}

func overrideString(cmd *cobra.Command, flag string, dst *string, value string) {
	if cmd.Flags().Changed(flag) {
		*dst = value
	}
}

func (rf requestFile) paymentRequest() (pix.PaymentRequest, error) {
	if rf.Amount == "" {
		return pix.PaymentRequest{}, fmt.Errorf("amount is required")
	}
	amount, err := decimal.NewFromString(rf.Amount)
	if err != nil {
		return pix.PaymentRequest{}, fmt.Errorf("amount %q: %w", rf.Amount, err)
	}
	return pix.PaymentRequest{
		PayeeKey:        rf.PayeeKey,
		BeneficiaryName: rf.BeneficiaryName,
		BeneficiaryCity: rf.BeneficiaryCity,
		Amount:          amount,
		TransactionID:   rf.TransactionID,
		Note:            rf.Note,
	}, nil
}
