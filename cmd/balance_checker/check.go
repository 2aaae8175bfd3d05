package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"starknet_balance_checker/internal/app/dto"
	"starknet_balance_checker/internal/app/port"
	"starknet_balance_checker/internal/app/provider"
	"starknet_balance_checker/internal/domain/entity"
	"starknet_balance_checker/internal/pkg/utils"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func runCheck(ctx context.Context, configPath string, addresses []string, walletsFile string, text bool, out io.Writer) error {
	app, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer app.close()

	if walletsFile != "" {
		wallets, err := provider.NewWalletProvider(walletsFile, app.log).GetWallets()
		if err != nil {
			return err
		}
		addresses = append(addresses, wallets...)
	}

	reports, err := collectReports(ctx, app.balances, addresses)
	if err != nil {
		return err
	}
	if text {
		return writeText(out, reports)
	}
	return writeJSON(out, reports)
}

// collectReports checks wallets one after another; each report fans out on its own.
func collectReports(ctx context.Context, svc port.BalanceService, addresses []string) ([]entity.BalanceReport, error) {
	reports := make([]entity.BalanceReport, 0, len(addresses))
	for _, address := range addresses {
		report, err := svc.CheckAllBalances(ctx, address)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func writeJSON(out io.Writer, reports []entity.BalanceReport) error {
	views := make([]dto.BalanceReportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, dto.NewBalanceReportView(r))
	}
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func writeText(out io.Writer, reports []entity.BalanceReport) error {
	var sb strings.Builder
	for _, r := range reports {
		kind := "account"
		if r.IsContract {
			kind = "contract"
		}
		fmt.Fprintf(&sb, "%s (%s, nonce %s)\n", r.FormattedAddress, kind, r.Nonce)
		if len(r.Balances) == 0 {
			sb.WriteString("  no balances\n")
			continue
		}
		for _, b := range r.Balances {
			fmt.Fprintf(&sb, "  %s\n", utils.FormatAmount(b.Balance, b.Symbol))
		}
	}
	_, err := io.WriteString(out, sb.String())
	return err
}
