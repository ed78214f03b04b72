package cmd

import (
	"context"
	"crypto-analysis/internal/dto"
	"crypto-analysis/internal/repository"
	"crypto-analysis/internal/service"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var analyzeOpts struct {
	symbol    string
	currency  string
	days      int
	calculate bool
	trade     dto.TradeRequest
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Render one dashboard and print it as JSON",
	RunE:  Analyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVarP(&analyzeOpts.symbol, "symbol", "s", "BTC", "cryptocurrency symbol")
	f.StringVar(&analyzeOpts.currency, "currency", "", "quote currency (default from config)")
	f.IntVarP(&analyzeOpts.days, "days", "d", 30, "number of daily points")
	f.BoolVar(&analyzeOpts.calculate, "calculate", false, "include position sizing")
	f.Float64Var(&analyzeOpts.trade.EntryPrice, "entry", 0, "entry price (default from config)")
	f.Float64Var(&analyzeOpts.trade.StopLoss, "stop", 0, "stop loss (default from config)")
	f.Float64Var(&analyzeOpts.trade.TakeProfit, "take-profit", 0, "take profit (default from config)")
	f.Float64Var(&analyzeOpts.trade.AccountBalance, "balance", 0, "account balance (default from config)")
	f.Float64Var(&analyzeOpts.trade.RiskPercent, "risk", 0, "risk percent (default from config)")
}

func Analyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx, configPath)
	if err != nil {
		return err
	}
	defer appDep.Close()

	repo := repository.NewRepository(appDep.cfg, appDep.cache, appDep.log)
	services := service.NewService(appDep.cfg, appDep.log, repo)

	req := services.DashboardService.FormOptions().DefaultRequest()
	req.Symbol = strings.ToUpper(analyzeOpts.symbol)
	if analyzeOpts.currency != "" {
		req.Currency = strings.ToUpper(analyzeOpts.currency)
	}
	req.Days = analyzeOpts.days
	req.Calculate = analyzeOpts.calculate
	overrideTrade(&req.Trade, analyzeOpts.trade, cmd)

	if err := appDep.validator.Struct(req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	dashboard := services.DashboardService.Render(ctx, req.ToSession())

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(dashboard); err != nil {
		return err
	}

	if len(dashboard.Errors) > 0 {
		return fmt.Errorf("%s: %s", dashboard.Errors[0].Kind, dashboard.Errors[0].Message)
	}
	return nil
}

// overrideTrade applies only the trade flags the user actually set.
func overrideTrade(dst *dto.TradeRequest, src dto.TradeRequest, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("entry") {
		dst.EntryPrice = src.EntryPrice
	}
	if flags.Changed("stop") {
		dst.StopLoss = src.StopLoss
	}
	if flags.Changed("take-profit") {
		dst.TakeProfit = src.TakeProfit
	}
	if flags.Changed("balance") {
		dst.AccountBalance = src.AccountBalance
	}
	if flags.Changed("risk") {
		dst.RiskPercent = src.RiskPercent
	}
}
