package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"assetledger/dates"
	"assetledger/export"
	"assetledger/models"
	"assetledger/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the monthly report of a tenant",
	Example: `  assetledger report --year 2024 --month 3
  assetledger report --tenant Default --format csv --section assets --out assets.csv
  assetledger report --format xlsx`,
	RunE: runReport,
}

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Print the dashboard KPIs of a tenant",
	RunE:  runKPI,
}

func init() {
	now := time.Now()
	for _, cmd := range []*cobra.Command{reportCmd, kpiCmd} {
		cmd.Flags().String("tenant", models.DefaultTenantName, "Tenant name or id")
		cmd.Flags().Int("year", now.Year(), "Report year")
		cmd.Flags().Int("month", int(now.Month()), "Report month (1-12)")
	}
	reportCmd.Flags().String("format", "json", "Output format: json, csv or xlsx")
	reportCmd.Flags().String("section", string(export.SectionCosts), "CSV section: costs, assets or incidents")
	reportCmd.Flags().StringP("out", "o", "", "Output file (default stdout, or the standard file name for xlsx)")
}

// period reads the shared --tenant/--year/--month flags.
func period(cmd *cobra.Command) (string, int, int, error) {
	tenant, _ := cmd.Flags().GetString("tenant")
	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	if err := dates.ValidateMonth(year, month); err != nil {
		return "", 0, 0, err
	}
	return tenant, year, month, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	ref, year, month, err := period(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	switch format {
	case "json", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	var section export.Section
	if format == "csv" {
		name, _ := cmd.Flags().GetString("section")
		if section, err = export.ParseSection(name); err != nil {
			return err
		}
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	ctx := context.Background()
	tenant, err := a.store.FindTenant(ctx, ref)
	if err != nil {
		return fmt.Errorf("tenant %q: %w", ref, err)
	}
	in, err := a.store.Snapshot(ctx, tenant.ID)
	if err != nil {
		return fmt.Errorf("load report data: %w", err)
	}
	rep := report.Build(in, year, month, a.mode)

	if format == "xlsx" && out == "" {
		out = export.Filename(year, month, "", "xlsx")
	}

	if out == "" {
		err = writeReport(cmd.OutOrStdout(), rep, format, section)
	} else {
		err = writeReportFile(out, rep, format, section)
	}
	if err != nil {
		return err
	}

	a.log.Info("report written",
		zap.String("tenant_id", tenant.ID),
		zap.Int("year", year),
		zap.Int("month", month),
		zap.String("format", format),
		zap.Int64("total_cost", rep.TotalCost()),
	)
	return nil
}

func writeReport(w io.Writer, rep *report.Report, format string, section export.Section) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "csv":
		return export.WriteCSV(w, rep, section)
	case "xlsx":
		return export.WriteXLSX(w, rep)
	}
	return fmt.Errorf("unknown format %q", format)
}

// writeReportFile writes the report to path, including any error from Close.
func writeReportFile(path string, rep *report.Report, format string, section export.Section) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeReport(f, rep, format, section); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func runKPI(cmd *cobra.Command, args []string) error {
	ref, year, month, err := period(cmd)
	if err != nil {
		return err
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.log.Sync()

	ctx := context.Background()
	tenant, err := a.store.FindTenant(ctx, ref)
	if err != nil {
		return fmt.Errorf("tenant %q: %w", ref, err)
	}
	assets, err := a.store.ListAssets(ctx, tenant.ID)
	if err != nil {
		return err
	}
	requests, err := a.store.ListRequests(ctx, tenant.ID, nil)
	if err != nil {
		return err
	}

	kpi := report.ComputeKPI(assets, requests, year, month)
	fmt.Fprintf(cmd.OutOrStdout(), "Period:       %d-%02d\n", year, month)
	fmt.Fprintf(cmd.OutOrStdout(), "Total assets: %d\n", kpi.TotalAssets)
	fmt.Fprintf(cmd.OutOrStdout(), "Utilization:  %d%%\n", kpi.UtilizationRate)
	fmt.Fprintf(cmd.OutOrStdout(), "Incidents:    %d\n", kpi.Incidents)
	fmt.Fprintf(cmd.OutOrStdout(), "MTTR:         %s\n", kpi.MTTR)
	fmt.Fprintf(cmd.OutOrStdout(), "Cost:         %d (%+d vs previous month)\n", kpi.CostMonth, kpi.CostDiff)
	return nil
}
