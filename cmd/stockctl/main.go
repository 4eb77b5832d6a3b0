// Command stockctl consulta y modifica el inventario a través del API GraphQL del dashboard.
//
//	stockctl [-url URL] products [-search s] [-warehouse w] [-status s] [-page n] [-limit n]
//	stockctl warehouses
//	stockctl kpis [-range 7d]
//	stockctl summary
//	stockctl demand -id P-1001 -demand 150
//	stockctl transfer -id P-1001 -from BLR-A -to PNQ-C [-quantity n]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jhoicas/inventory-dashboard/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard/internal/client"
	"github.com/jhoicas/inventory-dashboard/pkg/config"
)

var exitFunc = os.Exit

func main() {
	exitFunc(cli(os.Args[1:], os.Stdout, os.Stderr))
}

func cli(args []string, stdout, stderr io.Writer) int {
	url, timeout := client.DefaultURL, 10*time.Second
	if cfg, err := config.Load(); err == nil {
		url, timeout = cfg.Client.GraphQLURL, cfg.Client.Timeout
	}

	fs := flag.NewFlagSet("stockctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&url, "url", url, "endpoint GraphQL")
	fs.DurationVar(&timeout, "timeout", timeout, "tiempo máximo por petición")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "uso: stockctl [-url URL] <products|warehouses|kpis|summary|demand|transfer> [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	c := client.New(url, timeout)
	ctx := context.Background()
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	var err error
	switch cmd {
	case "products":
		err = runProducts(ctx, c, rest, stdout, stderr)
	case "warehouses":
		err = runWarehouses(ctx, c, stdout)
	case "kpis":
		err = runKPIs(ctx, c, rest, stdout, stderr)
	case "summary":
		err = runSummary(ctx, c, stdout)
	case "demand":
		err = runDemand(ctx, c, rest, stdout, stderr)
	case "transfer":
		err = runTransfer(ctx, c, rest, stdout, stderr)
	default:
		fmt.Fprintf(stderr, "comando desconocido: %q\n", cmd)
		fs.Usage()
		return 2
	}
	return report(err, stderr)
}

var errUsage = errors.New("uso inválido")

// report traduce el error a código de salida: 2 uso, 3 transporte, 1 resto.
func report(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var terr *client.TransportError
	switch {
	case errors.Is(err, errUsage):
		return 2
	case errors.As(err, &terr):
		fmt.Fprintln(stderr, "error:", err)
		return 3
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}

func runProducts(ctx context.Context, c *client.Client, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var p client.ProductsParams
	fs.StringVar(&p.Search, "search", "", "texto a buscar en nombre, SKU o ID")
	fs.StringVar(&p.Warehouse, "warehouse", "", "código de bodega")
	fs.StringVar(&p.Status, "status", "", "Healthy, Low o Critical")
	fs.IntVar(&p.Page, "page", 1, "página")
	fs.IntVar(&p.Limit, "limit", 10, "productos por página")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	page, err := c.Products(ctx, p)
	if err != nil {
		return err
	}
	printProducts(stdout, page.Products)
	fmt.Fprintf(stdout, "página %d/%d, %d productos\n", page.CurrentPage, page.TotalPages, page.TotalCount)
	return nil
}

func runWarehouses(ctx context.Context, c *client.Client, stdout io.Writer) error {
	whs, err := c.Warehouses(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tCITY\tCOUNTRY")
	for _, w := range whs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", w.Code, w.Name, w.City, w.Country)
	}
	return tw.Flush()
}

func runKPIs(ctx context.Context, c *client.Client, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("kpis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rangeSpec := fs.String("range", "7d", "rango en días, ej: 7d, 30d")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	points, err := c.KPIs(ctx, *rangeSpec)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTOCK\tDEMAND")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", p.Date, p.Stock, p.Demand)
	}
	return tw.Flush()
}

func runSummary(ctx context.Context, c *client.Client, stdout io.Writer) error {
	s, err := c.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "stock total: %d\ndemanda total: %d\nfill rate: %.1f%%\n", s.TotalStock, s.TotalDemand, s.FillRate)
	return nil
}

func runDemand(ctx context.Context, c *client.Client, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("demand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	id := fs.String("id", "", "ID del producto")
	demand := fs.Int("demand", 0, "nueva demanda")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *id == "" {
		fmt.Fprintln(stderr, "demand: -id es obligatorio")
		return errUsage
	}

	p, err := c.UpdateDemand(ctx, *id, *demand)
	if err != nil {
		return err
	}
	printProducts(stdout, []dto.ProductResponse{*p})
	return nil
}

func runTransfer(ctx context.Context, c *client.Client, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("transfer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var in dto.TransferStockRequest
	fs.StringVar(&in.ID, "id", "", "ID del producto")
	fs.StringVar(&in.FromWarehouse, "from", "", "bodega de origen")
	fs.StringVar(&in.ToWarehouse, "to", "", "bodega de destino")
	fs.IntVar(&in.Quantity, "quantity", 0, "cantidad (informativa)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if in.ID == "" || in.FromWarehouse == "" || in.ToWarehouse == "" {
		fmt.Fprintln(stderr, "transfer: -id, -from y -to son obligatorios")
		return errUsage
	}

	p, err := c.TransferStock(ctx, in)
	if err != nil {
		return err
	}
	printProducts(stdout, []dto.ProductResponse{*p})
	return nil
}

func printProducts(w io.Writer, products []dto.ProductResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSKU\tWAREHOUSE\tSTOCK\tDEMAND\tSTATUS")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, p.SKU, p.Warehouse, p.Stock, p.Demand, p.Status)
	}
	_ = tw.Flush()
}
