package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"comanda-pos/internal/model"
	"comanda-pos/internal/repository"
	"comanda-pos/pkg/config"
	"comanda-pos/pkg/database"
)

func main() {
	from := flag.String("from", "", "first day (YYYY-MM-DD), default today")
	to := flag.String("to", "", "last day (YYYY-MM-DD), default same as -from")
	saleType := flag.String("type", "", "pdv or comanda, default all")
	flag.Parse()

	start, end, err := period(*from, *to, time.Now())
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// 1. Load Env
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg)
	repo := repository.NewSaleRepo(db)
	ctx := context.Background()

	// 3. Query
	sales, err := repo.FindByPeriod(ctx, start, end, model.SaleType(*saleType))
	if err != nil {
		log.Fatalf("❌ Failed to load sales: %v", err)
	}
	summary, err := repo.GetSummary(ctx, start, end)
	if err != nil {
		log.Fatalf("❌ Failed to summarise sales: %v", err)
	}
	ranking, err := repo.GetProductRanking(ctx, start, end, 10)
	if err != nil {
		log.Fatalf("❌ Failed to rank products: %v", err)
	}

	// 4. Print
	printReport(os.Stdout, start, end, sales, summary, ranking)
}

// period turns the flag values into an inclusive day range in local time
func period(from, to string, now time.Time) (time.Time, time.Time, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -from %q: %w", from, err)
		}
		start = t
	}
	end := start
	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -to %q: %w", to, err)
		}
		end = t
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("-to is before -from")
	}
	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}

func printReport(out io.Writer, start, end time.Time, sales []model.Sale, summary *repository.SalesSummary, ranking []repository.ProductSales) {
	fmt.Fprintf(out, "Sales from %s to %s\n\n", start.Format("2006-01-02"), end.Format("2006-01-02"))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tTABLE\tPAYMENT\tTOTAL")
	for _, sale := range sales {
		table := "-"
		if sale.ComandaNumber != nil {
			table = fmt.Sprint(*sale.ComandaNumber)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			sale.CreatedAt.Local().Format("2006-01-02 15:04"), sale.Type, table, sale.PaymentMethod, sale.Total.StringFixed(2))
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d sale(s), total R$ %s\n", summary.Count, summary.Total.StringFixed(2))
	for _, t := range []model.SaleType{model.SalePDV, model.SaleComanda} {
		if v, ok := summary.ByType[t]; ok {
			fmt.Fprintf(out, "  %-16s R$ %s\n", t, v.StringFixed(2))
		}
	}
	for _, p := range []model.PaymentMethod{model.PaymentCash, model.PaymentPix, model.PaymentDebit, model.PaymentCredit} {
		if v, ok := summary.ByPayment[p]; ok {
			fmt.Fprintf(out, "  %-16s R$ %s\n", p, v.StringFixed(2))
		}
	}

	if len(ranking) == 0 {
		return
	}
	fmt.Fprintln(out, "\nBest sellers")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, p := range ranking {
		fmt.Fprintf(w, "%d.\t%s\t%d\tR$ %s\n", i+1, p.Name, p.Quantity, p.Revenue.StringFixed(2))
	}
	w.Flush()
}
