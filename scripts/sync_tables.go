// Command sync_tables pulls payments, orders and refunds from the Razorpay
// API and writes them into the workbook the lookup service reads. Run it
// from the repository root:
//
//	go run scripts/sync_tables.go -out data/customer_data.xlsx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/tealeg/xlsx"
)

const pageSize = 100

var paymentHeaders = []string{
	"id", "amount", "currency", "status", "order_id", "method",
	"amount_refunded", "refund_status", "description", "email", "contact",
	"error_description", "created_at", "receipt",
}

var orderHeaders = []string{
	"id", "amount", "amount_paid", "amount_due", "currency", "receipt",
	"status", "attempts", "created_at", "payment_id",
}

var refundHeaders = []string{
	"id", "amount", "currency", "payment_id", "status", "created_at",
	"speed_requested", "speed_processed", "receipt",
}

func main() {
	out := flag.String("out", "data/customer_data.xlsx", "workbook path to write")
	flag.Parse()

	_ = godotenv.Load()
	key := os.Getenv("RAZORPAY_KEY")
	secret := os.Getenv("RAZORPAY_SECRET")
	if key == "" || secret == "" {
		log.Fatal("RAZORPAY_KEY and RAZORPAY_SECRET must be set")
	}

	client := razorpay.NewClient(key, secret)

	payments, err := fetchAll(func(opts map[string]interface{}) (map[string]interface{}, error) {
		return client.Payment.All(opts, nil)
	})
	if err != nil {
		log.Fatal("Failed to fetch payments: ", err)
	}
	orders, err := fetchAll(func(opts map[string]interface{}) (map[string]interface{}, error) {
		return client.Order.All(opts, nil)
	})
	if err != nil {
		log.Fatal("Failed to fetch orders: ", err)
	}
	refunds, err := fetchAll(func(opts map[string]interface{}) (map[string]interface{}, error) {
		return client.Refund.All(opts, nil)
	})
	if err != nil {
		log.Fatal("Failed to fetch refunds: ", err)
	}
	log.Printf("Fetched %d payments, %d orders, %d refunds", len(payments), len(orders), len(refunds))

	// The order entity does not carry the settling payment; derive it from
	// the payments' order_id references.
	orderPayment := make(map[string]string, len(payments))
	for _, p := range payments {
		if oid := cellString(p["order_id"]); oid != "" {
			orderPayment[oid] = cellString(p["id"])
		}
	}

	file := xlsx.NewFile()
	if err := addSheet(file, "payments", paymentHeaders, payments, nil); err != nil {
		log.Fatal(err)
	}
	if err := addSheet(file, "orders", orderHeaders, orders, orderPayment); err != nil {
		log.Fatal(err)
	}
	if err := addSheet(file, "refunds", refundHeaders, refunds, nil); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatal("Failed to create output directory: ", err)
	}
	if err := file.Save(*out); err != nil {
		log.Fatal("Failed to save workbook: ", err)
	}
	log.Printf("Wrote %s", *out)
}

// fetchAll pages through a Razorpay collection endpoint until a short page
// signals the end.
func fetchAll(list func(map[string]interface{}) (map[string]interface{}, error)) ([]map[string]interface{}, error) {
	var all []map[string]interface{}
	for skip := 0; ; skip += pageSize {
		resp, err := list(map[string]interface{}{"count": pageSize, "skip": skip})
		if err != nil {
			return nil, err
		}
		items, _ := resp["items"].([]interface{})
		for _, item := range items {
			if entity, ok := item.(map[string]interface{}); ok {
				all = append(all, entity)
			}
		}
		if len(items) < pageSize {
			return all, nil
		}
	}
}

func addSheet(file *xlsx.File, name string, headers []string, entities []map[string]interface{}, orderPayment map[string]string) error {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return fmt.Errorf("failed to add sheet %s: %v", name, err)
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().Value = h
	}

	for _, entity := range entities {
		row := sheet.AddRow()
		for _, h := range headers {
			cell := row.AddCell()
			switch {
			case h == "created_at":
				cell.Value = epochString(entity[h])
			case h == "payment_id" && orderPayment != nil:
				cell.Value = orderPayment[cellString(entity["id"])]
			default:
				cell.Value = cellString(entity[h])
			}
		}
	}
	return nil
}

func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; amounts and counters are whole
		// minor units.
		return strconv.FormatInt(int64(val), 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

func epochString(v interface{}) string {
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return ""
	}
	return time.Unix(int64(f), 0).UTC().Format("2006-01-02 15:04:05")
}
