package initializers

import (
	"log"
	"os"
	"time"

	"github.com/Kariqs/bakebites/recorders"
)

var (
	Recorder      recorders.Recorder
	OrderTimeout  time.Duration
	OrderLocation *time.Location
)

// InitRecorder picks the order book named by ORDER_RECORDER.
func InitRecorder() {
	OrderTimeout = getDurationEnv("ORDER_TIMEOUT", 15*time.Second)

	zone := getEnv("ORDER_TIMEZONE", "Asia/Kuala_Lumpur")
	location, err := time.LoadLocation(zone)
	if err != nil {
		log.Fatalf("Invalid ORDER_TIMEZONE %q: %v", zone, err)
	}
	OrderLocation = location

	kind := getEnv("ORDER_RECORDER", "sheets")
	switch kind {
	case "sheets":
		account, err := loadServiceAccount()
		if err != nil {
			log.Fatal(err)
		}
		sheets, err := recorders.NewSheetsRecorder(recorders.SheetsConfig{
			SpreadsheetID: os.Getenv("SHEETS_SPREADSHEET_ID"),
			Range:         getEnv("SHEETS_RANGE", "Sheet1"),
			Account:       account,
			Timeout:       OrderTimeout,
		})
		if err != nil {
			log.Fatal(err)
		}
		Recorder = sheets
	case "webhook":
		webhook, err := recorders.NewWebhookRecorder(os.Getenv("ORDER_WEBHOOK_URL"), os.Getenv("ORDER_WEBHOOK_TOKEN"), OrderTimeout)
		if err != nil {
			log.Fatal(err)
		}
		Recorder = webhook
	case "mysql":
		ConnectToDB()
		ledger := recorders.NewLedgerRecorder(DB)
		SyncDatabase(ledger)
		Recorder = ledger
	default:
		log.Fatalf("Unknown ORDER_RECORDER %q (want sheets, webhook or mysql)", kind)
	}
	log.Printf("Orders will be recorded with %s (timeout %s).", kind, OrderTimeout)
}

func loadServiceAccount() (*recorders.ServiceAccount, error) {
	if raw := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"); raw != "" {
		return recorders.ParseServiceAccount([]byte(raw))
	}
	return recorders.LoadServiceAccountFile(getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", "service_account.json"))
}
