package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/trytobebee/snakegrow/pkg/config"
	"github.com/trytobebee/snakegrow/pkg/sim"
)

func main() {
	dbPath := flag.String("db", config.DBPath, "Run history database")
	limit := flag.Int("limit", 20, "Maximum number of runs to show")
	flag.Parse()

	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		log.Fatalf("No run history at %s. Run snakegrow with --save first.", *dbPath)
	}

	store, err := sim.OpenStore(*dbPath)
	if err != nil {
		log.Fatal("Failed to open history:", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(*limit)
	if err != nil {
		log.Fatal("Failed to load runs:", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("%-10s  %-6s  %-11s  %-10s  %-12s  %-11s  %-7s  %s\n",
		"SESSION", "APPLES", "LENGTH-GAIN", "GIRTH-GAIN", "FINAL-LENGTH", "FINAL-GIRTH", "COLOR", "WHEN")
	for _, r := range runs {
		session := r.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		fmt.Printf("%-10s  %-6d  %-11d  %-10d  %-12d  %-11d  %-7s  %s\n",
			session, r.Apples, r.LengthGain, r.GirthGain,
			r.FinalLength, r.FinalGirth, r.FinalColor,
			r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
