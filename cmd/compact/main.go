package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"docshare/internal/config"
	"docshare/internal/database"
	"docshare/internal/share"
)

// Offline compaction for the link store. The API itself never hard-deletes
// (revocation is a soft delete, which keeps the audit trail); this job
// purges records that have been unusable for longer than the retention
// window, bounding storage growth.
func main() {
	retention := flag.Duration("retention", 30*24*time.Hour, "keep unusable records this long after expiry")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	cutoff := time.Now().Add(-*retention)

	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		res := db.Where("is_active = ? OR (expires_at IS NOT NULL AND expires_at < ?)", false, cutoff).
			Delete(&share.ShareLink{})
		if res.Error != nil {
			log.Fatalf("compact failed: %v", res.Error)
		}
		log.Printf("compacted link store: removed %d records", res.RowsAffected)
		return
	}

	removed, err := share.CompactFile(cfg.StorePath, cutoff)
	if err != nil {
		log.Fatalf("compact failed: %v", err)
	}
	log.Printf("compacted %s: removed %d records", cfg.StorePath, removed)
}
