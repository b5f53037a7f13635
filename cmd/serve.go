package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmedsharif09/portfolio/internal/config"
	"github.com/ahmedsharif09/portfolio/internal/contact"
	"github.com/ahmedsharif09/portfolio/internal/content"
	"github.com/ahmedsharif09/portfolio/internal/relay"
	"github.com/ahmedsharif09/portfolio/internal/server"
	"github.com/ahmedsharif09/portfolio/internal/store"
)

const cleanupInterval = 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if !cfg.RelayConfigured() {
			log.Println("WARNING: EmailJS identifiers not set; contact submissions will fail. Set PORTFOLIO_EMAILJS__SERVICE_ID, PORTFOLIO_EMAILJS__TEMPLATE_ID and PORTFOLIO_EMAILJS__PUBLIC_KEY.")
		}

		site, err := content.Load(cfg.ContentFile)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		var db *store.DB
		if cfg.DBPath != "" {
			db, err = store.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening metrics store: %w", err)
			}
			defer db.Close()
			log.Println("Privacy: visitor tracking enabled with hashed IP addresses")
		}

		stop := make(chan struct{})
		defer close(stop)
		if db != nil {
			go db.RunCleanup(cleanupInterval, store.Retention, stop)
		}

		contacts := contact.NewRegistry(relay.New(cfg.RelayConfig(), nil), cfg.Session.TTL, submissionRecorder(db))
		go contacts.Run(cfg.Session.SweepInterval, stop)

		srv, err := server.New(cfg, site, contacts, db)
		if err != nil {
			return fmt.Errorf("building server: %w", err)
		}
		return srv.Run()
	},
}

// submissionRecorder stores settled outcomes when a metrics store is open.
func submissionRecorder(db *store.DB) func(session string, s contact.State) {
	if db == nil {
		return nil
	}
	return func(session string, s contact.State) {
		if s != contact.StateSuccess && s != contact.StateError {
			return
		}
		if err := db.RecordSubmission(session, string(s), time.Now()); err != nil {
			log.Printf("Error recording submission: %v", err)
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
