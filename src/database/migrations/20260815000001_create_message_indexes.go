package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chatseal/chatseal-server/src/database"
	"github.com/pressly/goose/v3"
	"github.com/pterm/pterm"
)

func init() {
	goose.AddMigrationContext(upCreateMessageIndexes, downCreateMessageIndexes)
}

func upCreateMessageIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		// Conversation feeds are always read per tenant in timestamp order
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_tenant_timestamp
		   ON messages (tenant_id, timestamp ASC);`,

		// Status reconciliation hits wa_message_id on every callback; the
		// unique index from AutoMigrate covers equality, this partial one
		// keeps it lean by skipping the NULL rows
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_messages_wam_id_present
		   ON messages (wa_message_id) WHERE wa_message_id IS NOT NULL;`,

		// Credential lookups on inbound webhooks resolve by the
		// destination phone number id
		`CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_tenants_phone_number_id
		   ON tenants (phone_number_id);`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration upCreateMessageIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_message_indexes: all indexes ensured.")
	return nil
}

func downCreateMessageIndexes(ctx context.Context, tx *sql.Tx) error {
	db := database.DB

	stmts := []string{
		`DROP INDEX CONCURRENTLY IF EXISTS idx_tenants_phone_number_id;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_wam_id_present;`,
		`DROP INDEX CONCURRENTLY IF EXISTS idx_messages_tenant_timestamp;`,
	}

	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			pterm.DefaultLogger.Error(fmt.Sprintf("migration downCreateMessageIndexes failed on: %s\nerr: %v", s, err))
			return err
		}
		pterm.DefaultLogger.Info("Executed: " + s)
	}

	pterm.DefaultLogger.Info("create_message_indexes: all indexes dropped.")
	return nil
}
