package notifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/relief-api/schema"
)

func TestTriggerStatements(t *testing.T) {
	stmts := TriggerStatements("relief_changes", schema.TableHelpRequests, schema.TableHelpOffers)
	if !assert.Len(t, stmts, 5) {
		return
	}

	assert.True(t, strings.HasPrefix(stmts[0], "CREATE OR REPLACE FUNCTION relief_notify_change()"))
	assert.Contains(t, stmts[0], "pg_notify('relief_changes', TG_TABLE_NAME)")

	assert.Equal(t, `DROP TRIGGER IF EXISTS "help_requests_notify_change" ON "help_requests"`, stmts[1])
	assert.Equal(t, `CREATE TRIGGER "help_requests_notify_change" AFTER INSERT OR UPDATE OR DELETE ON "help_requests" FOR EACH STATEMENT EXECUTE PROCEDURE relief_notify_change()`, stmts[2])
	assert.Contains(t, stmts[4], `ON "help_offers"`)
}
