package notifier

import (
	"fmt"

	"github.com/lib/pq"

	"github.com/bitmark-inc/relief-api/schema"
)

const notifyFunction = "relief_notify_change"

// TriggerStatements returns the DDL that makes postgres notify the channel
// with the table name after any write to the given tables.
func TriggerStatements(channel string, tables ...schema.Table) []string {
	statements := []string{
		fmt.Sprintf(`CREATE OR REPLACE FUNCTION %s() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify(%s, TG_TABLE_NAME);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`, notifyFunction, pq.QuoteLiteral(channel)),
	}

	for _, t := range tables {
		name := pq.QuoteIdentifier(fmt.Sprintf("%s_notify_change", t))
		table := pq.QuoteIdentifier(string(t))
		statements = append(statements,
			fmt.Sprintf("DROP TRIGGER IF EXISTS %s ON %s", name, table),
			fmt.Sprintf("CREATE TRIGGER %s AFTER INSERT OR UPDATE OR DELETE ON %s FOR EACH STATEMENT EXECUTE PROCEDURE %s()",
				name, table, notifyFunction),
		)
	}

	return statements
}
