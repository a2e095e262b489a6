package postgresql

import "fmt"

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

func copyRowsError(table string, err error) error {
	return fmt.Errorf("failed to copy rows into %s: %w", table, err)
}

// checkCopied guards against CopyFrom silently writing fewer rows than given.
func checkCopied(table string, copied int64, expected int) error {
	if copied != int64(expected) {
		return fmt.Errorf("copied %d rows into %s, expected %d", copied, table, expected)
	}

	return nil
}
