// Command inspect opens an interactive SQL session against the bookstore
// database for manual inspection of seeded data. It is a development aid;
// nothing here is a stable contract.
package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bookstore/backend/internal/infrastructure/config"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("sqlite3", cfg.Database.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Connected to %s\n", cfg.Database.Path)
	fmt.Println("Enter SQL statements, '.tables' to list tables, or 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("bookstore> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit" || line == ".quit":
			return
		case line == ".tables":
			line = "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name"
		}

		if err := execute(db, os.Stdout, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// returnsRows reports whether a statement produces a result set rather
// than an affected-row count.
func returnsRows(stmt string) bool {
	upper := strings.ToUpper(stmt)
	for _, prefix := range []string{"SELECT", "WITH", "PRAGMA", "EXPLAIN", "VALUES"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// execute runs a single statement, printing rows for queries and the
// affected-row count for everything else.
func execute(db *sql.DB, w io.Writer, stmt string) error {
	if !returnsRows(stmt) {
		result, err := db.Exec(stmt)
		if err != nil {
			return err
		}
		affected, _ := result.RowsAffected()
		fmt.Fprintf(w, "%d row(s) affected\n", affected)
		return nil
	}

	rows, err := db.Query(stmt)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Join(cols, " | "))

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	count := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		fields := make([]string, len(values))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			fields[i] = fmt.Sprintf("%v", v)
		}
		fmt.Fprintln(w, strings.Join(fields, " | "))
		count++
	}
	fmt.Fprintf(w, "(%d row(s))\n", count)

	return rows.Err()
}
