// Command importsheet previews a personnel spreadsheet against the employee
// store and, with --confirm, applies its valid rows.
// Usage: go run ./cmd/importsheet [--confirm] [--rejects <path>] <file.xlsx>
package main

func main() {
	Execute()
}
