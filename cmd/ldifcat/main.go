// Command ldifcat parses, validates and rewrites LDIF (RFC 2849) files.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
