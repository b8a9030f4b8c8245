// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"pss/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the protein subunit REPL, %s!\n", currentUser.Username)
	fmt.Println(`Enter an expression like "(S1 + S2) | S3" to enumerate its structures.`)
	repl.Start(os.Stdin, os.Stdout)
}
