package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gander/internal/flags"
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List the well-known shared flags",
	Long: `Shows the flags screens declare in the shared flag table. They can be
read and changed from the console with get_flag, set_flag and toggle_flag.`,
	Run: runFlags,
}

func runFlags(cmd *cobra.Command, args []string) {
	all := flags.All()

	nameW, ownerW := len("Name"), len("Owner")
	for _, f := range all {
		nameW = max(nameW, len(f.Name))
		ownerW = max(ownerW, len(f.Owner))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", nameW, "Name", ownerW, "Owner", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", nameW, "----", ownerW, "-----", "-----------")
	for _, f := range all {
		fmt.Printf("  %-*s  %-*s  %s\n", nameW, f.Name, ownerW, f.Owner, f.Description)
	}
}
