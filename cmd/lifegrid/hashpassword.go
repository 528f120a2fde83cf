package main

import (
	"fmt"
	"os"

	"github.com/jonathan/lifegrid/internal/config"
	"github.com/spf13/cobra"
)

var hashPasswordCost int

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash an admin password for ADMIN_PASSWORD_HASH",
	Long:  `Hash a password with bcrypt (honoring PASSWORD_PEPPER if set) and print the hash for use as the ADMIN_PASSWORD_HASH environment variable.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashPasswordCost, "cost", 12, "bcrypt cost (10-14)")
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	auth := &config.AuthConfig{
		BcryptCost: hashPasswordCost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}
	if auth.BcryptCost < 10 || auth.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", auth.BcryptCost)
	}

	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
