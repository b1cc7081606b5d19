// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LokendraNath/Dodoment-Managment-System/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with a mobile-number OTP",
	Long: `Login requests a one-time passcode for the given mobile number, prompts
for the received code, and stores the issued session token in the
credentials directory. Subsequent commands use the stored token.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		flow := auth.NewFlow(newAPIClient(), tokenStore())
		if err := flow.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("mobile", "", "mobile number to authenticate")
	loginCmd.Flags().String("otp", "", "one-time passcode (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	mobile, _ := cmd.Flags().GetString("mobile")
	if mobile == "" {
		return fmt.Errorf("provide a mobile number with --mobile")
	}

	flow := auth.NewFlow(newAPIClient(), tokenStore())

	if err := flow.Begin(cmd.Context(), mobile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OTP sent to %s.\n", mobile)

	otp, _ := cmd.Flags().GetString("otp")
	if otp == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter OTP: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading OTP: %w", err)
		}
		otp = strings.TrimSpace(line)
	}
	if otp == "" {
		return fmt.Errorf("OTP required")
	}

	if _, err := flow.Complete(cmd.Context(), mobile, otp); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
	return nil
}
