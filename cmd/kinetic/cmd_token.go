package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mansoorceksport/kinetic/internal/middleware"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		deviceID string
		secret   string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a device token for an API started with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return errors.New("no signing secret: pass --secret or set JWT_SECRET")
			}

			now := time.Now()
			claims := jwt.RegisteredClaims{
				Subject:  deviceID,
				IssuedAt: jwt.NewNumericDate(now),
			}
			if ttl > 0 {
				claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
			}

			token, err := middleware.IssueDeviceToken(secret, deviceID, claims)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&deviceID, "device", "", "device id carried by the token")
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "HS256 signing secret")
	cmd.Flags().DurationVar(&ttl, "ttl", 365*24*time.Hour, "token lifetime (0 for no expiry)")
	cmd.MarkFlagRequired("device")
	return cmd
}
