package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/domains/client"
	"github.com/Fivegen-LLC/wol-agent/internal/objects/dto"
)

const (
	keyURL      = "url"
	keyToken    = "token"
	keyUsername = "username"
	keyPassword = "password"

	defaultURL = "http://127.0.0.1:12345"
)

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WOLCTL")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "wolctl",
		Short:        "Operate a wake-on-lan agent",
		SilenceUsage: true,
	}

	root.PersistentFlags().String(keyURL, defaultURL, "agent base url (WOLCTL_URL)")
	root.PersistentFlags().String(keyToken, "", "bearer token (WOLCTL_TOKEN)")
	_ = v.BindPFlag(keyURL, root.PersistentFlags().Lookup(keyURL))
	_ = v.BindPFlag(keyToken, root.PersistentFlags().Lookup(keyToken))

	newClient := func() *client.Service {
		return client.NewService(v.GetString(keyURL), v.GetString(keyToken))
	}

	root.AddCommand(
		newHealthCommand(newClient),
		newLoginCommand(v, newClient),
		newWakeCommand(newClient),
		newInterfacesCommand(newClient),
		newWhitelistCommand(newClient),
	)

	return root
}

func newHealthCommand(newClient func() *client.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show agent health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Health()
			if err != nil {
				return fmt.Errorf("health: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s, up %s, %d sessions\n", resp.Status, resp.Version, resp.Uptime, resp.Sessions)
			return nil
		},
	}
}

// newLoginCommand solves the captcha interactively: the image is written to a
// temporary file and the answer is read from stdin.
func newLoginCommand(v *viper.Viper, newClient func() *client.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := newClient()
			captcha, err := service.GetCaptcha()
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			image, err := client.DecodeCaptchaImage(captcha.CaptchaImage)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			file, err := os.CreateTemp("", "wolctl-captcha-*.png")
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			defer os.Remove(file.Name())

			if _, err = file.Write(image); err != nil {
				_ = file.Close()
				return fmt.Errorf("login: %w", err)
			}
			if err = file.Close(); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "captcha image: %s\nenter captcha: ", file.Name())
			answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && lo.IsEmpty(answer) {
				return fmt.Errorf("login: %w", err)
			}

			resp, err := service.Login(dto.LoginRequest{
				Username:    v.GetString(keyUsername),
				Password:    v.GetString(keyPassword),
				CaptchaID:   captcha.CaptchaID,
				CaptchaText: strings.TrimSpace(answer),
			})
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), lo.FromPtr(resp.AccessToken))
			return nil
		},
	}

	cmd.Flags().String(keyUsername, constants.DefaultUsername, "operator username (WOLCTL_USERNAME)")
	cmd.Flags().String(keyPassword, "", "operator password (WOLCTL_PASSWORD)")
	_ = v.BindPFlag(keyUsername, cmd.Flags().Lookup(keyUsername))
	_ = v.BindPFlag(keyPassword, cmd.Flags().Lookup(keyPassword))

	return cmd
}

func newWakeCommand(newClient func() *client.Service) *cobra.Command {
	var (
		iface     string
		broadcast string
		port      int
	)

	cmd := &cobra.Command{
		Use:   "wake <mac>",
		Short: "Send a magic packet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := dto.AdvancedWakeRequest{MacAddress: args[0]}
			if cmd.Flags().Changed("interface") {
				request.Interface = lo.ToPtr(iface)
			}
			if cmd.Flags().Changed("broadcast") {
				request.BroadcastAddress = lo.ToPtr(broadcast)
			}
			if cmd.Flags().Changed("port") {
				request.Port = lo.ToPtr(port)
			}

			service := newClient()
			var (
				resp dto.WakeResponse
				err  error
			)
			if request.Interface == nil && request.BroadcastAddress == nil && request.Port == nil {
				resp, err = service.Wake(request.MacAddress)
			} else {
				resp, err = service.WakeAdvanced(request)
			}
			if lo.IsNotEmpty(resp.Message) {
				fmt.Fprintln(cmd.OutOrStdout(), client.FormatWake(resp))
			}
			if err != nil {
				return fmt.Errorf("wake: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&iface, "interface", "", "interface to send from")
	cmd.Flags().StringVar(&broadcast, "broadcast", "", "explicit IPv4 broadcast address")
	cmd.Flags().IntVar(&port, "port", constants.DefaultWakePort, "UDP destination port")

	return cmd
}

func newInterfacesCommand(newClient func() *client.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "interfaces",
		Short: "List agent network interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListInterfaces()
			if err != nil {
				return fmt.Errorf("interfaces: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), client.FormatInterfaces(resp))
			return nil
		},
	}
}

func newWhitelistCommand(newClient func() *client.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist",
		Short: "Manage trusted addresses",
	}

	printChange := func(cmd *cobra.Command, resp dto.WhitelistChangeResponse) {
		fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(resp.Whitelist, "\n"))
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List trusted addresses and networks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				resp, err := newClient().ListWhitelist()
				if err != nil {
					return fmt.Errorf("whitelist list: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), client.FormatWhitelist(resp))
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <ip|cidr>",
			Short: "Trust an address or network",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := newClient().AddWhitelist(args[0])
				if err != nil {
					return fmt.Errorf("whitelist add: %w", err)
				}

				printChange(cmd, resp)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <ip|cidr>",
			Short: "Stop trusting an address or network",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := newClient().RemoveWhitelist(args[0])
				if err != nil {
					return fmt.Errorf("whitelist remove: %w", err)
				}

				printChange(cmd, resp)
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Check whether this host is trusted",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				resp, err := newClient().CheckWhitelist()
				if err != nil {
					return fmt.Errorf("whitelist check: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", resp.ClientIP, resp.Message)
				return nil
			},
		},
	)

	return cmd
}
