package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/sprouts/internal/store"
	"github.com/spf13/cobra"
)

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage the API key stored in the database",
	Long: "The stored key overrides the one from the environment for the " +
		"configured provider.",
}

var credentialSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Check a key and store it",
	Long:  "Check the key with a tiny request and store it. Without an argument the key is read from stdin.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := keyArg(cmd, args)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		status := newServices(st).generator.ValidateCredential(cmd.Context(), key)
		if !status.OK {
			return errors.New(status.Message)
		}
		if err := st.SettingsRepo().Set(cmd.Context(), store.KeyAPICredential, key); err != nil {
			return fmt.Errorf("store key: %w", err)
		}
		fmt.Println(status.Message, "Saved.")
		return nil
	},
}

var credentialCheckCmd = &cobra.Command{
	Use:   "check [key]",
	Short: "Make a tiny request with the given key or the one in effect",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var key string
		if len(args) == 1 {
			key = args[0]
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		status := newServices(st).generator.ValidateCredential(cmd.Context(), key)
		if !status.OK {
			return fmt.Errorf("%s (%s)", status.Message, status.Code)
		}
		fmt.Println(status.Message)
		return nil
	},
}

var credentialClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored key",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := st.SettingsRepo().Delete(cmd.Context(), store.KeyAPICredential); err != nil {
			return fmt.Errorf("clear key: %w", err)
		}
		fmt.Println("Stored key removed.")
		return nil
	},
}

// keyArg returns the key from args or, when absent, one line of stdin.
func keyArg(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	fmt.Print("API key: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	key := strings.TrimSpace(line)
	if key == "" {
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read key: %w", err)
		}
		return "", errors.New("no key given")
	}
	return key, nil
}

func init() {
	credentialCmd.AddCommand(credentialSetCmd)
	credentialCmd.AddCommand(credentialCheckCmd)
	credentialCmd.AddCommand(credentialClearCmd)
}
