package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jask/photofeed/internal/auth"
)

// readPassword and isTerminal are test seams for the x/term calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check a sign-in against the configured allow-list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			allow, err := opts.cfg.AllowList()
			if err != nil {
				return err
			}
			return verify(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), auth.NewStore(allow, opts.log), opts.cfg.Auth.DomainSuffix)
		},
	}
}

func verify(in *bufio.Reader, out io.Writer, store *auth.Store, suffix string) error {
	identifier, err := prompt(in, out, "Email: ")
	if err != nil {
		return fmt.Errorf("read email: %w", err)
	}
	if suffix != "" && !auth.HasDomainSuffix(identifier, suffix) {
		fmt.Fprintf(out, "warning: %s does not end in %s and would be refused by the login form\n", identifier, suffix)
	}

	secret, err := readSecret(in, out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	if err := store.Login(identifier, secret); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			fmt.Fprintln(out, "Invalid email or password")
		}
		return err
	}
	fmt.Fprintf(out, "OK: signed in as %s\n", store.Current().Identifier)
	return nil
}

// readSecret reads without echo from a terminal. Piped input is read as the
// next line of in, which already holds whatever followed the email.
func readSecret(in *bufio.Reader, out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return prompt(in, out, "Password: ")
	}
	fmt.Fprint(out, "Password: ")
	secret, err := readPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	if _, err := fmt.Fprint(out, label); err != nil {
		return "", err
	}
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
