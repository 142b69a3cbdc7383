// Command ip6lla converts MAC addresses to Modified EUI-64 based IPv6
// link-local addresses, and converts such IPv6 link-local addresses back to
// MAC addresses.
package main

import (
	"io"
	"net"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ll := newLogger(os.Stderr)

	cmd := newRootCommand(os.Stdout, ll, net.Interfaces)
	if err := cmd.Execute(); err != nil {
		ll.Fatal(err)
	}
}

// newLogger creates a logger for diagnostics which are kept separate from
// converted addresses on stdout.
func newLogger(w io.Writer) *logrus.Logger {
	ll := logrus.New()
	ll.SetOutput(w)
	ll.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return ll
}

// newRootCommand creates the ip6lla command, writing converted addresses to w
// and listing interfaces from ifaces.
func newRootCommand(w io.Writer, ll *logrus.Logger, ifaces func() ([]net.Interface, error)) *cobra.Command {
	var (
		c          = &converter{ll: ll}
		interfaces bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "ip6lla [flags] ADDRESS...",
		Short: "Convert IPv6 link-local addresses and MAC addresses to each other.",
		Long: `Convert Modified EUI-64 based IPv6 link-local addresses to MAC addresses,
and MAC addresses to IPv6 link-local addresses.

Each ADDRESS may be an IPv6 address, an EUI-48 MAC address, or an EUI-64
identifier, in hyphen or colon separated form. One line is printed per ADDRESS.`,
		Example: "ip6lla -u -c fe80::300:5eff:fe90:10ff\nip6lla 01-00-5e-90-10-ff\nip6lla --interfaces",
		Args: func(cmd *cobra.Command, args []string) error {
			if interfaces {
				return cobra.NoArgs(cmd, args)
			}

			return cobra.MinimumNArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				ll.SetLevel(logrus.DebugLevel)
			}

			if interfaces {
				return c.listInterfaces(w, ifaces)
			}

			return c.convertAll(w, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&c.colon, "colon", "c", false, "display the MAC address in colon-separated form")
	flags.BoolVarP(&c.upcase, "upcase", "u", false, "display the address in uppercase")
	flags.BoolVarP(&c.eui64, "eui64", "6", false, "display the EUI-64 identifier instead of the MAC address for IPv6 input")
	flags.BoolVarP(&interfaces, "interfaces", "i", false, "list the link-local addresses derived from local network interfaces")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log diagnostic information to stderr")

	return cmd
}
