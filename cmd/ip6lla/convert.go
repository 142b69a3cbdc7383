package main

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"runtime"
	"strings"

	"github.com/mdlayher/ip6lla/eui64"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// A converter converts addresses given on the command line and formats the
// results according to the output flags.
type converter struct {
	ll *logrus.Logger

	// Output flags.
	colon, upcase, eui64 bool
}

// convertAll converts each address in args concurrently and writes the
// results to w in argument order. If any address fails to convert, nothing is
// written and the error for the earliest such argument is returned.
//
// Results are collected by index rather than streamed so that concurrency
// never reorders the output.
func (c *converter) convertAll(w io.Writer, args []string) error {
	var (
		out  = make([]string, len(args))
		errs = make([]error, len(args))
		eg   errgroup.Group
	)

	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range args {
		eg.Go(func() error {
			out[i], errs[i] = c.convert(s)
			return errs[i]
		})
	}

	if err := eg.Wait(); err != nil {
		// Wait returns whichever error happened first in time; prefer the
		// first in argument order so output is deterministic.
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
	}

	bw := bufio.NewWriter(w)
	for _, s := range out {
		if _, err := fmt.Fprintln(bw, s); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// convert detects the form of address s and converts it to the other form.
func (c *converter) convert(s string) (string, error) {
	ll := c.ll.WithField("address", s)

	if ip, err := eui64.ParseLinkLocal(s); err == nil {
		if c.eui64 {
			ll.Debug("converting IPv6 address to EUI-64")

			e, err := ip.EUI64()
			if err != nil {
				return "", err
			}

			return c.format(e.String()), nil
		}

		ll.Debug("converting IPv6 address to EUI-48")

		e, err := ip.EUI48()
		if err != nil {
			return "", err
		}

		return c.formatEUI48(e), nil
	}

	e48, err := eui64.ParseEUI48(s)
	if err == nil {
		ll.Debug("converting EUI-48 address to IPv6")
		return c.format(e48.LinkLocal().String()), nil
	}

	if e64, err := eui64.ParseEUI64(s); err == nil {
		ll.Debug("converting EUI-64 identifier to IPv6")
		return c.format(e64.LinkLocal().String()), nil
	}

	return "", fmt.Errorf("not an IPv6 or MAC address: %w", err)
}

// listInterfaces writes the hardware address and derived link-local address
// of each interface returned by ifaces which has an EUI-48 or EUI-64 hardware
// address.
func (c *converter) listInterfaces(w io.Writer, ifaces func() ([]net.Interface, error)) error {
	ifis, err := ifaces()
	if err != nil {
		return fmt.Errorf("failed to get network interfaces: %w", err)
	}

	bw := bufio.NewWriter(w)
	for _, ifi := range ifis {
		ll := c.ll.WithFields(logrus.Fields{
			"interface": ifi.Name,
			"mac":       ifi.HardwareAddr.String(),
		})

		var (
			mac string
			lla eui64.LinkLocal
		)

		switch len(ifi.HardwareAddr) {
		case 6:
			e, err := eui64.EUI48FromHardwareAddr(ifi.HardwareAddr)
			if err != nil {
				return err
			}

			// Must be non-zero (skip loopback and similar).
			if e == (eui64.EUI48{}) {
				ll.Debug("skipping interface with zero MAC address")
				continue
			}

			mac, lla = c.formatEUI48(e), e.LinkLocal()
		case 8:
			e, err := eui64.EUI64FromHardwareAddr(ifi.HardwareAddr)
			if err != nil {
				return err
			}

			mac, lla = c.format(e.String()), e.LinkLocal()
		default:
			ll.Debug("skipping interface without EUI-48 or EUI-64 hardware address")
			continue
		}

		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", ifi.Name, mac, c.format(lla.String())); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// formatEUI48 formats e using the separator selected by the output flags.
func (c *converter) formatEUI48(e eui64.EUI48) string {
	if c.colon {
		return c.format(e.ColonSeparated())
	}

	return c.format(e.String())
}

// format applies the case selected by the output flags. Addresses are always
// produced in lowercase.
func (c *converter) format(s string) string {
	if c.upcase {
		return strings.ToUpper(s)
	}

	return s
}
