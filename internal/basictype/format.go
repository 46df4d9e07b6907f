// Format-level value validation for the IPv4, MAC, URI, CPUID, and File
// kinds, factored out of the kind dispatch the way the original's
// FormatChecker.h separates format probing from the type classes
// themselves (see DESIGN.md / SPEC_FULL.md §3.1).
package basictype

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/openconfig/aceconf/internal/errs"
)

func checkIPv4(s string) error {
	ip := net.ParseIP(s)
	if ip == nil || ip.To4() == nil || strings.Count(s, ".") != 3 {
		return errs.New(errs.ValueConstraint, "", fmt.Sprintf("%q is not a dotted-quad IPv4 address", s))
	}
	return nil
}

func checkMAC(s string) error {
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return errs.New(errs.ValueConstraint, "", fmt.Sprintf("%q is not a six-byte colon-form MAC address", s))
	}
	return nil
}

var uriSchemes = map[string]bool{"file": true, "http": true, "ipv4": true, "ftp": true}

func checkURI(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return errs.New(errs.ValueConstraint, "", fmt.Sprintf("%q is not a valid URI", s))
	}
	if !uriSchemes[u.Scheme] {
		return errs.New(errs.ValueConstraint, "", fmt.Sprintf("%q has unsupported URI scheme %q", s, u.Scheme))
	}
	if u.Scheme == "ipv4" {
		if err := checkIPv4(u.Opaque); err != nil {
			if err2 := checkIPv4(strings.TrimPrefix(u.Path, "/")); err2 != nil {
				return errs.New(errs.ValueConstraint, "", fmt.Sprintf("%q has an invalid ipv4 URI body", s))
			}
		}
	}
	return nil
}

// CPUIDProbe reports whether feature is present on the current platform.
// It is a variable, not a constant function, so tests (and alternate
// platform probes) can substitute it; the default reads /proc/cpuinfo on
// Linux and treats the feature as present everywhere else, since the
// actual register probe is an external collaborator per spec.md §1.
var CPUIDProbe = defaultCPUIDProbe

func defaultCPUIDProbe(feature string) bool {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		// Platform has no /proc/cpuinfo; treat the probe as opaque and
		// optimistic rather than failing validation on unrelated hosts.
		return true
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "flags") && !strings.HasPrefix(line, "Features") {
			continue
		}
		fields := strings.Fields(line)
		for _, f := range fields {
			if f == feature {
				return true
			}
		}
	}
	return false
}

func checkCPUID(feature string) error {
	if !CPUIDProbe(feature) {
		return errs.New(errs.ValueConstraint, "", fmt.Sprintf("cpuid feature %q not present", feature))
	}
	return nil
}

// checkFile probes the filesystem per the declared open Mode: read modes
// require the path to already exist, write/append modes do not.
func checkFile(p string, mode string) error {
	switch mode {
	case "r", "r+":
		if _, err := os.Stat(p); err != nil {
			return errs.New(errs.ValueConstraint, "", fmt.Sprintf("file %q must exist for mode %q: %v", p, mode, err))
		}
	default:
		// w, w+, a, a+: the path need not exist yet; only the parent
		// directory must be reachable.
		dir := p
		if idx := strings.LastIndexByte(p, '/'); idx >= 0 {
			dir = p[:idx]
		} else {
			dir = "."
		}
		if dir == "" {
			dir = "/"
		}
		if _, err := os.Stat(dir); err != nil {
			return errs.New(errs.ValueConstraint, "", fmt.Sprintf("directory for file %q is not reachable: %v", p, err))
		}
	}
	return nil
}
